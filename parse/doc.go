// Package parse reads and writes experimental peak lists in the
// formats the grouping pipeline ingests:
//
//   - sparky     — "Assignment w1 w2 …" header, dash-joined assignment
//     column followed by one shift per dimension.
//   - autoassign — "#" comments, "*" terminator, rows of
//     index / shifts / intensity / workbook.
//   - json       — records with "Assignment" and "Dimensions" arrays.
//   - cstable    — bare whitespace-separated shift columns with "#"
//     comments; every dimension unassigned.
//
// Readers produce a validated peak.List with indices in file order.
// Malformed content surfaces as ErrFormat with the offending line
// number; an unrecognized format name as ErrUnknownFormat. Writers
// emit sparky, autoassign and json (cstable has no writer; it is an
// input-only convenience format).
package parse
