package tolerance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds an Exec calibration call when no explicit
// timeout is configured. An unresponsive registration tool must not
// wedge the whole run.
const DefaultTimeout = 60 * time.Second

// maxStderr caps how much of the child's stderr is quoted in errors.
const maxStderr = 512

// Exec estimates tolerances by invoking an external registration
// executable as a child process.
//
// Invocation contract: the Request is written to the child's standard
// input as JSON; on success the child exits zero and emits exactly one
// finite, non-negative tolerance per requested root dimension on its
// standard output, whitespace-separated, in request label order.
//
// Any deviation — unreachable executable, non-zero exit, expired
// timeout, wrong value count, unparsable or negative values — yields an
// error wrapping ErrCalibration. The child is always reaped before
// Estimate returns, on every exit path.
type Exec struct {
	// Path locates the registration executable.
	Path string

	// Timeout bounds the whole child invocation; zero means
	// DefaultTimeout.
	Timeout time.Duration
}

// Estimate implements Predictor.
func (e Exec) Estimate(ctx context.Context, req Request) (Set, error) {
	if e.Path == "" {
		return nil, fmt.Errorf("%w: no registration executable configured", ErrCalibration)
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	input, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrCalibration, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.Path)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Forcibly close the I/O pipes shortly after the context expires:
	// a killed registration tool can leave grandchildren holding the
	// pipes, and Wait would otherwise block on them.
	cmd.WaitDelay = 5 * time.Second

	if err = cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s did not answer within %s", ErrCalibration, e.Path, timeout)
		}
		return nil, fmt.Errorf("%w: %s: %v%s", ErrCalibration, e.Path, err, stderrNote(stderr.String()))
	}

	return parseOutput(req.Labels, stdout.String())
}

// parseOutput turns the child's stdout into a Set, enforcing one value
// per label in label order.
func parseOutput(labels []string, out string) (Set, error) {
	fields := strings.Fields(out)
	if len(fields) != len(labels) {
		return nil, fmt.Errorf("%w: expected %d tolerances, got %d", ErrCalibration, len(labels), len(fields))
	}

	set := make(Set, len(labels))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: tolerance for %q is not a number: %q", ErrCalibration, labels[i], field)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: tolerance for %q out of range: %v", ErrCalibration, labels[i], v)
		}
		set[labels[i]] = v
	}
	return set, nil
}

// stderrNote formats a trimmed stderr excerpt for error messages.
func stderrNote(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) > maxStderr {
		s = s[:maxStderr]
	}
	return ": " + s
}
