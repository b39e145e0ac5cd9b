package cluster

// unionFind is a disjoint-set forest over peak positions, stored as an
// arena of parent and rank slices addressed by index. Rebuilding the
// arena from any valid pair-processing order yields the same
// components, which is what keeps parallel evaluation deterministic.
type unionFind struct {
	parent []int
	rank   []int
}

// newUnionFind builds n singleton sets.
func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

// find returns the root of x's set, compressing the path as it walks.
func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union merges the sets holding a and b, by rank.
func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		u.parent[ra] = rb
	} else {
		u.parent[rb] = ra
		if u.rank[ra] == u.rank[rb] {
			u.rank[ra]++
		}
	}
}
