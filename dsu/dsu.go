// SPDX-License-Identifier: MIT

package dsu

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// node is one slot of the forest. size is meaningful only while the node is a root.
type node struct {
	parent int
	size   int
}

// DisjointSet is an array-backed union-find forest. The zero value is an
// empty set of zero elements; use New to size it.
type DisjointSet struct {
	nodes    []node
	numRoots int
}

// New creates size singleton sets, each element its own root of size 1.
// Panics if size is negative.
// Complexity: O(size).
func New(size int) *DisjointSet {
	if size < 0 {
		panic(fmt.Sprintf("dsu: New: negative size %d", size))
	}
	nodes := make([]node, size)
	for i := range nodes {
		nodes[i] = node{parent: i, size: 1}
	}

	return &DisjointSet{nodes: nodes, numRoots: size}
}

// Len returns the number of elements the set was built with.
func (d *DisjointSet) Len() int { return len(d.nodes) }

// NumRoots returns the current number of disjoint sets.
// Complexity: O(1).
func (d *DisjointSet) NumRoots() int { return d.numRoots }

// Find returns the root of the set containing x.
//
// Every node visited on the way up is re-pointed to its grandparent (path
// halving), which keeps later lookups short without a second pass.
// Panics if x is out of range.
func (d *DisjointSet) Find(x int) int {
	for {
		parent := d.nodes[x].parent
		if parent == x {
			return x
		}
		grand := d.nodes[parent].parent
		d.nodes[x].parent = grand
		x = grand
	}
}

// Union merges the sets containing x and y.
//
// Steps:
//  1. Resolve both roots; equal roots mean nothing to do, return false.
//  2. Attach the root of the smaller set under the larger one. On a size tie
//     the root of x stays root.
//  3. Accumulate the size on the surviving root, decrement NumRoots.
//
// Returns true iff two distinct sets were merged.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.nodes[rx].size < d.nodes[ry].size {
		rx, ry = ry, rx
	}
	d.nodes[ry].parent = rx
	d.nodes[rx].size += d.nodes[ry].size
	d.numRoots--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Size returns the number of elements in the set containing x.
func (d *DisjointSet) Size(x int) int {
	return d.nodes[d.Find(x)].size
}

// Roots yields (root, size) for every current root in ascending root order.
// The sequence is lazy and reads parent links only; it never compresses.
// Unions performed while ranging are undefined behavior.
func (d *DisjointSet) Roots() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, n := range d.nodes {
			if n.parent != i {
				continue
			}
			if !yield(i, n.size) {
				return
			}
		}
	}
}

// TopSizes returns the n largest set sizes in descending order. If fewer than
// n sets exist, all sizes are returned. n <= 0 yields an empty slice.
// Complexity: O(N + R log R) for R roots.
func (d *DisjointSet) TopSizes(n int) []int {
	sizes := d.sortedSizes()
	if n < 0 {
		n = 0
	}
	if n < len(sizes) {
		sizes = sizes[:n]
	}

	return sizes
}

// sortedSizes collects every root size, largest first.
func (d *DisjointSet) sortedSizes() []int {
	sizes := make([]int, 0, d.numRoots)
	for _, s := range d.Roots() {
		sizes = append(sizes, s)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)

	return sizes
}

// String renders a histogram of set sizes, largest first, as (size, count)
// pairs: a forest with sets of sizes 3, 1, 1 prints "[(3, 1), (1, 2)]".
func (d *DisjointSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sizes := d.sortedSizes()
	first := true
	for i := 0; i < len(sizes); {
		j := i
		for j < len(sizes) && sizes[j] == sizes[i] {
			j++
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "(%d, %d)", sizes[i], j-i)
		i = j
	}
	sb.WriteByte(']')

	return sb.String()
}
