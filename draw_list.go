package softrender

import (
	"slices"
	"sort"
)

// SortBackToFront orders tris by descending midpoint so the farthest
// triangle comes first. It sorts ascending and then reverses, so triangles
// with equal midpoints end up in reverse input order.
func SortBackToFront(tris []Triangle) {
	if len(tris) < 2 {
		return
	}
	sort.SliceStable(tris, func(i, j int) bool {
		return tris[i].Midpoint() < tris[j].Midpoint()
	})
	slices.Reverse(tris)
}
