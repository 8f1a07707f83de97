// Package ordering sorts content entities for display.
//
// Entities with a display order come first, ascending. Entities without one
// follow, featured before non-featured. Ties keep their input order, so the
// result is deterministic for a given input and sorting twice is a no-op.
package ordering

import (
	"cmp"
	"slices"

	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
)

// Ordered is implemented by every type embedding content.Meta.
type Ordered interface {
	Metadata() content.Meta
}

// Order returns a sorted copy of items. The input slice is never modified.
func Order[T Ordered](items []T) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, compare[T])
	return out
}

func compare[T Ordered](a, b T) int {
	ma, mb := a.Metadata(), b.Metadata()
	if c := cmp.Compare(rank(ma), rank(mb)); c != 0 {
		return c
	}
	if ma.DisplayOrder != nil && mb.DisplayOrder != nil {
		return cmp.Compare(*ma.DisplayOrder, *mb.DisplayOrder)
	}
	return 0
}

// rank partitions entities: explicitly ordered, then featured, then the rest.
func rank(m content.Meta) int {
	switch {
	case m.DisplayOrder != nil:
		return 0
	case m.Featured:
		return 1
	default:
		return 2
	}
}
