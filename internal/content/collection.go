package content

import "github.com/google/uuid"

// Entity is implemented by every collection element type.
type Entity interface {
	EntityID() string
}

// NewID returns a fresh opaque identifier for a created entity.
func NewID() string {
	return uuid.NewString()
}

// Replace substitutes the element whose id matches updated, keeping its
// position. Returns false when no element matches.
func Replace[T Entity](items []T, updated T) ([]T, bool) {
	out := make([]T, len(items))
	copy(out, items)
	for i, item := range out {
		if item.EntityID() == updated.EntityID() {
			out[i] = updated
			return out, true
		}
	}
	return out, false
}

// Remove filters out the element with the given id, preserving the relative
// order of the remainder. Returns false when no element matches.
func Remove[T Entity](items []T, id string) ([]T, bool) {
	out := make([]T, 0, len(items))
	found := false
	for _, item := range items {
		if item.EntityID() == id {
			found = true
			continue
		}
		out = append(out, item)
	}
	return out, found
}
