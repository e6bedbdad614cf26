// Package path defines the linked-list path type shared by the line
// rasteriser and the Dijkstra-based pathfinder, so a rasterised line can
// be walked exactly like a computed path. It is generic over the
// carried value rather than importing geom directly: geom.Line must
// return this same type, and geom already needs its own Point type, so
// a path package that imported geom would create geom -> path -> geom.
// Parameterizing over T sidesteps that the way heap.Queue[T] sidesteps
// needing a concrete element type.
package path

// Path is a singly linked list. Walking to the end returns nil.
type Path[T any] struct {
	Point T
	Next  *Path[T]
}

// New creates a single-node path.
func New[T any](v T) *Path[T] {
	return &Path[T]{Point: v}
}

// Walk advances past the current head, returning the remainder of the
// path. The caller should reassign its path variable to the result:
//
//	for p := path; p != nil; p = p.Walk() { ... }
func (p *Path[T]) Walk() *Path[T] {
	if p == nil {
		return nil
	}
	return p.Next
}

// Len counts the remaining nodes, including p itself.
func (p *Path[T]) Len() int {
	n := 0
	for cur := p; cur != nil; cur = cur.Next {
		n++
	}
	return n
}

// Slice materializes the path into a slice of values, start to end.
func (p *Path[T]) Slice() []T {
	var out []T
	for cur := p; cur != nil; cur = cur.Next {
		out = append(out, cur.Point)
	}
	return out
}

// Append adds a new tail node holding v and returns it, so callers can
// build a path by repeatedly appending: tail = tail.Append(v).
func (p *Path[T]) Append(v T) *Path[T] {
	n := New(v)
	p.Next = n
	return n
}
