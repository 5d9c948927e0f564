package builder

// Allocator hands out result ids. Ids start at 1 and are never reused;
// the bound is always one greater than the last id handed out.
type Allocator struct {
	next uint32
}

// NewAllocator returns an allocator whose first id is 1.
func NewAllocator() Allocator {
	return Allocator{next: 1}
}

// Fresh returns a new unique id.
func (a *Allocator) Fresh() uint32 {
	id := a.next
	a.next++
	return id
}

// ReserveUpTo marks every id below bound as taken, so ids handed out
// afterwards never collide with ids already present in a loaded module.
// Bounds below the current position are ignored.
func (a *Allocator) ReserveUpTo(bound uint32) {
	if bound > a.next {
		a.next = bound
	}
}

// Bound returns the id bound implied by the allocations so far.
func (a *Allocator) Bound() uint32 {
	return a.next
}
