package ext

// Set is an ordered collection with add-once semantics. The compiler uses
// sets as work lists: a stack of groupings being expanded (circular-use
// detection), unresolved leafref/xpath references, and incomplete default
// values to be finished after the first pass.
type Set[T comparable] struct {
	items []T
	index map[T]int
}

// Add appends v unless it is already present. It reports whether v was
// added.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[T]int)
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Remove deletes v, swapping the last item into its slot. It reports
// whether v was present. Order of the remaining items is not preserved
// past the removed slot.
func (s *Set[T]) Remove(v T) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if i != last {
		s.items[i] = s.items[last]
		s.index[s.items[i]] = i
	}
	s.items = s.items[:last]
	delete(s.index, v)
	return true
}

// Pop removes and returns the most recently added item, for stack-style
// use.
func (s *Set[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	delete(s.index, v)
	return v, true
}

// Len reports the number of items.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns the items in insertion order (subject to Remove's swap).
// The returned slice is the set's backing storage; callers must not
// modify it.
func (s *Set[T]) Items() []T {
	return s.items
}
