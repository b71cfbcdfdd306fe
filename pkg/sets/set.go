package sets

var empty = struct{}{}

type Set[F comparable] interface {
	Add(item F)
	Contains(item F) bool
	Len() int
}

type HashSet[F comparable] struct {
	container map[F]struct{}
}

// Of returns a set holding the given items, duplicates collapsed.
func Of[F comparable](items ...F) *HashSet[F] {
	s := &HashSet[F]{container: make(map[F]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *HashSet[F]) Add(item F) {
	s.container[item] = empty
}

func (s *HashSet[F]) Contains(item F) bool {
	_, ok := s.container[item]
	return ok
}

func (s *HashSet[F]) Len() int {
	return len(s.container)
}
