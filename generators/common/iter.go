package common

import "iter"

// SliceIterator iterates over an in-memory slice.
type SliceIterator[E any] struct {
	items []E
	pos   int
}

// FromSlice returns an Iterator over items.
func FromSlice[E any](items []E) *SliceIterator[E] {
	return &SliceIterator[E]{items: items}
}

func (s *SliceIterator[E]) HasNext() bool {
	return s.pos < len(s.items)
}

func (s *SliceIterator[E]) Next() (E, error) {
	if !s.HasNext() {
		var zero E
		return zero, ErrExhausted
	}
	item := s.items[s.pos]
	s.pos++
	return item, nil
}

func (s *SliceIterator[E]) Err() error { return nil }

func (s *SliceIterator[E]) Close() error {
	s.pos = len(s.items)
	return nil
}

// SliceSource returns a Source that opens a fresh iterator over items on each call.
func SliceSource[E any](items ...E) Source[E] {
	return func() (Iterator[E], error) {
		return FromSlice(items), nil
	}
}

// All adapts it for range-over-func. A terminal error is yielded once as the
// second value. The iterator is closed when the loop ends, including on break.
func All[E any](it Iterator[E]) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		defer it.Close()
		for it.HasNext() {
			v, err := it.Next()
			if !yield(v, err) || err != nil {
				return
			}
		}
		if err := it.Err(); err != nil {
			var zero E
			yield(zero, err)
		}
	}
}

// Collect drains it into a slice.
func Collect[E any](it Iterator[E]) ([]E, error) {
	var out []E
	for v, err := range All(it) {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
