package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of float values, each associated with
// a specific date. Dates are unique and the series is always sorted ascending.
type History[T float32 | float64] struct {
	days   []Date
	values []T
}

// compare orders two dates chronologically for binary searches.
func compare(a, b Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Append adds a point to the history, keeping it sorted.
//
// An existing value at that date is overwritten: later data takes priority.
func (h *History[T]) Append(on Date, v T) *History[T] {
	i, found := slices.BinarySearchFunc(h.days, on, compare)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Get returns the value at day and true, or the zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	i, found := slices.BinarySearchFunc(h.days, day, compare)
	if !found {
		var zero T
		return zero, false
	}
	return h.values[i], true
}

// First returns the earliest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) First() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Dates returns a copy of the dates of the history, in chronological order.
func (h *History[T]) Dates() []Date { return slices.Clone(h.days) }

// Common returns the sorted dates present in every given history: the inner
// join of their date indexes. With no histories it returns nil.
func Common[T float32 | float64](histories ...*History[T]) []Date {
	if len(histories) == 0 {
		return nil
	}
	// Walk the shortest history and probe the others, they are sorted.
	shortest := histories[0]
	for _, h := range histories[1:] {
		if h.Len() < shortest.Len() {
			shortest = h
		}
	}
	var common []Date
	for _, on := range shortest.days {
		keep := true
		for _, h := range histories {
			if h == shortest {
				continue
			}
			if _, ok := h.Get(on); !ok {
				keep = false
				break
			}
		}
		if keep {
			common = append(common, on)
		}
	}
	return common
}
