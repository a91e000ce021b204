package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, one per day.
// Dates are unique and kept sorted; appending a value on an existing
// day overwrites the previous one, so the latest write always wins.
type History[T int64 | float64 | string] struct {
	days   []Date
	values []T
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Append records a value for a day, overwriting any existing value
// on that same day.
func (h *History[T]) Append(on Date, v T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Get returns the value recorded on a given day.
func (h *History[T]) Get(day Date) (T, bool) {
	i, found := h.search(day)
	if !found {
		var zero T
		return zero, false
	}
	return h.values[i], true
}

// Latest returns the most recent day and value, or zero values when
// the history is empty.
func (h *History[T]) Latest() (Date, T) {
	if len(h.days) == 0 {
		var zero T
		return Date{}, zero
	}
	last := len(h.days) - 1
	return h.days[last], h.values[last]
}

// Values iterates over all points in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// search locates the insertion index for a day in the sorted slice.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}
