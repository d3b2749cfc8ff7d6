package catalog

import (
	"slices"

	"github.com/handiism/book-catalog/internal/model"
)

// ClassicCutoff is the first year that no longer counts as a classic.
const ClassicCutoff = 1960

// SortByYear returns a new slice ordered by ascending PublishYear.
//
// The sort is stable: books sharing a year keep their relative order.
// The input slice is never reordered.
func SortByYear(books []model.Book) []model.Book {
	out := model.Clone(books)
	slices.SortStableFunc(out, func(a, b model.Book) int {
		return a.PublishYear - b.PublishYear
	})
	return out
}

// FilterClassics returns the books published strictly before ClassicCutoff.
func FilterClassics(books []model.Book) []model.Book {
	return FilterBefore(books, ClassicCutoff)
}

// FilterBefore returns, in their original order, the books whose
// PublishYear is strictly less than year. The result is a new slice and is
// never nil.
func FilterBefore(books []model.Book, year int) []model.Book {
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if b.PublishYear < year {
			out = append(out, b)
		}
	}
	return out
}
