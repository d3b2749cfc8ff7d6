package controller

import (
	"sync"

	"github.com/handiism/book-catalog/internal/model"
)

// State holds the book list most recently loaded.
//
// A State is owned by whoever builds the Controller and can be shared with
// other readers; every accessor copies so callers never alias the held list.
type State struct {
	mu    sync.RWMutex
	books []model.Book
}

// NewState creates an empty State.
func NewState() *State {
	return &State{}
}

// Books returns a copy of the held list.
func (s *State) Books() []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.Clone(s.books)
}

// Len returns the number of held books.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// Replace swaps the held list for a copy of books.
func (s *State) Replace(books []model.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = model.Clone(books)
}
