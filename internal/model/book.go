package model

import "strconv"

// Book is one catalog entry as read from the books document.
//
// Books have no identity key; two books are the same entry only by position
// in the list that holds them. ImageURL is rewritten once at fetch time to an
// absolute URL and is otherwise left alone.
//
// Example:
//
//	b := Book{Title: "Dune", Author: "Frank Herbert", PublishYear: 1965, ImageURL: "dune.jpg"}
//	fmt.Println(b.Alt()) // "Cover of Dune"
type Book struct {
	// Title is the book title, also used for the cover alt text.
	Title string `json:"title"`

	// Author is the author's display name.
	Author string `json:"author"`

	// PublishYear is the year of first publication.
	PublishYear int `json:"publishYear"`

	// ImageURL is the cover reference. Empty means no cover is known.
	ImageURL string `json:"imageUrl"`
}

// Alt returns the alternative text for the book's cover image.
func (b Book) Alt() string {
	return "Cover of " + b.Title
}

// HasImage returns true if the book carries a cover reference.
func (b Book) HasImage() bool {
	return b.ImageURL != ""
}

// Year returns PublishYear formatted for display.
func (b Book) Year() string {
	return strconv.Itoa(b.PublishYear)
}

// Clone returns a copy of books backed by a new array.
//
// A nil input yields nil so that "never loaded" and "loaded nothing" stay
// distinguishable.
func Clone(books []Book) []Book {
	if books == nil {
		return nil
	}
	out := make([]Book, len(books))
	copy(out, books)
	return out
}
