package dto

import (
	"github.com/handiism/book-catalog/internal/model"
)

// JSONBook represents one element of the books document.
type JSONBook struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	PublishYear int    `json:"publishYear"`
	ImageURL    string `json:"imageUrl"`
}

// ToBook converts JSONBook to a model.Book. The cover reference is copied
// as written in the document.
func (jb *JSONBook) ToBook() model.Book {
	return model.Book{
		Title:       jb.Title,
		Author:      jb.Author,
		PublishYear: jb.PublishYear,
		ImageURL:    jb.ImageURL,
	}
}
