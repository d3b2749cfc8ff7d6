// Package model defines the core data structures used throughout
// the book-catalog application.
//
// # Book
//
// Book is a single catalog record decoded from the books document:
//
//	b := model.Book{Title: "Dune", Author: "Frank Herbert", PublishYear: 1965}
//	fmt.Println(b.Alt())  // "Cover of Dune"
//	fmt.Println(b.Year()) // "1965"
//
// Lists of books are plain slices. Use Clone to hand a list to code that
// may reorder it without touching the caller's backing array.
package model
