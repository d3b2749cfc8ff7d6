package model

import (
	"testing"
)

func TestBook_Alt(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Dune", "Cover of Dune"},
		{"", "Cover of "},
		{"A <Tale>", "Cover of A <Tale>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := Book{Title: tt.title}.Alt()
			if got != tt.want {
				t.Errorf("Alt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBook_HasImage(t *testing.T) {
	if (Book{}).HasImage() {
		t.Error("HasImage() should return false when ImageURL is empty")
	}
	if !(Book{ImageURL: "a.jpg"}).HasImage() {
		t.Error("HasImage() should return true when ImageURL is set")
	}
}

func TestBook_Year(t *testing.T) {
	if got := (Book{PublishYear: 1954}).Year(); got != "1954" {
		t.Errorf("Year() = %q, want %q", got, "1954")
	}
}

func TestClone(t *testing.T) {
	if Clone(nil) != nil {
		t.Error("Clone(nil) should return nil")
	}

	orig := []Book{{Title: "A"}, {Title: "B"}}
	c := Clone(orig)
	c[0].Title = "changed"

	if orig[0].Title != "A" {
		t.Errorf("Clone shares backing array: orig[0].Title = %q", orig[0].Title)
	}
	if len(c) != len(orig) {
		t.Errorf("len(Clone) = %d, want %d", len(c), len(orig))
	}

	empty := Clone([]Book{})
	if empty == nil || len(empty) != 0 {
		t.Errorf("Clone of empty slice = %#v, want empty non-nil", empty)
	}
}
