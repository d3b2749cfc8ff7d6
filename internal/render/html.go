package render

import (
	"bytes"
	"html/template"
	"io"
	"sync"
)

var cardsTemplate = template.Must(template.New("cards").Parse(`{{define "region"}}<div id="{{.ID}}">
{{- range .Cards}}
<div class="book-card">
    <div class="book-image-container">
        <img src="{{.ImageSrc}}" alt="{{.Alt}}" class="book-image">
    </div>
    <div class="book-info">
        <h2>{{.Title}}</h2>
        <p><strong>Author:</strong> {{.Author}}</p>
        <p><strong>Published:</strong> {{.PublishYear}}</p>
    </div>
</div>
{{- end}}
</div>
{{end}}{{if .Standalone}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{template "region" .}}{{if .Status}}<p id="apiResponse">{{.Status}}</p>
{{end}}</body>
</html>
{{else}}{{template "region" .}}{{end}}`))

// HTMLRenderer keeps the latest cards and writes them as HTML markup.
//
// Each Render replaces the cards from the previous one; nothing is written
// until WriteTo. Each card has the shape:
//
//	<div class="book-card">
//	    <div class="book-image-container"><img class="book-image" ...></div>
//	    <div class="book-info"><h2>..</h2><p>Author</p><p>Published</p></div>
//	</div>
//
// all wrapped in <div id="bookDisplay">.
type HTMLRenderer struct {
	*RegionRenderer

	// Standalone wraps the region in a complete HTML document.
	Standalone bool

	// Title is the document title when Standalone is set.
	Title string

	mu     sync.Mutex
	status string
}

// NewHTMLRenderer creates an HTMLRenderer with an empty display region.
func NewHTMLRenderer(opts Options) *HTMLRenderer {
	return &HTMLRenderer{
		RegionRenderer: NewRegionRenderer(NewRegion(DisplayID), opts),
		Title:          "Book Catalog",
	}
}

// SetStatus sets the status paragraph of standalone documents.
func (r *HTMLRenderer) SetStatus(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
}

// WriteTo writes the current region to w.
func (r *HTMLRenderer) WriteTo(w io.Writer) (int64, error) {
	r.mu.Lock()
	status := r.status
	r.mu.Unlock()

	region := r.Region()
	var buf bytes.Buffer
	err := WriteHTML(&buf, Page{
		ID:         region.ID(),
		Cards:      region.Cards(),
		Standalone: r.Standalone,
		Title:      r.Title,
		Status:     status,
	})
	if err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// Page is the data passed to the HTML template.
type Page struct {
	ID         string
	Cards      []Card
	Standalone bool
	Title      string

	// Status is written as <p id="apiResponse"> in standalone documents.
	Status string
}

// WriteHTML executes the card template for p.
func WriteHTML(w io.Writer, p Page) error {
	if p.ID == "" {
		p.ID = DisplayID
	}
	return cardsTemplate.Execute(w, p)
}
