package cover

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration

	"github.com/handiism/book-catalog/internal/http"
)

// ImageLoadError reports that a cover could not be fetched or decoded.
type ImageLoadError struct {
	URL string
	Err error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.URL, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// Cover is a successfully loaded cover image.
type Cover struct {
	// URL the image was loaded from.
	URL string

	// Width and Height of the decoded image in pixels.
	Width  int
	Height int

	// Format is the decoder name reported by image.Decode ("jpeg", "png", ...).
	Format string

	// Thumb is a scaled copy of the image, nil unless thumbnails are enabled.
	Thumb image.Image
}

// Options configures a Loader.
type Options struct {
	// ThumbWidth and ThumbHeight bound the generated thumbnail. Either being
	// zero disables thumbnails.
	ThumbWidth  int
	ThumbHeight int
}

// Loader fetches and decodes cover images.
//
// Loader is used to:
//   - Check that a cover URL yields a decodable image
//   - Produce small thumbnails for terminal display
//
// Example usage:
//
//	loader := NewLoader(client.WithRateLimit(8), Options{ThumbWidth: 16, ThumbHeight: 24})
//
//	c, err := loader.Load(ctx, book.ImageURL)
//	var le *ImageLoadError
//	if errors.As(err, &le) {
//	    // fall back to the placeholder
//	}
type Loader struct {
	client *http.Client
	opts   Options
}

// NewLoader creates a new Loader downloading through client.
func NewLoader(client *http.Client, opts Options) *Loader {
	return &Loader{client: client, opts: opts}
}

// Load downloads url and decodes it as an image.
//
// Every failure, whether transport, status or decode, is returned as an
// *ImageLoadError.
func (l *Loader) Load(ctx context.Context, url string) (*Cover, error) {
	if url == "" {
		return nil, &ImageLoadError{URL: url, Err: fmt.Errorf("empty image URL")}
	}

	data, err := l.client.DownloadBytes(ctx, url)
	if err != nil {
		return nil, &ImageLoadError{URL: url, Err: err}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ImageLoadError{URL: url, Err: err}
	}

	bounds := img.Bounds()
	c := &Cover{
		URL:    url,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}
	if l.opts.ThumbWidth > 0 && l.opts.ThumbHeight > 0 {
		c.Thumb = Thumbnail(img, l.opts.ThumbWidth, l.opts.ThumbHeight)
	}
	return c, nil
}

// Thumbnail scales img to fit within maxWidth x maxHeight.
//
// The aspect ratio is preserved and images already inside the bounds are
// still copied so the result never aliases img. The Catmull-Rom kernel is
// used for scaling.
//
// Example:
//
//	// A 300x450 cover scaled to fit 16x16 becomes 10x16
//	thumb := Thumbnail(img, 16, 16)
func Thumbnail(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			// Height is the limiting factor
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
