// Package cover loads book cover images and renders terminal thumbnails.
//
// # Loading
//
//	loader := cover.NewLoader(client, cover.Options{ThumbWidth: 16, ThumbHeight: 24})
//	c, err := loader.Load(ctx, "https://example.com/a.jpg")
//
// JPEG, PNG, GIF and WebP are decoded. Any failure is reported as an
// *ImageLoadError so callers can substitute a placeholder.
//
// # Thumbnails
//
//	thumb := cover.Thumbnail(img, 16, 24)
//	fmt.Println(cover.ANSI(thumb))
package cover
