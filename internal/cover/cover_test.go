package cover

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apphttp "github.com/handiism/book-catalog/internal/http"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cover := pngBytes(t, 30, 45)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cover.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(cover)
		case "/text.png":
			_, _ = w.Write([]byte("definitely not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoader_Load(t *testing.T) {
	srv := newServer(t)
	client := apphttp.NewClient("", 0)

	tests := []struct {
		name      string
		path      string
		opts      Options
		wantErr   bool
		wantThumb bool
	}{
		{name: "decodes png", path: "/cover.png"},
		{name: "with thumbnail", path: "/cover.png", opts: Options{ThumbWidth: 10, ThumbHeight: 10}, wantThumb: true},
		{name: "missing", path: "/nope.png", wantErr: true},
		{name: "undecodable", path: "/text.png", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(client, tt.opts)
			c, err := l.Load(context.Background(), srv.URL+tt.path)
			if tt.wantErr {
				var le *ImageLoadError
				if !errors.As(err, &le) {
					t.Fatalf("expected *ImageLoadError, got %v", err)
				}
				if le.URL != srv.URL+tt.path {
					t.Errorf("URL = %q, want %q", le.URL, srv.URL+tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Width != 30 || c.Height != 45 {
				t.Errorf("size = %dx%d, want 30x45", c.Width, c.Height)
			}
			if c.Format != "png" {
				t.Errorf("Format = %q, want png", c.Format)
			}
			if (c.Thumb != nil) != tt.wantThumb {
				t.Errorf("Thumb present = %v, want %v", c.Thumb != nil, tt.wantThumb)
			}
		})
	}
}

func TestLoader_LoadEmptyURL(t *testing.T) {
	l := NewLoader(apphttp.NewClient("", 0), Options{})
	_, err := l.Load(context.Background(), "")
	var le *ImageLoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *ImageLoadError, got %v", err)
	}
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{name: "portrait limited by height", w: 300, h: 450, maxW: 16, maxH: 16, wantW: 10, wantH: 16},
		{name: "landscape limited by width", w: 400, h: 200, maxW: 20, maxH: 20, wantW: 20, wantH: 10},
		{name: "already small", w: 8, h: 8, maxW: 16, maxH: 16, wantW: 8, wantH: 8},
		{name: "never zero", w: 1000, h: 1, maxW: 10, maxH: 10, wantW: 10, wantH: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := Thumbnail(src, tt.maxW, tt.maxH).Bounds()
			if got.Dx() != tt.wantW || got.Dy() != tt.wantH {
				t.Errorf("Thumbnail = %dx%d, want %dx%d", got.Dx(), got.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestANSI(t *testing.T) {
	if ANSI(nil) != "" {
		t.Error("ANSI(nil) should be empty")
	}

	img := image.NewRGBA(image.Rect(0, 0, 3, 4))
	out := ANSI(img)
	if got := strings.Count(out, halfBlock); got != 6 {
		t.Errorf("half blocks = %d, want 6", got)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("lines = %d, want 2", got+1)
	}
}
