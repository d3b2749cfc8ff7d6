package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/handiism/book-catalog/internal/app"
	"github.com/handiism/book-catalog/internal/controller"
	ioutils "github.com/handiism/book-catalog/internal/io"
	"github.com/handiism/book-catalog/internal/render"
)

type listOptions struct {
	sort     bool
	classics bool
	format   string
	out      string
	noProbe  bool
	width    int
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Load the catalog and print its cards",
		Example: `  bookshelf list
  bookshelf list --sort
  bookshelf list --classics --format html --out classics.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.sort, "sort", false, "Order books by publication year")
	f.BoolVar(&opts.classics, "classics", false, "Only show books published before the classic cutoff")
	f.StringVar(&opts.format, "format", "text", "Output format: text or html")
	f.StringVarP(&opts.out, "out", "o", "", "Write output to a file instead of stdout")
	f.BoolVar(&opts.noProbe, "no-probe", false, "Do not download covers to check them")
	f.IntVar(&opts.width, "width", 72, "Card width for text output")
	cmd.MarkFlagsMutuallyExclusive("sort", "classics")

	return cmd
}

func runList(cmd *cobra.Command, root *rootFlags, opts *listOptions) error {
	if opts.format != "text" && opts.format != "html" {
		return fmt.Errorf("unknown format %q, want text or html", opts.format)
	}

	settings, err := root.settings()
	if err != nil {
		return err
	}
	if opts.noProbe {
		settings.ProbeImages = false
	}
	logger, err := root.logger(cmd, settings)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	renderOpts := app.NewRenderOptions(settings, logger)

	var (
		renderer cardWriter
		html     *render.HTMLRenderer
	)
	if opts.format == "html" {
		html = render.NewHTMLRenderer(renderOpts)
		html.Standalone = true
		renderer = html
	} else {
		renderer = render.NewTextRenderer(opts.width, renderOpts)
	}

	ctrl, err := app.NewController(settings, renderer, func(ev controller.StatusEvent) {
		fmt.Fprintln(stderr, statusPrefix(ev.Level)+ev.Message)
		if html != nil {
			html.SetStatus(ev.Message)
		}
	}, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	switch {
	case opts.sort:
		err = ctrl.Sort(ctx)
	case opts.classics:
		err = ctrl.Filter(ctx)
	}
	if err != nil && !errors.Is(err, controller.ErrNotLoaded) {
		return err
	}

	var buf bytes.Buffer
	if _, err := renderer.WriteTo(&buf); err != nil {
		return err
	}
	if opts.out != "" {
		return ioutils.WriteFile(ctx, opts.out, buf.Bytes())
	}
	_, err = buf.WriteTo(cmd.OutOrStdout())
	return err
}

// cardWriter renders into a region and writes its current cards.
type cardWriter interface {
	render.Renderer
	io.WriterTo
}

func statusPrefix(level controller.StatusLevel) string {
	switch level {
	case controller.LevelError:
		return "✗ "
	case controller.LevelWarning:
		return "! "
	case controller.LevelSuccess:
		return "✓ "
	}
	return "› "
}
