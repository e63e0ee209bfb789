// Package main is the entry point for the richtext document tool. It
// loads a persisted document, then validates, exports or previews it.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/render/html"
	"github.com/scribekit/richtext/internal/render/term"
	"github.com/scribekit/richtext/internal/render/text"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	format   string
	output   string
	validate bool
	preview  bool
	debug    bool
	version  bool
	input    string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.version {
		fmt.Printf("richtext %s (%s)\n", version, commit)
		return 0
	}

	log, err := newLogger(opts.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		return 1
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is not actionable

	data, err := os.ReadFile(opts.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	doc, err := document.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.validate {
		if err := doc.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			return 1
		}
		fmt.Println("OK")
		return 0
	}

	if opts.preview {
		preview, err := term.NewPreview()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if err := preview.Run(doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	var rendered string
	switch opts.format {
	case "html":
		rendered, err = html.New(log).Render(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	case "text":
		rendered = text.Render(doc)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want html or text)\n", opts.format)
		return 1
	}

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	fmt.Fprintln(out, rendered)
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.format, "format", "html", "export format: html or text")
	flag.StringVar(&opts.output, "o", "", "output file (default stdout)")
	flag.BoolVar(&opts.validate, "validate", false, "validate document structure and exit")
	flag.BoolVar(&opts.preview, "preview", false, "open a read-only terminal preview")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.BoolVar(&opts.version, "version", false, "print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: richtext [flags] document.json\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 && !opts.version {
		flag.Usage()
		os.Exit(2)
	}
	opts.input = flag.Arg(0)
	return opts
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
