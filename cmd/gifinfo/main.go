package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/gif-demux/errors"
	"github.com/wippyai/gif-demux/gif"
)

func main() {
	var (
		keepLocal   = flag.Bool("keep-local", false, "Keep local color tables even when a global table exists")
		standardGCE = flag.Bool("standard-gce", false, "Read graphic control extensions with the GIF89a field layout")
		verbose     = flag.Bool("v", false, "Log the block trace to stderr")
		plain       = flag.Bool("plain", false, "Disable styled output")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: gifinfo [-v] [-plain] [-keep-local] [-standard-gce] <file.gif>")
		fmt.Fprintln(os.Stderr, "       gifinfo -i <file.gif>  (interactive mode)")
		os.Exit(1)
	}
	file := flag.Arg(0)

	opts := gif.Options{
		KeepLocalColorTables:   *keepLocal,
		StandardGraphicControl: *standardGCE,
	}

	log := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
			os.Exit(1)
		}
		log = dev
	}
	opts.Logger = log

	var err error
	if *interactive {
		err = runInteractive(file, opts)
	} else {
		st := plainStyles()
		if !*plain && term.IsTerminal(int(os.Stdout.Fd())) {
			st = colorStyles()
		}
		err = run(os.Stdout, file, opts, st)
	}
	_ = log.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var gerr *errors.Error
		if stderrors.As(err, &gerr) && gerr.Kind == errors.KindTruncated {
			fmt.Fprintf(os.Stderr, "File is %d bytes short.\n", gerr.Missing())
		}
		os.Exit(1)
	}
}

func run(w io.Writer, file string, opts gif.Options, st styles) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	doc, apps, err := parse(data, opts)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	writeReport(w, file, doc, apps, st)
	return nil
}

// parse runs the demuxer and collects application extensions on the side.
func parse(data []byte, opts gif.Options) (*gif.Document, []gif.Application, error) {
	var apps []gif.Application
	next := opts.OnApplication
	opts.OnApplication = func(app gif.Application) {
		apps = append(apps, app)
		if next != nil {
			next(app)
		}
	}

	doc, err := gif.ParseWithOptions(data, opts)
	if err != nil {
		return nil, nil, err
	}
	return doc, apps, nil
}
