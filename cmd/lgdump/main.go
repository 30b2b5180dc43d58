// Loads a layout description file (yaml/toml), lays it out and prints the bounds of the named nodes.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/fsnotify/fsnotify"
	"github.com/jmigpin/lgui/util/uiutil/layoutfile"
	"github.com/jmigpin/lgui/util/uiutil/widget"
	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//----------

type options struct {
	size     image.Point
	watch    bool
	dump     bool
	verbose  bool
	filename string
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("lgdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: lgdump [flags] file.{yaml,yml,toml}\n")
		fs.PrintDefaults()
	}
	sizeStr := fs.String("size", "", "layout size `WxH` (default: document size)")
	watch := fs.Bool("watch", false, "re-run on file writes")
	dump := fs.Bool("dump", false, "print the decoded description")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expecting one filename")
	}

	opt := &options{
		watch:    *watch,
		dump:     *dump,
		verbose:  *verbose,
		filename: fs.Arg(0),
	}
	if *sizeStr != "" {
		if _, err := fmt.Sscanf(*sizeStr, "%dx%d", &opt.size.X, &opt.size.Y); err != nil {
			return nil, errors.Wrapf(err, "bad size: %q", *sizeStr)
		}
	}
	return opt, nil
}

//----------

func run(args []string, stdout, stderr io.Writer) error {
	opt, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if !opt.watch {
		return runOnce(opt, logger, stdout)
	}
	return watchLoop(opt, logger, stdout)
}

func runOnce(opt *options, logger *slog.Logger, w io.Writer) error {
	doc, err := layoutfile.DecodeFile(opt.filename)
	if err != nil {
		return err
	}
	if opt.dump {
		cfg := spew.ConfigState{Indent: "\t", DisablePointerAddresses: true}
		cfg.Fdump(w, doc)
	}
	tree, err := layoutfile.Build(doc, widget.RootConfig{Logger: logger})
	if err != nil {
		return err
	}
	tree.Layout(opt.size)
	logger.Debug("layout done", "file", opt.filename, "size", tree.Root.Bounds.Size())
	return tree.Dump(w)
}

//----------

// Watches the file directory: editors often replace the file on save.
func watchLoop(opt *options, logger *slog.Logger, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(opt.filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	rerun := func() {
		if err := runOnce(opt, logger, w); err != nil {
			logger.Error("run", "err", err)
		}
		fmt.Fprintln(w, "--")
	}
	rerun()

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			logger.Debug("fs event", "op", ev.Op.String())
			if ev.Op&(fsnotify.Write|fsnotify.Create) > 0 {
				rerun()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher", "err", err)
		}
	}
}
