// Renders table documents (TOML) to PNG images.
//
//	tableui -in table.toml -out table.png -size 640x480
//	tableui -in table.toml -out table.png -watch
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/tableui/driver/imgdriver"
	"github.com/jmigpin/tableui/util/flagutil"
	"github.com/jmigpin/tableui/util/uiutil/tabledoc"
	"github.com/pkg/errors"
)

func main() {
	log.SetFlags(log.Llongfile)
	if err := run(os.Args[1:]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	r := newRenderer()
	watch := false

	fs := flag.NewFlagSet("tableui", flag.ContinueOnError)
	fs.StringVar(&r.inFile, "in", "", "table document (toml)")
	fs.StringVar(&r.outFile, "out", "", "output png (optional with -dump)")
	fs.Var(flagutil.StringFuncFlag(func(s string) error {
		p, err := flagutil.ParsePoint(s)
		r.size = p
		return err
	}), "size", "image size WxH (default 640x480)")
	fs.BoolVar(&watch, "watch", false, "render again when the document changes")
	fs.BoolVar(&r.dump, "dump", false, "print the resolved tracks and placements")
	fs.Var(flagutil.BoolFuncFlag(func(s string) error {
		if s == "true" {
			r.Logf = log.Printf
		}
		return nil
	}), "v", "verbose")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if r.inFile == "" {
		return fmt.Errorf("missing -in")
	}
	if r.outFile == "" && !r.dump {
		return fmt.Errorf("missing -out or -dump")
	}

	if !watch {
		return r.render()
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return r.watch(ctx)
}

//----------

type renderer struct {
	inFile  string
	outFile string
	size    image.Point
	dump    bool
	out     io.Writer
	Logf    func(format string, args ...interface{})
}

func newRenderer() *renderer {
	return &renderer{
		out:  os.Stdout,
		Logf: func(string, ...interface{}) {},
	}
}

func (r *renderer) render() error {
	doc, err := tabledoc.DecodeFile(r.inFile)
	if err != nil {
		return err
	}
	bg, err := doc.BackgroundColor()
	if err != nil {
		return err
	}

	size := r.size
	if size == (image.Point{}) {
		size = image.Point{640, 480}
	}
	d := imgdriver.NewDriver(size)
	d.Background = bg
	d.Logf = r.Logf

	t, err := doc.Build(d)
	if err != nil {
		return errors.Wrap(err, r.inFile)
	}
	d.Frame(t)

	if r.dump {
		fmt.Fprint(r.out, tabledoc.Dump(t, d.Bounds()))
		r.Logf("%s", spew.Sdump(doc))
	}
	if r.outFile != "" {
		if err := d.SavePNG(r.outFile); err != nil {
			return err
		}
		r.Logf("saved: %v", r.outFile)
	}
	return nil
}

// Renders once, then again on every reload request from the watcher, until ctx
// is done.
func (r *renderer) watch(ctx context.Context) error {
	w, err := newDocWatcher(r.inFile)
	if err != nil {
		return err
	}
	defer w.Close()
	w.OnError = func(err error) { log.Println(err) }
	go w.EventLoop()

	if err := r.render(); err != nil {
		log.Println(err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Reload:
			if !ok {
				return nil
			}
			r.Logf("reload: %v", r.inFile)
			// a bad document keeps watching
			if err := r.render(); err != nil {
				log.Println(err)
			}
		}
	}
}
