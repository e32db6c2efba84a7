package main

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watches the document directory (editors often replace files on save) and
// signals Reload for events on the document file.
type docWatcher struct {
	filename string
	w        *fsnotify.Watcher
	OnError  func(error)
	Reload   chan struct{}
}

func newDocWatcher(filename string) (*docWatcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	dw := &docWatcher{
		filename: abs,
		w:        w,
		OnError:  func(error) {},
		Reload:   make(chan struct{}, 1),
	}
	return dw, nil
}

func (dw *docWatcher) Close() {
	dw.w.Close() // will close dw.w.{Events,Errors} chans
}

func (dw *docWatcher) EventLoop() {
	defer close(dw.Reload)
	for {
		select {
		case ev, ok := <-dw.w.Events:
			if !ok {
				return
			}
			dw.onEvent(ev)
		case err, ok := <-dw.w.Errors:
			if !ok {
				return
			}
			dw.OnError(err)
		}
	}
}

func (dw *docWatcher) onEvent(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != dw.filename {
		return
	}
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	// coalesce: a pending reload already covers this event
	select {
	case dw.Reload <- struct{}{}:
	default:
	}
}
