// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/pdiddy/docshift/pkg/types"
)

// Watch converts documents to PDF as they appear under inDir. It
// subscribes to create and write events, recursively: every directory
// under inDir gets its own watch, and directories created while
// watching are added on the fly. Conversion happens on the event
// goroutine, so a slow conversion applies backpressure to the event
// channel; if the kernel queue overflows in the meantime, the overflow
// is logged and watching continues. Watch blocks until the watcher's
// event channel closes.
func (p *Pipeline) Watch(inDir, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return types.NewConvertError(types.KindIO, outDir, fmt.Errorf("creating output directory: %w", err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return types.NewConvertError(types.KindIO, inDir, fmt.Errorf("creating watcher: %w", err))
	}
	defer watcher.Close()

	if err := watchTree(watcher, inDir); err != nil {
		return types.NewConvertError(types.KindIO, inDir, fmt.Errorf("watching input directory: %w", err))
	}

	fmt.Fprintf(p.log, "watching: %s -> %s\n", inDir, outDir)
	p.watchLoop(watcher, outDir)
	return nil
}

// watchLoop drains events until the watcher closes. Split from Watch so
// tests can drive it with their own watcher.
func (p *Pipeline) watchLoop(watcher *fsnotify.Watcher, outDir string) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				// Gone already (editors often create and rename).
				continue
			}
			if info.IsDir() {
				if event.Op&fsnotify.Create != 0 {
					if err := watchTree(watcher, event.Name); err != nil {
						fmt.Fprintf(p.log, "warning: cannot watch %s: %v\n", event.Name, err)
					}
				}
				continue
			}
			if !p.matches(event.Name) {
				continue
			}

			out, err := p.ToPDF(event.Name, outDir)
			if err != nil {
				fmt.Fprintf(p.log, "failed: %s (%v)\n", event.Name, err)
				continue
			}
			fmt.Fprintf(p.log, "converted: %s -> %s\n", event.Name, out)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(p.log, "warning: watch error: %v\n", err)
		}
	}
}

// watchTree adds root and every directory below it to the watcher.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
