// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// walkFollowingLinks visits every regular file under root, descending
// into symlinked directories. A visited set on resolved paths guards
// against symlink cycles. Entries that cannot be read (an unreadable
// subdirectory, a vanished file) are logged to w and skipped; only a
// failure on root itself fails the walk. fn is called with the path as
// spelled under root, not the resolved target.
func walkFollowingLinks(root string, w io.Writer, fn func(path string)) error {
	visited := make(map[string]bool)
	return walkDir(root, root, visited, w, fn)
}

func walkDir(dir, root string, visited map[string]bool, w io.Writer, fn func(path string)) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		if dir == root {
			return err
		}
		fmt.Fprintf(w, "warning: skipping %s: %v\n", dir, err)
		return nil
	}
	if visited[resolved] {
		return nil
	}
	visited[resolved] = true

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			fmt.Fprintf(w, "warning: skipping %s: %v\n", path, err)
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				// Dangling link; nothing to convert.
				return nil
			}
			if info.IsDir() {
				return walkDir(path, root, visited, w, fn)
			}
			fn(path)
			return nil
		}
		if d.Type().IsRegular() {
			fn(path)
		}
		return nil
	})
}
