// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches Go test modules by file name.
const DefaultPattern = "*_test.go"

type (
	// Package is a directory holding one or more discovered test modules.
	Package struct {
		// Dir is the slash-separated directory relative to the discovery filesystem.
		Dir string
		// Files are the matching file names inside Dir, in lexical order.
		Files []string
	}

	// Discoverer finds test modules under a root directory of a filesystem.
	Discoverer struct {
		// FS is the project filesystem; roots are resolved relative to it.
		FS fs.FS
		// Pattern is the file-name glob for test modules. Empty means DefaultPattern.
		Pattern string
	}
)

// Target returns the package argument understood by `go test` for p.
func (p Package) Target() string {
	if p.Dir == "." {
		return "."
	}
	return "./" + p.Dir
}

// Discover walks root and returns every package directory containing at least one
// file that matches the pattern. The result is sorted by directory and then by
// file name.
//
// Directories named testdata or starting with "." or "_" are skipped, as the go tool
// ignores them. A root that does not exist yields no packages and no error.
func (d *Discoverer) Discover(root string) ([]Package, error) {
	root = path.Clean(root)
	pattern := d.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	// Validate once up front so a bad pattern is not mistaken for "no match".
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid test module pattern %q", pattern)
	}
	full := path.Join(root, "**", pattern)

	var (
		pkgs  []Package
		index = make(map[string]int)
	)

	err := fs.WalkDir(d.FS, root, func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == root && errors.Is(walkErr, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return walkErr
		}
		if entry.IsDir() {
			if p != root && skipDir(entry.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		matched, err := doublestar.Match(full, p)
		if err != nil || !matched {
			return err
		}

		dir := path.Dir(p)
		i, ok := index[dir]
		if !ok {
			i = len(pkgs)
			index[dir] = i
			pkgs = append(pkgs, Package{Dir: dir})
		}
		pkgs[i].Files = append(pkgs[i].Files, entry.Name())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover tests under %s: %w", root, err)
	}

	// Files inside one directory arrive in lexical order, but a subdirectory may be
	// visited before its parent's later files.
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Dir < pkgs[j].Dir })
	return pkgs, nil
}

func skipDir(name string) bool {
	return name == "testdata" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
