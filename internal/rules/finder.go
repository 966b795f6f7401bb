package rules

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// BinFinder locates executables.
type BinFinder interface {
	Find(name string) (path string, ok bool)
}

// PathFinder searches a fixed list of directories, typically $PATH.
type PathFinder struct {
	dirs []string
	exts []string
}

// NewPathFinder returns a finder over the directories in a PATH-style list.
// Empty elements are ignored.
func NewPathFinder(pathList string) *PathFinder {
	f := &PathFinder{}
	for _, dir := range filepath.SplitList(pathList) {
		if dir != "" {
			f.dirs = append(f.dirs, dir)
		}
	}
	if runtime.GOOS == "windows" {
		f.exts = windowsExts(os.Getenv("PATHEXT"))
	}
	return f
}

// Find returns the first executable named name. Names containing a path
// separator are checked as given instead of being searched for.
func (f *PathFinder) Find(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if strings.ContainsAny(name, `/\`) {
		return f.executable(name)
	}
	for _, dir := range f.dirs {
		if path, ok := f.executable(filepath.Join(dir, name)); ok {
			return path, true
		}
	}
	return "", false
}

func (f *PathFinder) executable(path string) (string, bool) {
	if len(f.exts) == 0 || filepath.Ext(path) != "" {
		return path, isExecutable(path)
	}
	for _, ext := range f.exts {
		if isExecutable(path + ext) {
			return path + ext, true
		}
	}
	return "", false
}

// isExecutable reports whether path is a regular file with an execute bit.
// Stat errors (missing file, unreadable directory) count as not found.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

func windowsExts(pathext string) []string {
	var exts []string
	for _, ext := range strings.Split(pathext, ";") {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, strings.ToLower(ext))
	}
	if len(exts) == 0 {
		exts = []string{".com", ".exe", ".bat", ".cmd"}
	}
	return exts
}
