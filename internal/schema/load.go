package schema

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Ext is the file extension of SDFormat schema files.
const Ext = ".sdf"

// Set maps a schema file name (base name, with extension) to its root element.
type Set map[string]*Element

// LoadFS parses every schema file directly under dir in fsys. Subdirectories
// are not visited.
func LoadFS(fsys fs.FS, dir string) (Set, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read schema dir %s: %w", dir, err)
	}

	set := make(Set, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read schema file %s: %w", entry.Name(), err)
		}
		model, err := Parse(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		set[entry.Name()] = model
	}
	return set, nil
}

// Files returns the schema file names in lexical order.
func (s Set) Files() []string {
	files := make([]string, 0, len(s))
	for file := range s {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// Root returns the first file, in lexical order, whose root element has tag name.
func (s Set) Root(name string) (string, *Element, bool) {
	for _, file := range s.Files() {
		if el := s[file]; el.Name == name {
			return file, el, true
		}
	}
	return "", nil, false
}
