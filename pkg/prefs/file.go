package prefs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/natefinch/atomic"
)

// File is a Backend storing keys in a flat YAML mapping on disk. Writes are
// atomic so concurrent page processes never observe a torn file. All I/O
// and parse failures degrade to an empty mapping or a false return.
type File struct {
	path string
}

// NewFile returns a file backend rooted at the given path. The file and its
// parent directories are created lazily on first write.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) load() map[string]string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return map[string]string{}
	}
	state := map[string]string{}
	if err := yaml.Unmarshal(data, &state); err != nil {
		// Malformed state is indistinguishable from no state.
		return map[string]string{}
	}
	if state == nil {
		state = map[string]string{}
	}
	return state
}

func (f *File) save(state map[string]string) bool {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return false
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return false
	}
	return atomic.WriteFile(f.path, bytes.NewReader(data)) == nil
}

func (f *File) Get(key string) (string, bool) {
	v, ok := f.load()[key]
	return v, ok
}

func (f *File) Set(key, value string) bool {
	state := f.load()
	state[key] = value
	return f.save(state)
}

func (f *File) Remove(key string) bool {
	state := f.load()
	if _, ok := state[key]; !ok {
		return false
	}
	delete(state, key)
	return f.save(state)
}
