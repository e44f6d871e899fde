package wtree

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings persists user changes to layout, like dragged split gutters and
// dock band spaces, in a TOML file. Entries are keyed by element key.
type Settings struct {
	path string
	data settingsFile
}

type settingsFile struct {
	Dims map[string][]int `toml:"dims"`
}

// OpenSettings reads the settings at path. A missing file is not an error.
func OpenSettings(path string) (rs *Settings, rerr error) {
	s := &Settings{path: path, data: settingsFile{Dims: map[string][]int{}}}
	buf, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}

	check, handle := fileErrors(path, &rerr)
	defer handle()

	check(err, "read settings")
	check(toml.Unmarshal(buf, &s.data), "parse settings")
	if s.data.Dims == nil {
		s.data.Dims = map[string][]int{}
	}
	return s, nil
}

// Dims returns a copy of the dimensions stored for key.
func (s *Settings) Dims(key string) ([]int, bool) {
	v, ok := s.data.Dims[key]
	if !ok {
		return nil, false
	}
	return append([]int(nil), v...), true
}

// SetDims stores dims for key and writes the file.
func (s *Settings) SetDims(key string, dims []int) (rerr error) {
	s.data.Dims[key] = append([]int(nil), dims...)

	check, handle := fileErrors(s.path, &rerr)
	defer handle()

	buf, err := toml.Marshal(s.data)
	check(err, "marshal settings")
	check(os.MkdirAll(filepath.Dir(s.path), 0777), "making settings directory")
	tmp := s.path + ".tmp"
	check(os.WriteFile(tmp, buf, 0666), "writing settings")
	check(os.Rename(tmp, s.path), "installing settings")
	return nil
}
