package stats

import (
	"path/filepath"
	"time"
)

// File represents a spreadsheet that state records were imported from.
type File struct {
	Path     string    `json:"path"`
	Title    string    `json:"title"`
	Rows     int       `json:"rows"`
	Imported time.Time `json:"imported"`
}

func NewFile(path string) *File {
	base := filepath.Base(path)
	return &File{
		Path:  path,
		Title: base[:len(base)-len(filepath.Ext(base))],
	}
}
