package buffer

import (
	"path/filepath"
	"strings"
)

// FileType identifies the language of a document.
type FileType uint8

const (
	FileTypeText FileType = iota
	FileTypeRust
	FileTypeGo
)

func (t FileType) String() string {
	switch t {
	case FileTypeRust:
		return "Rust"
	case FileTypeGo:
		return "Go"
	default:
		return "Text"
	}
}

// FileInfo is the on-disk identity of a document.
type FileInfo struct {
	path     string
	fileType FileType
}

func NewFileInfo(path string) FileInfo {
	return FileInfo{path: path, fileType: fileTypeFor(path)}
}

func fileTypeFor(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rs":
		return FileTypeRust
	case ".go":
		return FileTypeGo
	default:
		return FileTypeText
	}
}

func (f FileInfo) Path() string { return f.path }

func (f FileInfo) HasPath() bool { return f.path != "" }

func (f FileInfo) FileType() FileType { return f.fileType }

// Name returns the base file name, or "[No Name]" without identity.
func (f FileInfo) Name() string {
	if f.path == "" {
		return "[No Name]"
	}
	return filepath.Base(f.path)
}

func (f FileInfo) String() string { return f.Name() }
