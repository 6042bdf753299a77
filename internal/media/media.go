package media

import (
	"path/filepath"
	"strings"
)

// File describes a single audio file and the metadata extracted from it.
// It is populated once during extraction and treated as read-only by every
// downstream consumer; the matching engine never mutates descriptors.
//
// DurationSecs, BitrateKbps, and the tag fields are zero when extraction
// could not determine them.
type File struct {
	Path         string
	FileName     string
	SizeBytes    int64
	DurationSecs float64
	BitrateKbps  int
	Artist       string
	Title        string
	Album        string
}

// HasBitrate reports whether a usable bitrate was derived for the file.
func (f File) HasBitrate() bool {
	return f.BitrateKbps > 0
}

// supportedExtensions lists the container formats the extractor can probe.
var supportedExtensions = map[string]struct{}{
	".mp3":  {},
	".wav":  {},
	".flac": {},
}

// SupportedPath reports whether path carries a supported audio extension.
func SupportedPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := supportedExtensions[ext]
	return ok
}
