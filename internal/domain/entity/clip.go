package entity

import (
	"path/filepath"
	"strings"
)

// ClipInfo describes a decoded video as reported by the prober.
type ClipInfo struct {
	Path       string
	Width      int
	Height     int
	FrameCount int
	FrameRate  float64
	Duration   float64
}

// ColorMatrix selects the coefficient standard used when converting the
// clip to RGB. Anything taller than 576 rows is assumed BT.709, the rest
// BT.601. Hard-coded heuristic, not read from the container.
func (c *ClipInfo) ColorMatrix() string {
	if c.Height > 576 {
		return "bt709"
	}
	return "bt601"
}

// IsTransportStream reports whether the clip should be opened with the
// MPEG-TS demuxer instead of format autodetection.
func (c *ClipInfo) IsTransportStream() bool {
	switch strings.ToLower(filepath.Ext(c.Path)) {
	case ".ts", ".m2ts":
		return true
	}
	return false
}
