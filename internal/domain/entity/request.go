package entity

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Request is the fully parsed configuration for one screenshot run.
type Request struct {
	ClipPath      string
	Frames        []int // explicit frame list; skips sampling when set
	NumFrames     int
	SubtitleTrack int // 1-indexed; 0 means no subtitle handling
	ExtractOnly   bool
	Zip           bool
	Delete        bool
	RemoveIndex   bool
	SavePath      string
	Upload        bool
}

func (r *Request) Validate() error {
	if r.ClipPath == "" {
		return fmt.Errorf("no clip path given")
	}
	if len(r.Frames) == 0 && r.NumFrames < 1 {
		return fmt.Errorf("num-frames must be at least 1, got %d", r.NumFrames)
	}
	for _, f := range r.Frames {
		if f < 0 {
			return fmt.Errorf("frame number %d is negative", f)
		}
	}
	if r.SubtitleTrack < 0 {
		return fmt.Errorf("subtitle-track must be positive, got %d", r.SubtitleTrack)
	}
	return nil
}

// OutputDirName is the clip basename without its extension; the output
// directory, extracted subtitle file and zip archive are all named after
// it.
func (r *Request) OutputDirName() string {
	base := filepath.Base(r.ClipPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
