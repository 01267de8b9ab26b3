package port

import (
	"context"

	"github.com/drewbitt/vs-screen/internal/domain/entity"
)

// RenderOptions configures subtitle burn-in for frame rendering. A nil
// options pointer means plain frames, no burn-in.
type RenderOptions struct {
	SubtitlePath string
	Codec        entity.SubtitleCodec
	FontsDir     string
}

// FrameRenderer writes single frames of a clip as image files. Each call
// blocks until the decode/filter pipeline has produced the frame.
type FrameRenderer interface {
	WriteFrame(ctx context.Context, clip *entity.ClipInfo, frame int, outPath string, opts *RenderOptions) error
}
