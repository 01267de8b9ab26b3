package ffmpeg

import (
	"context"
	"fmt"

	"github.com/drewbitt/vs-screen/internal/domain/entity"
	"github.com/drewbitt/vs-screen/internal/domain/port"
	ffmpeg_go "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// Renderer produces single PNG frames through an ffmpeg filter graph:
// optional subtitle burn-in, frame selection by index, then conversion to
// RGB with the clip's color matrix.
type Renderer struct {
	logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) *Renderer {
	return &Renderer{logger: logger}
}

func (r *Renderer) WriteFrame(ctx context.Context, clip *entity.ClipInfo, frame int, outPath string, opts *port.RenderOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if frame < 0 || frame >= clip.FrameCount {
		return fmt.Errorf("frame %d out of range [0, %d)", frame, clip.FrameCount)
	}
	if opts != nil && opts.Codec == entity.CodecVobSub {
		return fmt.Errorf("VobSub burn-in is not supported, use --extract-only")
	}

	inKwargs := ffmpeg_go.KwArgs{}
	if clip.IsTransportStream() {
		inKwargs["f"] = "mpegts"
	}
	stream := ffmpeg_go.Input(clip.Path, inKwargs)

	if opts != nil {
		if opts.Codec.ImageBased() {
			sub := ffmpeg_go.Input(opts.SubtitlePath)
			stream = ffmpeg_go.Filter([]*ffmpeg_go.Stream{stream, sub}, "overlay", ffmpeg_go.Args{})
		} else {
			kw := ffmpeg_go.KwArgs{"filename": opts.SubtitlePath}
			if opts.FontsDir != "" {
				kw["fontsdir"] = opts.FontsDir
			}
			stream = stream.Filter("subtitles", ffmpeg_go.Args{}, kw)
		}
	}

	stream = stream.
		Filter("select", ffmpeg_go.Args{fmt.Sprintf("eq(n,%d)", frame)}).
		Filter("scale", ffmpeg_go.Args{}, ffmpeg_go.KwArgs{"in_color_matrix": clip.ColorMatrix()}).
		Filter("format", ffmpeg_go.Args{"rgb24"})

	r.logger.Debug("rendering frame", zap.Int("frame", frame), zap.String("out", outPath))

	err := stream.
		Output(outPath, ffmpeg_go.KwArgs{"vframes": 1, "vsync": "passthrough"}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		return fmt.Errorf("render frame %d: %w", frame, err)
	}
	return nil
}
