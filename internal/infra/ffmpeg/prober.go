package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/drewbitt/vs-screen/internal/domain/entity"
	"go.uber.org/zap"
)

// Prober reads clip metadata through ffprobe's JSON output.
type Prober struct {
	ffprobeBin string
	logger     *zap.Logger
}

func NewProber(ffprobeBin string, logger *zap.Logger) *Prober {
	return &Prober{ffprobeBin: ffprobeBin, logger: logger}
}

type probeResult struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

type probeStream struct {
	CodecType     string `json:"codec_type"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	NbFrames      string `json:"nb_frames"`
	NbReadPackets string `json:"nb_read_packets"`
	RFrameRate    string `json:"r_frame_rate"`
	Duration      string `json:"duration"`
}

type probeFormat struct {
	Duration string `json:"duration"`
}

func (p *Prober) Probe(ctx context.Context, path string) (*entity.ClipInfo, error) {
	cmd := exec.CommandContext(ctx, p.ffprobeBin,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		"-count_packets",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	clip, err := parseProbe(output, path)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("probed clip",
		zap.String("path", path),
		zap.Int("width", clip.Width),
		zap.Int("height", clip.Height),
		zap.Int("frame_count", clip.FrameCount),
	)
	return clip, nil
}

func parseProbe(data []byte, path string) (*entity.ClipInfo, error) {
	var res probeResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	var video *probeStream
	for i := range res.Streams {
		if res.Streams[i].CodecType == "video" {
			video = &res.Streams[i]
			break
		}
	}
	if video == nil {
		return nil, fmt.Errorf("no video stream in %s", path)
	}

	rate := parseRate(video.RFrameRate)
	duration, _ := strconv.ParseFloat(video.Duration, 64)
	if duration == 0 {
		duration, _ = strconv.ParseFloat(res.Format.Duration, 64)
	}

	// Frame count ladder: container-declared, counted packets, then
	// duration times rate. MPEG-TS rarely declares nb_frames.
	frames, _ := strconv.Atoi(video.NbFrames)
	if frames == 0 {
		frames, _ = strconv.Atoi(video.NbReadPackets)
	}
	if frames == 0 && duration > 0 && rate > 0 {
		frames = int(duration * rate)
	}
	if frames == 0 {
		return nil, fmt.Errorf("could not determine frame count of %s", path)
	}

	return &entity.ClipInfo{
		Path:       path,
		Width:      video.Width,
		Height:     video.Height,
		FrameCount: frames,
		FrameRate:  rate,
		Duration:   duration,
	}, nil
}

func parseRate(s string) float64 {
	num, den, found := strings.Cut(s, "/")
	if !found {
		rate, _ := strconv.ParseFloat(s, 64)
		return rate
	}
	n, _ := strconv.ParseFloat(num, 64)
	d, _ := strconv.ParseFloat(den, 64)
	if d == 0 {
		return 0
	}
	return n / d
}
