// Package mkvtoolnix wraps the mkvmerge/mkvextract binaries for container
// identification and track/attachment extraction.
package mkvtoolnix

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/drewbitt/vs-screen/internal/domain/entity"
	"go.uber.org/zap"
)

// Inspector identifies container contents through `mkvmerge -J`, the
// machine-readable identification mode.
type Inspector struct {
	mkvmergeBin string
	logger      *zap.Logger
}

func NewInspector(mkvmergeBin string, logger *zap.Logger) *Inspector {
	return &Inspector{mkvmergeBin: mkvmergeBin, logger: logger}
}

// identifyResult mirrors the parts of the mkvmerge -J document this tool
// consumes. The shape is pinned by inspector_test.go fixtures.
type identifyResult struct {
	Tracks      []identifyTrack      `json:"tracks"`
	Attachments []identifyAttachment `json:"attachments"`
}

type identifyTrack struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	Codec      string `json:"codec"`
	Properties struct {
		Language  string `json:"language"`
		TrackName string `json:"track_name"`
	} `json:"properties"`
}

type identifyAttachment struct {
	ID          int64  `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

func (i *Inspector) identify(ctx context.Context, path string) (*identifyResult, error) {
	cmd := exec.CommandContext(ctx, i.mkvmergeBin, "-J", path)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("mkvmerge identify %s: %w", path, err)
	}
	return parseIdentify(output)
}

func parseIdentify(data []byte) (*identifyResult, error) {
	var res identifyResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse mkvmerge output: %w", err)
	}
	return &res, nil
}

func (i *Inspector) ResolveSubtitleTrack(ctx context.Context, path string, number int) (*entity.SubtitleTrack, error) {
	res, err := i.identify(ctx, path)
	if err != nil {
		return nil, err
	}

	track, err := selectSubtitleTrack(res, number)
	if err != nil {
		return nil, err
	}

	i.logger.Debug("resolved subtitle track",
		zap.Int64("track_id", track.ID),
		zap.String("codec", string(track.Codec)),
		zap.String("language", track.Language),
	)
	return track, nil
}

// selectSubtitleTrack picks the number-th subtitle track (1-indexed) in
// container order and maps its codec name.
func selectSubtitleTrack(res *identifyResult, number int) (*entity.SubtitleTrack, error) {
	var subs []identifyTrack
	for _, t := range res.Tracks {
		if t.Type == "subtitles" {
			subs = append(subs, t)
		}
	}
	if number < 1 || number > len(subs) {
		return nil, fmt.Errorf("subtitle track %d requested, container has %d subtitle track(s)", number, len(subs))
	}

	picked := subs[number-1]
	codec, err := entity.CodecFromName(picked.Codec)
	if err != nil {
		return nil, fmt.Errorf("track %d: %w", picked.ID, err)
	}

	return &entity.SubtitleTrack{
		ID:       picked.ID,
		Codec:    codec,
		Language: picked.Properties.Language,
		Name:     picked.Properties.TrackName,
	}, nil
}

func (i *Inspector) FontAttachments(ctx context.Context, path string) ([]entity.FontAttachment, error) {
	res, err := i.identify(ctx, path)
	if err != nil {
		return nil, err
	}

	var fonts []entity.FontAttachment
	for _, a := range res.Attachments {
		att := entity.FontAttachment{
			ID:       a.ID,
			FileName: a.FileName,
			MimeType: a.ContentType,
		}
		if !att.IsFont() {
			i.logger.Debug("skipping non-font attachment", zap.String("file_name", att.FileName), zap.String("mime_type", att.MimeType))
			continue
		}
		if att.MimeIsFont() != att.ExtIsFont() {
			i.logger.Warn("attachment MIME type and extension disagree, extracting anyway",
				zap.String("file_name", att.FileName),
				zap.String("mime_type", att.MimeType),
			)
		}
		fonts = append(fonts, att)
	}
	return fonts, nil
}
