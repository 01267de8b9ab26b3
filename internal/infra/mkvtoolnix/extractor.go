package mkvtoolnix

import (
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// Extractor shells out to mkvextract. A non-zero exit is the only failure
// signal the tool gives.
type Extractor struct {
	mkvextractBin string
	logger        *zap.Logger
}

func NewExtractor(mkvextractBin string, logger *zap.Logger) *Extractor {
	return &Extractor{mkvextractBin: mkvextractBin, logger: logger}
}

func (e *Extractor) ExtractTrack(ctx context.Context, path string, trackID int64, destPath string) error {
	return e.run(ctx, "tracks", path, fmt.Sprintf("%d:%s", trackID, destPath))
}

func (e *Extractor) ExtractAttachment(ctx context.Context, path string, attachmentID int64, destPath string) error {
	return e.run(ctx, "attachments", path, fmt.Sprintf("%d:%s", attachmentID, destPath))
}

func (e *Extractor) run(ctx context.Context, mode, path, spec string) error {
	e.logger.Debug("mkvextract", zap.String("mode", mode), zap.String("spec", spec))

	cmd := exec.CommandContext(ctx, e.mkvextractBin, mode, path, spec)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mkvextract %s %s: %w, output: %s", mode, spec, err, string(output))
	}
	return nil
}
