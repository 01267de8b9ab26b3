package port

import "context"

// TrackExtractor pulls tracks and attachments out of a container file.
// Success is solely a zero exit from the extraction tool.
type TrackExtractor interface {
	ExtractTrack(ctx context.Context, path string, trackID int64, destPath string) error
	ExtractAttachment(ctx context.Context, path string, attachmentID int64, destPath string) error
}
