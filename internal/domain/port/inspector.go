package port

import (
	"context"

	"github.com/drewbitt/vs-screen/internal/domain/entity"
)

// ContainerInspector queries container metadata: subtitle tracks and
// embedded attachments.
type ContainerInspector interface {
	// ResolveSubtitleTrack selects the number-th subtitle track
	// (1-indexed) and maps its codec. Out-of-range numbers and unknown
	// codec names are errors.
	ResolveSubtitleTrack(ctx context.Context, path string, number int) (*entity.SubtitleTrack, error)
	FontAttachments(ctx context.Context, path string) ([]entity.FontAttachment, error)
}
