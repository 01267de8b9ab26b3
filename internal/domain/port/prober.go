package port

import (
	"context"

	"github.com/drewbitt/vs-screen/internal/domain/entity"
)

// ClipProber opens a video container and reports its dimensions and
// frame count.
type ClipProber interface {
	Probe(ctx context.Context, path string) (*entity.ClipInfo, error)
}
