package port

import "context"

// ScreenshotStorage uploads run artifacts to remote object storage.
type ScreenshotStorage interface {
	EnsureBucket(ctx context.Context) error
	UploadFile(ctx context.Context, objectKey string, filePath string) error
}
