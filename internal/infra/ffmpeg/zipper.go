package ffmpeg

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Archiver bundles run outputs into a flat zip (no directory prefix, like
// the screenshots themselves).
type Archiver struct{}

func NewArchiver() *Archiver {
	return &Archiver{}
}

func (a *Archiver) CreateZip(ctx context.Context, filePaths []string, outputPath string) error {
	if len(filePaths) == 0 {
		return fmt.Errorf("nothing to zip into %s", outputPath)
	}

	zipFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create zip file: %w", err)
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)
	defer zw.Close()

	paths := append([]string(nil), filePaths...)
	sort.Strings(paths)

	for _, p := range paths {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := a.addFile(zw, p); err != nil {
			return fmt.Errorf("add %s to zip: %w", p, err)
		}
	}

	return zw.Close()
}

func (a *Archiver) addFile(zw *zip.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(path)
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, file)
	return err
}
