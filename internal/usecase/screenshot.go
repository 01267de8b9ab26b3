package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/drewbitt/vs-screen/internal/domain/entity"
	"github.com/drewbitt/vs-screen/internal/domain/port"
	"github.com/drewbitt/vs-screen/internal/sampler"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScreenshotUseCase runs one screenshot extraction end to end: probe,
// frame selection, subtitle/font extraction, rendering, then the optional
// zip/upload/cleanup tail. Every failure aborts the run.
type ScreenshotUseCase struct {
	prober    port.ClipProber
	inspector port.ContainerInspector
	extractor port.TrackExtractor
	renderer  port.FrameRenderer
	zipper    port.Zipper
	storage   port.ScreenshotStorage // nil unless upload is configured
	logger    *zap.Logger
	rng       *rand.Rand
}

func NewScreenshotUseCase(
	prober port.ClipProber,
	inspector port.ContainerInspector,
	extractor port.TrackExtractor,
	renderer port.FrameRenderer,
	zipper port.Zipper,
	storage port.ScreenshotStorage,
	logger *zap.Logger,
	rng *rand.Rand,
) *ScreenshotUseCase {
	return &ScreenshotUseCase{
		prober:    prober,
		inspector: inspector,
		extractor: extractor,
		renderer:  renderer,
		zipper:    zipper,
		storage:   storage,
		logger:    logger,
		rng:       rng,
	}
}

// extractedExts are the burn-in intermediates removed from the output
// directory once frames are written.
var extractedExts = map[string]bool{
	".ass": true,
	".srt": true,
	".pgs": true,
	".idx": true,
	".sub": true,
	".ttf": true,
	".otf": true,
}

func (uc *ScreenshotUseCase) Execute(ctx context.Context, req *entity.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.Upload && uc.storage == nil {
		return fmt.Errorf("upload requested but no storage endpoint configured")
	}

	log := uc.logger.With(zap.String("clip", req.ClipPath))

	// Everything that can fail on bad input is resolved before the first
	// write to disk.
	var track *entity.SubtitleTrack
	if req.SubtitleTrack > 0 {
		t, err := uc.inspector.ResolveSubtitleTrack(ctx, req.ClipPath, req.SubtitleTrack)
		if err != nil {
			return err
		}
		track = t
		log.Info("resolved subtitle track",
			zap.Int64("track_id", track.ID),
			zap.String("codec", string(track.Codec)),
			zap.String("language", track.Language),
		)
	}

	var clip *entity.ClipInfo
	var frames []int
	if !req.ExtractOnly {
		c, err := uc.prober.Probe(ctx, req.ClipPath)
		if err != nil {
			return err
		}
		clip = c
		log.Info("opened clip",
			zap.Int("width", clip.Width),
			zap.Int("height", clip.Height),
			zap.Int("frame_count", clip.FrameCount),
		)

		frames, err = uc.resolveFrames(req, clip)
		if err != nil {
			return err
		}
		log.Info("requesting frames", zap.Ints("frames", frames))
	}

	outDir := filepath.Join(req.SavePath, req.OutputDirName())
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var renderOpts *port.RenderOptions
	if track != nil {
		subPath := filepath.Join(outDir, req.OutputDirName()+track.Codec.Extension())
		if err := uc.extractor.ExtractTrack(ctx, req.ClipPath, track.ID, subPath); err != nil {
			return err
		}
		log.Info("extracted subtitle track", zap.String("path", subPath))
		renderOpts = &port.RenderOptions{
			SubtitlePath: subPath,
			Codec:        track.Codec,
			FontsDir:     outDir,
		}
	}

	if track != nil || req.ExtractOnly {
		if err := uc.extractFonts(ctx, req.ClipPath, outDir, log); err != nil {
			return err
		}
	}

	if !req.ExtractOnly {
		start := time.Now()
		for _, frame := range frames {
			outPath := filepath.Join(outDir, strconv.Itoa(frame)+".png")
			log.Info("writing frame", zap.String("path", outPath))
			if err := uc.renderer.WriteFrame(ctx, clip, frame, outPath, renderOpts); err != nil {
				return err
			}
		}
		log.Info("frames written",
			zap.Int("count", len(frames)),
			zap.Duration("took", time.Since(start)),
		)

		if track != nil {
			if err := removeExtracted(outDir); err != nil {
				return err
			}
		}
	}

	if req.Zip {
		if err := uc.zipOutput(ctx, outDir, log); err != nil {
			return err
		}
	}
	if req.Upload {
		if err := uc.upload(ctx, req, outDir, log); err != nil {
			return err
		}
	}
	if req.Delete {
		if err := os.RemoveAll(outDir); err != nil {
			return fmt.Errorf("delete output dir: %w", err)
		}
		log.Info("deleted output dir", zap.String("path", outDir))
	}
	if req.RemoveIndex {
		if err := removeIndexFiles(req.ClipPath, log); err != nil {
			return err
		}
	}

	return nil
}

// resolveFrames validates an explicit frame list or samples one.
func (uc *ScreenshotUseCase) resolveFrames(req *entity.Request, clip *entity.ClipInfo) ([]int, error) {
	if len(req.Frames) > 0 {
		for _, f := range req.Frames {
			if f >= clip.FrameCount {
				return nil, fmt.Errorf("frame %d out of range, clip has %d frames", f, clip.FrameCount)
			}
		}
		return req.Frames, nil
	}
	return sampler.Pick(uc.rng, clip.FrameCount, req.NumFrames)
}

func (uc *ScreenshotUseCase) extractFonts(ctx context.Context, clipPath, outDir string, log *zap.Logger) error {
	fonts, err := uc.inspector.FontAttachments(ctx, clipPath)
	if err != nil {
		return err
	}

	for _, font := range fonts {
		dest := filepath.Join(outDir, font.FileName)
		if err := uc.extractor.ExtractAttachment(ctx, clipPath, font.ID, dest); err != nil {
			return err
		}
	}
	if len(fonts) > 0 {
		log.Info("extracted fonts", zap.Int("count", len(fonts)))
	}
	return nil
}

func (uc *ScreenshotUseCase) zipOutput(ctx context.Context, outDir string, log *zap.Logger) error {
	files, err := dirFiles(outDir)
	if err != nil {
		return err
	}

	zipPath := outDir + ".zip"
	if err := uc.zipper.CreateZip(ctx, files, zipPath); err != nil {
		return err
	}
	log.Info("created zip", zap.String("path", zipPath), zap.Int("files", len(files)))
	return nil
}

func (uc *ScreenshotUseCase) upload(ctx context.Context, req *entity.Request, outDir string, log *zap.Logger) error {
	if err := uc.storage.EnsureBucket(ctx); err != nil {
		return err
	}

	var files []string
	if req.Zip {
		files = []string{outDir + ".zip"}
	} else {
		var err error
		files, err = dirFiles(outDir)
		if err != nil {
			return err
		}
	}

	// Runs of the same clip must not overwrite each other's objects.
	prefix := req.OutputDirName() + "-" + uuid.New().String()[:8]
	for _, f := range files {
		key := path.Join(prefix, filepath.Base(f))
		if err := uc.storage.UploadFile(ctx, key, f); err != nil {
			return err
		}
	}
	log.Info("uploaded results", zap.String("prefix", prefix), zap.Int("files", len(files)))
	return nil
}

func dirFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read output dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

func removeExtracted(outDir string) error {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return fmt.Errorf("read output dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if extractedExts[strings.ToLower(filepath.Ext(e.Name()))] {
			if err := os.Remove(filepath.Join(outDir, e.Name())); err != nil {
				return fmt.Errorf("remove %s: %w", e.Name(), err)
			}
		}
	}
	return nil
}

// removeIndexFiles deletes the decoder index sidecars some source filters
// leave next to the clip.
func removeIndexFiles(clipPath string, log *zap.Logger) error {
	for _, suffix := range []string{".lwi", ".ffindex"} {
		p := clipPath + suffix
		err := os.Remove(p)
		if err == nil {
			log.Info("removed index file", zap.String("path", p))
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("remove index file %s: %w", p, err)
		}
	}
	return nil
}
