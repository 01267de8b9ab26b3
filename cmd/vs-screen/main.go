package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/drewbitt/vs-screen/internal/domain/entity"
	"github.com/drewbitt/vs-screen/internal/domain/port"
	"github.com/drewbitt/vs-screen/internal/infra/config"
	"github.com/drewbitt/vs-screen/internal/infra/ffmpeg"
	"github.com/drewbitt/vs-screen/internal/infra/minio"
	"github.com/drewbitt/vs-screen/internal/infra/mkvtoolnix"
	"github.com/drewbitt/vs-screen/internal/usecase"
	"github.com/drewbitt/vs-screen/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	var (
		framesArg   string
		numFrames   int
		subTrack    int
		extractOnly bool
		zipOut      bool
		deleteOut   bool
		removeIndex bool
		savePath    string
		upload      bool
		quiet       bool
	)

	flag.StringVar(&framesArg, "frames", "", "comma-separated frame numbers, skips sampling")
	flag.StringVar(&framesArg, "f", "", "shorthand for -frames")
	flag.IntVar(&numFrames, "num-frames", 10, "number of screenshots to take")
	flag.IntVar(&numFrames, "n", 10, "shorthand for -num-frames")
	flag.IntVar(&subTrack, "subtitle-track", 0, "subtitle track to extract and burn in, 1-indexed")
	flag.IntVar(&subTrack, "s", 0, "shorthand for -subtitle-track")
	flag.BoolVar(&extractOnly, "extract-only", false, "extract subtitles/fonts, write no frames")
	flag.BoolVar(&zipOut, "zip", false, "zip the output directory")
	flag.BoolVar(&deleteOut, "delete", false, "delete the output directory when done")
	flag.BoolVar(&removeIndex, "remove-index", false, "delete decoder index files (.lwi, .ffindex)")
	flag.StringVar(&savePath, "save-path", "", "parent directory for the output directory")
	flag.BoolVar(&upload, "upload", false, "upload results to the configured bucket")
	flag.BoolVar(&quiet, "quiet", false, "errors only")
	flag.BoolVar(&quiet, "q", false, "shorthand for -quiet")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	clipPath := flag.Arg(0)

	cfg, err := config.Load()
	fatalOnErr(err, "load config")

	level := cfg.LogLevel
	if quiet {
		level = "error"
	}
	log, err := logger.New(level)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	if savePath == "" {
		savePath = cfg.SavePath
	}

	frames, err := parseFrames(framesArg)
	fatalOnErr(err, "parse frames")

	// Missing tools fail the run up front, before any work.
	_, err = exec.LookPath(cfg.FFprobeBin)
	fatalOnErr(err, "ffprobe not found")
	_, err = exec.LookPath(cfg.FFmpegBin)
	fatalOnErr(err, "ffmpeg not found")
	if subTrack > 0 || extractOnly {
		_, err = exec.LookPath(cfg.MkvmergeBin)
		fatalOnErr(err, "mkvmerge not found")
		_, err = exec.LookPath(cfg.MkvextractBin)
		fatalOnErr(err, "mkvextract not found")
	}

	var storage port.ScreenshotStorage
	if upload {
		if cfg.S3Endpoint == "" {
			fatalOnErr(fmt.Errorf("VS_SCREEN_S3_ENDPOINT is not set"), "upload requested")
		}
		s, err := minio.NewStorage(minio.StorageConfig{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			Bucket:    cfg.S3Bucket,
		})
		fatalOnErr(err, "create storage")
		storage = s
	}

	uc := usecase.NewScreenshotUseCase(
		ffmpeg.NewProber(cfg.FFprobeBin, log),
		mkvtoolnix.NewInspector(cfg.MkvmergeBin, log),
		mkvtoolnix.NewExtractor(cfg.MkvextractBin, log),
		ffmpeg.NewRenderer(log),
		ffmpeg.NewArchiver(),
		storage,
		log,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	req := &entity.Request{
		ClipPath:      clipPath,
		Frames:        frames,
		NumFrames:     numFrames,
		SubtitleTrack: subTrack,
		ExtractOnly:   extractOnly,
		Zip:           zipOut,
		Delete:        deleteOut,
		RemoveIndex:   removeIndex,
		SavePath:      savePath,
		Upload:        upload,
	}

	if err := uc.Execute(ctx, req); err != nil {
		log.Error("run failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func parseFrames(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	frames := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad frame number %q", p)
		}
		frames = append(frames, n)
	}
	return frames, nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: vs-screen [flags] <clip>\n\nTake screenshots of a video file.\n\n")
	flag.PrintDefaults()
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
}
