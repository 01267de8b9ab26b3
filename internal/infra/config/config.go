package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-backed defaults. CLI flags override the
// corresponding fields after parsing.
type Config struct {
	SavePath string `env:"VS_SCREEN_SAVE_PATH" envDefault:""`
	LogLevel string `env:"VS_SCREEN_LOG_LEVEL" envDefault:"info"`

	FFmpegBin     string `env:"VS_SCREEN_FFMPEG_BIN"     envDefault:"ffmpeg"`
	FFprobeBin    string `env:"VS_SCREEN_FFPROBE_BIN"    envDefault:"ffprobe"`
	MkvmergeBin   string `env:"VS_SCREEN_MKVMERGE_BIN"   envDefault:"mkvmerge"`
	MkvextractBin string `env:"VS_SCREEN_MKVEXTRACT_BIN" envDefault:"mkvextract"`

	S3Endpoint  string `env:"VS_SCREEN_S3_ENDPOINT"   envDefault:""`
	S3AccessKey string `env:"VS_SCREEN_S3_ACCESS_KEY" envDefault:""`
	S3SecretKey string `env:"VS_SCREEN_S3_SECRET_KEY" envDefault:""`
	S3UseSSL    bool   `env:"VS_SCREEN_S3_USE_SSL"    envDefault:"true"`
	S3Bucket    string `env:"VS_SCREEN_S3_BUCKET"     envDefault:"screens"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
