package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorMatrixHeightThreshold(t *testing.T) {
	assert.Equal(t, "bt601", (&ClipInfo{Height: 480}).ColorMatrix())
	assert.Equal(t, "bt601", (&ClipInfo{Height: 576}).ColorMatrix())
	assert.Equal(t, "bt709", (&ClipInfo{Height: 720}).ColorMatrix())
	assert.Equal(t, "bt709", (&ClipInfo{Height: 1080}).ColorMatrix())
}

func TestIsTransportStream(t *testing.T) {
	assert.True(t, (&ClipInfo{Path: "show.ts"}).IsTransportStream())
	assert.True(t, (&ClipInfo{Path: "/bd/00001.m2ts"}).IsTransportStream())
	assert.True(t, (&ClipInfo{Path: "SHOW.M2TS"}).IsTransportStream())
	assert.False(t, (&ClipInfo{Path: "movie.mkv"}).IsTransportStream())
	assert.False(t, (&ClipInfo{Path: "movie.mp4"}).IsTransportStream())
}

func TestRequestValidate(t *testing.T) {
	req := &Request{ClipPath: "movie.mkv", NumFrames: 10}
	require.NoError(t, req.Validate())

	assert.Error(t, (&Request{NumFrames: 10}).Validate())
	assert.Error(t, (&Request{ClipPath: "a.mkv", NumFrames: 0}).Validate())
	assert.Error(t, (&Request{ClipPath: "a.mkv", Frames: []int{100, -1}}).Validate())
	assert.Error(t, (&Request{ClipPath: "a.mkv", NumFrames: 5, SubtitleTrack: -2}).Validate())

	// Explicit frames stand in for num-frames.
	assert.NoError(t, (&Request{ClipPath: "a.mkv", Frames: []int{0, 100}}).Validate())
}

func TestRequestOutputDirName(t *testing.T) {
	assert.Equal(t, "movie", (&Request{ClipPath: "/media/movie.mkv"}).OutputDirName())
	assert.Equal(t, "Show.S01E02", (&Request{ClipPath: "Show.S01E02.m2ts"}).OutputDirName())
	assert.Equal(t, "noext", (&Request{ClipPath: "noext"}).OutputDirName())
}
