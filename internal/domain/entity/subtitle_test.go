package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecFromName(t *testing.T) {
	cases := []struct {
		name  string
		codec SubtitleCodec
		ext   string
	}{
		{"HDMV PGS", CodecPGS, ".pgs"},
		{"SubStationAlpha", CodecASS, ".ass"},
		{"SubRip/SRT", CodecSRT, ".srt"},
		{"VobSub", CodecVobSub, ".idx"},
	}

	for _, tc := range cases {
		codec, err := CodecFromName(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.codec, codec)
		assert.Equal(t, tc.ext, codec.Extension())
	}
}

func TestCodecFromNameUnknown(t *testing.T) {
	for _, name := range []string{"", "WebVTT", "hdmv pgs", "DVB subtitles"} {
		_, err := CodecFromName(name)
		require.Error(t, err, "name %q", name)
	}
}

func TestCodecImageBased(t *testing.T) {
	assert.True(t, CodecPGS.ImageBased())
	assert.True(t, CodecVobSub.ImageBased())
	assert.False(t, CodecASS.ImageBased())
	assert.False(t, CodecSRT.ImageBased())
}

func TestFontAttachmentQualification(t *testing.T) {
	cases := []struct {
		name   string
		att    FontAttachment
		isFont bool
	}{
		{"mime and ext", FontAttachment{FileName: "a.ttf", MimeType: "font/ttf"}, true},
		{"mime only", FontAttachment{FileName: "a.bin", MimeType: "application/x-truetype-font"}, true},
		{"ext only", FontAttachment{FileName: "a.otf", MimeType: "application/octet-stream"}, true},
		{"uppercase ext", FontAttachment{FileName: "A.TTF", MimeType: ""}, true},
		{"neither", FontAttachment{FileName: "cover.jpg", MimeType: "image/jpeg"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isFont, tc.att.IsFont())
			// Lenient OR policy: evaluation order of the two checks must
			// not matter.
			assert.Equal(t, tc.att.MimeIsFont() || tc.att.ExtIsFont(), tc.att.ExtIsFont() || tc.att.MimeIsFont())
		})
	}
}
