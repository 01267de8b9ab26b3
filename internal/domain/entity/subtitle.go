package entity

import (
	"fmt"
	"path/filepath"
	"strings"
)

type SubtitleCodec string

const (
	CodecPGS    SubtitleCodec = "PGS"
	CodecASS    SubtitleCodec = "ASS"
	CodecSRT    SubtitleCodec = "SRT"
	CodecVobSub SubtitleCodec = "VOBSUB"
)

// codecByName maps mkvmerge identification codec names. VobSub tracks are
// addressed by the .idx path; mkvextract writes the paired .sub alongside.
var codecByName = map[string]SubtitleCodec{
	"HDMV PGS":        CodecPGS,
	"SubStationAlpha": CodecASS,
	"SubRip/SRT":      CodecSRT,
	"VobSub":          CodecVobSub,
}

var extensionByCodec = map[SubtitleCodec]string{
	CodecPGS:    ".pgs",
	CodecASS:    ".ass",
	CodecSRT:    ".srt",
	CodecVobSub: ".idx",
}

// CodecFromName resolves an mkvmerge codec name. Unknown names are an
// error; there is no fallback extraction path for them.
func CodecFromName(name string) (SubtitleCodec, error) {
	codec, ok := codecByName[name]
	if !ok {
		return "", fmt.Errorf("unknown subtitle codec %q", name)
	}
	return codec, nil
}

// Extension returns the file extension extracted tracks of this codec are
// written with.
func (c SubtitleCodec) Extension() string {
	return extensionByCodec[c]
}

// ImageBased reports whether the codec carries bitmap subtitles rather
// than styled text.
func (c SubtitleCodec) ImageBased() bool {
	return c == CodecPGS || c == CodecVobSub
}

// SubtitleTrack is a resolved subtitle stream inside a container.
type SubtitleTrack struct {
	ID       int64
	Codec    SubtitleCodec
	Language string
	Name     string
}

// FontAttachment is a file embedded in the container, candidate for glyph
// resolution during text subtitle burn-in.
type FontAttachment struct {
	ID       int64
	FileName string
	MimeType string
}

var fontMimeTypes = map[string]bool{
	"application/x-truetype-font": true,
	"application/x-font-ttf":      true,
	"application/x-font-otf":      true,
	"application/vnd.ms-opentype": true,
	"application/font-sfnt":       true,
	"font/ttf":                    true,
	"font/otf":                    true,
	"font/sfnt":                   true,
}

// MimeIsFont reports whether the declared MIME type is a known
// TrueType/OpenType font type.
func (a FontAttachment) MimeIsFont() bool {
	return fontMimeTypes[strings.ToLower(a.MimeType)]
}

// ExtIsFont reports whether the attachment filename carries a font
// extension.
func (a FontAttachment) ExtIsFont() bool {
	switch strings.ToLower(filepath.Ext(a.FileName)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// IsFont applies the lenient qualification policy: either signal alone is
// enough to extract the attachment.
func (a FontAttachment) IsFont() bool {
	return a.MimeIsFont() || a.ExtIsFont()
}
