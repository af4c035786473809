// Package names holds filename utilities the rename host applies after the
// engine has decided on a name: making it safe for a filesystem, keeping it
// unique in a directory, and classifying or sizing files for display.
package names

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/renamebot/renamed/internal/parser"
)

// maxNameLength is the byte budget a sanitized filename must fit in.
const maxNameLength = 255

var invalidChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Sanitize makes name safe to hand to a filesystem: characters that are
// invalid on common platforms become underscores, surrounding spaces and
// dots are dropped, and overlong names are truncated to maxNameLength
// bytes with the extension preserved. An empty input sanitizes to "file".
func Sanitize(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, " .")

	if len(name) > maxNameLength {
		stem, ext := parser.SplitExtension(name)
		budget := maxNameLength - len(ext)
		if budget < 0 {
			budget = 0
		}
		for budget > 0 && budget < len(stem) && !utf8.RuneStart(stem[budget]) {
			budget--
		}
		if budget < len(stem) {
			stem = stem[:budget]
		}
		name = stem + ext
	}

	if name == "" {
		return "file"
	}
	return name
}

// Unique returns name unchanged when exists reports it free, otherwise the
// first "stem_N.ext" variant, counting from 1, that exists does not claim.
func Unique(name string, exists func(string) bool) string {
	if !exists(name) {
		return name
	}

	stem, ext := parser.SplitExtension(name)
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		if !exists(candidate) {
			return candidate
		}
	}
}

var fileTypes = map[string]string{
	".mp4": "video", ".avi": "video", ".mkv": "video", ".mov": "video",
	".wmv": "video", ".flv": "video", ".webm": "video", ".m4v": "video",
	".mpg": "video", ".mpeg": "video",

	".mp3": "audio", ".wav": "audio", ".flac": "audio", ".aac": "audio",
	".ogg": "audio", ".wma": "audio", ".m4a": "audio", ".opus": "audio",

	".jpg": "image", ".jpeg": "image", ".png": "image", ".gif": "image",
	".bmp": "image", ".tiff": "image", ".webp": "image", ".svg": "image",

	".pdf": "document", ".doc": "document", ".docx": "document",
	".txt": "document", ".rtf": "document", ".odt": "document",

	".zip": "archive", ".rar": "archive", ".7z": "archive",
	".tar": "archive", ".gz": "archive", ".bz2": "archive",
}

// FileType classifies a filename by extension into video, audio, image,
// document or archive; anything else is the generic "file".
func FileType(filename string) string {
	_, ext := parser.SplitExtension(filename)
	if kind, ok := fileTypes[strings.ToLower(ext)]; ok {
		return kind
	}
	return "file"
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders a byte count for humans with one decimal place, moving
// up units in steps of 1024. Zero is special-cased to "0 B".
func FormatSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return "0 B"
	}

	size := float64(sizeBytes)
	unit := 0
	for size >= 1024.0 && unit < len(sizeUnits)-1 {
		size /= 1024.0
		unit++
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[unit])
}
