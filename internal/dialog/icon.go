package dialog

import (
	"os"
	"path/filepath"

	"github.com/wailsapp/mimetype"
)

// iconTypes are the image formats the native dialog can draw. Other image
// types (xcf, psd, djvu, ...) sniff as image/* but fail to load.
var iconTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/tiff",
	"image/bmp",
	"image/x-icns",
	"image/x-icon",
	"image/webp",
	"image/heic",
	"image/heif",
	"image/jp2",
}

// ResolveIcon returns the absolute form of path if it names a readable image
// file in a format the dialog can draw, or "" if it does not. Failures are
// never reported: a bad icon just means no icon.
//
// The result is absolute because the dialog process does not resolve
// relative paths against our working directory.
func ResolveIcon(path string) string {
	if path == "" {
		return ""
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() == 0 {
		return ""
	}
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	for _, t := range iconTypes {
		if mime.Is(t) {
			return path
		}
	}
	return ""
}
