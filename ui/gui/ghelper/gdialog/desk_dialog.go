package gdialog

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
)

var ErrCancelled = dialog.ErrCancelled

// SavePNG asks for a destination path and appends ".png" when missing.
func SavePNG(title string) (string, error) {
	path, err := dialog.File().Filter("PNG image", "png").Title(title).Save()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", ErrCancelled
		}
		return "", err
	}
	return WithPNGExt(path), nil
}

func WithPNGExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return path
	}
	return path + ".png"
}
