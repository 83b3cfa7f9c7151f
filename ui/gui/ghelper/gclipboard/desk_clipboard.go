package gclipboard

import (
	"strings"

	"github.com/atotto/clipboard"
)

func ReadAll() (string, error) {
	s, err := clipboard.ReadAll()
	return strings.TrimSpace(s), err
}

func WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
