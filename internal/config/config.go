// Package config loads analyzer settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	// SuggestLimit is the default number of ranked suggestions to print.
	SuggestLimit int

	// BoardStyle selects the text board glyph set: "unicode" or "ascii".
	BoardStyle string

	// MessagesDir optionally overrides the embedded message catalog.
	MessagesDir string

	// PNGSquare is the pixel edge of one board square in PNG export.
	PNGSquare int
}

func Load() *AppConfig {
	cfg := &AppConfig{
		SuggestLimit: 3,
		BoardStyle:   "unicode",
		PNGSquare:    72,
	}

	if v := strings.TrimSpace(os.Getenv("CHESSMAIL_SUGGEST_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SuggestLimit = n
		}
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("CHESSMAIL_BOARD_STYLE"))); v == "ascii" || v == "unicode" {
		cfg.BoardStyle = v
	}
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("CHESSMAIL_MESSAGES_DIR"))
	if v := strings.TrimSpace(os.Getenv("CHESSMAIL_PNG_SQUARE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 16 && n <= 256 {
			cfg.PNGSquare = n
		}
	}
	return cfg
}
