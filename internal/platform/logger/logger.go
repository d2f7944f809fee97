package logger

import (
	"log/slog"
	"os"
)

// New returns the structured logger handlers and middleware consume.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
