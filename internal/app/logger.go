package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger returns a logger at the configured level. It writes to the
// configured log file if there is one, else to fallback. Close the returned
// io.Closer when done.
func NewLogger(c *Config, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "minesweeper",
		ReportTimestamp: c.LogFile != "",
	})
	return logger, closer, nil
}
