package logging

import (
	"io"
	"time"

	"github.com/jrsteele09/go-auth-param-map/internal/config"
	apperrors "github.com/jrsteele09/go-auth-param-map/internal/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a logger writing to w with the level and format from cfg.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		return zerolog.Nop(), apperrors.Wrapf(apperrors.ErrLoggingConfig, "log level %q", cfg.GetLogLevel())
	}

	if cfg.GetLogFormat() == config.LogFormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Init replaces the global zerolog logger with one built by New.
func Init(cfg config.LogConfig, w io.Writer) error {
	logger, err := New(cfg, w)
	if err != nil {
		return err
	}
	log.Logger = logger
	return nil
}
