// Package logger, zerolog tabanlı uygulama logger'ını kurar.
//
// Her katman kendi "component" alanını taşıyan bir alt logger kullanır:
//
//	log := logger.Component(root, "database")
//	log.Info().Str("file", name).Msg("migration applied")
//
// Böylece eski "[database] ..." prefix'leri yapısal bir alana dönüşür.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config, logger ayarları.
type Config struct {
	Level  string // trace, debug, info, warn, error (varsayılan: info)
	Format string // console | json
}

// New, verilen ayarlarla root logger oluşturur.
// out nil ise stderr kullanılır.
func New(cfg Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}

	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
	}

	return zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// Component, root logger'dan component alanlı bir alt logger türetir.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// ParseLevel, level string'ini zerolog seviyesine çevirir.
// Tanınmayan değerler info'ya düşer.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
