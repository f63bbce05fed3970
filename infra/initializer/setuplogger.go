package initializer

import (
	"io"
	"log/slog"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var levelColors = map[log.Level]struct {
	icon  string
	color lipgloss.AdaptiveColor
}{
	log.DebugLevel: {"🐛", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}},
	log.InfoLevel:  {"ℹ️", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	log.WarnLevel:  {"⚠️", lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}},
	log.ErrorLevel: {"❌", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
}

// Keys that get a dedicated color in text output.
var highlightedKeys = map[string]log.Level{
	"error":   log.ErrorLevel,
	"warn":    log.WarnLevel,
	"orderID": log.InfoLevel,
	"userID":  log.InfoLevel,
	"prefix":  log.DebugLevel,
	"caller":  log.DebugLevel,
	"time":    log.DebugLevel,
}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	for level, lc := range levelColors {
		s.Levels[level] = lipgloss.NewStyle().
			SetString(lc.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(lc.color)
	}
	for key, level := range highlightedKeys {
		s.Keys[key] = lipgloss.NewStyle().Foreground(levelColors[level].color)
		s.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return s
}

// SetupLogger builds the process logger on top of charmbracelet/log and
// installs it as the slog default.
func SetupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{}
	}
	formatter, ok := formatters[cfg.Format]
	if !ok {
		formatter = log.TextFormatter
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles())

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}
