// Package logutil provides visual log separators shared across the module.
package logutil

import "log/slog"

// separator is the 80-column rule emitted around sections.
const separator = "================================================================================"

// Section logs a visual section separator with an optional title.
func Section(logger *slog.Logger, title string) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info(separator)
	if title != "" {
		logger.Info(title)
	}
}

// SectionEnd logs a visual section end separator.
func SectionEnd(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info(separator)
}
