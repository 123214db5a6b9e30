// Package app provides the application services of the site. They
// orchestrate the repositories, object storage and mail through port
// interfaces and carry no transport concerns.
package app

import "log/slog"

func discardIfNil(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
