// Package logger builds configured *slog.Logger instances through functional
// options.
//
// Defaults are production-safe: JSON output at info level to stdout. The
// development preset switches to human-readable text at debug level.
//
//	log := logger.New(logger.WithProduction("imgkit"))
//	log.Info("detector ready")
//
// Components in this module accept a *slog.Logger rather than constructing
// one, so applications stay in control of output destination and level.
package logger
