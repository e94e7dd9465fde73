// Package logging configures the structured operational logger of
// radarmock on top of log/slog.
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel("debug"),
//	    Format: logging.FormatJSON,
//	})
//	logger.Info("server started", "addr", ":8080")
//
// Components accept a *slog.Logger through an option and fall back to
// Nop when none is given. Component tags each record with the emitting
// subsystem so text output stays greppable.
package logging
