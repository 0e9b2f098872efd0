// Package logger provides structured logging attribute helpers built on
// log/slog, covering the attributes the stream components emit: errors,
// timings, channel and origin identifiers, and subscriber counts.
//
// All helpers return an empty slog.Attr for nil or empty input, so call
// sites never need explicit guards:
//
//	log.Info("bridge stopped",
//		logger.Component("redis_bridge"),
//		logger.Channel(channel),
//		logger.Error(err), // omitted entirely when err is nil
//	)
//
// Empty attributes are dropped by slog handlers, keeping log output free of
// placeholder keys.
package logger
