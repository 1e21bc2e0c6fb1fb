// Package log provides the logging abstraction used by tabsum components.
//
// Components accept a Logger rather than a concrete logging library so they
// can be driven from the CLI with zerolog and from tests with NoopLogger or a
// recording implementation.
//
// # Usage
//
//	logger := log.NewZerologLogger(zerolog.New(os.Stderr))
//	logger.Warn("skipping malformed line", log.Int("line", 7))
//
// Tests can discard everything:
//
//	logger := log.NewNoopLogger()
package log
