// Package logger builds *slog.Logger instances for csvcheck.
//
// New creates a logger configured by Option functions: output format (text or
// json), minimum level, static attributes and ContextExtractor callbacks that
// pull attributes out of the context passed to the *Context logging methods.
// The validation run ID stored with WithRunID is always extracted, so every
// record logged during a run carries a run_id attribute.
//
// Helper constructors in attr.go (RunID, Row, Column, Source, Error, ...) keep
// attribute keys consistent across packages.
//
// # Usage
//
//	log := logger.New(logger.WithCLI("csvcheck", verbose))
//	ctx := logger.WithRunID(context.Background(), runID)
//	log.InfoContext(ctx, "validation finished",
//	    logger.Valid(report.Valid),
//	    logger.Issues(len(report.Issues)),
//	)
//
// Libraries default to Discard when no logger is supplied.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
