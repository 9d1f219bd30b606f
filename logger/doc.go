// Package logger provides structured logging for flagkit packages
// using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.Get("feature.factory")
//	log.Info("provider built", logger.Fields(logger.FieldFeature, "checkout-v2"))
package logger
