package expr

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("kei.expr")

// Reporter receives diagnostic messages from the scanner and parser.
// Diagnostics never abort processing; the pipeline reports and keeps
// going, producing nil trees and zero values for bad input.
type Reporter interface {
	Reportf(format string, args ...any)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(format string, args ...any)

func (f ReporterFunc) Reportf(format string, args ...any) {
	f(format, args...)
}

// LogReporter reports diagnostics through the package logger.
func LogReporter() Reporter {
	return ReporterFunc(func(format string, args ...any) {
		log.Errorf(format, args...)
	})
}
