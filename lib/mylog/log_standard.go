package mylog

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hatua/futuretech/lib/mycontext"
)

func init() {
	if !structuredLogging() {
		New = newStandardLogger
	}
}

type standardLogger struct {
	componentName string
}

func newStandardLogger(componentName string) Logger {
	return standardLogger{
		componentName: componentName,
	}
}

func (l standardLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	log.Printf("%s - %s - %s - %s - %s", l.componentName, mycontext.TraceFromContext(ctx), traceLabel, string(severity), fmt.Sprintf(format, a...))
}

func structuredLogging() bool {
	return os.Getenv("GOOGLE_CLOUD_PROJECT") != "" || os.Getenv("LOG_FORMAT") == "json"
}
