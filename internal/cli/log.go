// log.go - leveled logging via charmbracelet/log, threaded through
// context.Context exactly as the teacher's own CLI does.
package cli

import (
	"context"
	"io"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with HH:MM:SS.cc
// timestamps (hundredths of a second).
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the attached logger, falling back to the
// package default so commands never operate against a nil logger.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}

	return charmlog.Default()
}

// progress reports an operation's elapsed time on completion.
type progress struct {
	logger *charmlog.Logger
	start  time.Time
}

func newProgress(l *charmlog.Logger) *progress { return &progress{logger: l, start: time.Now()} }

func (p *progress) done(msg string) time.Duration {
	elapsed := time.Since(p.start)
	p.logger.Infof("%s (%s)", msg, elapsed.Round(time.Millisecond))

	return elapsed
}
