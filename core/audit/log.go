package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sink stores audit lines. core/sheets.Store satisfies it.
type Sink interface {
	AppendRow(ctx context.Context, sheet string, values []any) error
	ClearSheet(ctx context.Context, sheet string) error
}

// Log mirrors run messages into the spreadsheet's log tab.
// A sink failure never fails the run; it is only logged.
type Log struct {
	logger *zap.Logger
	sink   Sink
	sheet  string
	now    func() time.Time
}

// New creates a Log. A nil sink writes to the logger only.
func New(logger *zap.Logger, sink Sink, sheet string) *Log {
	return &Log{logger: logger, sink: sink, sheet: sheet, now: time.Now}
}

// Log records msg with a timestamp.
func (l *Log) Log(ctx context.Context, msg string, fields ...zap.Field) {
	l.logger.Info(msg, fields...)
	if l.sink == nil {
		return
	}
	row := []any{l.now().UTC().Format(time.RFC3339), msg}
	if err := l.sink.AppendRow(ctx, l.sheet, row); err != nil {
		l.logger.Warn("Failed to append audit row", zap.String("sheet", l.sheet), zap.Error(err))
	}
}

// Clear empties the log tab at the start of a run.
func (l *Log) Clear(ctx context.Context) {
	if l.sink == nil {
		return
	}
	if err := l.sink.ClearSheet(ctx, l.sheet); err != nil {
		l.logger.Warn("Failed to clear audit sheet", zap.String("sheet", l.sheet), zap.Error(err))
	}
}
