package client

import "go.uber.org/zap"

// ZapLogger adapts a [go.uber.org/zap] logger to the [RequestLogger]
// interface. Supply it via [WithRequestLogger].
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps logger as a [RequestLogger].
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

func (l *ZapLogger) Errorf(format string, v ...any) { l.sugar.Errorf(format, v...) }
func (l *ZapLogger) Warnf(format string, v ...any)  { l.sugar.Warnf(format, v...) }
func (l *ZapLogger) Debugf(format string, v ...any) { l.sugar.Debugf(format, v...) }
