package usecases

import (
	"reinkjet/internal/shared/logger"
)

type mockNotifier struct {
	NotifyFunc func(templateKey string, fields map[string]string) bool
	gotKey     string
	gotFields  map[string]string
}

func (m *mockNotifier) Notify(templateKey string, fields map[string]string) bool {
	m.gotKey = templateKey
	m.gotFields = fields
	if m.NotifyFunc != nil {
		return m.NotifyFunc(templateKey, fields)
	}
	return true
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
