package logging

import (
	"context"
	"testing"

	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

type recordingProvider struct {
	requested []string
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return &recordingLogger{}
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	provider := &recordingProvider{}
	logger := SitesLogger(provider)

	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected fields logger, got %T", logger)
	}
	if recorded.fields["module"] != "vowcraft.sites" {
		t.Fatalf("module field missing: %v", recorded.fields)
	}
	if len(provider.requested) != 1 || provider.requested[0] != "vowcraft.sites" {
		t.Fatalf("unexpected provider requests: %v", provider.requested)
	}
}

func TestModuleLoggerNilProvider(t *testing.T) {
	logger := ModuleLogger(nil, "")
	if logger == nil {
		t.Fatalf("expected no-op logger")
	}
	// Must not panic.
	logger.Info("ok")
	logger.WithContext(context.Background()).Debug("ok")
}

func TestWithFieldsPassthrough(t *testing.T) {
	base := NoOp()
	if got := WithFields(base, nil); got != base {
		t.Fatalf("empty fields should return the original logger")
	}
}
