package commands_test

import (
	"errors"
	"testing"

	"github.com/vowcraft/vowcraft/commands"
	"github.com/vowcraft/vowcraft/internal/di"
	"github.com/vowcraft/vowcraft/internal/runtimeconfig"
)

type recordingRegistry struct {
	handlers []any
	err      error
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	if r.err != nil {
		return r.err
	}
	r.handlers = append(r.handlers, handler)
	return nil
}

func TestRegisterContainerCommands(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	registry := &recordingRegistry{}
	result, err := commands.RegisterContainerCommands(container, commands.RegistrationOptions{
		Registry: registry,
	})
	if err != nil {
		t.Fatalf("RegisterContainerCommands: %v", err)
	}
	if len(result.Handlers) != 3 {
		t.Fatalf("expected 3 handlers got %d", len(result.Handlers))
	}
	if len(registry.handlers) != 3 {
		t.Fatalf("expected registry to receive 3 handlers, got %d", len(registry.handlers))
	}
}

func TestRegisterContainerCommandsNilContainer(t *testing.T) {
	result, err := commands.RegisterContainerCommands(nil, commands.RegistrationOptions{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(result.Handlers) != 0 {
		t.Fatalf("expected no handlers, got %d", len(result.Handlers))
	}
}

func TestRegisterContainerCommandsJoinsErrors(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	boom := errors.New("registry full")
	_, err = commands.RegisterContainerCommands(container, commands.RegistrationOptions{
		Registry: &recordingRegistry{err: boom},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined registry error, got %v", err)
	}
}
