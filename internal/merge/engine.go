package merge

import (
	"context"

	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/internal/logging"
	"github.com/vowcraft/vowcraft/internal/themes"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

// Engine produces complete, theme-correct content documents from partial or
// legacy input. It never fails on malformed input: anything it cannot place
// degrades to the theme's defaults field by field, because the output feeds
// an editor that must stay usable on bad stored data.
type Engine struct {
	registry themes.Registry
	logger   interfaces.Logger
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger injects the logger used for merge diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine constructs a merge engine bound to a theme registry.
func NewEngine(registry themes.Registry, opts ...Option) *Engine {
	if registry == nil {
		panic("merge: theme registry required")
	}
	e := &Engine{
		registry: registry,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Merge combines caller-supplied partial content with the theme's default
// document. A nil input returns the defaults verbatim (deep-cloned). Flat
// legacy input is adapted key by key; structured input is deep-merged with
// caller values preferred, arrays replaced wholesale, and nested groups
// merged field by field so partial groups never erase sibling defaults.
func (e *Engine) Merge(ctx context.Context, input map[string]any, themeID string) (content.Document, error) {
	defaults, err := e.registry.DefaultContent(ctx, themeID)
	if err != nil {
		return nil, err
	}
	if len(input) == 0 {
		return defaults, nil
	}

	if isStructured(input, defaults) {
		return mergeDocuments(input, defaults), nil
	}

	e.logger.Debug("merge.legacy_flat_input", "theme", themeID)
	return applyFlatInput(input, defaults), nil
}

// Apply layers additional partial input over an already-merged document
// with the same preference rules as Merge: the base stands in for the theme
// defaults. Used by the creation flows to stack a caller preset on top of a
// niche-merged document.
func (e *Engine) Apply(_ context.Context, base content.Document, input map[string]any, themeID string) content.Document {
	out := content.Clone(base)
	if len(input) == 0 {
		return out
	}
	if isStructured(input, base) {
		return mergeDocuments(input, out)
	}
	e.logger.Debug("merge.legacy_flat_input", "theme", themeID)
	return applyFlatInput(input, out)
}

// isStructured reports whether the input already follows the sectioned
// content document layout. The theme section is the canonical marker; any
// other known section key counts too.
func isStructured(input map[string]any, defaults content.Document) bool {
	if _, ok := input[content.SectionTheme]; ok {
		return true
	}
	for key := range input {
		if _, known := defaults[key]; known {
			return true
		}
	}
	return false
}

// mergeDocuments deep-merges input over defaults. The defaults drive the
// walk so that every default path resolves in the result; input-only keys
// (for example marketing copy riding along with a niche) are carried across
// untouched.
func mergeDocuments(input map[string]any, defaults map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(input))
	for key, defaultValue := range defaults {
		inputValue, ok := input[key]
		if !ok || inputValue == nil {
			out[key] = defaultValue
			continue
		}
		out[key] = mergeValue(inputValue, defaultValue)
	}
	for key, inputValue := range input {
		if _, seen := out[key]; seen {
			continue
		}
		out[key] = cloneValue(inputValue)
	}
	return out
}

func mergeValue(inputValue, defaultValue any) any {
	switch typedDefault := defaultValue.(type) {
	case map[string]any:
		if typedInput, ok := inputValue.(map[string]any); ok {
			return mergeDocuments(typedInput, typedDefault)
		}
		// Malformed branch: fall back to the default wholesale.
		return typedDefault
	case []any:
		// Arrays are replaced, not merged element-wise. A map standing in
		// for a legacy keyed shape is kept as-is; the mutation router
		// normalizes it at read time.
		switch typedInput := inputValue.(type) {
		case []any:
			return content.DeepCloneSlice(typedInput)
		case map[string]any:
			return content.DeepCloneMap(typedInput)
		default:
			return typedDefault
		}
	default:
		return inputValue
	}
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return content.DeepCloneMap(typed)
	case []any:
		return content.DeepCloneSlice(typed)
	default:
		return typed
	}
}
