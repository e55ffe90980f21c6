package editor

import (
	"errors"

	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/internal/logging"
	"github.com/vowcraft/vowcraft/internal/themes"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

var (
	ErrDefinitionRequired = errors.New("editor: theme definition required")
	ErrSessionClosed      = errors.New("editor: session closed")
)

// Change addresses a single field edit. Index targets an array element
// (-1 for none); Group targets a nested group ("" for none, LogisticsRoot
// for the logistics section's own fields).
type Change struct {
	Section string
	Group   string
	Index   int
	Field   string
	Value   any
}

// Session owns the single writable copy of a site's content document for
// the duration of one editing session. It is created per session, never
// shared, and discarded after the caller saves or cancels; persistence is
// the lifecycle operation's job.
type Session struct {
	definition *themes.Definition
	doc        content.Document
	logger     interfaces.Logger
	closed     bool
}

// SessionOption configures a session.
type SessionOption func(*Session)

// WithSessionLogger injects the session logger.
func WithSessionLogger(logger interfaces.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession opens an editing session over a deep copy of doc.
func NewSession(definition *themes.Definition, doc content.Document, opts ...SessionOption) (*Session, error) {
	if definition == nil {
		return nil, ErrDefinitionRequired
	}
	s := &Session{
		definition: definition,
		doc:        content.Clone(doc),
		logger:     logging.NoOp(),
	}
	if s.doc == nil {
		s.doc = content.Document{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Render returns the current form model.
func (s *Session) Render() []SectionView {
	return Render(s.definition.Schema, s.doc)
}

// Document returns the working document. The returned map is the session's
// own copy; callers persist it wholesale via the save operation.
func (s *Session) Document() content.Document {
	return s.doc
}

// Apply routes a single field change through the mutation router and
// replaces the working document with the result.
func (s *Session) Apply(change Change) error {
	if s.closed {
		return ErrSessionClosed
	}

	switch change.Section {
	case content.SectionHero:
		s.doc = UpdateHero(s.doc, change.Field, change.Value)
	case content.SectionRSVP:
		s.doc = UpdateRSVP(s.doc, change.Field, change.Value)
	case content.SectionStory:
		s.doc = UpdateStory(s.doc, change.Index, change.Field, change.Value)
	case content.SectionLogistics:
		group := change.Group
		if group == "" {
			group = LogisticsRoot
		}
		s.doc = UpdateLogistics(s.doc, group, change.Field, change.Value)
	case content.SectionGallery:
		s.doc = UpdateField(s.doc, content.SectionGallery, change.Field, change.Value)
	default:
		field := change.Field
		if change.Group != "" {
			field = change.Group + "." + change.Field
		}
		s.doc = UpdateField(s.doc, change.Section, field, change.Value)
	}

	s.logger.Debug("editor.change_applied",
		"section", change.Section,
		"field", change.Field,
	)
	return nil
}

// AppendImage adds a gallery image.
func (s *Session) AppendImage(url string) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.doc = AppendGalleryImage(s.doc, url)
	return nil
}

// ReplaceImage swaps the gallery image at index.
func (s *Session) ReplaceImage(index int, url string) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.doc = ReplaceGalleryImage(s.doc, index, url)
	return nil
}

// RemoveImage deletes the gallery image at index.
func (s *Session) RemoveImage(index int) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.doc = RemoveGalleryImage(s.doc, index)
	return nil
}

// Close discards the session. Further mutations fail with ErrSessionClosed.
func (s *Session) Close() {
	s.closed = true
}
