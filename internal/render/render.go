package render

import (
	"errors"
	"io"

	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/services/match"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by New for an unsupported output format
var ErrUnknownFormat = errors.New("unknown output format: must be 'text' or 'json'")

// Renderer shows running matches and recorded match history
type Renderer interface {
	match.Renderer
	RenderMatch(summary *model.MatchSummary) error
	RenderMatches(matches []*model.MatchSummary) error
	RenderMessage(msg string) error
	RenderError(err error) error
}

// New creates a renderer for the given format writing to w
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case "", FormatText:
		return NewText(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, ErrUnknownFormat
	}
}
