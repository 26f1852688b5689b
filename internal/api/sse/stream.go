package sse

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mcoot/castlewars/internal/api/apierr"
	"github.com/mcoot/castlewars/internal/api/response"
	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/services/game"
)

// Event names written to the stream
const (
	EventConnected = "connected"
	EventGame      = "game"
	EventTurn      = "turn"
	EventOutcome   = "outcome"
	EventError     = "error"
)

// ErrStreamingUnsupported is returned when the response writer cannot flush
var ErrStreamingUnsupported = errors.New("streaming unsupported")

// Turn is the payload of a turn event
type Turn struct {
	Turn    int               `json:"turn"`
	Players []response.Player `json:"players"`
}

// Stream writes a running match to an SSE response.
// It implements match.Renderer, and Event can be used as the game's event handler.
// After the first failed write every later send is dropped; Err reports that failure.
type Stream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	err     error
}

// NewStream prepares w for server-sent events and sends the connected event
func NewStream(w http.ResponseWriter) (*Stream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering
	w.WriteHeader(http.StatusOK)

	s := &Stream{w: w, flusher: flusher}
	s.Send(EventConnected, map[string]string{"status": "connected"})
	return s, s.err
}

// Send writes one event with v encoded as JSON data
func (s *Stream) Send(eventName string, v any) {
	if s.err != nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		s.err = err
		return
	}
	if _, err := s.w.Write(formatSSEMessage(eventName, string(data))); err != nil {
		s.err = err
		return
	}
	s.flusher.Flush()
}

// Err returns the first write error, if any
func (s *Stream) Err() error {
	return s.err
}

// Event forwards a game event
func (s *Stream) Event(e model.Event) {
	s.Send(EventGame, e)
}

func (s *Stream) RenderTurn(g *game.Game) error {
	players := make([]response.Player, 0, len(g.Players()))
	for _, p := range g.Players() {
		players = append(players, response.PlayerFromModel(p.Summary()))
	}
	s.Send(EventTurn, Turn{Turn: g.Turn(), Players: players})
	return s.err
}

func (s *Stream) RenderOutcome(_ *game.Game, summary *model.MatchSummary) error {
	s.Send(EventOutcome, response.MatchFromModel(summary))
	return s.err
}

// Error sends err as an error event in the API's error shape
func (s *Stream) Error(err error) {
	s.Send(EventError, apierr.ErrorResponse{Error: apierr.From(err)})
}

// formatSSEMessage formats an SSE message with event name and data
// Multi-line data is properly formatted with "data: " prefix on each line
func formatSSEMessage(eventName, data string) []byte {
	var b strings.Builder
	b.WriteString("event: " + eventName + "\n")
	for _, line := range splitLines(data) {
		b.WriteString("data: " + line + "\n")
	}
	b.WriteString("\n")
	return []byte(b.String())
}

// splitLines splits a string into lines, handling various line endings
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
