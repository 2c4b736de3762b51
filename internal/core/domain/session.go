package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxHistoryItems bounds Session.History.
const MaxHistoryItems = 5

// HistoryEntry is one checked URL as shown in the history log.
type HistoryEntry struct {
	URL   string `json:"url"`
	Label Label  `json:"result"`
}

// Flash is a one-shot result carried from a form POST to the next GET.
type Flash struct {
	URL      string   `json:"url,omitempty"`
	Label    Label    `json:"label"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings"`
}

// Session is the per-browser state of the web flow.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	Flash     *Flash         `json:"flash,omitempty"`
	History   []HistoryEntry `json:"history"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		History:   []HistoryEntry{},
		UpdatedAt: time.Now(),
	}
}

// Push prepends an entry and trims the log to MaxHistoryItems.
func (s *Session) Push(entry HistoryEntry) {
	history := make([]HistoryEntry, 0, MaxHistoryItems)
	history = append(history, entry)
	for _, e := range s.History {
		if len(history) == MaxHistoryItems {
			break
		}
		history = append(history, e)
	}
	s.History = history
}

// TakeFlash returns the pending flash and clears it.
func (s *Session) TakeFlash() *Flash {
	f := s.Flash
	s.Flash = nil
	return f
}

// FlashFromVerdict converts a verdict into the flash stored for the next page view.
func FlashFromVerdict(url string, v Verdict) *Flash {
	warnings := v.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &Flash{URL: url, Label: v.Label, Message: v.Message, Warnings: warnings}
}
