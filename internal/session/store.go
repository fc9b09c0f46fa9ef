package session

import (
	"context"
	"strings"
	"time"
)

// WineryContext holds the accumulated facts about one operator's winery,
// captured by the website extractor or by sample-data selection. Writes are
// full overwrites; fields are never merged.
type WineryContext struct {
	WineryName     string   `json:"wineryName,omitempty"`
	Location       string   `json:"location,omitempty"`
	YearFounded    string   `json:"yearFounded,omitempty"`
	Description    string   `json:"description,omitempty"`
	Wines          []string `json:"wines,omitempty"`
	GrapeVarieties []string `json:"grapeVarieties,omitempty"`
	WineStyles     []string `json:"wineStyles,omitempty"`
}

// ContextBlock renders the context as labeled lines for prompt injection.
// Empty fields are skipped; an entirely empty context renders as "".
func (c WineryContext) ContextBlock() string {
	var parts []string
	if c.WineryName != "" {
		parts = append(parts, "Winery: "+c.WineryName)
	}
	if c.Location != "" {
		parts = append(parts, "Location: "+c.Location)
	}
	if c.Description != "" {
		parts = append(parts, "Description: "+c.Description)
	}
	if len(c.Wines) > 0 {
		parts = append(parts, "Wines: "+strings.Join(c.Wines, ", "))
	}
	if len(c.GrapeVarieties) > 0 {
		parts = append(parts, "Grape Varieties: "+strings.Join(c.GrapeVarieties, ", "))
	}
	if len(c.WineStyles) > 0 {
		parts = append(parts, "Wine Styles: "+strings.Join(c.WineStyles, ", "))
	}
	if c.YearFounded != "" {
		parts = append(parts, "Founded: "+c.YearFounded)
	}
	return strings.Join(parts, "\n")
}

// PollResponse is one workshop poll answer.
type PollResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Exercise  string    `json:"exercise"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}

// BetaSignup is one beta-interest registration.
type BetaSignup struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	WineryName string    `json:"wineryName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Store keeps cross-request workshop state. Winery contexts are overwritten
// per session; polls and signups are append-only.
type Store interface {
	SetContext(ctx context.Context, sessionID string, wc WineryContext) error
	GetContext(ctx context.Context, sessionID string) (WineryContext, bool, error)
	AppendPoll(ctx context.Context, p PollResponse) error
	ListPolls(ctx context.Context, exercise string) ([]PollResponse, error)
	AppendBeta(ctx context.Context, b BetaSignup) error
	Close() error
}
