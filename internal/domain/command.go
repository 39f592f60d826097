// Package domain defines core business entities and value objects for Vyra.
//
// This file contains the command/response model shared by the rule matcher,
// the model responder and the dispatcher. The domain layer is independent of
// infrastructure concerns.
package domain

import (
	"net/url"
	"strings"
)

// ActionType tags the variant carried by an Action.
type ActionType string

const (
	ActionOpenURL ActionType = "open_url"
	ActionSearch  ActionType = "search"
)

// Search platforms understood by clients.
const (
	PlatformYouTube = "youtube"
	PlatformGoogle  = "google"
)

// Action describes a client-side side effect. The core never performs it.
type Action struct {
	Type     ActionType `json:"type"`
	URL      string     `json:"url,omitempty"`
	Platform string     `json:"platform,omitempty"`
	Query    string     `json:"query,omitempty"`
}

// OpenURL builds an open_url action.
func OpenURL(target string) *Action {
	return &Action{Type: ActionOpenURL, URL: target}
}

// Search builds a search action for the given platform.
func Search(platform, query string) *Action {
	return &Action{Type: ActionSearch, Platform: platform, Query: query}
}

// Target resolves the address a browser client would open for this action.
// Unknown variants resolve to an empty string.
func (a *Action) Target() string {
	if a == nil {
		return ""
	}
	switch a.Type {
	case ActionOpenURL:
		return a.URL
	case ActionSearch:
		q := url.QueryEscape(a.Query)
		switch a.Platform {
		case PlatformYouTube:
			return "https://www.youtube.com/results?search_query=" + q
		case PlatformGoogle:
			return "https://www.google.com/search?q=" + q
		}
	}
	return ""
}

// Response is the canonical answer propagated back to the transport.
type Response struct {
	Text          string  `json:"response"`
	Action        *Action `json:"action"`
	Confidence    float64 `json:"confidence"`
	ModelAssisted bool    `json:"ai_powered,omitempty"`
}

// HasAction reports whether the caller is expected to perform a side effect.
func (r Response) HasAction() bool {
	return r.Action != nil
}

// ProcessRequest captures one command arriving from a transport.
type ProcessRequest struct {
	Command   string
	SessionID string
	UseAI     bool
}

// NormalizeCommand lowercases and trims raw command text.
func NormalizeCommand(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeSessionID substitutes DefaultSessionID for a blank identifier.
func NormalizeSessionID(id string) string {
	if strings.TrimSpace(id) == "" {
		return DefaultSessionID
	}
	return id
}

// FallbackResponse is returned when neither rules nor the model produced an answer.
func FallbackResponse() Response {
	return Response{
		Text:       FallbackText,
		Confidence: FallbackConfidence,
	}
}
