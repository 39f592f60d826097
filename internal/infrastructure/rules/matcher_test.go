package rules

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/vyra-go/internal/domain"
)

var fixedNow = time.Date(2024, time.March, 5, 15, 4, 0, 0, time.UTC)

func newTestMatcher() *Matcher {
	return NewMatcher(
		WithClock(func() time.Time { return fixedNow }),
		WithRand(rand.New(rand.NewSource(1))),
	)
}

func TestMatcherRules(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		name     string
		command  string
		wantRule string
		wantText string
	}{
		{"greeting", "hello there", "greeting", "Hello! How can I help you today?"},
		{"greeting wins over time", "hello, what time is it", "greeting", "Hello! How can I help you today?"},
		{"identity", "what is your name", "identity", "I am Vyra, your intelligent web assistant powered by advanced AI!"},
		{"time", "what time is it", "time", "The current time is 03:04 PM"},
		{"date", "what is today's date?", "date", "Today is Tuesday, March 05, 2024"},
		{"date keyword", "date please", "date", "Today is Tuesday, March 05, 2024"},
		{"capabilities", "what can you do", "capabilities", "I can help you with time and date, tell jokes, open websites like YouTube and Google, search the web, and answer general questions using AI!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, rule, ok := m.MatchRule(tt.command)
			require.True(t, ok)
			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, tt.wantText, resp.Text)
			assert.Equal(t, 1.0, resp.Confidence)
			assert.Nil(t, resp.Action)
			assert.False(t, resp.ModelAssisted)
		})
	}
}

func TestMatcherJokeComesFromPool(t *testing.T) {
	m := newTestMatcher()
	for _, cmd := range []string{"tell me a joke", "that was funny", "joke"} {
		for i := 0; i < 20; i++ {
			resp, ok := m.Match(cmd)
			require.True(t, ok)
			assert.Contains(t, Jokes, resp.Text)
			assert.Equal(t, 1.0, resp.Confidence)
		}
	}
	assert.GreaterOrEqual(t, len(Jokes), 7)
}

func TestMatcherOpenSites(t *testing.T) {
	m := newTestMatcher()

	tests := map[string]string{
		"open youtube":   "https://www.youtube.com",
		"open google":    "https://www.google.com",
		"open instagram": "https://www.instagram.com",
		"open twitter":   "https://www.twitter.com",
		"open x":         "https://www.twitter.com",
		"open github":    "https://www.github.com",
	}

	for cmd, wantURL := range tests {
		t.Run(cmd, func(t *testing.T) {
			resp, ok := m.Match(cmd)
			require.True(t, ok)
			require.NotNil(t, resp.Action)
			assert.Equal(t, domain.ActionOpenURL, resp.Action.Type)
			assert.Equal(t, wantURL, resp.Action.URL)
			assert.Equal(t, 1.0, resp.Confidence)
		})
	}
}

func TestMatcherSearch(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		command      string
		wantPlatform string
		wantQuery    string
		wantText     string
	}{
		{"search for cats on youtube", domain.PlatformYouTube, "cats", "Searching YouTube for cats"},
		{"search youtube lofi music", domain.PlatformYouTube, "lofi music", "Searching YouTube for lofi music"},
		{"search google weather", domain.PlatformGoogle, "weather", "Searching Google for weather"},
		{"search for golang generics", domain.PlatformGoogle, "golang generics", "Searching Google for golang generics"},
		{"search for cats for dinner", domain.PlatformGoogle, "cats  dinner", "Searching Google for cats  dinner"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			resp, ok := m.Match(tt.command)
			require.True(t, ok)
			require.NotNil(t, resp.Action)
			assert.Equal(t, domain.ActionSearch, resp.Action.Type)
			assert.Equal(t, tt.wantPlatform, resp.Action.Platform)
			assert.Equal(t, tt.wantQuery, resp.Action.Query)
			assert.Equal(t, tt.wantText, resp.Text)
		})
	}
}

func TestMatcherEmptySearchFallsThrough(t *testing.T) {
	m := newTestMatcher()

	// Both search rules strip to nothing, no later rule applies.
	_, ok := m.Match("search on youtube")
	assert.False(t, ok)

	// An empty youtube query falls through to the google rule.
	resp, rule, ok := m.MatchRule("search youtube for")
	require.True(t, ok)
	assert.Equal(t, "search_google", rule)
	assert.Equal(t, "youtube", resp.Action.Query)
}

func TestMatcherNoMatch(t *testing.T) {
	m := newTestMatcher()
	for _, cmd := range []string{"", "explain quantum physics", "what's the weather like"} {
		_, ok := m.Match(cmd)
		assert.False(t, ok, cmd)
	}
}

func TestExtractQuery(t *testing.T) {
	assert.Equal(t, "cats", ExtractQuery("search for cats on youtube", youtubeTokens))
	assert.Equal(t, "pyth tutorials", ExtractQuery("search python tutorials", googleTokens))
	assert.Equal(t, "", ExtractQuery("  search  ", googleTokens))
}

func TestRuleOrder(t *testing.T) {
	m := newTestMatcher()
	assert.Equal(t, []string{
		"greeting", "identity", "time", "date", "joke",
		"open_youtube", "open_google", "open_instagram", "open_twitter", "open_github",
		"search_youtube", "search_google", "capabilities",
	}, m.RuleNames())
}
