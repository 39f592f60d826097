// Package rules answers common voice commands locally without a model call.
//
// Rules are evaluated in order and the first match wins. Order is part of the
// contract: a greeting that also mentions the time is answered as a greeting.
package rules

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// Rule pairs a predicate over normalized text with a response builder.
// A builder may decline by returning false, in which case evaluation continues.
type Rule struct {
	Name  string
	When  func(command string) bool
	Build func(command string) (domain.Response, bool)
}

// Matcher evaluates an ordered rule list.
type Matcher struct {
	rules []Rule
	now   func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option customizes a Matcher.
type Option func(*Matcher)

// WithClock overrides the wall clock used by the time and date rules.
func WithClock(now func() time.Time) Option {
	return func(m *Matcher) { m.now = now }
}

// WithRand overrides the random source used to pick jokes.
func WithRand(rnd *rand.Rand) Option {
	return func(m *Matcher) { m.rnd = rnd }
}

// NewMatcher builds the default rule set.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		now: time.Now,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.rules = m.defaultRules()
	return m
}

// Match implements ports.RuleMatcher. The command must already be normalized.
func (m *Matcher) Match(command string) (domain.Response, bool) {
	resp, _, ok := m.MatchRule(command)
	return resp, ok
}

// MatchRule is like Match but also reports which rule answered.
func (m *Matcher) MatchRule(command string) (domain.Response, string, bool) {
	for _, rule := range m.rules {
		if !rule.When(command) {
			continue
		}
		if resp, ok := rule.Build(command); ok {
			return resp, rule.Name, true
		}
	}
	return domain.Response{}, "", false
}

// RuleNames lists the rules in evaluation order.
func (m *Matcher) RuleNames() []string {
	names := make([]string, 0, len(m.rules))
	for _, rule := range m.rules {
		names = append(names, rule.Name)
	}
	return names
}

func (m *Matcher) defaultRules() []Rule {
	rules := []Rule{
		{
			Name:  "greeting",
			When:  containsAny("hello", "hi", "hey", "greetings"),
			Build: reply("Hello! How can I help you today?"),
		},
		{
			Name:  "identity",
			When:  containsAny("your name", "who are you"),
			Build: reply("I am Vyra, your intelligent web assistant powered by advanced AI!"),
		},
		{
			Name:  "time",
			When:  containsAny("time"),
			Build: func(string) (domain.Response, bool) {
				return text("The current time is " + m.now().Format(domain.ClockFormat)), true
			},
		},
		{
			Name:  "date",
			When:  containsAny("date", "today"),
			Build: func(string) (domain.Response, bool) {
				return text("Today is " + m.now().Format(domain.CalendarFormat)), true
			},
		},
		{
			Name:  "joke",
			When:  containsAny("joke", "funny"),
			Build: func(string) (domain.Response, bool) {
				return text(m.pickJoke()), true
			},
		},
	}
	for _, site := range sites {
		rules = append(rules, site.rule())
	}
	return append(rules,
		searchRule(domain.PlatformYouTube, "YouTube", youtubeTokens,
			func(c string) bool { return strings.Contains(c, "search") && strings.Contains(c, "youtube") }),
		searchRule(domain.PlatformGoogle, "Google", googleTokens,
			func(c string) bool {
				return strings.Contains(c, "search") && (strings.Contains(c, "google") || strings.Contains(c, "for"))
			}),
		Rule{
			Name:  "capabilities",
			When:  containsAny("what can you do", "help me", "your capabilities"),
			Build: reply("I can help you with time and date, tell jokes, open websites like YouTube and Google, search the web, and answer general questions using AI!"),
		},
	)
}

func (m *Matcher) pickJoke() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Jokes[m.rnd.Intn(len(Jokes))]
}

func containsAny(needles ...string) func(string) bool {
	return func(command string) bool {
		for _, needle := range needles {
			if strings.Contains(command, needle) {
				return true
			}
		}
		return false
	}
}

func reply(message string) func(string) (domain.Response, bool) {
	return func(string) (domain.Response, bool) {
		return text(message), true
	}
}

func text(message string) domain.Response {
	return domain.Response{Text: message, Confidence: domain.RuleConfidence}
}

var _ ports.RuleMatcher = (*Matcher)(nil)
