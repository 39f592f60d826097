package rules

import (
	"strings"

	"github.com/doeshing/vyra-go/internal/domain"
)

// site is a fixed "open <name>" intent.
type site struct {
	name     string
	phrases  []string
	url      string
	announce string
}

var sites = []site{
	{name: "open_youtube", phrases: []string{"open youtube"}, url: "https://www.youtube.com", announce: "Opening YouTube for you!"},
	{name: "open_google", phrases: []string{"open google"}, url: "https://www.google.com", announce: "Opening Google!"},
	{name: "open_instagram", phrases: []string{"open instagram"}, url: "https://www.instagram.com", announce: "Opening Instagram!"},
	{name: "open_twitter", phrases: []string{"open twitter", "open x"}, url: "https://www.twitter.com", announce: "Opening Twitter!"},
	{name: "open_github", phrases: []string{"open github"}, url: "https://www.github.com", announce: "Opening GitHub!"},
}

func (s site) rule() Rule {
	return Rule{
		Name: s.name,
		When: containsAny(s.phrases...),
		Build: func(string) (domain.Response, bool) {
			return domain.Response{
				Text:       s.announce,
				Action:     domain.OpenURL(s.url),
				Confidence: domain.RuleConfidence,
			}, true
		},
	}
}

// Tokens removed from a search command, applied in this order.
var (
	youtubeTokens = []string{"search", "youtube", "on", "for"}
	googleTokens  = []string{"search", "google", "on", "for"}
)

// ExtractQuery removes every occurrence of each token from command and trims
// the result. Removal is plain substring replacement, so tokens embedded in
// other words are removed too ("python" loses its "on").
func ExtractQuery(command string, tokens []string) string {
	for _, token := range tokens {
		command = strings.ReplaceAll(command, token, "")
	}
	return strings.TrimSpace(command)
}

func searchRule(platform, label string, tokens []string, when func(string) bool) Rule {
	return Rule{
		Name: "search_" + platform,
		When: when,
		Build: func(command string) (domain.Response, bool) {
			query := ExtractQuery(command, tokens)
			if query == "" {
				return domain.Response{}, false
			}
			return domain.Response{
				Text:       "Searching " + label + " for " + query,
				Action:     domain.Search(platform, query),
				Confidence: domain.RuleConfidence,
			}, true
		},
	}
}
