package normalizers

import (
	"regexp"
	"strings"
)

// NormalizationRule rewrites the variable segment captured by Pattern into a
// placeholder. Replacement uses regexp.Expand syntax.
type NormalizationRule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

func newRule(name, pattern, replacement string) NormalizationRule {
	return NormalizationRule{Name: name, Pattern: regexp.MustCompile(pattern), Replacement: replacement}
}

// Static path prefixes of graph rules only walk letter-started segments, so a
// placeholder or a numeric segment ends the prefix and a rewritten URL never
// matches again.
const (
	origin       = `https?://[^/]+`
	graphPrefix  = `^(` + origin + `/graph/v[0-9.]+(?:/[A-Za-z_]\w*)*)`
	recPrefix    = `^(` + origin + `/recommendation/v[0-9.]+(?:/\w+)+)`
	searchPrefix = `^(` + origin + `/search/v[0-9.]+(?:/\w+)+)`
	pblPrefix    = `^(` + origin + `/pbl/v[0-9.]+`
)

// DefaultRules is the ordered rewrite table. The first rule that changes a URL
// is the only one applied.
func DefaultRules() []NormalizationRule {
	return []NormalizationRule{
		newRule("graph_status_comment", graphPrefix+`/\w+(-shared)?-status(/\w+/)\w+-comment`, `${1}/<status${2}_id>${3}<comment_id>`),
		newRule("graph_status", graphPrefix+`/\w+(-shared)?-status`, `${1}/<status${2}_id>`),
		newRule("graph_id", `^(`+origin+`/graph/v[0-9.]+(?:/[A-Za-z_]\w*)?)/\d+(/|$)`, `${1}/<id>${2}`),
		newRule("recommendation_stream", recPrefix+`/streaming_\w+$`, `${1}/<stream_id>`),
		newRule("recommendation_status", recPrefix+`/\w+(-shared)?-status$`, `${1}/<status${2}_id>`),
		newRule("search_id", searchPrefix+`/\d+$`, `${1}/<id>`),
		newRule("search_status", searchPrefix+`/\w+(-shared)?-status$`, `${1}/<status${2}_id>`),
		newRule("pbl_mission_commit", pblPrefix+`/missions/complete/commit)/TX-[\w-]+-MISSION$`, `${1}/<transaction_id>`),
		newRule("pbl_mission_begin", pblPrefix+`/missions/complete/begin)/\d+$`, `${1}/<mission_id>`),
		newRule("pbl_my_mission", pblPrefix+`/missions/me)/\d+$`, `${1}/<mission_id>`),
		newRule("pbl_fans_leaderboard", pblPrefix+`/leaderboards/fans)/\d+(/|$)`, `${1}/<donatee>${2}`),
		newRule("pbl_donatee_donations", pblPrefix+`/gifts/donations/donatee)/\d+$`, `${1}/<id>`),
		newRule("pbl_purchase", pblPrefix+`/purchases(?:/\w+)+)/\d+$`, `${1}/<id>`),
	}
}

//go:generate mockgen -source=url_normalizer.go -destination=./mocks/url_normalizer_mock.go -package=mocks
type URLNormalizer interface {
	// Normalize turns a raw request URL into a template URL.
	Normalize(rawURL string) string
}

type urlNormalizer struct {
	rules []NormalizationRule
}

func NewURLNormalizer(rules []NormalizationRule) URLNormalizer {
	return &urlNormalizer{rules: append([]NormalizationRule(nil), rules...)}
}

func (n *urlNormalizer) Normalize(rawURL string) string {
	url, _, _ := strings.Cut(rawURL, "?")
	url = strings.TrimRight(url, "/")

	for _, rule := range n.rules {
		if normalized := rule.Pattern.ReplaceAllString(url, rule.Replacement); normalized != url {
			return normalized
		}
	}
	return url
}
