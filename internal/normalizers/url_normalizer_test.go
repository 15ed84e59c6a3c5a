package normalizers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

const host = "https://api.example.com:443"

func TestURLNormalizer_DefaultRules(t *testing.T) {
	t.Parallel()

	normalizer := NewURLNormalizer(DefaultRules())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "graph id with query",
			input:    host + "/graph/v1.2/42/posts?x=1",
			expected: host + "/graph/v1.2/<id>/posts",
		},
		{
			name:     "graph id after static segment",
			input:    host + "/graph/v1.2/users/123/followers",
			expected: host + "/graph/v1.2/users/<id>/followers",
		},
		{
			name:     "graph trailing id",
			input:    host + "/graph/v1.2/99",
			expected: host + "/graph/v1.2/<id>",
		},
		{
			name:     "graph only first id is rewritten",
			input:    host + "/graph/v1/123/456",
			expected: host + "/graph/v1/<id>/456",
		},
		{
			name:     "graph status comment",
			input:    host + "/graph/v1.2/posts/abc123-status/comments/def456-comment",
			expected: host + "/graph/v1.2/posts/<status_id>/comments/<comment_id>",
		},
		{
			name:     "graph shared status",
			input:    host + "/graph/v1.2/posts/abc123-shared-status",
			expected: host + "/graph/v1.2/posts/<status-shared_id>",
		},
		{
			name:     "graph status with trailing segments",
			input:    host + "/graph/v1.2/abc123-status/likes",
			expected: host + "/graph/v1.2/<status_id>/likes",
		},
		{
			name:     "recommendation stream",
			input:    host + "/recommendation/v1/streams/streaming_a1b2",
			expected: host + "/recommendation/v1/streams/<stream_id>",
		},
		{
			name:     "recommendation status",
			input:    host + "/recommendation/v1/posts/x1-status",
			expected: host + "/recommendation/v1/posts/<status_id>",
		},
		{
			name:     "search id",
			input:    "http://api-internal.example.com:80/search/v1/users/123",
			expected: "http://api-internal.example.com:80/search/v1/users/<id>",
		},
		{
			name:     "search shared status",
			input:    host + "/search/v1/posts/ab-shared-status",
			expected: host + "/search/v1/posts/<status-shared_id>",
		},
		{
			name:     "pbl mission commit",
			input:    host + "/pbl/v1/missions/complete/commit/TX-abc-123-MISSION",
			expected: host + "/pbl/v1/missions/complete/commit/<transaction_id>",
		},
		{
			name:     "pbl mission begin",
			input:    host + "/pbl/v1/missions/complete/begin/12",
			expected: host + "/pbl/v1/missions/complete/begin/<mission_id>",
		},
		{
			name:     "pbl my mission",
			input:    host + "/pbl/v1/missions/me/12/",
			expected: host + "/pbl/v1/missions/me/<mission_id>",
		},
		{
			name:     "pbl fans leaderboard",
			input:    host + "/pbl/v1/leaderboards/fans/99/weekly",
			expected: host + "/pbl/v1/leaderboards/fans/<donatee>/weekly",
		},
		{
			name:     "pbl donatee donations",
			input:    host + "/pbl/v1/gifts/donations/donatee/7",
			expected: host + "/pbl/v1/gifts/donations/donatee/<id>",
		},
		{
			name:     "pbl purchase",
			input:    host + "/pbl/v1/purchases/google/55",
			expected: host + "/pbl/v1/purchases/google/<id>",
		},
		{
			name:     "no rule matches",
			input:    host + "/api/v1/me/",
			expected: host + "/api/v1/me",
		},
		{
			name:     "all trailing slashes are stripped",
			input:    host + "/graph/v1//",
			expected: host + "/graph/v1",
		},
		{
			name:     "query only",
			input:    "?a=b",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, normalizer.Normalize(tt.input))
		})
	}
}

func TestURLNormalizer_VariableSegmentsShareTemplate(t *testing.T) {
	t.Parallel()

	normalizer := NewURLNormalizer(DefaultRules())

	assert.Equal(t,
		normalizer.Normalize(host+"/graph/v1.2/42/posts"),
		normalizer.Normalize(host+"/graph/v1.2/99/posts?page=2"))
	assert.Equal(t,
		normalizer.Normalize(host+"/pbl/v1/missions/complete/commit/TX-1-MISSION"),
		normalizer.Normalize(host+"/pbl/v1/missions/complete/commit/TX-abc-def-MISSION"))
}

func TestURLNormalizer_Idempotent(t *testing.T) {
	t.Parallel()

	normalizer := NewURLNormalizer(DefaultRules())

	origins := []string{host, "http://api-internal.example.com:80", "https://h"}
	paths := []string{
		"",
		"/",
		"/graph/v1.2/42/posts",
		"/graph/v1.2/users/123/followers/",
		"/graph/v1/123/456/789",
		"/graph/v1/123/abc-status",
		"/graph/v1/abc-status/123",
		"/graph/v1/a/b/c-status/d-status",
		"/graph/v1/a-status/x/b-comment/c-status/y/d-comment",
		"/graph/v1/a-shared-status-tail",
		"/graph/v1/42abc/posts",
		"/graph/v1/posts/<id>",
		"/graph/v1/<id>/12",
		"/recommendation/v1/a/streaming_x",
		"/recommendation/v1/a/b-status",
		"/recommendation/v1/streaming_x",
		"/search/v1/u/1/2",
		"/search/v1/u/a-status",
		"/pbl/v1/missions/complete/commit/TX-a-b-MISSION",
		"/pbl/v1/missions/complete/begin/1",
		"/pbl/v1/missions/me/2",
		"/pbl/v1/leaderboards/fans/3/4",
		"/pbl/v1/leaderboards/fans/3abc",
		"/pbl/v1/gifts/donations/donatee/5",
		"/pbl/v1/purchases/a/b/6",
		"/api/v1/me",
		"/content/corpus/1",
	}
	suffixes := []string{"", "/", "?q=1", "//?q=/1/"}

	for _, o := range origins {
		for _, p := range paths {
			for _, s := range suffixes {
				url := o + p + s
				once := normalizer.Normalize(url)
				assert.Equal(t, once, normalizer.Normalize(once), "normalize is not idempotent for %q", url)
			}
		}
	}
}

func TestURLNormalizer_FirstChangingRuleWins(t *testing.T) {
	t.Parallel()

	noop := NormalizationRule{Name: "noop", Pattern: regexp.MustCompile(`^/never`), Replacement: "/x"}
	first := NormalizationRule{Name: "first", Pattern: regexp.MustCompile(`^(/items)/\d+$`), Replacement: "${1}/<id>"}
	second := NormalizationRule{Name: "second", Pattern: regexp.MustCompile(`^(/items)/\d+$`), Replacement: "${1}/<item_id>"}

	assert.Equal(t, "/items/<id>", NewURLNormalizer([]NormalizationRule{noop, first, second}).Normalize("/items/7"))
	assert.Equal(t, "/items/<item_id>", NewURLNormalizer([]NormalizationRule{second, first}).Normalize("/items/7"))
}

func TestURLNormalizer_RuleThatMatchesWithoutChangeFallsThrough(t *testing.T) {
	t.Parallel()

	identity := NormalizationRule{Name: "identity", Pattern: regexp.MustCompile(`^(/items)`), Replacement: "${1}"}
	rewrite := NormalizationRule{Name: "rewrite", Pattern: regexp.MustCompile(`^(/items)/\d+$`), Replacement: "${1}/<id>"}

	assert.Equal(t, "/items/<id>", NewURLNormalizer([]NormalizationRule{identity, rewrite}).Normalize("/items/7"))
}

func TestDefaultRules_NamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, rule := range DefaultRules() {
		assert.False(t, seen[rule.Name], "duplicate rule %s", rule.Name)
		seen[rule.Name] = true
	}
}
