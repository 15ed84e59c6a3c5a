package classifiers

import (
	"regexp"
)

// ClassificationRule assigns Service to any URL Pattern matches anywhere.
type ClassificationRule struct {
	Service string
	Pattern *regexp.Regexp
}

// DefaultRules is the ordered rule table for the production API gateway.
// Earlier rules win, so a path holding both /search/ and /pym/ resolves to
// the rule listed first.
func DefaultRules() []ClassificationRule {
	return []ClassificationRule{
		{Service: "jarvis", Pattern: regexp.MustCompile(`/api/`)},
		{Service: "pepper", Pattern: regexp.MustCompile(`/graph/v`)},
		{Service: "vision", Pattern: regexp.MustCompile(`/recommendation/v`)},
		{Service: "search", Pattern: regexp.MustCompile(`/pym/`)},
		{Service: "titan", Pattern: regexp.MustCompile(`/titan/`)},
		{Service: "pym", Pattern: regexp.MustCompile(`/search/`)},
		{Service: "thor", Pattern: regexp.MustCompile(`/pbl/v`)},
	}
}

//go:generate mockgen -source=service_classifier.go -destination=./mocks/service_classifier_mock.go -package=mocks
type ServiceClassifier interface {
	// Classify returns the owning service of url, or "" when no rule matches.
	Classify(url string) string
}

type serviceClassifier struct {
	rules []ClassificationRule
}

func NewServiceClassifier(rules []ClassificationRule) ServiceClassifier {
	return &serviceClassifier{rules: append([]ClassificationRule(nil), rules...)}
}

func (c *serviceClassifier) Classify(url string) string {
	for _, rule := range c.rules {
		if rule.Pattern.MatchString(url) {
			return rule.Service
		}
	}
	return ""
}
