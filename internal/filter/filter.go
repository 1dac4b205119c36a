// Package filter removes changes that must never be committed: paths matching
// the exclusion globs and diffs that introduce content resembling secrets.
package filter

import (
	"regexp"
	"strings"

	"github.com/wahlandcase/attuned.commitsort/internal/config"
	"github.com/wahlandcase/attuned.commitsort/internal/models"

	"github.com/bmatcuk/doublestar/v4"
)

// SecretScanPattern is the pattern name reported for content heuristic hits
const SecretScanPattern = "secret-scan"

// Policy is the enumerated exclusion configuration
type Policy struct {
	Rules      []config.ExcludeRule
	SecretScan bool
}

// PolicyFrom builds a Policy from loaded configuration
func PolicyFrom(cfg *config.Config) Policy {
	return Policy{
		Rules:      cfg.Exclude.Rules,
		SecretScan: cfg.Exclude.SecretScan,
	}
}

// secretPatterns match content that looks like credentials. Only lines the
// diff adds are scanned, so a change that removes a leaked secret stays
// committable.
var secretPatterns = []struct {
	re     *regexp.Regexp
	reason string
}{
	{regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`), "AWS access key id"},
	{regexp.MustCompile(`-----BEGIN (?:[A-Z]+ )?PRIVATE KEY-----`), "private key block"},
	{regexp.MustCompile(`\bghp_[A-Za-z0-9]{36}\b`), "GitHub personal access token"},
	{regexp.MustCompile(`(?i)\b(?:api[_-]?key|secret|token|password)\b["']?\s*[:=]\s*["'][A-Za-z0-9+/_\-]{16,}["']`), "hardcoded credential assignment"},
}

// Apply partitions records into those safe to commit and those excluded,
// with the matched rule attached. It never fails; an empty policy returns
// the input unchanged.
func Apply(records []models.ChangeRecord, policy Policy) ([]models.ChangeRecord, []models.ExcludedRecord) {
	var kept []models.ChangeRecord
	var excluded []models.ExcludedRecord

	for _, rec := range records {
		if rule, ok := matchRule(rec.Path, policy.Rules); ok {
			excluded = append(excluded, models.ExcludedRecord{
				Record:  rec,
				Pattern: rule.Pattern,
				Reason:  rule.Reason,
			})
			continue
		}

		if policy.SecretScan {
			if reason, ok := scanAddedLines(rec.DiffText); ok {
				excluded = append(excluded, models.ExcludedRecord{
					Record:  rec,
					Pattern: SecretScanPattern,
					Reason:  reason,
				})
				continue
			}
		}

		kept = append(kept, rec)
	}

	return kept, excluded
}

// matchRule returns the first exclusion glob matching the path
func matchRule(path string, rules []config.ExcludeRule) (config.ExcludeRule, bool) {
	for _, rule := range rules {
		// Invalid patterns never match; the policy is static config, not input
		if ok, err := doublestar.Match(rule.Pattern, path); err == nil && ok {
			return rule, true
		}
	}
	return config.ExcludeRule{}, false
}

// scanAddedLines runs the secret heuristics over lines the diff introduces
func scanAddedLines(diffText string) (string, bool) {
	if diffText == "" {
		return "", false
	}

	for _, line := range strings.Split(diffText, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		for _, p := range secretPatterns {
			if p.re.MatchString(line) {
				return p.reason, true
			}
		}
	}
	return "", false
}
