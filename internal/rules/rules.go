// Package rules applies ordered find/replace rules to filenames. Rules run
// sequentially over the running result, so earlier rules feed later ones;
// rule order is part of the user's configuration, not an implementation
// detail.
package rules

import (
	"regexp"
	"strings"

	"github.com/renamebot/renamed/internal/config"
	"github.com/renamebot/renamed/internal/models"
)

// Apply folds the rule set over input in order. Disabled rules are skipped
// silently; enabled rules without search text are skipped with a debug
// diagnostic. Replacement text is always literal, never a pattern, and a
// rule may delete by replacing with the empty string.
func Apply(input string, ruleSet models.RuleSet) string {
	logger := config.GetLogger()

	result := input
	for i, rule := range ruleSet {
		if !rule.Enabled {
			continue
		}
		if rule.Old == "" {
			logger.Debug().
				Int("rule_index", i).
				Msg("Skipping replace rule with empty search text")
			continue
		}

		if rule.CaseSensitive {
			result = strings.ReplaceAll(result, rule.Old, rule.New)
			continue
		}

		pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(rule.Old))
		if err != nil {
			logger.Debug().
				Err(err).
				Int("rule_index", i).
				Str("search", rule.Old).
				Msg("Skipping replace rule that does not compile")
			continue
		}
		result = pattern.ReplaceAllLiteralString(result, rule.New)
	}
	return result
}
