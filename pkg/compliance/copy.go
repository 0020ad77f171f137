package compliance

import "regexp"

// prohibitedPhrase is one entry in the prohibited-copy table.
type prohibitedPhrase struct {
	pattern *regexp.Regexp
	reason  string
}

// prohibitedPhrases is the fixed table of ad-copy patterns that advertising
// platforms routinely reject or restrict. Matching is case-insensitive.
var prohibitedPhrases = []prohibitedPhrase{
	{regexp.MustCompile(`(?i)\d+\s*%\s*off`), "discount percentage claims often require substantiation"},
	{regexp.MustCompile(`(?i)limited\s+time`), "urgency claims are restricted on several platforms"},
	{regexp.MustCompile(`(?i)\bfree\b\s+\w+`), "free offers require clear terms and conditions"},
	{regexp.MustCompile(`(?i)\b(best|lowest|cheapest)\s+price`), "superlative price claims require substantiation"},
	{regexp.MustCompile(`(?i)\bguarantee[ds]?\b`), "guarantee claims require published guarantee terms"},
	{regexp.MustCompile(`(?i)save\s+\$\s*\d+`), "specific savings claims require substantiation"},
	{regexp.MustCompile(`(?i)act\s+now`), "pressure tactics are restricted on several platforms"},
	{regexp.MustCompile(`(?i)only\s+\d+\s+(left|remaining)`), "scarcity claims must reflect actual inventory"},
	{regexp.MustCompile(`(?i)while\s+(supplies|stocks)\s+last`), "scarcity claims must reflect actual inventory"},
	{regexp.MustCompile(`(?i)\b(giveaway|sweepstakes|contest)\b`), "contest promotions require official rules and terms"},
}

// findProhibited returns the first prohibited phrase matched in the text,
// or nil when the text is clean.
func findProhibited(text string) (match string, reason string, found bool) {
	for _, p := range prohibitedPhrases {
		if m := p.pattern.FindString(text); m != "" {
			return m, p.reason, true
		}
	}
	return "", "", false
}
