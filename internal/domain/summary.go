package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// fallbackSummary is used when the classifier returns no summary at all
const fallbackSummary = "No summary provided."

var (
	scoreOfPattern = regexp.MustCompile(`(?i)risk score of \d+`)
	scoreIsPattern = regexp.MustCompile(`(?i)risk score is \d+`)
)

// SyncSummary rewrites numeric score mentions in the classifier's free-text
// summary so the prose always states the authoritative score. The classifier
// tends to embed its own (untrusted) score in the text; every "risk score
// of N" / "risk score is N" phrase is rewritten, and if the text still does
// not state the authoritative score after rewriting, it is prefixed with the
// score outright so the displayed number is never wrong.
func SyncSummary(rawSummary string, score int) string {
	summary := rawSummary
	if summary == "" {
		summary = fallbackSummary
	}

	summary = scoreOfPattern.ReplaceAllString(summary, fmt.Sprintf("risk score of %d", score))
	summary = scoreIsPattern.ReplaceAllString(summary, fmt.Sprintf("risk score is %d", score))

	if !strings.Contains(summary, fmt.Sprintf("score of %d", score)) &&
		!strings.Contains(summary, fmt.Sprintf("score is %d", score)) {
		summary = fmt.Sprintf("(Score: %d/%d) %s", score, MaxRiskScore, summary)
	}

	return summary
}
