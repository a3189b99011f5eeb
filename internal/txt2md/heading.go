package txt2md

import (
	"regexp"
	"strings"
	"unicode"
)

// headingResult is the outcome of the heading decision cascade. residual
// holds text left on the line after a prefix-style marker is stripped; it
// seeds the next paragraph. skip is the number of extra source lines the
// match consumed (1 for Setext underlines).
type headingResult struct {
	isHeading bool
	text      string
	residual  string
	level     int
	skip      int
}

var (
	reATX          = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	reSetextLevel1 = regexp.MustCompile(`^={3,}$`)
	reSetextLevel2 = regexp.MustCompile(`^-{3,}$`)
)

// patternEntry maps a text pattern to a heading level. Prefix entries match
// at the start of the line and leave the remainder as residual text;
// whole-line entries must consume the entire line.
type patternEntry struct {
	re     *regexp.Regexp
	level  int
	prefix bool
}

// headingPatterns is the ordered pattern table; first match wins, so order
// encodes priority. The vocabulary is tuned for forum/community-page text.
// The table is built once and never mutated.
var headingPatterns = []patternEntry{
	{regexp.MustCompile(`^/?r/\w+`), 1, true},
	{regexp.MustCompile(`(?i)^(?:about|description|overview|rules|information)$`), 2, false},
	{regexp.MustCompile(`(?i)^(?:created|members|online|public|private|restricted)$`), 3, false},
	{regexp.MustCompile(`(?i)^(?:rank|status|category|type)(?:\s+by\s+\w+)?$`), 3, false},
	{regexp.MustCompile(`(?i)^(?:user|moderator|admin|author)s?(?:\s+(?:flair|info|details))?$`), 4, false},
	{regexp.MustCompile(`^u/\w+`), 4, true},
}

const (
	titleCaseRatio  = 0.6
	titleCaseMaxLen = 60
)

// detectHeading runs the decision cascade against a trimmed line: ATX
// marker, Setext underline (via the trimmed lookahead line), the ordered
// pattern table, and finally the statistical title-case fallback. The
// fallback is low-precision and will misfire on short capitalized
// sentences; that is accepted behavior.
func detectHeading(trimmed, lookahead string) headingResult {
	if subs := reATX.FindStringSubmatch(trimmed); subs != nil {
		return headingResult{
			isHeading: true,
			text:      strings.TrimSpace(subs[2]),
			level:     len(subs[1]),
		}
	}

	if reSetextLevel1.MatchString(lookahead) {
		return headingResult{isHeading: true, text: trimmed, level: 1, skip: 1}
	}

	if reSetextLevel2.MatchString(lookahead) {
		return headingResult{isHeading: true, text: trimmed, level: 2, skip: 1}
	}

	for _, entry := range headingPatterns {
		if entry.prefix {
			loc := entry.re.FindStringIndex(trimmed)
			if loc == nil {
				continue
			}

			return headingResult{
				isHeading: true,
				text:      trimmed[:loc[1]],
				residual:  strings.TrimSpace(trimmed[loc[1]:]),
				level:     entry.level,
			}
		}

		if entry.re.MatchString(trimmed) {
			return headingResult{isHeading: true, text: trimmed, level: entry.level}
		}
	}

	if isTitleCase(trimmed) {
		return headingResult{isHeading: true, text: trimmed, level: 2}
	}

	return headingResult{}
}

// isTitleCase reports whether more than 60% of the space-separated words are
// capitalized or all-uppercase and the line is under 60 characters. The
// split is a naive single-space split; empty tokens count toward the total.
func isTitleCase(trimmed string) bool {
	if len(trimmed) >= titleCaseMaxLen {
		return false
	}

	words := strings.Split(trimmed, " ")

	var count int

	for _, word := range words {
		if isCapitalizedWord(word) || isUpperWord(word) {
			count++
		}
	}

	return float64(count)/float64(len(words)) > titleCaseRatio
}

func isCapitalizedWord(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}

	rest := string(runes[1:])

	return rest == strings.ToLower(rest)
}

func isUpperWord(word string) bool {
	return word != "" && word == strings.ToUpper(word) && word != strings.ToLower(word)
}
