package txt2md

import (
	"regexp"
	"strconv"
	"strings"
)

type lineClass int

const (
	lineFence lineClass = iota
	lineBlank
	lineQuote
	lineList
	lineHeading
	linePlain
)

// classification is the per-line result of [classifyLine]. Only the fields
// relevant to the class are populated.
type classification struct {
	class lineClass

	// text is the trimmed line content for linePlain, the quote content for
	// lineQuote and the item content for lineList.
	text string

	// info is the verbatim fence info string for lineFence.
	info string

	listKind  ListKind
	listIndex int

	heading headingResult
}

type listMarker struct {
	re    *regexp.Regexp
	group int
}

var (
	reBulletItem   = regexp.MustCompile(`^[-*+]\s+(.*)$`)
	reNumberedItem = regexp.MustCompile(`^(\d+)[.)]\s+(.*)$`)
	reLetteredItem = regexp.MustCompile(`^[A-Za-z][.)]\s+(.*)$`)
	reParenItem    = regexp.MustCompile(`^\((\d+)\)\s+(.*)$`)
)

// listMarkers is ordered; the first matching pattern decides the match.
var listMarkers = []listMarker{
	{reBulletItem, 1},
	{reNumberedItem, 2},
	{reLetteredItem, 1},
	{reParenItem, 2},
}

// classifyLine inspects lines[idx] (plus one line of lookahead for Setext
// headings) and returns its classification. It never mutates shared state.
// Checks run in fixed priority order: fence, blank, quote, list, heading,
// plain.
func classifyLine(lines []string, idx int) classification {
	trimmed := strings.TrimSpace(lines[idx])

	if strings.HasPrefix(trimmed, "```") {
		return classification{
			class: lineFence,
			info:  strings.TrimSpace(strings.TrimPrefix(trimmed, "```")),
		}
	}

	if trimmed == "" {
		return classification{class: lineBlank}
	}

	if strings.HasPrefix(trimmed, ">") {
		content := strings.TrimPrefix(trimmed, ">")
		content = strings.TrimPrefix(content, " ")

		return classification{class: lineQuote, text: content}
	}

	if c, ok := classifyListItem(trimmed); ok {
		return c
	}

	if res := detectHeading(trimmed, setextLookahead(lines, idx)); res.isHeading {
		return classification{class: lineHeading, heading: res}
	}

	return classification{class: linePlain, text: trimmed}
}

// classifyListItem matches trimmed against the ordered marker patterns.
// The item kind is decided by a separate digits-only check: a line is a
// numbered item iff it matches the `digits.` / `digits)` marker, bullet
// otherwise. Lettered and parenthesized markers are therefore recognized as
// list items but tagged bullet; this mirrors long-standing behavior and is
// kept for compatibility.
func classifyListItem(trimmed string) (classification, bool) {
	for _, marker := range listMarkers {
		subs := marker.re.FindStringSubmatch(trimmed)
		if subs == nil {
			continue
		}

		c := classification{
			class:    lineList,
			text:     subs[marker.group],
			listKind: ListBullet,
		}

		if digits := reNumberedItem.FindStringSubmatch(trimmed); digits != nil {
			c.listKind = ListNumbered
			c.listIndex = parseListIndex(digits[1])
		}

		return c, true
	}

	return classification{}, false
}

func parseListIndex(digits string) int {
	index, err := strconv.Atoi(digits)
	if err != nil || index < 1 {
		return 1
	}

	return index
}

func setextLookahead(lines []string, idx int) string {
	if idx+1 >= len(lines) {
		return ""
	}

	return strings.TrimSpace(lines[idx+1])
}
