package txt2md

import (
	"fmt"
	"strings"
)

// Render serializes an ordered block sequence to canonical Markdown. Blocks
// are separated by one blank line, except consecutive list items, which sit
// on adjacent lines. The result is trimmed of leading and trailing
// whitespace.
func Render(blocks Blocks) string {
	var (
		sb strings.Builder

		lastListKind ListKind
		counter      int
	)

	for i, block := range blocks {
		switch block.Kind {
		case KindHeading:
			sb.WriteString(strings.Repeat("#", block.Level))
			sb.WriteString(" ")
			sb.WriteString(block.Content)
		case KindParagraph:
			sb.WriteString(block.Content)
		case KindListItem:
			// A kind change restarts the numbering context.
			if block.ListKind != lastListKind {
				counter = 0
			}

			lastListKind = block.ListKind
			counter++

			sb.WriteString(renderListItem(block, counter))
		case KindCode:
			sb.WriteString("```")
			sb.WriteString(block.Info)
			sb.WriteString("\n")
			sb.WriteString(block.Content)
			sb.WriteString("```")
		case KindQuote:
			sb.WriteString(renderQuote(block.Content))
		}

		if block.Kind != KindListItem {
			lastListKind = ""
			counter = 0
		}

		if i < len(blocks)-1 {
			if block.Kind == KindListItem && blocks[i+1].Kind == KindListItem {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
	}

	return strings.TrimSpace(sb.String())
}

func renderListItem(block *Block, counter int) string {
	if block.ListKind != ListNumbered {
		return "- " + block.Content
	}

	index := block.ListIndex
	if index < 1 {
		index = counter
	}

	return fmt.Sprintf("%d. %s", index, block.Content)
}

// renderQuote prefixes every stored content line, so merged multi-line
// quotes re-analyze into the same single block.
func renderQuote(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}

	return strings.Join(lines, "\n")
}

// Transform is the convenience composition of [Analyze] and [Render].
func Transform(text string) string {
	return Render(Analyze(text))
}
