package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reLineEndings = regexp.MustCompile(`\r\n?`)

	// A section boundary line begins with a capitalized word and ends in
	// sentence punctuation or end-of-line.
	reSectionHead = regexp.MustCompile(`^[A-Z][a-z]*\b.*[.!?:]?$`)

	reNumberedLine = regexp.MustCompile(`^(\s*)\d+[.)]\s+(.*)$`)
	reBulletLine   = regexp.MustCompile(`^(\s*)[-*+]\s+(.*)$`)
	reEmittedItem  = regexp.MustCompile(`^\s*\d+\. `)

	reUnderDouble = regexp.MustCompile(`__([^_]+)__`)
	reUnderSingle = regexp.MustCompile(`_([^_]+)_`)
	reStarDouble  = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reStarSingle  = regexp.MustCompile(`\*([^*]+)\*`)
)

// Rewrite runs the stateless, line-oriented rewriting pass over text: split
// into sections on capitalized boundary lines, promote each boundary line to
// a heading, rewrite list markers and emphasis delimiters, and convert code
// layout, all per cfg. It fails only on configuration values outside their
// documented enumerations.
func Rewrite(text string, cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}

	lines := strings.Split(reLineEndings.ReplaceAllString(text, "\n"), "\n")

	var chunks []string

	for _, sec := range splitSections(lines) {
		if sec.heading != "" {
			depth := min(cfg.headingDepth(), 3)
			chunks = append(chunks, strings.Repeat("#", depth)+" "+sec.heading)
		}

		chunks = rewriteBody(chunks, sec.body, cfg)
	}

	separator := "\n\n"
	if cfg.ParagraphSpacing == SpacingDouble {
		separator = "\n\n\n"
	}

	return strings.TrimSpace(strings.Join(chunks, separator)), nil
}

type section struct {
	heading string
	body    []string
}

// splitSections starts a new section at every boundary line that is preceded
// by a blank line or start of input. Text before the first boundary forms a
// headingless preamble section.
func splitSections(lines []string) []section {
	var (
		sections []section
		current  section
	)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		atBoundary := reSectionHead.MatchString(trimmed) &&
			(i == 0 || strings.TrimSpace(lines[i-1]) == "")

		if atBoundary {
			if current.heading != "" || len(current.body) > 0 {
				sections = append(sections, current)
			}

			current = section{heading: trimmed}

			continue
		}

		current.body = append(current.body, line)
	}

	if current.heading != "" || len(current.body) > 0 {
		sections = append(sections, current)
	}

	return sections
}

// rewriteBody appends the rewritten body lines of one section to chunks.
// Plain lines accumulate into space-joined paragraphs; list runs and code
// blocks form their own chunks.
func rewriteBody(chunks []string, body []string, cfg Config) []string {
	var (
		para []string
		list []string
	)

	flushPara := func() {
		if len(para) > 0 {
			chunks = append(chunks, strings.Join(para, " "))
			para = nil
		}
	}
	flushList := func() {
		if len(list) > 0 {
			chunks = append(chunks, strings.Join(list, "\n"))
			list = nil
		}
	}

	for i := 0; i < len(body); i++ {
		line := body[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flushPara()
			flushList()
		case strings.HasPrefix(trimmed, "```"):
			flushPara()
			flushList()

			var chunk string
			chunk, i = convertFenced(body, i, cfg)
			chunks = append(chunks, chunk)
		case isIndentedCode(line) && cfg.CodeBlockStyle == CodeFenced:
			flushPara()
			flushList()

			var chunk string
			chunk, i = fenceIndentedRun(body, i)
			chunks = append(chunks, chunk)
		case reNumberedLine.MatchString(line) || reBulletLine.MatchString(line):
			flushPara()

			list = append(list, rewriteListLine(line, list, cfg))
		default:
			flushList()

			para = append(para, rewriteEmphasis(trimmed, cfg))
		}
	}

	flushPara()
	flushList()

	return chunks
}

// rewriteListLine converts a list marker to the configured style. The
// running numbered index is derived by re-scanning the items already emitted
// for the current run.
func rewriteListLine(line string, emitted []string, cfg Config) string {
	if cfg.ListStyle == ListBullet {
		if subs := reNumberedLine.FindStringSubmatch(line); subs != nil {
			return subs[1] + "- " + rewriteEmphasis(subs[2], cfg)
		}
	}

	if cfg.ListStyle == ListNumbered {
		if subs := reBulletLine.FindStringSubmatch(line); subs != nil {
			return subs[1] + fmt.Sprintf("%d. %s", nextListIndex(emitted), rewriteEmphasis(subs[2], cfg))
		}
	}

	return rewriteEmphasis(strings.TrimRight(line, " \t"), cfg)
}

func nextListIndex(emitted []string) int {
	count := 0

	for i := len(emitted) - 1; i >= 0; i-- {
		if !reEmittedItem.MatchString(emitted[i]) {
			break
		}

		count++
	}

	return count + 1
}

// rewriteEmphasis translates emphasis delimiters to the configured style.
// Double delimiters are handled before single ones; nesting is not
// supported.
func rewriteEmphasis(line string, cfg Config) string {
	if cfg.EmphasisStyle == EmphasisAsterisk {
		line = reUnderDouble.ReplaceAllString(line, "**$1**")
		line = reUnderSingle.ReplaceAllString(line, "*$1*")

		return line
	}

	line = reStarDouble.ReplaceAllString(line, "__$1__")
	line = reStarSingle.ReplaceAllString(line, "_$1_")

	return line
}

func isIndentedCode(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

// convertFenced consumes a fenced block starting at body[i] and returns it
// as a chunk, either verbatim or re-indented when CodeIndented is
// configured. It returns the index of the last consumed line.
func convertFenced(body []string, i int, cfg Config) (string, int) {
	var content []string

	j := i + 1
	for ; j < len(body); j++ {
		if strings.HasPrefix(strings.TrimSpace(body[j]), "```") {
			break
		}

		content = append(content, body[j])
	}

	if cfg.CodeBlockStyle == CodeIndented {
		for k, line := range content {
			content[k] = "    " + line
		}

		return strings.Join(content, "\n"), min(j, len(body)-1)
	}

	end := j
	if end >= len(body) {
		end = len(body) - 1
	}

	return strings.Join(body[i:end+1], "\n"), end
}

// fenceIndentedRun consumes a run of indented lines starting at body[i] and
// wraps it in fences, stripping one level of indentation. It returns the
// index of the last consumed line.
func fenceIndentedRun(body []string, i int) (string, int) {
	var content []string

	j := i
	for ; j < len(body); j++ {
		if !isIndentedCode(body[j]) {
			break
		}

		content = append(content, stripIndent(body[j]))
	}

	chunk := "```\n" + strings.Join(content, "\n") + "\n```"

	return chunk, j - 1
}

func stripIndent(line string) string {
	if strings.HasPrefix(line, "\t") {
		return line[1:]
	}

	return strings.TrimPrefix(line, "    ")
}
