package txt2md

import (
	"regexp"
	"strings"
)

var reLineEndings = regexp.MustCompile(`\r\n?`)

// Analyze segments text into an ordered sequence of typed blocks using the
// line classifier and the block assembler state machine. It never fails:
// malformed or ambiguous input degrades to paragraph blocks, and an
// unterminated code fence at end of input is flushed as a code block.
func Analyze(text string) Blocks {
	lines := strings.Split(reLineEndings.ReplaceAllString(text, "\n"), "\n")

	asm := &assembler{}

	for idx := 0; idx < len(lines); idx++ {
		idx += asm.feed(lines, idx)
	}

	asm.finish()

	return asm.blocks
}

// assembler folds classified lines into blocks. open holds the block still
// accumulating content (paragraph or quote); list items are never buffered,
// one line makes one block.
type assembler struct {
	blocks Blocks
	open   *Block

	inCode    bool
	fenceInfo string
	code      strings.Builder
}

// feed dispatches one line to the transition matching its classification and
// returns the number of extra lines consumed (1 for a Setext underline).
// Code mode overrides every classification except the closing fence.
func (a *assembler) feed(lines []string, idx int) int {
	c := classifyLine(lines, idx)

	if a.inCode && c.class != lineFence {
		a.code.WriteString(lines[idx])
		a.code.WriteString("\n")

		return 0
	}

	switch c.class {
	case lineFence:
		a.toggleFence(c.info)
	case lineBlank:
		a.flush()
	case lineQuote:
		a.addQuoteLine(c.text)
	case lineList:
		a.addListItem(c)
	case lineHeading:
		a.addHeading(c.heading)

		return c.heading.skip
	case linePlain:
		a.addPlainLine(c.text)
	}

	return 0
}

func (a *assembler) toggleFence(info string) {
	if !a.inCode {
		// Entering code mode leaves any open block untouched; it keeps
		// accumulating after the fence closes.
		a.inCode = true
		a.fenceInfo = info
		a.code.Reset()

		return
	}

	a.emitCode()
}

// emitCode closes code mode and emits the accumulated content, which may be
// empty when the fence was immediately closed.
func (a *assembler) emitCode() {
	block := &Block{Kind: KindCode, Content: a.code.String(), Info: a.fenceInfo}

	if a.fenceInfo != "" {
		block.Lang, block.Meta = parseFenceInfo(a.fenceInfo)
	}

	a.blocks = append(a.blocks, block)

	a.inCode = false
	a.fenceInfo = ""
	a.code.Reset()
}

// addQuoteLine appends to an open quote block, so consecutive quote lines
// merge into one block. Any other open block is flushed first.
func (a *assembler) addQuoteLine(content string) {
	if a.open != nil && a.open.Kind == KindQuote {
		a.open.Content += "\n" + content

		return
	}

	a.flush()

	a.open = &Block{Kind: KindQuote, Content: content}
}

func (a *assembler) addListItem(c classification) {
	a.flush()

	block := &Block{Kind: KindListItem, Content: c.text, ListKind: c.listKind}
	if c.listKind == ListNumbered {
		block.ListIndex = c.listIndex
	}

	a.blocks = append(a.blocks, block)
}

// addHeading emits the heading immediately; residual text left after a
// prefix marker opens a fresh paragraph.
func (a *assembler) addHeading(res headingResult) {
	a.flush()

	a.blocks = append(a.blocks, &Block{Kind: KindHeading, Content: res.text, Level: res.level})

	if res.residual != "" {
		a.open = &Block{Kind: KindParagraph, Content: res.residual}
	}
}

func (a *assembler) addPlainLine(trimmed string) {
	if a.open != nil && a.open.Kind == KindParagraph {
		a.open.Content += " " + trimmed

		return
	}

	a.flush()

	a.open = &Block{Kind: KindParagraph, Content: trimmed}
}

func (a *assembler) flush() {
	if a.open == nil {
		return
	}

	a.blocks = append(a.blocks, a.open)
	a.open = nil
}

// finish emits whatever remains at end of input. An unterminated fence is
// tolerated and flushed as a code block.
func (a *assembler) finish() {
	if a.inCode {
		a.emitCode()

		return
	}

	a.flush()
}
