package pipeline

import "github.com/clipperhouse/uax29/v2/graphemes"

// LineLimit configures a line-limited render used for list rows and
// summaries.
type LineLimit struct {
	// MaxLines is the number of display lines kept. Zero or less keeps
	// everything.
	MaxLines int
	// Width soft-wraps lines every Width grapheme clusters. Zero or less
	// only breaks lines on newlines.
	Width int
}

// Limit cuts a rendered model to the first opts.MaxLines display lines.
//
// Every block starts on a new line; the spacing between blocks is not
// counted. Visible runs keep their styles exactly and are only shortened at
// the cut. When content is hidden the result is marked Truncated and its
// last block ends with an Ellipsis run. Limit works on the finished model,
// so truncation never changes how the note was parsed. The input model is
// not modified.
func Limit(m *Model, opts LineLimit) *Model {
	if m == nil || opts.MaxLines <= 0 {
		return m
	}

	out := &Model{Blocks: make([]Block, 0, len(m.Blocks))}
	remaining := opts.MaxLines
	for i, b := range m.Blocks {
		meas := measure(b, opts.Width, remaining)
		last := i == len(m.Blocks)-1
		if !meas.cut {
			remaining -= meas.lines
			if last || remaining > 0 {
				out.Blocks = append(out.Blocks, b)
				continue
			}
		}
		out.Blocks = append(out.Blocks, ellipsize(b, meas, opts.Width))
		out.Truncated = true
		break
	}
	return out
}

// measurement describes how a block fits into a line budget.
type measurement struct {
	lines int  // lines used, at most the budget
	cut   bool // content past the budget exists

	// End of the last visible grapheme cluster: run index and byte offset.
	endRun, endOffset int
	// Byte size of that cluster and its column on its line.
	lastSize, lastCol int
}

// measure walks the grapheme clusters of a block and stops at the first
// cluster that would land past the budget. Trailing newlines do not open a
// line until visible text follows them.
func measure(b Block, width, budget int) measurement {
	var meas measurement
	line, col, pending := 1, 0, 0
	for ri, r := range b.Runs {
		offset := 0
		seg := graphemes.FromString(r.Text)
		for seg.Next() {
			g := seg.Value()
			offset += len(g)
			if g == "\n" {
				pending++
				continue
			}
			if pending > 0 {
				line += pending
				col, pending = 0, 0
			}
			if width > 0 && col == width {
				line++
				col = 0
			}
			if line > budget {
				meas.lines = budget
				meas.cut = true
				return meas
			}
			col++
			meas.endRun, meas.endOffset = ri, offset
			meas.lastSize, meas.lastCol = len(g), col
		}
	}
	meas.lines = line
	return meas
}

// ellipsize keeps the visible prefix of a block and appends the ellipsis.
// A line already filled to width gives up its last cluster for it.
func ellipsize(b Block, meas measurement, width int) Block {
	runs := make([]Run, 0, meas.endRun+2)
	runs = append(runs, b.Runs[:meas.endRun]...)
	if meas.endRun < len(b.Runs) {
		tail := b.Runs[meas.endRun]
		tail.Text = tail.Text[:meas.endOffset]
		runs = append(runs, tail)
	}

	if width > 0 && meas.lastCol >= width && meas.lastSize > 0 {
		tail := &runs[len(runs)-1]
		tail.Text = tail.Text[:len(tail.Text)-meas.lastSize]
	}
	// Drop empty tails left by the cut.
	for len(runs) > 0 && runs[len(runs)-1].Text == "" {
		runs = runs[:len(runs)-1]
	}

	return Block{Runs: append(runs, Run{Text: Ellipsis})}
}
