package main

import (
	"fmt"
	"strings"
)

const (
	freeGlyph = "·"
	headGlyph = "█"
	contGlyph = "▓"
)

func (m *model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("poolviz - %d x %d-byte blocks, seed %d",
		m.cfg.numBlocks, m.cfg.blockSize, m.cfg.seed)
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(mapStyle.Render(m.renderBlockMap()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

// renderBlockMap draws one glyph per block: free, head, or continuation.
// Rows wrap to the terminal width.
func (m *model) renderBlockMap() string {
	cols := m.width - 6 // border + padding
	if cols < 16 {
		cols = 16
	}

	table := m.pool.Table()
	var rows []string
	var row strings.Builder
	for i, e := range table {
		switch {
		case e > 0:
			row.WriteString(headBlockStyle.Render(headGlyph))
		case e < 0:
			row.WriteString(contBlockStyle.Render(contGlyph))
		default:
			row.WriteString(freeBlockStyle.Render(freeGlyph))
		}
		if (i+1)%cols == 0 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func (m *model) renderStatus() string {
	s := m.pool.Stats()
	status := fmt.Sprintf(
		"step %d | live %d | free %d/%d blocks | largest run %d | alloc %d (%d failed) | %s/step",
		m.step, len(m.live), m.pool.FreeBlocks(), m.pool.NumBlocks(),
		m.pool.LargestRun(), s.AllocCalls, s.AllocFailed, m.interval,
	)

	line := statusStyle.Render(status)
	if m.paused {
		line += " " + pausedStyle.Render("PAUSED")
	}
	line += "\n" + statusStyle.Render("space pause · n step · r reset · +/- speed · q quit")
	return line
}
