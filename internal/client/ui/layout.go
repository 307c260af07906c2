package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	minInputRows = 2
	maxInputRows = 8

	// Border rows of the input box plus the button row
	inputChromeRows = 3
	statusRows      = 1

	minWidth  = 20
	minHeight = 8
)

// rect is a cell rectangle on screen, origin top-left
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout holds the computed geometry of one frame
type layout struct {
	width         int
	height        int
	historyHeight int
	inputRows     int
	innerWidth    int // usable width inside the input box
	button        rect
}

// computeLayout splits the screen between history, input box and status line
func computeLayout(width, height, inputRows int) layout {
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	inputRows = clamp(inputRows, minInputRows, maxInputRows)

	l := layout{
		width:     width,
		height:    height,
		inputRows: inputRows,
	}

	hFrame := inputBoxStyle.GetHorizontalFrameSize()
	l.innerWidth = width - hFrame
	if l.innerWidth < 1 {
		l.innerWidth = 1
	}

	l.historyHeight = height - (inputRows + inputChromeRows) - statusRows
	if l.historyHeight < 1 {
		l.historyHeight = 1
	}

	buttonWidth := lipgloss.Width(buttonStyle.Render(submitLabel))
	l.button = rect{
		x: inputBoxStyle.GetBorderLeftSize() + inputBoxStyle.GetPaddingLeft() + l.innerWidth - buttonWidth,
		y: l.historyHeight + inputBoxStyle.GetBorderTopSize() + inputRows,
		w: buttonWidth,
		h: 1,
	}
	return l
}

// inputRowsFor estimates how many visual rows text needs at the given width
func inputRowsFor(text string, width int) int {
	if width <= 0 {
		width = 1
	}

	rows := 0
	for _, line := range strings.Split(text, "\n") {
		w := runewidth.StringWidth(line)
		if w == 0 {
			rows++
			continue
		}
		rows += (w + width - 1) / width
	}
	return clamp(rows, minInputRows, maxInputRows)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
