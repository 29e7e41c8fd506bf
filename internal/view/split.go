package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SplitWidths divides total columns between the two panes, leaving three
// columns for the separator.
func SplitWidths(total int) (left, right int) {
	left = total/2 - 1
	right = total - left - 3
	return max(0, left), max(0, right)
}

// SplitPane places left and right side by side, separated by a rule.
// Both sides are padded to maxHeight lines at most.
func SplitPane(left, right string, leftWidth, rightWidth, maxHeight int) string {
	leftLines := strings.Split(strings.TrimSuffix(left, "\n"), "\n")
	rightLines := strings.Split(strings.TrimSuffix(right, "\n"), "\n")

	// Pad to equal height.
	maxLines := max(len(leftLines), len(rightLines))
	if maxLines > maxHeight {
		maxLines = maxHeight
	}
	for len(leftLines) < maxLines {
		leftLines = append(leftLines, "")
	}
	for len(rightLines) < maxLines {
		rightLines = append(rightLines, "")
	}

	sep := dimStyle.Render("│")
	var b strings.Builder
	for i := 0; i < maxLines; i++ {
		b.WriteString(padOrTruncate(leftLines[i], leftWidth))
		b.WriteString(" ")
		b.WriteString(sep)
		b.WriteString(" ")
		b.WriteString(padOrTruncate(rightLines[i], rightWidth))
		b.WriteRune('\n')
	}
	return b.String()
}

// padOrTruncate fits a styled line to exactly width visible columns.
func padOrTruncate(line string, width int) string {
	w := lipgloss.Width(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}

// TruncateLines truncates each line in content to at most width visible
// characters, preserving ANSI escape codes. This prevents terminal line
// wrapping when the window is resized narrower.
func TruncateLines(content string, width int) string {
	if width <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
