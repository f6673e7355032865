// Package diff compares rendered chart output line by line.
package diff

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines = 2000
	// maxLineWidth caps printed lines; a page keeps the chart options on one line.
	maxLineWidth    = 400
	truncateMessage = "... (diff truncated) ..."
)

// Unified reports the lines that differ between before and after. Unchanged
// lines are omitted; each hunk starts with the line numbers it covers. It
// returns "" when the inputs are equal.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}
	if !utf8.Valid(before) || !utf8.Valid(after) {
		return fmt.Sprintf("Binary files %s and %s differ (%d -> %d bytes)\n", beforeLabel, afterLabel, len(before), len(after))
	}

	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", beforeLabel, afterLabel)

	beforeLine, afterLine := 1, 1
	inHunk := false
	written := 0
	for _, d := range diffs {
		lines := splitLines(d.Text)
		if d.Type == diffmatchpatch.DiffEqual {
			beforeLine += len(lines)
			afterLine += len(lines)
			inHunk = false
			continue
		}
		if !inHunk {
			fmt.Fprintf(&buf, "@@ -%d +%d @@\n", beforeLine, afterLine)
			inHunk = true
		}

		prefix := "-"
		if d.Type == diffmatchpatch.DiffInsert {
			prefix = "+"
			afterLine += len(lines)
		} else {
			beforeLine += len(lines)
		}
		for _, line := range lines {
			if written == maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(clip(line))
			buf.WriteString("\n")
			written++
		}
	}

	return buf.String()
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func clip(line string) string {
	if len(line) <= maxLineWidth {
		return line
	}
	cut := maxLineWidth
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return line[:cut] + "…"
}
