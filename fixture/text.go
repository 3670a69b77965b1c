package fixture

import "strings"

// linesWithEnds splits text into lines, each retaining its terminating
// newline. The final line is returned without a terminator when the text
// does not end with one. Empty text yields no lines.
func linesWithEnds(text string) []string {
	if text == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(text, "\n")+1)

	for len(text) > 0 {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			lines = append(lines, text)

			break
		}

		lines = append(lines, text[:idx+1])
		text = text[idx+1:]
	}

	return lines
}

// trimIndent removes the common leading indentation shared by all non-blank
// lines of text. A leading newline is dropped first so raw string literals
// can open on the line after the backtick.
func trimIndent(text string) string {
	text = strings.TrimPrefix(text, "\n")

	indent := -1

	for _, line := range linesWithEnds(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || width < indent {
			indent = width
		}
	}

	if indent <= 0 {
		return text
	}

	var sb strings.Builder

	for _, line := range linesWithEnds(text) {
		if len(line) <= indent {
			// Blank (or whitespace-only) line shorter than the indent.
			sb.WriteString(strings.TrimLeft(line, " \t"))
		} else {
			sb.WriteString(line[indent:])
		}
	}

	return sb.String()
}

// splitOnce splits s around the first occurrence of sep.
// The separator is not included in either half.
func splitOnce(s, sep string) (before, after string, found bool) {
	return strings.Cut(s, sep)
}
