package projectfs

import "strings"

// Region describes a managed chunk of a file delimited by two marker lines.
// Marker lines are matched after trimming surrounding whitespace.
type Region struct {
	Start string
	End   string
}

// PatchResult reports what a patch operation did to a file.
type PatchResult int

const (
	// Unchanged means the content was already present.
	Unchanged PatchResult = iota
	// Inserted means a snippet was added to the import block.
	Inserted
	// Appended means content was added at the end of the file.
	Appended
	// Replaced means an existing managed region was rewritten.
	Replaced
)

// String returns the result name.
func (r PatchResult) String() string {
	switch r {
	case Unchanged:
		return "unchanged"
	case Inserted:
		return "inserted"
	case Appended:
		return "appended"
	case Replaced:
		return "replaced"
	}
	return "unknown"
}

// ContainsSnippet reports whether snippet occurs in text aligned on line
// boundaries. Leading blank lines of the snippet are ignored and CRLF line
// endings compare equal to LF.
func ContainsSnippet(text, snippet string) bool {
	needle := withNewline(strings.TrimLeft(normalizeNewlines(snippet), "\n"))
	if needle == "" {
		return true
	}
	return strings.Contains("\n"+withNewline(normalizeNewlines(text)), "\n"+needle)
}

// InsertImport adds snippet after the leading import block of text, or at the
// top when text has none. Text already containing snippet is returned as is.
func InsertImport(text, snippet string) (string, PatchResult) {
	if ContainsSnippet(text, snippet) {
		return text, Unchanged
	}

	snippet = withNewline(strings.TrimLeft(snippet, "\n"))
	end := importBlockEnd(text)
	head := text[:end]
	if head != "" && !strings.HasSuffix(head, "\n") {
		head += "\n"
	}
	return head + snippet + text[end:], Inserted
}

// AppendSnippet adds snippet at the end of text unless it is already present.
func AppendSnippet(text, snippet string) (string, PatchResult) {
	if ContainsSnippet(text, snippet) {
		return text, Unchanged
	}

	if text == "" {
		return withNewline(strings.TrimLeft(snippet, "\n")), Appended
	}
	return withNewline(text) + withNewline(snippet), Appended
}

// FindRegion locates the interior of region in text. The returned offsets
// span the lines strictly between the start and end markers.
func FindRegion(text string, region Region) (start, end int, ok bool) {
	offset := 0
	start = -1
	for offset < len(text) {
		lineEnd := len(text)
		if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
			lineEnd = offset + i + 1
		}
		line := strings.TrimSpace(text[offset:lineEnd])

		switch {
		case start < 0 && line == strings.TrimSpace(region.Start):
			start = lineEnd
		case start >= 0 && line == strings.TrimSpace(region.End):
			return start, offset, true
		}
		offset = lineEnd
	}
	return 0, 0, false
}

// RegionBody returns the interior of region in text.
func RegionBody(text string, region Region) (string, bool) {
	start, end, ok := FindRegion(text, region)
	if !ok {
		return "", false
	}
	return text[start:end], true
}

// ReplaceRegion replaces the interior of region with content. When the region
// is missing a new delimited chunk is appended to text.
func ReplaceRegion(text string, region Region, content string) (string, PatchResult) {
	content = withNewline(content)

	if start, end, ok := FindRegion(text, region); ok {
		if text[start:end] == content {
			return text, Unchanged
		}
		return text[:start] + content + text[end:], Replaced
	}

	chunk := withNewline(region.Start) + content + withNewline(region.End)
	if strings.TrimSpace(text) == "" {
		return chunk, Appended
	}
	return withNewline(text) + "\n" + chunk, Appended
}

// importBlockEnd returns the offset just past the last line of the leading
// import block. A leading module docstring stays above the block, blank and
// comment lines inside the block are skipped, and parenthesised multi-line
// imports are treated as one statement.
func importBlockEnd(text string) int {
	end := docstringEnd(text)
	offset := end
	inParens := false
	for offset < len(text) {
		lineEnd := len(text)
		if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
			lineEnd = offset + i + 1
		}
		line := strings.TrimSpace(text[offset:lineEnd])

		switch {
		case inParens:
			if strings.Contains(line, ")") {
				inParens = false
				end = lineEnd
			}
		case isImportLine(line):
			end = lineEnd
			if strings.Contains(line, "(") && !strings.Contains(line, ")") {
				inParens = true
			}
		case line == "" || strings.HasPrefix(line, "#"):
		default:
			return end
		}
		offset = lineEnd
	}
	return end
}

// docstringEnd returns the offset just past a module docstring that opens
// the text after optional blank and comment lines, or 0 when there is none.
func docstringEnd(text string) int {
	offset := 0
	quote := ""
	for offset < len(text) {
		lineEnd := len(text)
		if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
			lineEnd = offset + i + 1
		}
		line := strings.TrimSpace(text[offset:lineEnd])

		switch {
		case quote != "":
			if strings.Contains(line, quote) {
				return lineEnd
			}
		case line == "" || strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, `"""`) || strings.HasPrefix(line, "'''"):
			quote = line[:3]
			if strings.Contains(line[3:], quote) {
				return lineEnd
			}
		default:
			return 0
		}
		offset = lineEnd
	}
	return 0
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

func isImportLine(line string) bool {
	return strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "from ")
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
