package splicer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultIndentSize is the extra nesting depth applied to spliced
// content relative to the line that referenced it.
const DefaultIndentSize = 2

var (
	// ErrMissingFile reports a placeholder referencing a file that
	// does not exist next to the template.
	ErrMissingFile = errors.New("referenced file not found")

	// ErrEmptyFile reports a referenced file with no content or
	// only whitespace.
	ErrEmptyFile = errors.New("referenced file is empty")
)

// placeholderPattern matches a double-quoted double-brace file
// reference: "{{ name.ext }}". The quotes are part of the token.
var placeholderPattern = regexp.MustCompile(
	`"{{\s*(\S+)\.(\w+)\s*}}"`,
)

// Match holds the parts of a located placeholder. It exists only
// while the line it was found on is being expanded.
type Match struct {
	// Remainder is the line with the placeholder token removed,
	// surrounding text and line terminator preserved.
	Remainder string

	// FileName is the referenced file name including extension.
	FileName string

	// Indent is the column at which spliced content is emitted.
	Indent int
}

// Splicer expands placeholders found in template lines. A zero or
// negative IndentSize falls back to DefaultIndentSize.
type Splicer struct {
	// IndentSize is the extra indentation applied to spliced
	// content relative to the referencing line.
	IndentSize int
}

func (sp *Splicer) indentSize() int {
	if sp.IndentSize <= 0 {
		return DefaultIndentSize
	}

	return sp.IndentSize
}

// MatchPlaceholder scans one line for a placeholder. Only the first
// occurrence is honored; any further tokens stay verbatim in the
// remainder. Lines that almost match the grammar (missing quotes,
// missing extension) are not placeholders and report no match.
func (sp *Splicer) MatchPlaceholder(line string) (Match, bool) {
	groups := placeholderPattern.FindStringSubmatch(line)
	if groups == nil {
		return Match{}, false
	}

	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	leading := utf8.RuneCountInString(
		line[:len(line)-len(stripped)],
	)

	return Match{
		Remainder: strings.Replace(line, groups[0], "", 1),
		FileName:  groups[1] + "." + groups[2],
		Indent:    leading + sp.indentSize(),
	}, true
}

// ExpandPlaceholder loads the file referenced by ma, resolved
// relative to dir, and returns the lines replacing the original
// template line. Missing and empty referenced files surface as
// ErrMissingFile and ErrEmptyFile respectively.
func (sp *Splicer) ExpandPlaceholder(
	dir string,
	ma Match,
) ([]string, error) {
	const errCtx = "expanding placeholder"

	pa := filepath.Join(dir, ma.FileName)

	content, err := readLines(pa)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	if isBlank(content) {
		return nil, fmt.Errorf(
			"%s: %s: %w", errCtx, pa, ErrEmptyFile,
		)
	}

	if len(content) == 1 {
		inline := strings.TrimSuffix(content[0], "\n")

		return []string{
			spliceAtTerminator(ma.Remainder, inline),
		}, nil
	}

	// The spliced block must end on its own line so the next
	// template line is not glued to it.
	last := len(content) - 1
	if !strings.HasSuffix(content[last], "\n") {
		content[last] += "\n"
	}

	if isYAML(ma.FileName) {
		// Nested mappings and sequences splice directly; a
		// document-start marker is not valid at that position.
		if content[0] == "---\n" {
			content = content[1:]
		}

		out := make([]string, 0, len(content)+1)
		out = append(out, ma.Remainder)

		return append(
			out, indentLines(content, ma.Indent)...,
		), nil
	}

	out := make([]string, 0, len(content)+1)
	out = append(out, spliceAtTerminator(ma.Remainder, "|"))

	return append(
		out, indentLines(content, ma.Indent)...,
	), nil
}

// ProcessLines expands every placeholder in a template's lines.
// dir is the directory containing the template; referenced files
// resolve against it, never against a global root. Lines without
// a placeholder pass through unchanged.
func (sp *Splicer) ProcessLines(
	dir string,
	lines []string,
) ([]string, error) {
	const errCtx = "processing template lines"

	processed := make([]string, 0, len(lines))

	for _, li := range lines {
		ma, ok := sp.MatchPlaceholder(li)
		if !ok {
			processed = append(processed, li)
			continue
		}

		expanded, err := sp.ExpandPlaceholder(dir, ma)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		processed = append(processed, expanded...)
	}

	return processed, nil
}

// SplitLines splits content into lines, each retaining its trailing
// newline. The final line keeps its missing terminator if content
// does not end with one. Empty content yields no lines.
func SplitLines(content string) []string {
	var lines []string

	for content != "" {
		idx := strings.IndexByte(content, '\n')
		if idx < 0 {
			lines = append(lines, content)
			break
		}

		lines = append(lines, content[:idx+1])
		content = content[idx+1:]
	}

	return lines
}

// readLines loads a referenced file as a line sequence.
func readLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // resolved against the template's own directory
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf(
				"%s: %w", path, ErrMissingFile,
			)
		}

		return nil, err
	}

	return SplitLines(string(raw)), nil
}

// spliceAtTerminator inserts text immediately before the line
// terminator, preserving the terminator's presence or absence.
func spliceAtTerminator(line string, text string) string {
	if strings.HasSuffix(line, "\n") {
		return strings.TrimSuffix(line, "\n") + text + "\n"
	}

	return line + text
}

// indentLines prefixes each line with width spaces. Blank lines
// become a bare newline so the output never carries lines of
// trailing whitespace.
func indentLines(lines []string, width int) []string {
	pad := strings.Repeat(" ", width)

	indented := make([]string, 0, len(lines))

	for _, li := range lines {
		if strings.TrimSpace(li) == "" {
			indented = append(indented, "\n")
			continue
		}

		indented = append(indented, pad+li)
	}

	return indented
}

func isYAML(name string) bool {
	ext := strings.ToLower(
		strings.TrimPrefix(filepath.Ext(name), "."),
	)

	return ext == "yaml" || ext == "yml"
}

func isBlank(lines []string) bool {
	for _, li := range lines {
		if strings.TrimSpace(li) != "" {
			return false
		}
	}

	return true
}
