package domain

import (
	"strings"
)

// frontmatterDelim is the standalone line that opens and closes the
// metadata block at the very start of a recipe file.
const frontmatterDelim = "---"

// Frontmatter is the parsed metadata block of a recipe file. Keys are
// folded to lower case; values have surrounding matching quotes removed.
type Frontmatter struct {
	// Fields holds the key/value pairs of the block.
	Fields map[string]string

	// Body is everything after the closing delimiter.
	Body string
}

// Title returns the title field, or "" when absent.
func (f Frontmatter) Title() string { return f.Fields["title"] }

// Description returns the description field, or "" when absent.
func (f Frontmatter) Description() string { return f.Fields["description"] }

// ParseFrontmatter splits content into its metadata block and body. The
// block must start on the first line with a line containing only "---" and
// end with a second such line; between them every non-blank line must be a
// "key: value" pair. Any deviation is a validation failure.
func ParseFrontmatter(content string) (Frontmatter, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != frontmatterDelim {
		return Frontmatter{}, NewValidationError("content must start with a '---' frontmatter block", nil)
	}

	fields := make(map[string]string)
	for i := 1; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if line == frontmatterDelim {
			return Frontmatter{
				Fields: fields,
				Body:   strings.Join(lines[i+1:], "\n"),
			}, nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return Frontmatter{}, NewValidationError("frontmatter line is not a 'key: value' pair", nil)
		}
		fields[strings.ToLower(strings.TrimSpace(key))] = unquote(strings.TrimSpace(value))
	}
	return Frontmatter{}, NewValidationError("frontmatter block is missing its closing '---'", nil)
}

// ExtractTitle parses the frontmatter and returns its title. A missing
// block, a malformed block, or an absent/empty title is a validation
// failure.
func ExtractTitle(content string) (string, error) {
	fm, err := ParseFrontmatter(content)
	if err != nil {
		return "", err
	}
	title := fm.Title()
	if title == "" {
		return "", NewValidationError("frontmatter has no title", nil)
	}
	return title, nil
}

// StripFrontmatter returns the body of content with a valid frontmatter
// block removed, or content unchanged when no valid block is present. It
// never fails; parsers use it to avoid feeding metadata lines to the
// Cooklang grammar.
func StripFrontmatter(content string) string {
	fm, err := ParseFrontmatter(content)
	if err != nil {
		return content
	}
	return fm.Body
}

// unquote removes one pair of matching single or double quotes around s.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
