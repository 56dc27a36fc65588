package extractor

import (
	"strings"
)

// Tag is one @-tag of a documentation comment.
type Tag struct {
	// Title is the tag name without the @, e.g. "route"
	Title string
	// Description is the text following the tag up to the next tag, with
	// comment decoration removed and indentation preserved
	Description string
	// Line is the zero-based line of the tag within the comment
	Line int
}

// ParseTags splits a block comment into its tags. The comment may still
// carry its /* */ delimiters. Leading "*" decoration is removed from every
// line before tags are recognized; a tag starts at a line whose first
// non-blank character is @ followed by a letter.
func ParseTags(comment string) []Tag {
	lines := unwrap(comment)

	var (
		tags   []Tag
		cur    *Tag
		inline string
		body   []string
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Description = joinDescription(inline, body)
		tags = append(tags, *cur)
		cur, inline, body = nil, "", nil
	}

	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if title, rest, ok := cutTag(trimmed); ok {
			flush()
			cur = &Tag{Title: title, Line: i}
			inline = rest
			continue
		}
		if cur != nil {
			body = append(body, line)
		}
	}
	flush()
	return tags
}

// FindTag returns the first tag with the given title.
func FindTag(tags []Tag, title string) (Tag, bool) {
	for _, t := range tags {
		if t.Title == title {
			return t, true
		}
	}
	return Tag{}, false
}

// unwrap strips the comment delimiters and the "*" gutter, keeping the
// indentation that follows the gutter.
func unwrap(comment string) []string {
	comment = strings.TrimPrefix(comment, "/*")
	comment = strings.TrimSuffix(comment, "*/")

	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		t := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(t, "*") {
			t = strings.TrimPrefix(t[1:], " ")
			lines[i] = t
			continue
		}
		lines[i] = line
	}
	return lines
}

func cutTag(s string) (title, rest string, ok bool) {
	if len(s) < 2 || s[0] != '@' || !isLetter(s[1]) {
		return "", "", false
	}
	end := 1
	for end < len(s) && isTagChar(s[end]) {
		end++
	}
	return s[1:end], strings.TrimLeft(s[end:], " \t"), true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isTagChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

// joinDescription assembles a tag description. When the tag line carries
// text, the following lines are kept verbatim so nested YAML stays nested
// under it; otherwise the block is dedented by its common indentation.
func joinDescription(inline string, body []string) string {
	body = trimBlankLines(body)
	if inline == "" {
		return strings.Join(dedent(body), "\n")
	}
	if len(body) == 0 {
		return inline
	}
	return inline + "\n" + strings.Join(body, "\n")
}

func trimBlankLines(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func dedent(lines []string) []string {
	indent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= indent {
			out[i] = l[indent:]
		} else {
			out[i] = strings.TrimLeft(l, " \t")
		}
	}
	return out
}
