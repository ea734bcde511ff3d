package meta

import (
	"strings"

	"greg-hacke/keyence-meta/tags"
)

// dataTag delimits the vendor metadata block inside the file payload.
const dataTag = "Data"

// Extract parses the vendor metadata block out of the decoded file content
// and returns the field record. With no <Data> block the record is empty;
// missing sections, tags, or malformed markup degrade to absent fields.
// Extract is a pure function and never fails.
func Extract(content string) *Record {
	rec := newRecord()

	data, ok := tagSpan(content, dataTag)
	if !ok {
		return rec
	}

	// At most one sub-block per section; a missing section leaves all of
	// its fields absent.
	sections := make(map[string]string, len(tags.Sections))
	for _, name := range tags.Sections {
		if body, found := tagSpan(data, name); found {
			sections[name] = body
		}
	}

	for _, def := range tags.Fields {
		f := Field{Key: def.Key, Double: def.Double}
		if body, found := sections[def.Section]; found {
			if value, found := extractField(body, def); found {
				f.Value = value
				f.Present = true
			}
		}
		rec.add(f)
	}
	return rec
}

// extractField applies the field's extraction shape to a section body:
// wrapped fields are searched only inside their wrapper block, nested
// pairs need both the outer tag and the sub-tag, everything else is a
// direct value.
func extractField(body string, def tags.FieldDef) (string, bool) {
	if def.Wrapper != "" {
		inner, ok := tagSpan(body, def.Wrapper)
		if !ok {
			return "", false
		}
		body = inner
	}
	if def.SubTag != "" {
		outer, ok := tagSpan(body, def.Tag)
		if !ok {
			return "", false
		}
		return directValue(outer, def.SubTag)
	}
	return directValue(body, def.Tag)
}

// tagSpan returns the text between the leftmost <name ...> marker and the
// first </name ...> marker after it. Markers may carry attributes; tag
// names match exactly. The span does not handle nesting: the leftmost
// closer wins, and both markers must be present.
func tagSpan(s, name string) (string, bool) {
	_, open, ok := findMarker(s, "<"+name)
	if !ok {
		return "", false
	}
	body := s[open:]
	end, _, ok := findMarker(body, "</"+name)
	if !ok {
		return "", false
	}
	return body[:end], true
}

// directValue extracts the text content of the leftmost <tag ...> marker,
// stopping at the first '<'. That '<' must begin the matching closing
// marker, otherwise the content holds nested structure and the field is
// treated as absent. The captured text is trimmed of surrounding
// whitespace.
func directValue(s, tag string) (string, bool) {
	_, open, ok := findMarker(s, "<"+tag)
	if !ok {
		return "", false
	}
	rest := s[open:]
	lt := strings.IndexByte(rest, '<')
	if lt < 0 {
		return "", false
	}
	if start, _, ok := findMarker(rest[lt:], "</"+tag); !ok || start != 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:lt]), true
}

// findMarker locates the leftmost occurrence of prefix ("<Name" or
// "</Name") that forms a complete marker: the name must be terminated by
// '>' directly or by whitespace-led attributes up to the next '>'. This
// keeps matching tag-name-exact ("<Lens" never matches "<LensName").
// Returns the marker's start index and the index just past its '>'.
func findMarker(s, prefix string) (start, end int, ok bool) {
	from := 0
	for {
		i := strings.Index(s[from:], prefix)
		if i < 0 {
			return 0, 0, false
		}
		i += from
		j := i + len(prefix)
		if j < len(s) {
			switch s[j] {
			case '>':
				return i, j + 1, true
			case ' ', '\t', '\r', '\n':
				if k := strings.IndexByte(s[j:], '>'); k >= 0 {
					return i, j + k + 1, true
				}
			}
		}
		from = i + 1
	}
}
