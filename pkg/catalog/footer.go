package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/tcutils/pkg/glyph"
	"tableflip.dev/tcutils/pkg/timeutil"
)

// Version is the catalog format tag recorded in the footer.
type Version string

const (
	// V1 footers separate their fields with colons.
	V1 Version = "v1"
	// V2 footers separate their fields with commas.
	V2 Version = "v2"

	// CurrentVersion is written by Render.
	CurrentVersion = V2
)

// Valid reports whether v is a known format tag.
func (v Version) Valid() bool {
	return v == V1 || v == V2
}

func (v Version) delimiter() string {
	if v == V1 {
		return ":"
	}
	return ","
}

// FooterStyle selects how the footer line is framed.
type FooterStyle string

const (
	// FooterComment wraps the footer in a /* */ comment.
	FooterComment FooterStyle = "comment"
	// FooterPlain indents the footer by two spaces without brackets.
	FooterPlain FooterStyle = "plain"
)

// ParseFooterStyle converts raw into a FooterStyle. Empty selects
// FooterComment.
func ParseFooterStyle(raw string) (FooterStyle, error) {
	switch s := FooterStyle(strings.ToLower(strings.TrimSpace(raw))); s {
	case "":
		return FooterComment, nil
	case FooterComment, FooterPlain:
		return s, nil
	default:
		return FooterComment, fmt.Errorf("catalog: unknown footer style %q", raw)
	}
}

// Footer is the metadata line closing a catalog file.
type Footer struct {
	Version   Version
	Count     int
	Timestamp time.Time
}

// String renders the footer line in the given style.
func (f Footer) String(style FooterStyle) string {
	d := f.Version.delimiter()
	field := glyph.FooterPrefix + string(f.Version) + d + strconv.Itoa(f.Count) + d + timeutil.FormatStamp(f.Timestamp)
	if style == FooterPlain {
		return glyph.Indent + field
	}
	return glyph.CommentOpen + "  " + field + "  " + glyph.CommentClose
}

// IsFooter reports whether line carries a footer marker: the prefix token
// anywhere, or a leading comment opener.
func IsFooter(line string) bool {
	return strings.Contains(line, glyph.FooterPrefix) ||
		strings.HasPrefix(strings.TrimLeft(line, " \t"), glyph.CommentOpen)
}

// ParseFooter decodes a footer line. ok reports whether the line is marked
// as a footer at all; err is set when it is marked but its fields are
// unusable. The version is the second delimited field and the count the
// third.
func ParseFooter(line string) (f Footer, ok bool, err error) {
	if !IsFooter(line) {
		return Footer{}, false, nil
	}

	fields := splitFields(line, 4)
	if len(fields) < 3 {
		return Footer{}, true, fmt.Errorf("catalog: footer %q: missing fields", line)
	}

	f.Version = Version(strings.TrimSpace(fields[1]))
	if !f.Version.Valid() {
		return Footer{}, true, fmt.Errorf("catalog: footer %q: unknown format version %q", line, f.Version)
	}

	count, err := strconv.Atoi(strings.TrimSpace(trimComment(fields[2])))
	if err != nil {
		return Footer{}, true, fmt.Errorf("catalog: footer %q: invalid count: %w", line, err)
	}
	if count < 0 {
		return Footer{}, true, fmt.Errorf("catalog: footer %q: negative count %d", line, count)
	}
	f.Count = count

	if len(fields) == 4 {
		// The timestamp is informational; an unreadable one stays zero.
		if ts, err := timeutil.ParseStamp(trimComment(fields[3])); err == nil {
			f.Timestamp = ts
		}
	}
	return f, true, nil
}

// splitFields splits s at the first n-1 commas or colons.
func splitFields(s string, n int) []string {
	out := make([]string, 0, n)
	for len(out) < n-1 {
		i := strings.IndexAny(s, ",:")
		if i < 0 {
			break
		}
		out = append(out, s[:i])
		s = s[i+1:]
	}
	return append(out, s)
}

func trimComment(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, glyph.CommentClose)
	return strings.TrimSpace(s)
}
