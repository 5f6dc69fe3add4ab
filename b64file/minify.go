package b64file

// Minify strips comments and insignificant whitespace from CSS source.
//
// The scan is string-literal aware: comment and whitespace rules are
// suppressed inside single- or double-quoted strings, so a "/*" inside
// a quoted value survives untouched. Malformed input never fails; an
// unterminated comment is dropped to end of input and an unterminated
// string is copied through verbatim. The result is stable, applying
// Minify to its own output changes nothing.
func Minify(src string) string {
	out := make([]byte, 0, len(src))
	pendingSpace := false
	i := 0
	for i < len(src) {
		c := src[i]
		if c == '/' && i+1 < len(src) && src[i+1] == '*' {
			i = skipComment(src, i)
			// removal must not splice an emitted '/' and a following
			// '*' into a new comment-open; consume such pairs here so
			// one pass is already a fixpoint
			for len(out) > 0 && out[len(out)-1] == '/' && i < len(src) && src[i] == '*' {
				out = out[:len(out)-1]
				i = skipComment(src, i-1)
			}
			continue
		}
		if isSpace(c) {
			pendingSpace = true
			i++
			continue
		}
		if c == '\'' || c == '"' {
			out = flushSpace(out, pendingSpace, c)
			pendingSpace = false
			end := scanString(src, i)
			out = append(out, src[i:end]...)
			i = end
			continue
		}
		out = flushSpace(out, pendingSpace, c)
		pendingSpace = false
		if c == '}' && len(out) > 0 && out[len(out)-1] == ';' {
			// ";}" is redundant
			out = out[:len(out)-1]
		}
		out = append(out, c)
		i++
	}
	return string(out)
}

// flushSpace emits a single collapsed space unless it would sit next to
// a structural character or at the start of the output.
func flushSpace(out []byte, pending bool, next byte) []byte {
	if !pending || len(out) == 0 {
		return out
	}
	if isStructural(next) || isStructural(out[len(out)-1]) {
		return out
	}
	return append(out, ' ')
}

// skipComment returns the index just past the comment opened at i.
// A comment with no closing "*/" consumes the rest of the input.
func skipComment(src string, i int) int {
	for j := i + 2; j+1 < len(src); j++ {
		if src[j] == '*' && src[j+1] == '/' {
			return j + 2
		}
	}
	return len(src)
}

// scanString returns the index just past the string literal opened at i,
// honoring backslash escapes. An unterminated string runs to end of input.
func scanString(src string, i int) int {
	quote := src[i]
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case '\\':
			j += 2
		case quote:
			return j + 1
		default:
			j++
		}
	}
	return len(src)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isStructural(c byte) bool {
	switch c {
	case '{', '}', ';', ',', ':':
		return true
	}
	return false
}
