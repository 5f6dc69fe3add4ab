package b64file

import (
	"encoding/base64"
	"strings"
)

// WrapWidth is the line width of .b64 output files.
const WrapWidth = 76

// EncodeToString encodes data as standard Base64 wrapped at WrapWidth
// columns. There is no trailing newline.
func EncodeToString(data []byte) string {
	s := base64.StdEncoding.EncodeToString(data)
	if len(s) <= WrapWidth {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/WrapWidth + 1)
	for len(s) > WrapWidth {
		b.WriteString(s[:WrapWidth])
		b.WriteByte('\n')
		s = s[WrapWidth:]
	}
	b.WriteString(s)
	return b.String()
}

// DecodeString decodes Base64 text, wrapped or not.
func DecodeString(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
	return base64.StdEncoding.DecodeString(s)
}
