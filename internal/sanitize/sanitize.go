package sanitize

import "strings"

// Entity forms for the five HTML-significant characters.
const (
	entAmp  = "&amp;"
	entLt   = "&lt;"
	entGt   = "&gt;"
	entQuot = "&quot;"
	entApos = "&#039;"
)

var entities = []string{entAmp, entLt, entGt, entQuot, entApos}

// Clean trims surrounding whitespace and escapes &, <, >, " and ' to
// their entity forms. An ampersand that already starts one of the five
// entities is left alone, so cleaning an already-clean string changes
// nothing. Empty input yields an empty string; Clean never fails.
//
// Every string that crosses the trust boundary (registration, login,
// profile and goal fields, the token-derived user id) must go through
// Clean before being compared, hashed, or persisted. Clean is not a
// validator: callers treat an empty result as an empty field.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			if startsEntity(s[i:]) {
				b.WriteByte(c)
			} else {
				b.WriteString(entAmp)
			}
		case '<':
			b.WriteString(entLt)
		case '>':
			b.WriteString(entGt)
		case '"':
			b.WriteString(entQuot)
		case '\'':
			b.WriteString(entApos)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func startsEntity(s string) bool {
	for _, e := range entities {
		if strings.HasPrefix(s, e) {
			return true
		}
	}
	return false
}
