package xlsx

import "strings"

// IsBuiltInDateFormat reports whether a built-in number format id renders a
// date or time (ECMA-376 18.8.30, plus the CJK locale ids).
func IsBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// IsDateFormat reports whether a custom number format code renders a date or
// time. Quoted literals, escaped characters and bracketed sections such as
// colours or locales are ignored; elapsed-time brackets ([h], [mm], [ss]) count.
func IsDateFormat(code string) bool {
	// only the positive section decides
	if i := strings.Index(code, ";"); i >= 0 {
		code = code[:i]
	}
	code = strings.ToLower(code)

	inQuote := false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '\\' || c == '_' || c == '*':
			i++
		case c == '[':
			end := strings.IndexByte(code[i:], ']')
			if end < 0 {
				return false
			}
			inner := code[i+1 : i+end]
			if inner != "" && strings.Trim(inner, "hms") == "" {
				return true
			}
			i += end
		case strings.IndexByte("ymdhs", c) >= 0:
			return true
		}
	}
	return false
}
