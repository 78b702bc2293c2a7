package serializer

const hex = "0123456789abcdef"

// Quote returns s as a double-quoted string literal.
func Quote(s string, strict bool) string {
	return string(AppendQuote(make([]byte, 0, len(s)+2), s, strict))
}

// AppendQuote appends s as a double-quoted literal. Bytes at or above 0x80
// are copied raw. In the default mode the escape table matches what the
// parser reads, with \xHH for any other control byte; strict mode emits
// only RFC 8259 escapes.
func AppendQuote(dst []byte, s string, strict bool) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' && c != 0x7f {
			continue
		}
		if start < i {
			dst = append(dst, s[start:i]...)
		}
		start = i + 1
		switch c {
		case '"', '\\':
			dst = append(dst, '\\', c)
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = appendControl(dst, c, strict)
		}
	}
	if start < len(s) {
		dst = append(dst, s[start:]...)
	}
	return append(dst, '"')
}

func appendControl(dst []byte, c byte, strict bool) []byte {
	if strict {
		if c == 0x7f {
			return append(dst, c)
		}
		return append(dst, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
	}
	switch c {
	case '\a':
		return append(dst, '\\', 'a')
	case '\v':
		return append(dst, '\\', 'v')
	case 0x1b:
		return append(dst, '\\', 'e')
	}
	return append(dst, '\\', 'x', hex[c>>4], hex[c&0xf])
}
