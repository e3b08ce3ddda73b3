package generator

import (
	"fmt"
	"strings"
	"text/template"
)

// cString quotes s as a C string literal. Quotes, backslashes and control
// bytes are escaped; everything else is copied through.
func cString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				// Octal escapes stop after three digits, unlike \x.
				fmt.Fprintf(&sb, `\%03o`, c)
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// GetCommonFuncMap returns the template functions shared by both artifact templates.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"cstring": cString,
	}
}
