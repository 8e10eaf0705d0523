package parse

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrUnterminatedQuote = errors.New("unterminated quote")

// Split breaks a command line into tokens following the Windows argument
// rules: words are separated by unquoted blanks, double quotes group words,
// and backslashes are literal unless they precede a double quote, in which
// case each pair yields one backslash and an odd one escapes the quote.
func Split(s string) ([]string, error) {
	if !utf8.ValidString(s) {
		return nil, errors.New("invalid UTF-8 encoding")
	}

	tokens := []string{}
	var (
		arg      strings.Builder
		inQuotes bool
		inToken  bool
	)

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\\':
			n := 0
			for i < len(s) && s[i] == '\\' {
				n++
				i++
			}
			inToken = true
			if i < len(s) && s[i] == '"' {
				arg.WriteString(strings.Repeat(`\`, n/2))
				if n%2 == 1 {
					arg.WriteByte('"')
					i++
				}
				continue
			}
			arg.WriteString(strings.Repeat(`\`, n))
		case c == '"':
			inToken = true
			// "" inside a quoted section is a literal quote
			if inQuotes && i+1 < len(s) && s[i+1] == '"' {
				arg.WriteByte('"')
				i += 2
				continue
			}
			inQuotes = !inQuotes
			i++
		case !inQuotes && (c == ' ' || c == '\t' || c == '\n' || c == '\r'):
			if inToken {
				tokens = append(tokens, arg.String())
				arg.Reset()
				inToken = false
			}
			i++
		default:
			inToken = true
			arg.WriteByte(c)
			i++
		}
	}

	if inQuotes {
		return nil, ErrUnterminatedQuote
	}
	if inToken {
		tokens = append(tokens, arg.String())
	}

	return tokens, nil
}
