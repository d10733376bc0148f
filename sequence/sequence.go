// Package sequence converts text lines into integer sequences and back.
//
// Input lines hold integers separated by a single delimiter byte. Each token is read
// with atol-like prefix semantics: leading blanks, an optional sign and the longest
// run of decimal digits. Tokens without a leading digit run are dropped, so a
// malformed line yields a shorter (possibly empty) sequence instead of an error.
//
// Output lines are the decimal values joined with commas, without a terminator.
package sequence

import (
	"strconv"
	"strings"
)

// Parse returns the integers contained in line.
func Parse(line string, delim byte) []int64 {
	return AppendParse(nil, line, delim)
}

// AppendParse appends the integers contained in line to dst and returns the extended slice.
func AppendParse(dst []int64, line string, delim byte) []int64 {
	line = strings.TrimSuffix(line, "\r")

	for len(line) > 0 {
		var token string
		if i := strings.IndexByte(line, delim); i >= 0 {
			token, line = line[:i], line[i+1:]
		} else {
			token, line = line, ""
		}

		if v, ok := parseToken(token); ok {
			dst = append(dst, v)
		}
	}

	return dst
}

// parseToken reads the numeric prefix of token.
func parseToken(token string) (int64, bool) {
	i := 0
	for i < len(token) && (token[i] == ' ' || token[i] == '\t') {
		i++
	}

	start := i
	if i < len(token) && (token[i] == '+' || token[i] == '-') {
		i++
	}

	digits := i
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, false
	}

	v, err := strconv.ParseInt(token[start:i], 10, 64)
	if err != nil {
		// out of int64 range
		return 0, false
	}

	return v, true
}

// Format joins seq with commas. An empty sequence formats as an empty string.
func Format(seq []int64) string {
	return string(AppendFormat(nil, seq))
}

// AppendFormat appends the comma-joined representation of seq to dst.
func AppendFormat(dst []byte, seq []int64) []byte {
	for i, v := range seq {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, v, 10)
	}
	return dst
}
