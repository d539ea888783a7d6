package tags

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxNameLength bounds the stored tag name.
const MaxNameLength = 32

// A tag token is a '#' followed by at least two word characters; everything
// from the first non-word character on is ignored, so "#Very-b^d" parses
// as "very".
var tagRe = regexp.MustCompile(`#([\p{L}\p{N}_]{2,})`)

var (
	ErrBadFormat  = errors.New(`wrong tag format: tags must start with "#" and contain at least 2 characters`)
	ErrTagTooLong = fmt.Errorf("tag is too long, max length is %d", MaxNameLength)
)

// ParseOne extracts the first tag from text, lowercased.
func ParseOne(text string) (string, error) {
	m := tagRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return "", ErrBadFormat
	}

	if utf8.RuneCountInString(m[1]) > MaxNameLength {
		return "", ErrTagTooLong
	}

	return m[1], nil
}

// ParseAll extracts every tag from text in order of first occurrence.
// Text without any tag is fine: a post may have no tags at all.
func ParseAll(text string) ([]string, error) {
	matches := tagRe.FindAllStringSubmatch(strings.ToLower(text), -1)

	result := make([]string, 0, len(matches))
	for _, m := range matches {
		if utf8.RuneCountInString(m[1]) > MaxNameLength {
			return nil, ErrTagTooLong
		}

		result = append(result, m[1])
	}

	return result, nil
}
