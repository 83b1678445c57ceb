package source

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	// SEFormat is the primary episode label format, e.g. "S01E02".
	SEFormat = regexp.MustCompile(`S(\d{1,2})E(\d{1,2})`)
	// XFormat is the fallback episode label format, e.g. "1x02".
	XFormat = regexp.MustCompile(`(\d{1,2})x(\d{1,2})`)
)

// TokenError is returned when a string is not a valid SxxEyy token.
type TokenError struct {
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("malformed episode token %q, expected SxxEyy", e.Token)
}

// ParseToken parses an SxxEyy token into an episode key.
func ParseToken(token string) (EpisodeKey, error) {
	key, ok := MatchKey(token, SEFormat)
	if !ok {
		return EpisodeKey{}, &TokenError{Token: token}
	}
	return key, nil
}

// MatchKey extracts a season/episode pair from text using the first match of the
// given two-group pattern.
func MatchKey(text string, format *regexp.Regexp) (EpisodeKey, bool) {
	match := format.FindStringSubmatch(text)
	if match == nil || len(match) < 3 {
		return EpisodeKey{}, false
	}

	season, err := strconv.Atoi(match[1])
	if err != nil {
		return EpisodeKey{}, false
	}
	number, err := strconv.Atoi(match[2])
	if err != nil {
		return EpisodeKey{}, false
	}

	return EpisodeKey{Season: season, Number: number}, true
}
