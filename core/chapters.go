package core

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var chapterTokenRegexp = regexp.MustCompile(`^(\d+)(?:-([A-Z]+))?$`)

// ChapterToken is a parsed chapter id ordered by (Number, SuffixRank).
type ChapterToken struct {
	Number     int
	SuffixRank int
}

func (token ChapterToken) Compare(other ChapterToken) int {
	switch {
	case token.Number < other.Number:
		return -1
	case token.Number > other.Number:
		return 1
	case token.SuffixRank < other.SuffixRank:
		return -1
	case token.SuffixRank > other.SuffixRank:
		return 1
	}
	return 0
}

// SuffixToInt ranks a letter suffix in bijective base 26: A=1 ... Z=26, AA=27.
// Processing stops at the first character outside A-Z. Ranks that do not fit
// in an int saturate at math.MaxInt.
func SuffixToInt(suffix string) int {
	n, ok := suffixRank(suffix)
	if !ok {
		return math.MaxInt
	}
	return n
}

func suffixRank(suffix string) (int, bool) {
	n := 0
	for _, ch := range strings.ToUpper(suffix) {
		if ch < 'A' || ch > 'Z' {
			break
		}
		if n > (math.MaxInt-26)/26 {
			return 0, false
		}
		n = n*26 + int(ch-'A'+1)
	}
	return n, true
}

// ParseChapterToken parses "225-A" into {225, 1}, "216" into {216, 0}.
// Numbers or suffixes too large for an int are rejected with a *ParseError.
func ParseChapterToken(text string) (ChapterToken, error) {
	tok := strings.ToUpper(strings.TrimSpace(text))
	m := chapterTokenRegexp.FindStringSubmatch(tok)
	if m == nil {
		return ChapterToken{}, &ParseError{Token: tok}
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return ChapterToken{}, &ParseError{Token: tok}
	}
	rank, ok := suffixRank(m[2])
	if !ok {
		return ChapterToken{}, &ParseError{Token: tok}
	}
	return ChapterToken{Number: number, SuffixRank: rank}, nil
}

func CompareChapterTokens(a, b string) (int, error) {
	pa, err := ParseChapterToken(a)
	if err != nil {
		return 0, err
	}
	pb, err := ParseChapterToken(b)
	if err != nil {
		return 0, err
	}
	return pa.Compare(pb), nil
}

func TokenLE(a, b string) (bool, error) {
	cmp, err := CompareChapterTokens(a, b)
	if err != nil {
		return false, err
	}
	return cmp <= 0, nil
}

// TokenBetween reports start <= x <= end.
func TokenBetween(x, start, end string) (bool, error) {
	px, err := ParseChapterToken(x)
	if err != nil {
		return false, err
	}
	return px.Between(start, end)
}

func (token ChapterToken) Between(start, end string) (bool, error) {
	ps, err := ParseChapterToken(start)
	if err != nil {
		return false, err
	}
	pe, err := ParseChapterToken(end)
	if err != nil {
		return false, err
	}
	return ps.Compare(token) <= 0 && token.Compare(pe) <= 0, nil
}
