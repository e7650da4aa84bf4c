package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseTokenTest struct {
	text  string
	token ChapterToken
}

var parseTokenTests = []parseTokenTest{
	{text: "225-A", token: ChapterToken{Number: 225, SuffixRank: 1}},
	{text: "227-F", token: ChapterToken{Number: 227, SuffixRank: 6}},
	{text: "216", token: ChapterToken{Number: 216, SuffixRank: 0}},
	{text: " 227-g ", token: ChapterToken{Number: 227, SuffixRank: 7}},
	{text: "21-AA", token: ChapterToken{Number: 21, SuffixRank: 27}},
}

type betweenTest struct {
	x, start, end string
	expected      bool
}

var betweenTests = []betweenTest{
	{x: "225-A", start: "216", end: "227-F", expected: true},
	{x: "227-G", start: "216", end: "227-F", expected: false},
	{x: "227-G", start: "227-G", end: "227-M", expected: true},
	{x: "227-M", start: "227-G", end: "227-M", expected: true},
	{x: "216", start: "216", end: "216", expected: true},
	{x: "215-Z", start: "216", end: "227-F", expected: false},
}

func TestChapters(t *testing.T) {
	t.Run("testing SuffixToInt", func(t *testing.T) {
		for i, ch := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
			assert.Equal(t, i+1, SuffixToInt(string(ch)), "unexpected rank for suffix=%c", ch)
		}
		assert.Equal(t, 27, SuffixToInt("AA"))
		assert.Equal(t, 28, SuffixToInt("AB"))
		assert.Equal(t, 0, SuffixToInt(""))
		assert.Equal(t, 1, SuffixToInt("a"), "suffix is uppercased before ranking")
		assert.Equal(t, 1, SuffixToInt("A1B"), "ranking stops at the first non-letter")
		assert.Equal(t, 2580398988131886038, SuffixToInt("ZZZZZZZZZZZZZ"), "thirteen letters still fit")
		assert.Equal(t, math.MaxInt, SuffixToInt("AAAAAAAAAAAAAAB"), "oversized suffix saturates")
	})

	t.Run("testing ParseChapterToken", func(t *testing.T) {
		for _, test := range parseTokenTests {
			token, err := ParseChapterToken(test.text)
			if assert.NoError(t, err, "error on parsing token=%s: %v", test.text, err) {
				assert.Equal(t, test.token, token, "parsed token mismatch for text=%s", test.text)
			}
		}
	})

	t.Run("testing ParseChapterToken rejects malformed input", func(t *testing.T) {
		for _, text := range []string{"abc", "", "225-", "-A", "225-A-1", "225 A"} {
			_, err := ParseChapterToken(text)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "expected ParseError for text='%s', got %v", text, err)
		}
		_, err := ParseChapterToken("abc")
		assert.EqualError(t, err, "bad chapter token: 'ABC'")
	})

	t.Run("testing ParseChapterToken rejects values beyond int", func(t *testing.T) {
		for _, text := range []string{"99999999999999999999", "5-AAAAAAAAAAAAAAB"} {
			_, err := ParseChapterToken(text)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "expected ParseError for text='%s', got %v", text, err)
		}
		_, err := TokenLE("5-AAAAAAAAAAAAAAB", "5")
		assert.Error(t, err, "oversized suffix must not sort before its bare chapter")
	})

	t.Run("testing TokenBetween", func(t *testing.T) {
		for _, test := range betweenTests {
			between, err := TokenBetween(test.x, test.start, test.end)
			if assert.NoError(t, err) {
				assert.Equal(t, test.expected, between, "x=%s start=%s end=%s", test.x, test.start, test.end)
			}
		}
		_, err := TokenBetween("225-A", "216", "bogus")
		assert.Error(t, err)
	})

	t.Run("testing TokenLE", func(t *testing.T) {
		le, err := TokenLE("227-F", "227-G")
		assert.NoError(t, err)
		assert.True(t, le)
		le, err = TokenLE("228", "227-Z")
		assert.NoError(t, err)
		assert.False(t, le)
		le, err = TokenLE("5-B", "5-b")
		assert.NoError(t, err)
		assert.True(t, le)
	})
}

func TestParseSourceMode(t *testing.T) {
	mode, err := ParseSourceMode("live")
	assert.NoError(t, err)
	assert.Equal(t, SourceLive, mode)

	mode, err = ParseSourceMode("fixture")
	assert.NoError(t, err)
	assert.Equal(t, SourceFixture, mode)

	_, err = ParseSourceMode("ftp")
	assert.ErrorIs(t, err, ErrInvalidSourceMode)
}
