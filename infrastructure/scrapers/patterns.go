package scrapers

import "regexp"

const lastTitleWindowRunes = 2500

// unicodeSpace matches every character Unicode treats as whitespace, including
// no-break spaces, which RE2's \s does not.
const unicodeSpace = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	horizontalSpaceRegexp = regexp.MustCompile(`[ \t]+`)
	lineEndingRegexp      = regexp.MustCompile(`\r\n?`)
	titleRegexp           = regexp.MustCompile(`(?i)\bTITLE` + unicodeSpace + `+([IVXLCDM]+(?:-A)?)\b`)
	chaptersRangeRegexp   = regexp.MustCompile(`(?i)Includes` + unicodeSpace + `+Chapters?` + unicodeSpace + `+(\d+(?:-[A-Z]+)?)` + unicodeSpace + `*-` + unicodeSpace + `*(\d+(?:-[A-Z]+)?)`)
	singleChapterRegexp   = regexp.MustCompile(`(?i)Includes` + unicodeSpace + `+Chapter` + unicodeSpace + `+(\d+(?:-[A-Z]+)?)`)
	chapterLinkRegexp     = regexp.MustCompile(`(?i)/rsa/html/([a-z0-9\-]+)/(\d+(?:-[a-z])?)/`)
)
