package scrapers

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"nhrsa/core"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

type Scraper struct{}

func InitializeScraper() (*Scraper, error) {
	return &Scraper{}, nil
}

// DescribeDocument parses the page as HTML and reports its <title>, its link count
// and how many of those links point into a chapter folder.
func (scraper *Scraper) DescribeDocument(contents io.Reader) (core.DocumentSummary, error) {
	doc, err := htmlquery.Parse(contents)
	if err != nil {
		return core.DocumentSummary{}, fmt.Errorf("error on parsing html: %w", err)
	}
	var summary core.DocumentSummary
	if titleNode := htmlquery.FindOne(doc, documentTitleXPath); titleNode != nil {
		summary.Title = strings.TrimSpace(htmlquery.InnerText(titleNode))
	}
	summary.AnchorCount, summary.ChapterAnchorCount = countAnchors(doc)
	return summary, nil
}

func countAnchors(doc *html.Node) (anchors int, chapterAnchors int) {
	for _, anchor := range htmlquery.Find(doc, anchorXPath) {
		href := strings.TrimSpace(htmlquery.SelectAttr(anchor, "href"))
		if len(href) == 0 {
			continue
		}
		anchors++
		if chapterLinkRegexp.MatchString(href) {
			chapterAnchors++
		}
	}
	return anchors, chapterAnchors
}

// ExtractTitleRanges finds every "TITLE <roman>" heading and the "Includes Chapters X - Y"
// or "Includes Chapter X" phrase that follows it. Titles without either phrase are skipped.
func (scraper *Scraper) ExtractTitleRanges(document string) []core.TitleRange {
	text := horizontalSpaceRegexp.ReplaceAllString(document, " ")
	text = lineEndingRegexp.ReplaceAllString(text, "\n")

	titleMatches := titleRegexp.FindAllStringSubmatchIndex(text, -1)
	ranges := make([]core.TitleRange, 0, len(titleMatches))
	for i, m := range titleMatches {
		titleKey := strings.ToUpper(text[m[2]:m[3]])
		startIdx := m[1]
		var endIdx int
		if i+1 < len(titleMatches) {
			endIdx = titleMatches[i+1][0]
		} else {
			endIdx = advanceRunes(text, startIdx, lastTitleWindowRunes)
		}
		window := text[startIdx:endIdx]

		if rm := chaptersRangeRegexp.FindStringSubmatch(window); rm != nil {
			ranges = append(ranges, core.TitleRange{
				TitleKey: titleKey,
				Folder:   strings.ToLower(titleKey),
				Start:    strings.ToUpper(rm[1]),
				End:      strings.ToUpper(rm[2]),
			})
			continue
		}
		if sm := singleChapterRegexp.FindStringSubmatch(window); sm != nil {
			chapter := strings.ToUpper(sm[1])
			ranges = append(ranges, core.TitleRange{
				TitleKey: titleKey,
				Folder:   strings.ToLower(titleKey),
				Start:    chapter,
				End:      chapter,
			})
		}
	}
	return ranges
}

// ExtractChapterFolders maps chapters to folders from /rsa/html/{folder}/{chapter}/ links.
// A later link for the same chapter replaces an earlier one.
func (scraper *Scraper) ExtractChapterFolders(document string) core.ChapterFolderMap {
	mapping := make(core.ChapterFolderMap)
	for _, m := range chapterLinkRegexp.FindAllStringSubmatch(document, -1) {
		mapping[strings.ToLower(m[2])] = strings.ToLower(m[1])
	}
	return mapping
}

func advanceRunes(text string, from, n int) int {
	idx := from
	for count := 0; count < n && idx < len(text); count++ {
		_, size := utf8.DecodeRuneInString(text[idx:])
		idx += size
	}
	return idx
}
