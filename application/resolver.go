package application

import (
	"strings"

	"nhrsa/core"
	"nhrsa/helpers"
)

// Resolver finds the folder of a chapter: exact link table first, then title ranges in order.
type Resolver struct {
	chapterFolders core.ChapterFolderMap
	titleRanges    []core.TitleRange
}

func NewResolver(chapterFolders core.ChapterFolderMap, titleRanges []core.TitleRange) *Resolver {
	return &Resolver{chapterFolders: chapterFolders, titleRanges: titleRanges}
}

func NewResolverFromArtifact(artifact core.MappingArtifact) *Resolver {
	return NewResolver(artifact.ChapterToTitle, artifact.TitleRanges)
}

// ResolveFolder returns the folder and true, or "" and false when nothing matches.
// A malformed chapter id or range bound fails with *core.ParseError.
func (resolver *Resolver) ResolveFolder(chapterID string) (string, bool, error) {
	if folder, ok := resolver.chapterFolders[strings.ToLower(chapterID)]; ok {
		return folder, true, nil
	}
	token, err := core.ParseChapterToken(chapterID)
	if err != nil {
		return "", false, err
	}
	for _, titleRange := range resolver.titleRanges {
		inRange, err := token.Between(titleRange.Start, titleRange.End)
		if err != nil {
			return "", false, err
		}
		if inRange {
			return titleRange.Folder, true, nil
		}
	}
	return "", false, nil
}

// SectionLink turns a citation like "RSA 225-A:24" into the section's page under tocURL's folder.
func (resolver *Resolver) SectionLink(tocURL, citation string) (string, bool, error) {
	chapter, section, err := helpers.ParseCitation(citation)
	if err != nil {
		return "", false, err
	}
	folder, found, err := resolver.ResolveFolder(chapter)
	if err != nil || !found {
		return "", found, err
	}
	return helpers.SectionURL(helpers.RSABaseURL(tocURL), folder, chapter, section), true, nil
}
