package scrapers

const (
	anchorXPath        = "//a[@href]"
	documentTitleXPath = "//title"
)
