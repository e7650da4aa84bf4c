package core

const (
	DefaultTOCURL      = "https://gc.nh.gov/rsa/html/nhtoc.htm"
	DefaultFixturePath = "fixtures/nhtoc.html"
	DefaultOutPath     = "data/chapter_to_title.json"
	SmokeTestChapter   = "225-A"
)

var TestRangeXIX = TitleRange{TitleKey: "XIX", Folder: "xix", Start: "216", End: "227-F"}
var TestRangeXIXA = TitleRange{TitleKey: "XIX-A", Folder: "xix-a", Start: "227-G", End: "227-M"}
var TestRangeXXI = TitleRange{TitleKey: "XXI", Folder: "xxi", Start: "288", End: "288"}

var TestRanges = []TitleRange{TestRangeXIX, TestRangeXIXA, TestRangeXXI}

var TestChapterFolders = ChapterFolderMap{"225-a": "xix-a", "216": "xix"}
