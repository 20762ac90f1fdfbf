package texgen

// DocumentClass selects the overall layout of the document. Any value
// converts to its keyword, so custom classes are spelled directly:
// DocumentClass("beamer").
type DocumentClass string

const (
	Article DocumentClass = "article"
	Book    DocumentClass = "book"
	Letter  DocumentClass = "letter"
	Report  DocumentClass = "report"
	Slides  DocumentClass = "slides"
)

// Option is a document class or package option, rendered inside the square
// brackets of \documentclass and \usepackage. Custom options are spelled
// directly: Option("12pt").
type Option string

const (
	A4Paper        Option = "a4paper"
	A5Paper        Option = "a5paper"
	B5Paper        Option = "b5paper"
	ExecutivePaper Option = "executivepaper"
	LegalPaper     Option = "legalpaper"
	LetterPaper    Option = "letterpaper"
	Draft          Option = "draft"
	Final          Option = "final"
	Fleqn          Option = "fleqn"
	Landscape      Option = "landscape"
	Leqno          Option = "leqno"
	OpenBib        Option = "openbib"
	TitlePage      Option = "titlepage"
	NoTitlePage    Option = "notitlepage"
	OneColumn      Option = "onecolumn"
	TwoColumn      Option = "twocolumn"
	OneSide        Option = "oneside"
	TwoSide        Option = "twoside"
	OpenRight      Option = "openright"
	OpenAny        Option = "openany"
)

// ColorModel names the model of a \textcolor color argument. The zero value
// omits the optional bracket.
type ColorModel string

const (
	CMYK    ColorModel = "cmyk"
	Gray    ColorModel = "gray"
	RGB     ColorModel = "rgb"
	RGBFull ColorModel = "RGB"
	Named   ColorModel = "named"
)

// FileContentsOption adjusts how the filecontents environment writes its
// file. The zero value omits the optional bracket.
type FileContentsOption string

const (
	Force     FileContentsOption = "force"
	Overwrite FileContentsOption = "overwrite"
	NoHeader  FileContentsOption = "noheader"
	NoSearch  FileContentsOption = "nosearch"
)
