package texgen

// Environment identifies a LaTeX environment emitted by Builder.Env. Plain
// environments are Env values; environments taking parameters are the
// *Params structs below.
type Environment interface {
	Name() string
}

// Env is a plain environment without parameters. Custom environments are
// spelled directly: Env("proof").
type Env string

func (e Env) Name() string { return string(e) }

const (
	EnvAbstract    Env = "abstract"
	EnvCenter      Env = "center"
	EnvDescription Env = "description"
	EnvDisplayMath Env = "displaymath"
	EnvDocument    Env = "document"
	EnvEnumerate   Env = "enumerate"
	EnvEqnArray    Env = "eqnarray"
	EnvEquation    Env = "equation"
	EnvFlushLeft   Env = "flushleft"
	EnvFlushRight  Env = "flushright"
	EnvItemize     Env = "itemize"
	EnvMath        Env = "math"
	EnvQuotation   Env = "quotation"
	EnvQuote       Env = "quote"
	EnvTabbing     Env = "tabbing"
	EnvTheorem     Env = "theorem"
	EnvTitlePage   Env = "titlepage"
	EnvTrivList    Env = "trivlist"
	EnvVerbatim    Env = "verbatim"
	EnvVerse       Env = "verse"
)

// ArrayParams parameterizes the array environment.
type ArrayParams struct {
	Cols string // column spec, see Columns
	Pos  string // vertical position: t or b, empty to omit
}

func (ArrayParams) Name() string { return "array" }

// TabularParams parameterizes the tabular environment.
type TabularParams struct {
	Cols string // column spec, see Columns
	Pos  string // vertical position: t or b, empty to omit
}

func (TabularParams) Name() string { return "tabular" }

// FigureParams parameterizes the figure environment. Placement is appended
// verbatim, brackets included: "[h!]".
type FigureParams struct {
	Placement string
}

func (FigureParams) Name() string { return "figure" }

// FileContentsParams parameterizes the filecontents environment.
type FileContentsParams struct {
	Filename string
	Option   FileContentsOption // empty to omit
}

func (FileContentsParams) Name() string { return "filecontents" }

// ListParams parameterizes the list environment. Both arguments are
// appended verbatim, braces included: "{\\labelitemi}{}".
type ListParams struct {
	Labeling string
	Spacing  string
}

func (ListParams) Name() string { return "list" }

// MinipageParams parameterizes the minipage environment. The three optional
// arguments render as empty brackets when unset.
type MinipageParams struct {
	Position string // vertical alignment with surrounding material
	Height   string
	InnerPos string // placement of contents within the box
	Width    string
}

func (MinipageParams) Name() string { return "minipage" }

// PictureParams parameterizes the picture environment. The offset pair is
// emitted only when one of its coordinates is set.
type PictureParams struct {
	Width, Height    string
	OffsetX, OffsetY string
}

func (PictureParams) Name() string { return "picture" }

// TableParams parameterizes the table environment.
type TableParams struct {
	Placement string // h, t, b or p, empty to omit
}

func (TableParams) Name() string { return "table" }

// BibliographyParams parameterizes the thebibliography environment.
type BibliographyParams struct {
	WidestLabel string
}

func (BibliographyParams) Name() string { return "thebibliography" }

// envArgs renders the parameter fragment following \begin{name}.
func envArgs(env Environment) string {
	switch e := env.(type) {
	case ArrayParams:
		return optional(e.Pos) + "{" + e.Cols + "}"
	case TabularParams:
		return optional(e.Pos) + "{" + e.Cols + "}"
	case FigureParams:
		return e.Placement
	case FileContentsParams:
		return optional(string(e.Option)) + "{" + e.Filename + "}"
	case ListParams:
		return e.Labeling + e.Spacing
	case MinipageParams:
		return "[" + e.Position + "][" + e.Height + "][" + e.InnerPos + "]{" + e.Width + "}"
	case PictureParams:
		args := "(" + e.Width + "," + e.Height + ")"
		if e.OffsetX != "" || e.OffsetY != "" {
			args += "(" + e.OffsetX + "," + e.OffsetY + ")"
		}

		return args
	case TableParams:
		return optional(e.Placement)
	case BibliographyParams:
		return "{" + e.WidestLabel + "}"
	default:
		return ""
	}
}

func optional(value string) string {
	if value == "" {
		return ""
	}

	return "[" + value + "]"
}
