package texgen

import "strings"

// Builder accumulates LaTeX fragments in call order. The zero value is ready
// to use. Arguments are appended as-is: nothing is escaped, balanced or
// validated, see Escape for explicit escaping.
type Builder struct {
	buf strings.Builder
}

func NewBuilder() *Builder {
	return &Builder{}
}

// String returns the document accumulated so far.
func (b *Builder) String() string {
	return b.buf.String()
}

// SetDocumentClass emits \documentclass[options]{class}. The bracket segment
// is omitted when there are no options.
func (b *Builder) SetDocumentClass(class DocumentClass, options ...Option) {
	b.buf.WriteString("\\documentclass" + brackets(options) + "{" + string(class) + "}\n")
}

// UsePackage emits \usepackage[options]{name}. The bracket segment is
// omitted when there are no options.
func (b *Builder) UsePackage(name string, options ...Option) {
	b.buf.WriteString("\\usepackage" + brackets(options) + "{" + name + "}\n")
}

// Literal appends text verbatim.
func (b *Builder) Literal(text string) {
	b.buf.WriteString(text)
}

func (b *Builder) BeginDocument() {
	b.buf.WriteString("\\begin{document}\n")
}

func (b *Builder) EndDocument() {
	b.buf.WriteString("\\end{document}\n")
}

func (b *Builder) Title(title Content) {
	b.wrap("\\title{", title, "}\n")
}

func (b *Builder) Author(author Content) {
	b.wrap("\\author{", author, "}\n")
}

func (b *Builder) MakeTitle() {
	b.buf.WriteString("\\maketitle\n")
}

func (b *Builder) TextBold(text Content) {
	b.wrap("\\textbf{", text, "}")
}

func (b *Builder) TextItalic(text Content) {
	b.wrap("\\textit{", text, "}")
}

func (b *Builder) TextUnderline(text Content) {
	b.wrap("\\underline{", text, "}")
}

// TextColor emits \textcolor[model]{color}{text}. The bracket segment is
// omitted when model is the zero value.
func (b *Builder) TextColor(text, color Content, model ColorModel) {
	b.buf.WriteString("\\textcolor" + optional(string(model)) + "{" + merge(color) + "}{" + merge(text) + "}")
}

func (b *Builder) NewLine() {
	b.buf.WriteString("\\\\\n")
}

func (b *Builder) Label(label Content) {
	b.wrap("\\label{", label, "}\n")
}

func (b *Builder) Ref(label Content) {
	b.wrap("\\ref{", label, "}")
}

// Cite emits \cite[subcitation]{citation}. The bracket segment is omitted
// when subcitation is nil.
func (b *Builder) Cite(citation, subcitation Content) {
	sub := ""
	if subcitation != nil {
		sub = "[" + merge(subcitation) + "]"
	}

	b.buf.WriteString("\\cite" + sub + "{" + merge(citation) + "}")
}

func (b *Builder) Section(title Content) {
	b.wrap("\\section{", title, "}\n")
}

func (b *Builder) Subsection(title Content) {
	b.wrap("\\subsection{", title, "}\n")
}

func (b *Builder) Subsubsection(title Content) {
	b.wrap("\\subsubsection{", title, "}\n")
}

func (b *Builder) Paragraph(text Content) {
	b.wrap("\\paragraph{", text, "}\n")
}

func (b *Builder) Subparagraph(text Content) {
	b.wrap("\\subparagraph{", text, "}\n")
}

func (b *Builder) Footnote(text Content) {
	b.wrap("\\footnote{", text, "}")
}

func (b *Builder) HSpace(length Content) {
	b.wrap("\\hspace{", length, "}")
}

func (b *Builder) VSpace(length Content) {
	b.wrap("\\vspace{", length, "}")
}

func (b *Builder) Include(filename Content) {
	b.wrap("\\include{", filename, "}\n")
}

func (b *Builder) Input(filename Content) {
	b.wrap("\\input{", filename, "}\n")
}

// IncludeGraphics emits \includegraphics[options]{filename}. Options are
// usually key=value pairs, see KV.
func (b *Builder) IncludeGraphics(filename Content, options ...Option) {
	b.buf.WriteString("\\includegraphics" + brackets(options) + "{" + merge(filename) + "}")
}

func (b *Builder) URL(href Content) {
	b.wrap("\\url{", href, "}")
}

func (b *Builder) Href(href, text Content) {
	b.buf.WriteString("\\href{" + merge(href) + "}{" + merge(text) + "}")
}

func (b *Builder) ClearPage() {
	b.buf.WriteString("\\clearpage\n")
}

func (b *Builder) NewPage() {
	b.buf.WriteString("\\newpage\n")
}

func (b *Builder) LineBreak() {
	b.buf.WriteString("\\linebreak\n")
}

func (b *Builder) PageBreak() {
	b.buf.WriteString("\\pagebreak\n")
}

func (b *Builder) NoIndent() {
	b.buf.WriteString("\\noindent\n")
}

func (b *Builder) Centering() {
	b.buf.WriteString("\\centering\n")
}

func (b *Builder) Item(content Content) {
	b.wrap("\\item {", content, "}\n")
}

// Env emits the environment in three ordered fragments: the opening marker
// with its parameters, the rendered content and the matching closing marker.
// Pairing is textual only, mismatched nesting of builder calls is not
// detected.
func (b *Builder) Env(env Environment, content Content) {
	name := env.Name()

	b.buf.WriteString("\\begin{" + name + "}" + envArgs(env) + "\n")
	b.buf.WriteString(merge(content) + "\n")
	b.buf.WriteString("\\end{" + name + "}\n")
}

func (b *Builder) wrap(prefix string, content Content, suffix string) {
	b.buf.WriteString(prefix + merge(content) + suffix)
}

func brackets(options []Option) string {
	if len(options) == 0 {
		return ""
	}

	parts := make([]string, len(options))
	for i, o := range options {
		parts[i] = string(o)
	}

	return "[" + strings.Join(parts, ",") + "]"
}
