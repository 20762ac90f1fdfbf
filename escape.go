package texgen

import "strings"

var specials = strings.NewReplacer(
	"\\", "\\textbackslash{}",
	"&", "\\&",
	"%", "\\%",
	"$", "\\$",
	"#", "\\#",
	"_", "\\_",
	"{", "\\{",
	"}", "\\}",
	"~", "\\textasciitilde{}",
	"^", "\\textasciicircum{}",
)

// Escape rewrites special characters into commands producing them
// literally. Builder operations never escape their arguments, apply this
// explicitly where text may contain specials.
func Escape(text string) string {
	return specials.Replace(text)
}
