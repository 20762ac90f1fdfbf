package texgen

import "strings"

type ColumnSpec struct {
	BorderLeft  bool   // column should have left border
	BorderRight bool   // column should have right border
	Align       string // column alignment: c, l or r
}

// Columns renders column specs into the cols argument of the tabular and
// array environments, for example: |c|l|r|. A right border followed by a
// left border collapses into a single separator.
// todo: add support for repeated syntax *{x}{...}
func Columns(spec ...ColumnSpec) string {
	var sb strings.Builder
	for pos, col := range spec {
		if col.BorderLeft && !(pos > 0 && spec[pos-1].BorderRight) {
			sb.WriteString("|")
		}

		sb.WriteString(col.Align)

		if col.BorderRight {
			sb.WriteString("|")
		}
	}

	return sb.String()
}
