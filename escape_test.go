package texgen

import "testing"

func TestEscape(t *testing.T) {
	tt := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no specials",
			input: "plain text stays intact",
			want:  "plain text stays intact",
		},
		{
			name:  "percent ampersand dollar",
			input: "10% of $5 & more",
			want:  "10\\% of \\$5 \\& more",
		},
		{
			name:  "hash and underscore",
			input: "item #1 has key_name",
			want:  "item \\#1 has key\\_name",
		},
		{
			name:  "braces",
			input: "{group}",
			want:  "\\{group\\}",
		},
		{
			name:  "backslash",
			input: "C:\\texlive",
			want:  "C:\\textbackslash{}texlive",
		},
		{
			name:  "tilde and circumflex",
			input: "~x^2",
			want:  "\\textasciitilde{}x\\textasciicircum{}2",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := Escape(tc.input); got != tc.want {
				t.Errorf("Value does not match: want %v, got %v", tc.want, got)
			}
		})
	}
}
