package texgen

// Content is an argument to a builder operation: either literal text or
// content produced by a nested builder.
type Content interface {
	merge() string
}

// Text is a literal string argument, appended as-is without any escaping.
type Text string

func (t Text) merge() string { return string(t) }

// Nested builds an argument with a fresh builder; everything accumulated by
// the function becomes the argument text.
type Nested func(*Builder)

func (fn Nested) merge() string {
	b := &Builder{}
	fn(b)
	return b.String()
}

func merge(c Content) string {
	if c == nil {
		return ""
	}

	return c.merge()
}
