package texgen

// KV forms a key=value option, for example as used in \includegraphics
// option parameter.
func KV(key, value string) Option {
	return Option(key + "=" + value)
}
