package symjson

// Option configures a Decoder.
type Option func(d *Decoder)

// WithCopyStrings controls whether decoded strings are copied out of the
// decoder's buffer. For enhanced performance the decoder can return views
// into its internal copy of the input for strings that carry no escapes;
// such views pin the whole buffer in memory for as long as any of them is
// reachable. The default is to copy.
// Default: true - strings are copied.
func WithCopyStrings(b bool) Option {
	return func(d *Decoder) {
		d.copyStrings = b
	}
}

// WithInternStrings routes short escape-free strings through a dedup table,
// so values repeated across the document share one allocation. Symbol
// graphs repeat kind identifiers, access levels and platform names
// thousands of times; interning collapses them.
// Default: false - every string is distinct.
func WithInternStrings(b bool) Option {
	return func(d *Decoder) {
		d.internStrings = b
	}
}
