package imgkit

// FormatAuto is the sentinel a caller sets on TransformOptions.Format to
// request format negotiation. An empty string means the same thing.
const FormatAuto = "auto"

// TransformOptions is the parameter set handed to the external
// transformation engine. Zero values (and FormatAuto for Format) mark fields
// the caller left open for detection to fill; anything the caller set
// explicitly is never overridden.
type TransformOptions struct {
	Width   int
	Height  int
	Format  string
	Quality int

	// Extra carries engine-specific passthrough parameters this subsystem
	// does not interpret.
	Extra map[string]string
}

func (o TransformOptions) formatUnset() bool {
	return o.Format == "" || o.Format == FormatAuto
}

func (o TransformOptions) qualityUnset() bool {
	return o.Quality <= 0
}
