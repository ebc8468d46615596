package capability

import "context"

type capabilitiesContextKey struct{}

// SetToContext stores a detection result in the context.
func SetToContext(ctx context.Context, caps *ClientCapabilities) context.Context {
	return context.WithValue(ctx, capabilitiesContextKey{}, caps)
}

// FromContext retrieves the detection result stored by Middleware or
// SetToContext. Returns nil when no detection ran for this request.
func FromContext(ctx context.Context) *ClientCapabilities {
	caps, _ := ctx.Value(capabilitiesContextKey{}).(*ClientCapabilities)
	return caps
}
