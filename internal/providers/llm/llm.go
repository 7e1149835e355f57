package llm

import "context"

// Options tune a single generation call.
type Options struct {
	Temperature float32
	// JSONOutput asks the model for a literal JSON document.
	JSONOutput bool
}

// Image is the artwork fed alongside the prompt.
type Image struct {
	Format string // "jpeg", "png", ...
	Data   []byte
}

// Provider is the vision-and-text generation capability. Every call is
// attempted exactly once; there is no retry and no way to abort a call in
// flight beyond ctx cancellation.
type Provider interface {
	Generate(ctx context.Context, prompt string, img Image, opts Options) (string, error)
	Close() error
}
