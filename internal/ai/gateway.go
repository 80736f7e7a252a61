// Package ai wraps the single outbound call to an external generative-AI
// service behind a provider-agnostic Completer. Failures are values, not
// errors: a caller seeing OK=false uses its local fallback.
package ai

import (
	"context"
)

// Options tunes one completion call.
type Options struct {
	Temperature     float32
	MaxOutputTokens int32
	// JSONResponse asks the provider for schema-constrained JSON decoding
	// where it supports that; the caller still has to decode tolerantly.
	JSONResponse bool
}

// RawResult is the outcome of one completion attempt. OK=false covers
// transport errors, non-success statuses and empty candidate lists alike.
// Blocked marks the empty-candidate case: the call went through but the
// provider returned nothing, usually a content-policy filter. BlockReason
// carries the provider's stated reason when there is one.
type RawResult struct {
	OK          bool
	Text        string
	Blocked     bool
	BlockReason string
}

// Completer performs exactly one completion attempt with a bounded timeout.
// No retry happens at this layer; retry-or-fallback policy belongs to the
// stage that calls it.
type Completer interface {
	Complete(ctx context.Context, instructions, contextText string, opts Options) RawResult
}
