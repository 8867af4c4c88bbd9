package domain

import "errors"

// Dispatch failures, distinguished by phase so the presentation layer can
// choose which user-facing message to show. The underlying cause is
// logged, never shown to the user.
var (
	ErrClientInit = errors.New("llm client initialization failed")
	ErrInvocation = errors.New("llm invocation failed")
)
