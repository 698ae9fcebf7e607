// Package llm provides the general-purpose fallback agent used when no tool
// sufficiently answers a request. Construction is expensive and handled by a
// factory so the dispatcher can cache the built agent behind a TTL.
package llm

import "context"

// Agent is a general-purpose reasoning backend used when no tool sufficiently
// answers a request
type Agent interface {
	Invoke(ctx context.Context, query string) (string, error)
}

// Factory builds a new agent. Implementations may perform network calls and
// other slow setup; callers are expected to cache the result.
type Factory func(ctx context.Context) (Agent, error)
