// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction and attribute access.
// Callers branch with errors.Is; context is attached with %w at the call site.
var (
	// ErrConstruction matches every error returned by New.
	ErrConstruction = errors.New("network: invalid topology")

	// ErrBadNodes indicates a malformed node list (duplicate ids).
	ErrBadNodes = errors.New("network: bad node container")

	// ErrBadEdges indicates a malformed edge list (duplicate edge or compressor ids).
	ErrBadEdges = errors.New("network: bad edge container")

	// ErrDanglingEdge indicates an edge endpoint missing from the node list,
	// or a compressor that does not match any edge.
	ErrDanglingEdge = errors.New("network: inconsistent edge reference")

	// ErrUninitialized indicates an attribute read before its first write.
	ErrUninitialized = errors.New("network: attribute not initialized")

	// ErrValidation indicates a rejected attribute write. The collection is left untouched.
	ErrValidation = errors.New("network: attribute validation failed")
)

// constructionErrorf tags err with ErrConstruction so that both the concrete
// kind and the umbrella kind match errors.Is.
func constructionErrorf(kind error, format string, args ...any) error {
	return fmt.Errorf("New: %s: %w: %w", fmt.Sprintf(format, args...), ErrConstruction, kind)
}
