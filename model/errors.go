// SPDX-License-Identifier: MIT

package model

import "errors"

var (
	// ErrNilNetwork indicates Build was called without a network.
	ErrNilNetwork = errors.New("model: network is nil")

	// ErrDimension indicates a value vector whose length does not match the program or network.
	ErrDimension = errors.New("model: dimension mismatch")

	// ErrUnknownEntity indicates a value keyed by a node or edge the network does not have.
	ErrUnknownEntity = errors.New("model: unknown node or edge")
)
