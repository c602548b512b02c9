// SPDX-License-Identifier: MIT

package synth

import "errors"

// ErrBadDimension indicates a size parameter below the allowed minimum
// (grid rows/cols, ring node count, ring radius).
var ErrBadDimension = errors.New("synth: dimension too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("synth: probability out of range")

// ErrOptionViolation indicates an option carried an invalid value; the
// offending option is named in the wrapped message.
var ErrOptionViolation = errors.New("synth: option violation")
