package steinerwire

import "errors"

// ErrTooFewPins indicates fewer than two pins were supplied; a tree needs
// at least two terminals to span.
var ErrTooFewPins = errors.New("steinerwire: need at least 2 pins")

// ErrInvalidBounds indicates bounds.LB is not component-wise <= bounds.RU.
var ErrInvalidBounds = errors.New("steinerwire: invalid bounds")

// ErrPinOutOfBounds indicates a pin lies outside the supplied bounds.
var ErrPinOutOfBounds = errors.New("steinerwire: pin out of bounds")

// ErrInvariant indicates an internal consistency violation surfaced by a
// lower layer (e.g. a pruner pass that left a stale edge endpoint). It is
// never expected in a correct build; its presence indicates a bug in this
// module rather than in caller input.
var ErrInvariant = errors.New("steinerwire: internal invariant violated")
