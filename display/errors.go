package display

import "errors"

// ErrInvalidSize is returned by Begin when the surface has no pixels.
var ErrInvalidSize = errors.New("display: invalid surface size")

// ErrUnknownBackend is returned by NewBackend for a name nothing registered.
var ErrUnknownBackend = errors.New("display: unknown backend")
