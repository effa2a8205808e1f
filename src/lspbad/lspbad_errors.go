package lspbad

import "errors"

// ErrUnsupportedOperation is returned when a vehicle is asked for a capability it does not have.
var ErrUnsupportedOperation = errors.New("unsupported operation")
