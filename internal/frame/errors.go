package frame

import "errors"

// ErrMalformedDocument is returned by Parse when the input is not well-formed
// XML. It is the only error Parse returns; a document that is well-formed but
// carries no parameters yields an empty Frame.
var ErrMalformedDocument = errors.New("frame: malformed document")
