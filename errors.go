package bench

import "errors"

//////
// Error taxonomy.
//////

// ErrConfiguration reports a malformed or unrecognized specification: an
// unknown noise-model name, a configuration mapping with missing or invalid
// keys, a nil sampler or selector, or an unusable space definition.
//
// Errors returned by this package wrap ErrConfiguration, so callers can
// detect the whole class with errors.Is:
//
//	if _, err := ParseNoiseModel(spec); errors.Is(err, ErrConfiguration) {
//	    // Reject the user-supplied specification.
//	}
//
// Configuration errors are fatal to the call that produced them. Nothing in
// this package retries.
var ErrConfiguration = errors.New("invalid configuration")
