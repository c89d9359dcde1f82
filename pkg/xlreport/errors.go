package xlreport

import "errors"

// ErrNoOutputPath indicates the configuration has no output target.
var ErrNoOutputPath = errors.New("no output path configured")
