package service

import "errors"

// ErrNotStarted is returned by quiz operations before Start.
var ErrNotStarted = errors.New("service not started")
