package stats

import "errors"

var (
	ErrUnauthenticated = errors.New("stats: authentication required")
	ErrAccessDenied    = errors.New("stats: access denied")
	ErrStore           = errors.New("stats: store error")
)
