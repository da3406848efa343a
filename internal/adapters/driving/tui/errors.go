package tui

import "errors"

// ErrMissingGroupingService is returned when the grouping service is not provided.
var ErrMissingGroupingService = errors.New("tui: grouping service is required")

// ErrNoFolder is reported when a run is requested with an empty folder path.
var ErrNoFolder = errors.New("no folder was selected")
