package repository

import "errors"

// Sentinel errors collaborators use to signal absence, as opposed to an
// upstream/transport failure. Callers distinguish the two with errors.Is.
var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrChannelNotFound = errors.New("channel not found")
	ErrReportNotFound  = errors.New("report not found")
)
