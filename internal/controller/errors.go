package controller

import "errors"

var (
	// ErrSuperseded is returned by CheckURL when a newer classification was
	// requested before this one completed. Its verdict is discarded.
	ErrSuperseded = errors.New("classification superseded by a newer request")

	// ErrActionUnavailable is returned when an action is requested whose
	// control is not visible or is disabled in the current view.
	ErrActionUnavailable = errors.New("action is not available for the current verdict")

	// ErrBlockFailed is returned when the service did not confirm a block.
	ErrBlockFailed = errors.New("failed to block the site")
)
