package container

import "errors"

// Each structural violation maps to one sentinel so callers can tell
// them apart with errors.Is.
var (
	ErrBadMagic           = errors.New("bad magic, not an Xcursor file")
	ErrBadChunk           = errors.New("malformed image chunk")
	ErrImageTooLarge      = errors.New("image too large")
	ErrZeroSizeImage      = errors.New("zero-size image")
	ErrHotspotOutOfBounds = errors.New("hotspot outside image bounds")
)
