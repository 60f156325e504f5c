package vo

import "errors"

// ThumbnailRender is an encoded bitmap returned over HTTP.
type ThumbnailRender struct {
	SessionID   string
	ContentType string
	Body        []byte
	Width       int
	Height      int
}

var ErrSuperseded = errors.New("superseded by a newer request for the same consumer")
var ErrRenderTimeout = errors.New("timed out waiting for the image")
