package vo

import "github.com/joshuarp/remote-image-loader/internal/domain"

// DecodeResult is the single terminal outcome of a load: either a bitmap or
// a *LoadError. The zero value is not a valid result.
type DecodeResult struct {
	SessionID string
	Request   domain.ResourceRequest
	Bitmap    domain.Bitmap
	Err       error
}

func Success(sessionID string, request domain.ResourceRequest, bitmap domain.Bitmap) DecodeResult {
	return DecodeResult{SessionID: sessionID, Request: request, Bitmap: bitmap}
}

func Failure(sessionID string, request domain.ResourceRequest, kind ErrorKind, cause error) DecodeResult {
	return DecodeResult{
		SessionID: sessionID,
		Request:   request,
		Err:       NewLoadError(kind, request.URL, cause),
	}
}

func (r DecodeResult) OK() bool {
	return r.Err == nil
}

// Kind returns the failure kind, or "" for a success.
func (r DecodeResult) Kind() ErrorKind {
	return KindOf(r.Err)
}
