package ocr

import "errors"

// ErrAllEnginesFailed is returned when every configured engine either errored
// or came back below the acceptance floor.
var ErrAllEnginesFailed = errors.New("all OCR engines failed")

// ErrLowConfidence is returned when an accepted result still sits below the
// absolute sanity floor; better to fail than to parse garbage text.
var ErrLowConfidence = errors.New("OCR confidence below sanity floor")
