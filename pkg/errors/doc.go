// Package errors provides error types and handling for the Dify Go SDK.
//
// Every failure surfaced by the SDK is one of a small set of types:
//
//   - APIError: a non-2xx response from the Dify API, carrying the HTTP
//     status, the raw body and the parsed Dify error envelope
//     ({"code", "message", "status"})
//   - ValidationError: a request rejected on the client before any I/O
//   - StreamError: an "error" event received on a server-sent event stream
//
// All of them implement the DifyError interface:
//
//	var difyErr errors.DifyError
//	if stdErrors.As(err, &difyErr) {
//	    log.Printf("code=%s request=%s", difyErr.Code(), difyErr.GetRequestID())
//	}
//
// APIError values compare by status code, so the sentinels work with errors.Is:
//
//	if stdErrors.Is(err, errors.ErrNotFound) {
//	    // conversation or document is gone
//	}
//
// The SDK never retries. IsRetryable is only a classification hint for
// callers that implement their own retry policy.
package errors
