// Package id generates the X-Request-ID values sent with every Dify API
// request.
//
// IDs are random UUIDs. When the system random source fails the
// generator falls back to a timestamp, counter and process ID, or returns
// an error in strict mode:
//
//	gen := id.NewGenerator(&id.GeneratorConfig{Mode: id.ModeStrict})
//	requestID, err := gen.Generate()
//
//	if id.IsFallback(requestID) {
//	    log.Print("request id generated without crypto/rand")
//	}
package id
