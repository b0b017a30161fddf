// Package types holds the request and response payloads of the Dify API.
//
// Field names follow Dify's JSON 1:1 through struct tags. The package has no
// behavior beyond encoding helpers, stream event decoding and the stream
// handler used to consume chat and workflow event streams. Users can import
// it directly to work with payloads without the client.
package types
