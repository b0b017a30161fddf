package http

import (
	"fmt"
	"net/url"
)

// Pathf formats an endpoint path, escaping each segment so IDs cannot
// change the route.
func Pathf(format string, segments ...string) string {
	args := make([]any, len(segments))
	for i, s := range segments {
		args[i] = url.PathEscape(s)
	}
	return fmt.Sprintf(format, args...)
}
