package es

import (
	"io"

	"github.com/elastic/go-elasticsearch/v8/esutil"
)

// NewBody encodes v as a JSON request body for the search transport.
func NewBody(v any) io.Reader {
	return esutil.NewJSONReader(v)
}
