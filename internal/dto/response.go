package dto

import (
	"fmt"
	"math"
	"time"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Version string `json:"version"`
	Err     string `json:"err"`
	Data    any    `json:"data"`
	Count   *int   `json:"count,omitempty"`
	Info    string `json:"info"`
}

// NewResponse builds the envelope. Count is set when data is a list.
func NewResponse(version string, data any, errMsg string, elapsed time.Duration) Response {
	r := Response{
		Version: version,
		Err:     errMsg,
		Data:    data,
		Info:    CallTime(elapsed),
	}
	if items, ok := data.([]any); ok {
		n := len(items)
		r.Count = &n
	}
	return r
}

// CallTime formats elapsed as "Call time: 1.23ms".
func CallTime(elapsed time.Duration) string {
	ms := float64(elapsed.Microseconds()) / 1000.0
	return fmt.Sprintf("Call time: %vms", math.Round(ms*100)/100)
}
