package pagination

// Limits bounds every window handed out.
type Limits struct {
	ResultsLimit int
	PageSize     int
}

func DefaultLimits() Limits {
	return Limits{
		ResultsLimit: ResultsLimitDefault,
		PageSize:     PageSizeDefault,
	}
}

// Window is the page actually requested from the search backend.
type Window struct {
	PageSize   int `json:"size"`
	PageOffset int `json:"from"`
}

// Calculate clamps the requested window into the configured limits.
//
// The page size is computed from the raw offset while the returned offset is
// clamped to ResultsLimit-PageSize. An offset at or past the response limit
// can therefore produce a zero or full-sized page at the last offset; this
// matches the behaviour existing clients depend on.
func Calculate(req Request, limits Limits) Window {
	responseLimit := ResponseLimit(req, limits)
	offset := req.offset()

	maxOffset := abs(responseLimit - limits.PageSize)

	return Window{
		PageSize:   min(abs(responseLimit-offset), limits.PageSize),
		PageOffset: min(offset, maxOffset),
	}
}

// ResponseLimit is the requested limit, never raised above the results limit.
func ResponseLimit(req Request, limits Limits) int {
	limit, ok := req.limit()
	if !ok {
		return limits.ResultsLimit
	}
	return min(limit, limits.ResultsLimit)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
