package pagination

// Request is the caller's requested window. A nil Limit means "use the
// default results limit", a nil Offset means zero.
type Request struct {
	Limit  *int
	Offset *int
}

func (r Request) limit() (int, bool) {
	if r.Limit == nil {
		return 0, false
	}
	return *r.Limit, true
}

func (r Request) offset() int {
	if r.Offset == nil {
		return 0
	}
	return *r.Offset
}
