package params

// Range is a pair of optional inclusive integer bounds.
type Range struct {
	Gte *int64 `json:"gte"`
	Lte *int64 `json:"lte"`
}

// DateRange is a pair of optional inclusive ISO-8601 (YYYY-MM-DD) bounds.
type DateRange struct {
	Gte *string `json:"gte,omitempty"`
	Lte *string `json:"lte,omitempty"`
}

// Parameters is the normalized form of a company search request.
// A nil field means the parameter was not supplied.
type Parameters struct {
	Revenue *Range `json:"revenue,omitempty"`
	Cash    *Range `json:"cash,omitempty"`

	CIDs    []string `json:"cids,omitempty"`
	Sectors []string `json:"sectors,omitempty"`

	Ecommerce  *bool `json:"ecommerce,omitempty"`
	ExcludeTPS *bool `json:"exclude_tps,omitempty"`
	Aggregate  *bool `json:"aggregate,omitempty"`

	TradingActivity *DateRange `json:"trading_activity,omitempty"`

	Limit  *int `json:"limit,omitempty"`
	Offset *int `json:"offset,omitempty"`

	Fields []string `json:"fields,omitempty"`
}
