package report

type Scope string

const (
	ScopeDaily   Scope = "daily"
	ScopeWeekly  Scope = "weekly"
	ScopeMonthly Scope = "monthly"
)

// Bucket is one time-grouped count. Keys sort chronologically:
// daily "2025-08-31", weekly "2025-W35", monthly "2025-08".
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type Report struct {
	Scope     Scope    `json:"scope"`
	Requests  []Bucket `json:"requests"`
	Completed []Bucket `json:"completed"`
}
