package types

// BalanceStatus classifies how close a balance is to a required price
type BalanceStatus string

const (
	BalanceSufficient   BalanceStatus = "sufficient"
	BalanceClose        BalanceStatus = "close"
	BalanceModerate     BalanceStatus = "moderate"
	BalanceInsufficient BalanceStatus = "insufficient"
)

// String returns the string representation
func (s BalanceStatus) String() string {
	return string(s)
}

// BalanceCheck is the outcome of comparing an available balance against
// a required price.
type BalanceCheck struct {
	Sufficient bool          `json:"sufficient"`
	Deficit    int           `json:"deficit"`
	Percentage float64       `json:"percentage"`
	Status     BalanceStatus `json:"status"`
}
