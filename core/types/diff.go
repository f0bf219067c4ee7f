package types

// ChangeKind classifies one breakdown difference
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeChanged ChangeKind = "changed"
)

// Change is the difference in one breakdown component
type Change struct {
	Key   string     `json:"key"`
	Kind  ChangeKind `json:"kind"`
	Base  int        `json:"base"`
	Head  int        `json:"head"`
	Delta int        `json:"delta"`
}

// Comparison contrasts two price results
type Comparison struct {
	BaseCost int      `json:"base_cost"`
	HeadCost int      `json:"head_cost"`
	Delta    int      `json:"delta"`
	Changes  []Change `json:"changes"`
}
