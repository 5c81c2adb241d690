package model

// RunState is the generator state machine: Idle until started, Placing
// while pieces are being committed, then Done (requested count reached)
// or Stalled (no candidate fit at the frontier).
type RunState int

const (
	RunIdle RunState = iota
	RunPlacing
	RunStalled
	RunDone
)

func (s RunState) String() string {
	switch s {
	case RunPlacing:
		return "placing"
	case RunStalled:
		return "stalled"
	case RunDone:
		return "done"
	default:
		return "idle"
	}
}

// RunReport summarizes one generation run. A stall is not an error:
// callers inspect Placed against Requested rather than assuming the
// request was met.
type RunReport struct {
	Strategy  Strategy       `json:"strategy"`
	Requested int            `json:"requested"`
	Placed    int            `json:"placed"`
	Attempts  int            `json:"attempts"`
	Branches  int            `json:"branches"`
	Stalled   bool           `json:"stalled"`
	Seed      uint32         `json:"seed,omitempty"`
	ByType    map[string]int `json:"by_type,omitempty"`
}

// Shortfall returns how many requested pieces were not placed.
func (r RunReport) Shortfall() int {
	if r.Placed >= r.Requested {
		return 0
	}
	return r.Requested - r.Placed
}

// Count tallies one placed piece of the given type.
func (r *RunReport) Count(typeID string) {
	if r.ByType == nil {
		r.ByType = make(map[string]int)
	}
	r.ByType[typeID]++
	r.Placed++
}
