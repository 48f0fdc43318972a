package coeval

// Supported problem kinds.
const (
	TSP    = "TSP"
	ASSIGN = "ASSIGN"
	SCHED  = "SCHED"
	CANDLE = "CANDLE"
)

// EdgeKey identifies an undirected edge. U < V always holds.
type EdgeKey struct {
	U int
	V int
}

func edgeKey(u, v int) EdgeKey {
	if v < u {
		u, v = v, u
	}
	return EdgeKey{U: u, V: v}
}

// Instance holds the problem data for one evaluation run. Which fields are
// set depends on Kind. Instances are built once by ParseInstance and not
// modified afterwards.
type Instance struct {
	Kind      string
	Dimension int

	// TSP: present edges with their weights. A missing pair means
	// "no connection", not zero cost.
	Edges map[EdgeKey]float64

	// ASSIGN
	Tasks      int
	Resources  int
	Capacities []int
	Costs      [][]float64

	// SCHED
	ProcTimes    []int
	TardyWeights []int
	DueDates     []int

	// CANDLE: node 1 is the depot and has no candle data.
	NodeCoordinates [][]int
	Heights         []int
	BurnRates       []int
}

// HasEdge reports whether the undirected edge u-v exists (1-based ids).
func (inst *Instance) HasEdge(u, v int) bool {
	_, ok := inst.Edges[edgeKey(u, v)]
	return ok
}

// EdgeWeight returns the weight of the undirected edge u-v. The edge must
// exist.
func (inst *Instance) EdgeWeight(u, v int) float64 {
	return inst.Edges[edgeKey(u, v)]
}

// Assignment maps one task to one resource (1-based ids).
type Assignment struct {
	Task     int `json:"task"`
	Resource int `json:"resource"`
}

// Solution is a candidate answer prior to feasibility checking. Route is
// used by the tour/permutation kinds, Assignments by ASSIGN.
type Solution struct {
	Route       []int        `json:"route,omitempty"`
	Assignments []Assignment `json:"assignments,omitempty"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}
