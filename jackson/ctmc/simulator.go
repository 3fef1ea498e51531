package ctmc

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/inference-sim/cyclic-jackson/jackson"
)

// Config controls a simulation run.
type Config struct {
	Seed   int64 // master seed for the per-node RNG streams
	Events int64 // completions to process after warmup (must be > 0)
	Warmup int64 // completions processed before occupancy is recorded
}

// StateEstimate is the time fraction spent in one state.
type StateEstimate struct {
	State       jackson.State
	Probability float64
}

// Result holds the outcome of a run.
type Result struct {
	Estimates []StateEstimate // one per composition, lexicographic order
	Elapsed   float64         // simulated time covered by the estimates
	Events    int64           // completions processed, warmup included
}

// Simulator runs one cyclic network. Not safe for concurrent use.
type Simulator struct {
	net      jackson.Network
	cfg      Config
	rng      *PartitionedRNG
	events   *EventHeap
	nextID   int64
	clock    float64
	counts   jackson.State
	index    map[string]int // state key → position in Estimates
	occupied []float64      // time spent per state, aligned with index
	result   *Result        // set by the first Run
}

// NewSimulator validates the network and places every customer at node 0.
func NewSimulator(net jackson.Network, cfg Config) (*Simulator, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	if cfg.Events <= 0 {
		return nil, fmt.Errorf("ctmc: events must be positive, got %d", cfg.Events)
	}
	if cfg.Warmup < 0 {
		return nil, fmt.Errorf("ctmc: warmup must be non-negative, got %d", cfg.Warmup)
	}
	states := jackson.Compositions(net.Population, net.Nodes())
	index := make(map[string]int, len(states))
	for i, s := range states {
		index[s.String()] = i
	}
	s := &Simulator{
		net:      net,
		cfg:      cfg,
		rng:      NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		events:   NewEventHeap(),
		counts:   make(jackson.State, net.Nodes()),
		index:    index,
		occupied: make([]float64, len(states)),
	}
	s.counts[0] = net.Population
	for i := 0; i < min(net.Population, net.Servers[0]); i++ {
		s.startService(0)
	}
	return s, nil
}

// startService schedules a completion for a server that just became busy at node.
func (s *Simulator) startService(node int) {
	rng := s.rng.ForSubsystem(SubsystemNode(node))
	s.events.Schedule(&Completion{
		Time: s.clock + rng.ExpFloat64()/s.net.Rates[node],
		Node: node,
		ID:   s.nextID,
	})
	s.nextID++
}

// Run processes Warmup+Events completions and returns the time fractions.
// A Simulator runs once; later calls return the first Result unchanged.
func (s *Simulator) Run() *Result {
	if s.result != nil {
		return s.result
	}
	logrus.Debugf("ctmc: starting N=%d k=%d seed=%d events=%d warmup=%d",
		s.net.Population, s.net.Nodes(), s.cfg.Seed, s.cfg.Events, s.cfg.Warmup)

	states := jackson.Compositions(s.net.Population, s.net.Nodes())
	result := &Result{Estimates: make([]StateEstimate, len(states))}
	s.result = result
	for i, st := range states {
		result.Estimates[i].State = st
	}

	// With nobody circulating the network never leaves the all-zero state.
	if s.events.Len() == 0 {
		result.Estimates[0].Probability = 1
		return result
	}

	start := 0.0
	total := s.cfg.Warmup + s.cfg.Events
	for result.Events < total {
		c := s.events.PopNext()
		if result.Events >= s.cfg.Warmup {
			s.occupied[s.index[s.counts.String()]] += c.Time - s.clock
		} else {
			start = c.Time
		}
		s.clock = c.Time
		s.complete(c.Node)
		result.Events++
	}

	result.Elapsed = s.clock - start
	for i := range result.Estimates {
		result.Estimates[i].Probability = s.occupied[i] / result.Elapsed
	}
	logrus.Debugf("ctmc: finished after %d events, simulated time %v", result.Events, result.Elapsed)
	return result
}

// complete moves one customer from node to its successor.
func (s *Simulator) complete(node int) {
	logrus.Tracef("ctmc: completion at node %d, t=%v, state=%v", node, s.clock, s.counts)
	s.counts[node]--
	if s.counts[node] >= s.net.Servers[node] {
		s.startService(node)
	}
	next := (node + 1) % s.net.Nodes()
	s.counts[next]++
	if s.counts[next] <= s.net.Servers[next] {
		s.startService(next)
	}
}

// Lookup returns the estimate for state, or false if it is not a composition of N.
func (r *Result) Lookup(state jackson.State) (float64, bool) {
	i := slices.IndexFunc(r.Estimates, func(e StateEstimate) bool {
		return slices.Equal(e.State, state)
	})
	if i < 0 {
		return 0, false
	}
	return r.Estimates[i].Probability, true
}
