package electrical

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ErrCycle is returned by Update when the network graph contains a cycle.
// Power distribution is modeled strictly feed-forward; a cycle means the
// aircraft definition wired a component back into its own supply.
var ErrCycle = errors.New("electrical: network contains a cycle")

// NodeID identifies a component in the network.
type NodeID int64

// directConnectionOhms is the wire resistance used for a connection declared
// without one. Zero would make the edge current blow up, so a short stub of
// wire is assumed.
const directConnectionOhms = 0.001

type edgeKey struct {
	from, to int64
}

// Overcurrent reports an edge carrying more than a given current limit.
type Overcurrent struct {
	From NodeID
	To   NodeID
	Amps float64
}

// Network is the electrical distribution graph. Components are added once
// during aircraft assembly; the topology does not change at runtime.
type Network struct {
	graph      *simple.DirectedGraph
	components *intmap.Map[int64, Component]
	nodeVolts  *intmap.Map[int64, float64]
	names      map[NodeID]string
	byName     map[string]NodeID

	edges      []edgeKey
	resistance map[edgeKey]float64
	current    map[edgeKey]float64

	order  []NodeID
	sorted bool
	faults []Fault
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		graph:      simple.NewDirectedGraph(),
		components: intmap.New[int64, Component](64),
		nodeVolts:  intmap.New[int64, float64](64),
		names:      make(map[NodeID]string),
		byName:     make(map[string]NodeID),
		resistance: make(map[edgeKey]float64),
		current:    make(map[edgeKey]float64),
	}
}

// Add inserts a named component and returns its node ID. Names must be
// unique within the network.
func (n *Network) Add(name string, c Component) (NodeID, error) {
	if _, exists := n.byName[name]; exists {
		return 0, fmt.Errorf("electrical: duplicate component %q", name)
	}

	node := n.graph.NewNode()
	n.graph.AddNode(node)

	id := NodeID(node.ID())
	n.components.Put(node.ID(), c)
	n.names[id] = name
	n.byName[name] = id
	n.sorted = false
	return id, nil
}

// Connect wires from → to with the given wire resistance in ohms.
func (n *Network) Connect(from, to NodeID, resistanceOhms float64) {
	if resistanceOhms <= 0 {
		resistanceOhms = directConnectionOhms
	}

	n.graph.SetEdge(n.graph.NewEdge(n.graph.Node(int64(from)), n.graph.Node(int64(to))))

	key := edgeKey{from: int64(from), to: int64(to)}
	n.edges = append(n.edges, key)
	n.resistance[key] = resistanceOhms
	n.current[key] = 0
	n.sorted = false
}

// ConnectDirect wires from → to with nominal stub-wire resistance.
func (n *Network) ConnectDirect(from, to NodeID) {
	n.Connect(from, to, directConnectionOhms)
}

// Component returns the component at the given node, or nil.
func (n *Network) Component(id NodeID) Component {
	c, ok := n.components.Get(int64(id))
	if !ok {
		return nil
	}
	return c
}

// Lookup resolves a component name to its node ID.
func (n *Network) Lookup(name string) (NodeID, bool) {
	id, ok := n.byName[name]
	return id, ok
}

// Name returns the name of the component at the given node.
func (n *Network) Name(id NodeID) string {
	return n.names[id]
}

func (n *Network) sortNodes() error {
	nodes, err := topo.Sort(n.graph)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCycle, err)
	}

	n.order = n.order[:0]
	for _, node := range nodes {
		n.order = append(n.order, NodeID(node.ID()))
	}
	n.sorted = true
	return nil
}

// Update advances every component by dt and propagates voltage, power and
// current through the graph in topological order. Component faults detected
// during the pass are collected and available from Faults until the next
// Update.
func (n *Network) Update(dt float64) error {
	if !n.sorted {
		if err := n.sortNodes(); err != nil {
			return err
		}
	}

	n.faults = n.faults[:0]

	for _, id := range n.order {
		c, _ := n.components.Get(int64(id))
		c.Update(dt)
		n.nodeVolts.Put(int64(id), c.OutputVolts())
	}

	n.computeEdgeCurrents()

	for _, id := range n.order {
		c, _ := n.components.Get(int64(id))
		outVolts := c.OutputVolts()
		outWatts := c.OutputWatts()

		succ := n.graph.From(int64(id))
		for succ.Next() {
			downstream, _ := n.components.Get(succ.Node().ID())
			downstream.SetInputVolts(outVolts)
			downstream.SetInputWatts(outWatts)

			key := edgeKey{from: int64(id), to: succ.Node().ID()}
			downstream.SetInputAmps(n.current[key])
		}

		if fr, ok := c.(faultReporter); ok {
			if code, volts := fr.faultState(); code != FaultNone {
				n.faults = append(n.faults, Fault{
					Component: n.names[id],
					Code:      code,
					Volts:     volts,
				})
			}
		}
	}

	n.feedbackDrains()
	return nil
}

// computeEdgeCurrents derives each wire's current from the voltage difference
// across it.
func (n *Network) computeEdgeCurrents() {
	for _, key := range n.edges {
		from, _ := n.components.Get(key.from)
		to, _ := n.components.Get(key.to)

		voltageDiff := from.OutputVolts() - to.OutputVolts()
		if r := n.resistance[key]; r > 0 {
			n.current[key] = voltageDiff / r
		} else {
			n.current[key] = 0
		}
	}
}

// feedbackDrains tells source components how much current left them this
// step, so batteries can account for discharge.
func (n *Network) feedbackDrains() {
	for _, id := range n.order {
		c, _ := n.components.Get(int64(id))
		d, ok := c.(drain)
		if !ok {
			continue
		}

		var total float64
		succ := n.graph.From(int64(id))
		for succ.Next() {
			key := edgeKey{from: int64(id), to: succ.Node().ID()}
			if amps := n.current[key]; amps > 0 {
				total += amps
			}
		}
		d.setDrawAmps(total)
	}
}

// drain is implemented by sources that track the current drawn from them.
type drain interface {
	setDrawAmps(a float64)
}

// Current returns the most recently computed current on the from → to edge.
func (n *Network) Current(from, to NodeID) (float64, bool) {
	amps, ok := n.current[edgeKey{from: int64(from), to: int64(to)}]
	return amps, ok
}

// Overcurrents lists the edges carrying more than limitAmps.
func (n *Network) Overcurrents(limitAmps float64) []Overcurrent {
	var over []Overcurrent
	for _, key := range n.edges {
		if amps := n.current[key]; amps > limitAmps {
			over = append(over, Overcurrent{
				From: NodeID(key.from),
				To:   NodeID(key.to),
				Amps: amps,
			})
		}
	}
	return over
}

// Faults returns the component faults collected during the last Update.
func (n *Network) Faults() []Fault {
	return n.faults
}
