package epanet

// AddNode adds a node and returns its index.
func (p *Project) AddNode(id string, typ NodeType) (int, error) {
	if err := checkStrings(id); err != nil {
		return 0, err
	}
	idx, err := get(p, "add node", func(eng engine, ph uintptr) (int32, int32) {
		return eng.AddNode(ph, id, int32(typ))
	})
	return int(idx), err
}

// DeleteNode deletes a node. Indices of nodes after it shift down by one.
func (p *Project) DeleteNode(index int, action ActionCode) error {
	return p.call("delete node", func(eng engine, ph uintptr) int32 {
		return eng.DeleteNode(ph, int32(index), int32(action))
	})
}

func (p *Project) NodeIndex(id string) (int, error) {
	if err := checkStrings(id); err != nil {
		return 0, err
	}
	idx, err := get(p, "get node index", func(eng engine, ph uintptr) (int32, int32) {
		return eng.NodeIndex(ph, id)
	})
	return int(idx), err
}

func (p *Project) NodeID(index int) (string, error) {
	return get(p, "get node id", func(eng engine, ph uintptr) (string, int32) {
		return eng.NodeID(ph, int32(index))
	})
}

func (p *Project) SetNodeID(index int, id string) error {
	if err := checkStrings(id); err != nil {
		return err
	}
	return p.call("set node id", func(eng engine, ph uintptr) int32 {
		return eng.SetNodeID(ph, int32(index), id)
	})
}

func (p *Project) NodeType(index int) (NodeType, error) {
	t, err := get(p, "get node type", func(eng engine, ph uintptr) (int32, int32) {
		return eng.NodeType(ph, int32(index))
	})
	return NodeType(t), err
}

func (p *Project) NodeValue(index int, prop NodeProperty) (float64, error) {
	return get(p, "get node value", func(eng engine, ph uintptr) (float64, int32) {
		return eng.NodeValue(ph, int32(index), int32(prop))
	})
}

// NodeValues returns prop for every node, in index order.
func (p *Project) NodeValues(prop NodeProperty) ([]float64, error) {
	return get(p, "get node values", func(eng engine, ph uintptr) ([]float64, int32) {
		n, code := eng.Count(ph, int32(NodeCount))
		if code != 0 {
			return nil, code
		}
		return eng.NodeValues(ph, int32(prop), n)
	})
}

func (p *Project) SetNodeValue(index int, prop NodeProperty, value float64) error {
	return p.call("set node value", func(eng engine, ph uintptr) int32 {
		return eng.SetNodeValue(ph, int32(index), int32(prop), value)
	})
}

// SetJunctionData sets a junction's elevation, primary base demand and demand
// pattern ID ("" for none).
func (p *Project) SetJunctionData(index int, elevation, demand float64, pattern string) error {
	if err := checkStrings(pattern); err != nil {
		return err
	}
	return p.call("set junction data", func(eng engine, ph uintptr) int32 {
		return eng.SetJunctionData(ph, int32(index), elevation, demand, pattern)
	})
}

// TankData holds the properties set together by SetTankData.
type TankData struct {
	Elevation float64
	InitLevel float64
	MinLevel  float64
	MaxLevel  float64
	Diameter  float64
	MinVolume float64
	// VolumeCurve is the ID of a volume curve, "" for a cylindrical tank.
	VolumeCurve string
}

func (p *Project) SetTankData(index int, d TankData) error {
	if err := checkStrings(d.VolumeCurve); err != nil {
		return err
	}
	return p.call("set tank data", func(eng engine, ph uintptr) int32 {
		return eng.SetTankData(ph, int32(index), d.Elevation, d.InitLevel, d.MinLevel, d.MaxLevel, d.Diameter, d.MinVolume, d.VolumeCurve)
	})
}

// Point is an (x, y) pair: map coordinates, link vertices or curve data.
type Point struct {
	X, Y float64
}

// Coord returns a node's map coordinates.
func (p *Project) Coord(index int) (Point, error) {
	return get(p, "get coordinates", func(eng engine, ph uintptr) (Point, int32) {
		x, y, code := eng.Coord(ph, int32(index))
		return Point{X: x, Y: y}, code
	})
}

func (p *Project) SetCoord(index int, pt Point) error {
	return p.call("set coordinates", func(eng engine, ph uintptr) int32 {
		return eng.SetCoord(ph, int32(index), pt.X, pt.Y)
	})
}

// Node is a handle to one node of a project. Its index goes stale if a node
// with a lower index is deleted.
type Node struct {
	p     *Project
	index int
	id    string
	typ   NodeType
}

// CreateNode adds a node and returns a handle to it.
func (p *Project) CreateNode(id string, typ NodeType) (*Node, error) {
	idx, err := p.AddNode(id, typ)
	if err != nil {
		return nil, err
	}
	return &Node{p: p, index: idx, id: id, typ: typ}, nil
}

func (p *Project) NodeByIndex(index int) (*Node, error) {
	id, err := p.NodeID(index)
	if err != nil {
		return nil, err
	}
	typ, err := p.NodeType(index)
	if err != nil {
		return nil, err
	}
	return &Node{p: p, index: index, id: id, typ: typ}, nil
}

func (p *Project) NodeByID(id string) (*Node, error) {
	idx, err := p.NodeIndex(id)
	if err != nil {
		return nil, err
	}
	return p.NodeByIndex(idx)
}

func (n *Node) Index() int     { return n.index }
func (n *Node) ID() string     { return n.id }
func (n *Node) Type() NodeType { return n.typ }

func (n *Node) SetID(id string) error {
	if err := n.p.SetNodeID(n.index, id); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Node) Value(prop NodeProperty) (float64, error) {
	return n.p.NodeValue(n.index, prop)
}

func (n *Node) SetValue(prop NodeProperty, value float64) error {
	return n.p.SetNodeValue(n.index, prop, value)
}

func (n *Node) Delete(action ActionCode) error {
	return n.p.DeleteNode(n.index, action)
}

// AsJunction returns the junction view of n, or false if n is not a junction.
func (n *Node) AsJunction() (JunctionNode, bool) {
	return JunctionNode{n}, n.typ == Junction
}

func (n *Node) AsReservoir() (ReservoirNode, bool) {
	return ReservoirNode{n}, n.typ == Reservoir
}

func (n *Node) AsTank() (TankNode, bool) {
	return TankNode{n}, n.typ == Tank
}

// JunctionNode exposes the properties specific to junctions.
type JunctionNode struct {
	*Node
}

func (j JunctionNode) Elevation() (float64, error) {
	return j.Value(NodeElevation)
}

func (j JunctionNode) SetElevation(v float64) error {
	return j.SetValue(NodeElevation, v)
}

// BaseDemand returns the base demand of the junction's primary demand category.
func (j JunctionNode) BaseDemand() (float64, error) {
	return j.Value(NodeBaseDemand)
}

func (j JunctionNode) SetBaseDemand(v float64) error {
	return j.SetValue(NodeBaseDemand, v)
}

func (j JunctionNode) Pressure() (float64, error) {
	return j.Value(NodePressure)
}

// ReservoirNode exposes the properties specific to reservoirs.
type ReservoirNode struct {
	*Node
}

// Elevation returns the reservoir's hydraulic head.
func (r ReservoirNode) Elevation() (float64, error) {
	return r.Value(NodeElevation)
}

func (r ReservoirNode) SetElevation(v float64) error {
	return r.SetValue(NodeElevation, v)
}

// HeadPattern returns the index of the pattern varying the reservoir head,
// 0 if none.
func (r ReservoirNode) HeadPattern() (int, error) {
	v, err := r.Value(NodePattern)
	return int(v), err
}

// TankNode exposes the properties specific to storage tanks.
type TankNode struct {
	*Node
}

// Level returns the computed water level, or the initial level before a run.
func (t TankNode) Level() (float64, error) {
	return t.Value(NodeTankLevel)
}

// SetLevel sets the initial water level.
func (t TankNode) SetLevel(v float64) error {
	return t.SetValue(NodeTankLevel, v)
}

func (t TankNode) Volume() (float64, error) {
	return t.Value(NodeTankVolume)
}

func (t TankNode) MixModel() (MixingModel, error) {
	v, err := t.Value(NodeMixModel)
	return MixingModel(v), err
}

func (t TankNode) SetMixModel(m MixingModel) error {
	return t.SetValue(NodeMixModel, float64(m))
}

func (t TankNode) CanOverflow() (bool, error) {
	v, err := t.Value(NodeCanOverflow)
	return v != 0, err
}

func (t TankNode) SetCanOverflow(ok bool) error {
	v := 0.0
	if ok {
		v = 1
	}
	return t.SetValue(NodeCanOverflow, v)
}
