package epanet

// AddLink adds a link between two existing nodes, given by ID, and returns
// its index.
func (p *Project) AddLink(id string, typ LinkType, fromNode, toNode string) (int, error) {
	if err := checkStrings(id, fromNode, toNode); err != nil {
		return 0, err
	}
	idx, err := get(p, "add link", func(eng engine, ph uintptr) (int32, int32) {
		return eng.AddLink(ph, id, int32(typ), fromNode, toNode)
	})
	return int(idx), err
}

// DeleteLink deletes a link. Indices of links after it shift down by one.
func (p *Project) DeleteLink(index int, action ActionCode) error {
	return p.call("delete link", func(eng engine, ph uintptr) int32 {
		return eng.DeleteLink(ph, int32(index), int32(action))
	})
}

func (p *Project) LinkIndex(id string) (int, error) {
	if err := checkStrings(id); err != nil {
		return 0, err
	}
	idx, err := get(p, "get link index", func(eng engine, ph uintptr) (int32, int32) {
		return eng.LinkIndex(ph, id)
	})
	return int(idx), err
}

func (p *Project) LinkID(index int) (string, error) {
	return get(p, "get link id", func(eng engine, ph uintptr) (string, int32) {
		return eng.LinkID(ph, int32(index))
	})
}

func (p *Project) SetLinkID(index int, id string) error {
	if err := checkStrings(id); err != nil {
		return err
	}
	return p.call("set link id", func(eng engine, ph uintptr) int32 {
		return eng.SetLinkID(ph, int32(index), id)
	})
}

func (p *Project) LinkType(index int) (LinkType, error) {
	t, err := get(p, "get link type", func(eng engine, ph uintptr) (int32, int32) {
		return eng.LinkType(ph, int32(index))
	})
	return LinkType(t), err
}

// SetLinkType changes a link's type. The toolkit replaces the link, so its
// index may change; the new index is returned.
func (p *Project) SetLinkType(index int, typ LinkType, action ActionCode) (int, error) {
	idx, err := get(p, "set link type", func(eng engine, ph uintptr) (int32, int32) {
		return eng.SetLinkType(ph, int32(index), int32(typ), int32(action))
	})
	return int(idx), err
}

// LinkNodes returns the indices of a link's start and end nodes.
func (p *Project) LinkNodes(index int) (from, to int, err error) {
	var n1, n2 int32
	err = p.call("get link nodes", func(eng engine, ph uintptr) (code int32) {
		n1, n2, code = eng.LinkNodes(ph, int32(index))
		return code
	})
	if err != nil {
		return 0, 0, err
	}
	return int(n1), int(n2), nil
}

func (p *Project) SetLinkNodes(index, from, to int) error {
	return p.call("set link nodes", func(eng engine, ph uintptr) int32 {
		return eng.SetLinkNodes(ph, int32(index), int32(from), int32(to))
	})
}

func (p *Project) LinkValue(index int, prop LinkProperty) (float64, error) {
	return get(p, "get link value", func(eng engine, ph uintptr) (float64, int32) {
		return eng.LinkValue(ph, int32(index), int32(prop))
	})
}

// LinkValues returns prop for every link, in index order.
func (p *Project) LinkValues(prop LinkProperty) ([]float64, error) {
	return get(p, "get link values", func(eng engine, ph uintptr) ([]float64, int32) {
		n, code := eng.Count(ph, int32(LinkCount))
		if code != 0 {
			return nil, code
		}
		return eng.LinkValues(ph, int32(prop), n)
	})
}

func (p *Project) SetLinkValue(index int, prop LinkProperty, value float64) error {
	return p.call("set link value", func(eng engine, ph uintptr) int32 {
		return eng.SetLinkValue(ph, int32(index), int32(prop), value)
	})
}

// PipeData holds the properties set together by SetPipeData.
type PipeData struct {
	Length    float64
	Diameter  float64
	Roughness float64
	MinorLoss float64
}

func (p *Project) SetPipeData(index int, d PipeData) error {
	return p.call("set pipe data", func(eng engine, ph uintptr) int32 {
		return eng.SetPipeData(ph, int32(index), d.Length, d.Diameter, d.Roughness, d.MinorLoss)
	})
}

func (p *Project) PumpType(index int) (PumpType, error) {
	t, err := get(p, "get pump type", func(eng engine, ph uintptr) (int32, int32) {
		return eng.PumpType(ph, int32(index))
	})
	return PumpType(t), err
}

// HeadCurveIndex returns the index of a pump's head curve, 0 if none.
func (p *Project) HeadCurveIndex(linkIndex int) (int, error) {
	idx, err := get(p, "get head curve index", func(eng engine, ph uintptr) (int32, int32) {
		return eng.HeadCurveIndex(ph, int32(linkIndex))
	})
	return int(idx), err
}

func (p *Project) SetHeadCurveIndex(linkIndex, curveIndex int) error {
	return p.call("set head curve index", func(eng engine, ph uintptr) int32 {
		return eng.SetHeadCurveIndex(ph, int32(linkIndex), int32(curveIndex))
	})
}

func (p *Project) VertexCount(linkIndex int) (int, error) {
	n, err := get(p, "get vertex count", func(eng engine, ph uintptr) (int32, int32) {
		return eng.VertexCount(ph, int32(linkIndex))
	})
	return int(n), err
}

// Vertex returns one interior point of a link's map outline; vertex is 1-based.
func (p *Project) Vertex(linkIndex, vertex int) (Point, error) {
	return get(p, "get vertex", func(eng engine, ph uintptr) (Point, int32) {
		x, y, code := eng.Vertex(ph, int32(linkIndex), int32(vertex))
		return Point{X: x, Y: y}, code
	})
}

func (p *Project) SetVertex(linkIndex, vertex int, pt Point) error {
	return p.call("set vertex", func(eng engine, ph uintptr) int32 {
		return eng.SetVertex(ph, int32(linkIndex), int32(vertex), pt.X, pt.Y)
	})
}

// Vertices returns every interior point of a link's map outline.
func (p *Project) Vertices(linkIndex int) ([]Point, error) {
	return get(p, "get vertices", func(eng engine, ph uintptr) ([]Point, int32) {
		n, code := eng.VertexCount(ph, int32(linkIndex))
		if code != 0 {
			return nil, code
		}
		pts := make([]Point, 0, n)
		for i := int32(1); i <= n; i++ {
			x, y, code := eng.Vertex(ph, int32(linkIndex), i)
			if code != 0 {
				return nil, code
			}
			pts = append(pts, Point{X: x, Y: y})
		}
		return pts, 0
	})
}

// SetVertices replaces all of a link's interior points.
func (p *Project) SetVertices(linkIndex int, pts []Point) error {
	x, y := splitPoints(pts)
	return p.call("set vertices", func(eng engine, ph uintptr) int32 {
		return eng.SetVertices(ph, int32(linkIndex), x, y)
	})
}

func splitPoints(pts []Point) (x, y []float64) {
	x = make([]float64, len(pts))
	y = make([]float64, len(pts))
	for i, pt := range pts {
		x[i], y[i] = pt.X, pt.Y
	}
	return x, y
}

func joinPoints(x, y []float64) []Point {
	pts := make([]Point, min(len(x), len(y)))
	for i := range pts {
		pts[i] = Point{X: x[i], Y: y[i]}
	}
	return pts
}
