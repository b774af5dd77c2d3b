package epanet

// Curve is a snapshot of a data curve. Changes are written back with
// UpdateCurve.
type Curve struct {
	Index  int
	ID     string
	Type   CurveType
	Points []Point
}

// CreateCurve adds a curve with the given type and points.
func (p *Project) CreateCurve(id string, typ CurveType, pts []Point) (Curve, error) {
	if err := checkStrings(id); err != nil {
		return Curve{}, err
	}
	x, y := splitPoints(pts)
	idx, err := get(p, "create curve", func(eng engine, ph uintptr) (int32, int32) {
		if code := eng.AddCurve(ph, id); code != 0 {
			return 0, code
		}
		idx, code := eng.CurveIndex(ph, id)
		if code != 0 {
			return 0, code
		}
		if code := setCurveType(eng, ph, idx, typ); code != 0 {
			return 0, code
		}
		return idx, eng.SetCurve(ph, idx, x, y)
	})
	if err != nil {
		return Curve{}, err
	}
	return Curve{Index: int(idx), ID: id, Type: typ, Points: pts}, nil
}

func (p *Project) CurveByID(id string) (Curve, error) {
	if err := checkStrings(id); err != nil {
		return Curve{}, err
	}
	return get(p, "get curve", func(eng engine, ph uintptr) (Curve, int32) {
		idx, code := eng.CurveIndex(ph, id)
		if code != 0 {
			return Curve{}, code
		}
		return readCurve(eng, ph, idx)
	})
}

func (p *Project) CurveByIndex(index int) (Curve, error) {
	return get(p, "get curve", func(eng engine, ph uintptr) (Curve, int32) {
		return readCurve(eng, ph, int32(index))
	})
}

// UpdateCurve writes the ID, type and points of c back to the project.
func (p *Project) UpdateCurve(c Curve) error {
	if err := checkStrings(c.ID); err != nil {
		return err
	}
	x, y := splitPoints(c.Points)
	return p.call("update curve", func(eng engine, ph uintptr) int32 {
		idx := int32(c.Index)
		if code := eng.SetCurveID(ph, idx, c.ID); code != 0 {
			return code
		}
		if code := setCurveType(eng, ph, idx, c.Type); code != 0 {
			return code
		}
		return eng.SetCurve(ph, idx, x, y)
	})
}

func (p *Project) DeleteCurve(index int) error {
	return p.call("delete curve", func(eng engine, ph uintptr) int32 {
		return eng.DeleteCurve(ph, int32(index))
	})
}

func (p *Project) CurveIndex(id string) (int, error) {
	if err := checkStrings(id); err != nil {
		return 0, err
	}
	idx, err := get(p, "get curve index", func(eng engine, ph uintptr) (int32, int32) {
		return eng.CurveIndex(ph, id)
	})
	return int(idx), err
}

func (p *Project) CurveID(index int) (string, error) {
	return get(p, "get curve id", func(eng engine, ph uintptr) (string, int32) {
		return eng.CurveID(ph, int32(index))
	})
}

func (p *Project) SetCurveID(index int, id string) error {
	if err := checkStrings(id); err != nil {
		return err
	}
	return p.call("set curve id", func(eng engine, ph uintptr) int32 {
		return eng.SetCurveID(ph, int32(index), id)
	})
}

func (p *Project) CurveLen(index int) (int, error) {
	n, err := get(p, "get curve length", func(eng engine, ph uintptr) (int32, int32) {
		return eng.CurveLen(ph, int32(index))
	})
	return int(n), err
}

func (p *Project) CurveType(index int) (CurveType, error) {
	t, err := get(p, "get curve type", func(eng engine, ph uintptr) (int32, int32) {
		return eng.CurveType(ph, int32(index))
	})
	return CurveType(t), err
}

// SetCurveType requires EPANET 2.3.
func (p *Project) SetCurveType(index int, typ CurveType) error {
	return p.call("set curve type", func(eng engine, ph uintptr) int32 {
		return eng.SetCurveType(ph, int32(index), int32(typ))
	})
}

// CurveValue returns one 1-based point of a curve.
func (p *Project) CurveValue(index, point int) (Point, error) {
	return get(p, "get curve value", func(eng engine, ph uintptr) (Point, int32) {
		x, y, code := eng.CurveValue(ph, int32(index), int32(point))
		return Point{X: x, Y: y}, code
	})
}

func (p *Project) SetCurveValue(index, point int, pt Point) error {
	return p.call("set curve value", func(eng engine, ph uintptr) int32 {
		return eng.SetCurveValue(ph, int32(index), int32(point), pt.X, pt.Y)
	})
}

// SetCurve replaces all of a curve's points.
func (p *Project) SetCurve(index int, pts []Point) error {
	x, y := splitPoints(pts)
	return p.call("set curve", func(eng engine, ph uintptr) int32 {
		return eng.SetCurve(ph, int32(index), x, y)
	})
}

func readCurve(eng engine, ph uintptr, idx int32) (Curve, int32) {
	id, x, y, code := eng.Curve(ph, idx)
	if code != 0 {
		return Curve{}, code
	}
	typ, code := eng.CurveType(ph, idx)
	if code != 0 {
		return Curve{}, code
	}
	return Curve{Index: int(idx), ID: id, Type: CurveType(typ), Points: joinPoints(x, y)}, 0
}

// setCurveType tolerates toolkits without EN_setcurvetype as long as the
// curve keeps the generic type every new curve starts with.
func setCurveType(eng engine, ph uintptr, idx int32, typ CurveType) int32 {
	code := eng.SetCurveType(ph, idx, int32(typ))
	if code == errUnavailableCode {
		cur, rc := eng.CurveType(ph, idx)
		if rc == 0 && CurveType(cur) == typ {
			return 0
		}
	}
	return code
}
