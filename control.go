package epanet

// Control is a snapshot of a simple control. Changes are written back with
// UpdateControl.
type Control struct {
	Index int
	Type  ControlType
	// Link is the index of the controlled link.
	Link int
	// Setting is the link setting applied; for pipes and pumps 0 closes and 1
	// opens the link.
	Setting float64
	// Node is the index of the controlling node, 0 for Timer and TimeOfDay.
	Node int
	// Level is the node's trigger level, or the trigger time in seconds for
	// Timer and TimeOfDay.
	Level   float64
	Enabled bool
}

// AddControl adds a simple control and returns its index. A disabled control
// needs EPANET 2.3; if it cannot be disabled it is removed again.
func (p *Project) AddControl(typ ControlType, link int, setting float64, node int, level float64, enabled bool) (int, error) {
	idx, err := get(p, "add control", func(eng engine, ph uintptr) (int32, int32) {
		idx, code := eng.AddControl(ph, int32(typ), int32(link), setting, int32(node), level)
		if code != 0 || enabled {
			return idx, code
		}
		if code := eng.SetControlEnabled(ph, idx, 0); code != 0 {
			eng.DeleteControl(ph, idx)
			return 0, code
		}
		return idx, 0
	})
	return int(idx), err
}

// Control returns a snapshot of the control at index. Toolkits that cannot
// disable controls report every control as enabled.
func (p *Project) Control(index int) (Control, error) {
	return get(p, "get control", func(eng engine, ph uintptr) (Control, int32) {
		typ, link, setting, node, level, code := eng.Control(ph, int32(index))
		if code != 0 {
			return Control{}, code
		}
		enabled, code := eng.ControlEnabled(ph, int32(index))
		switch code {
		case 0:
		case errUnavailableCode:
			enabled = 1
		default:
			return Control{}, code
		}
		return Control{
			Index:   index,
			Type:    ControlType(typ),
			Link:    int(link),
			Setting: setting,
			Node:    int(node),
			Level:   level,
			Enabled: enabled != 0,
		}, 0
	})
}

// UpdateControl writes every field of c back to the control at c.Index.
func (p *Project) UpdateControl(c Control) error {
	return p.call("update control", func(eng engine, ph uintptr) int32 {
		idx := int32(c.Index)
		if code := eng.SetControl(ph, idx, int32(c.Type), int32(c.Link), c.Setting, int32(c.Node), c.Level); code != 0 {
			return code
		}
		code := eng.SetControlEnabled(ph, idx, boolInt(c.Enabled))
		if code == errUnavailableCode && c.Enabled {
			return 0
		}
		return code
	})
}

func (p *Project) DeleteControl(index int) error {
	return p.call("delete control", func(eng engine, ph uintptr) int32 {
		return eng.DeleteControl(ph, int32(index))
	})
}

// ControlEnabled requires EPANET 2.3.
func (p *Project) ControlEnabled(index int) (bool, error) {
	v, err := get(p, "get control enabled", func(eng engine, ph uintptr) (int32, int32) {
		return eng.ControlEnabled(ph, int32(index))
	})
	return v != 0, err
}

// SetControlEnabled requires EPANET 2.3.
func (p *Project) SetControlEnabled(index int, enabled bool) error {
	return p.call("set control enabled", func(eng engine, ph uintptr) int32 {
		return eng.SetControlEnabled(ph, int32(index), boolInt(enabled))
	})
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
