package epanet

import "github.com/agiangrant/epanet/internal/ffi"

// Rule is a snapshot of a rule-based control.
type Rule struct {
	Index    int
	ID       string
	Premises []Premise
	Then     []Action
	Else     []Action
	Priority float64
	Enabled  bool
}

// Premise is one IF/AND/OR clause of a rule.
type Premise struct {
	LogOp    LogicalOperator
	Object   RuleObject
	ObjIndex int
	Variable RuleVariable
	Op       RuleOperator
	// Status is compared against when Variable is VarStatus, else StatusNone.
	Status RuleStatus
	Value  float64
}

// Action is one THEN or ELSE clause of a rule.
type Action struct {
	Link    int
	Status  RuleStatus
	Setting float64
}

// AddRule adds a rule written in [RULES] section syntax and returns its index.
func (p *Project) AddRule(text string) (int, error) {
	if err := checkStrings(text); err != nil {
		return 0, err
	}
	idx, err := get(p, "add rule", func(eng engine, ph uintptr) (int32, int32) {
		if code := eng.AddRule(ph, text); code != 0 {
			return 0, code
		}
		return eng.Count(ph, int32(RuleCount))
	})
	return int(idx), err
}

func (p *Project) DeleteRule(index int) error {
	return p.call("delete rule", func(eng engine, ph uintptr) int32 {
		return eng.DeleteRule(ph, int32(index))
	})
}

// Rule returns a snapshot of the rule at index with all of its clauses.
func (p *Project) Rule(index int) (Rule, error) {
	return get(p, "get rule", func(eng engine, ph uintptr) (Rule, int32) {
		idx := int32(index)
		nPrem, nThen, nElse, priority, code := eng.Rule(ph, idx)
		if code != 0 {
			return Rule{}, code
		}
		r := Rule{Index: index, Priority: priority, Enabled: true}
		if r.ID, code = eng.RuleID(ph, idx); code != 0 {
			return Rule{}, code
		}
		for i := int32(1); i <= nPrem; i++ {
			c, code := eng.Premise(ph, idx, i)
			if code != 0 {
				return Rule{}, code
			}
			r.Premises = append(r.Premises, premiseFromC(c))
		}
		for i := int32(1); i <= nThen; i++ {
			link, status, setting, code := eng.ThenAction(ph, idx, i)
			if code != 0 {
				return Rule{}, code
			}
			r.Then = append(r.Then, Action{Link: int(link), Status: RuleStatus(status), Setting: setting})
		}
		for i := int32(1); i <= nElse; i++ {
			link, status, setting, code := eng.ElseAction(ph, idx, i)
			if code != 0 {
				return Rule{}, code
			}
			r.Else = append(r.Else, Action{Link: int(link), Status: RuleStatus(status), Setting: setting})
		}
		switch enabled, code := eng.RuleEnabled(ph, idx); code {
		case 0:
			r.Enabled = enabled != 0
		case errUnavailableCode:
		default:
			return Rule{}, code
		}
		return r, 0
	})
}

func (p *Project) RuleID(index int) (string, error) {
	return get(p, "get rule id", func(eng engine, ph uintptr) (string, int32) {
		return eng.RuleID(ph, int32(index))
	})
}

// Premise returns clause premiseIndex (1-based) of a rule.
func (p *Project) Premise(ruleIndex, premiseIndex int) (Premise, error) {
	return get(p, "get premise", func(eng engine, ph uintptr) (Premise, int32) {
		c, code := eng.Premise(ph, int32(ruleIndex), int32(premiseIndex))
		return premiseFromC(c), code
	})
}

func (p *Project) SetPremise(ruleIndex, premiseIndex int, pr Premise) error {
	return p.call("set premise", func(eng engine, ph uintptr) int32 {
		return eng.SetPremise(ph, int32(ruleIndex), int32(premiseIndex), premiseToC(pr))
	})
}

func (p *Project) ThenAction(ruleIndex, actionIndex int) (Action, error) {
	return get(p, "get then action", func(eng engine, ph uintptr) (Action, int32) {
		link, status, setting, code := eng.ThenAction(ph, int32(ruleIndex), int32(actionIndex))
		return Action{Link: int(link), Status: RuleStatus(status), Setting: setting}, code
	})
}

func (p *Project) SetThenAction(ruleIndex, actionIndex int, a Action) error {
	return p.call("set then action", func(eng engine, ph uintptr) int32 {
		return eng.SetThenAction(ph, int32(ruleIndex), int32(actionIndex), int32(a.Link), int32(a.Status), a.Setting)
	})
}

func (p *Project) ElseAction(ruleIndex, actionIndex int) (Action, error) {
	return get(p, "get else action", func(eng engine, ph uintptr) (Action, int32) {
		link, status, setting, code := eng.ElseAction(ph, int32(ruleIndex), int32(actionIndex))
		return Action{Link: int(link), Status: RuleStatus(status), Setting: setting}, code
	})
}

func (p *Project) SetElseAction(ruleIndex, actionIndex int, a Action) error {
	return p.call("set else action", func(eng engine, ph uintptr) int32 {
		return eng.SetElseAction(ph, int32(ruleIndex), int32(actionIndex), int32(a.Link), int32(a.Status), a.Setting)
	})
}

func (p *Project) SetRulePriority(index int, priority float64) error {
	return p.call("set rule priority", func(eng engine, ph uintptr) int32 {
		return eng.SetRulePriority(ph, int32(index), priority)
	})
}

// RuleEnabled requires EPANET 2.3.
func (p *Project) RuleEnabled(index int) (bool, error) {
	v, err := get(p, "get rule enabled", func(eng engine, ph uintptr) (int32, int32) {
		return eng.RuleEnabled(ph, int32(index))
	})
	return v != 0, err
}

// SetRuleEnabled requires EPANET 2.3.
func (p *Project) SetRuleEnabled(index int, enabled bool) error {
	return p.call("set rule enabled", func(eng engine, ph uintptr) int32 {
		return eng.SetRuleEnabled(ph, int32(index), boolInt(enabled))
	})
}

func premiseFromC(c ffi.PremiseC) Premise {
	return Premise{
		LogOp:    LogicalOperator(c.LogOp),
		Object:   RuleObject(c.Object),
		ObjIndex: int(c.ObjIndex),
		Variable: RuleVariable(c.Variable),
		Op:       RuleOperator(c.RelOp),
		Status:   RuleStatus(c.Status),
		Value:    c.Value,
	}
}

func premiseToC(p Premise) ffi.PremiseC {
	return ffi.PremiseC{
		LogOp:    int32(p.LogOp),
		Object:   int32(p.Object),
		ObjIndex: int32(p.ObjIndex),
		Variable: int32(p.Variable),
		RelOp:    int32(p.Op),
		Status:   int32(p.Status),
		Value:    p.Value,
	}
}
