package core

import (
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter is the current value of one generation parameter, already
// formatted for display.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
	Unit  string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes a slider-like control: a bounded value adjusted
// in fixed steps.
type ParameterControl struct {
	Key         string
	Label       string
	Type        ParamType
	Unit        string
	Description string

	Step float64
	Min  float64
	Max  float64
}

// Clamp snaps v into [Min, Max]. Integer controls are also rounded.
func (c ParameterControl) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return c.Min
	}
	if c.Type == ParamTypeInt {
		v = math.Round(v)
	}
	return math.Max(c.Min, math.Min(c.Max, v))
}

// Format renders v with a precision derived from the control step.
func (c ParameterControl) Format(v float64) string {
	if c.Type == ParamTypeInt {
		return strconv.Itoa(int(math.Round(v))) + c.Unit
	}
	precision := 1
	switch {
	case c.Step <= 0:
		precision = 2
	case c.Step < 0.01:
		precision = 3
	case c.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64) + c.Unit
}

// ParameterControlsProvider exposes the list of adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows interactive controls to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows interactive controls to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
