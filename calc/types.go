package calc

import "github.com/katalvlaran/nucleon/semf"

// Op identifies an operation.
type Op string

const (
	OpBinding Op = "binding"
	OpFission Op = "fission"
	OpFusion  Op = "fusion"
	OpDecay   Op = "decay"
)

// Ops lists every supported operation in display order.
var Ops = []Op{OpBinding, OpFission, OpFusion, OpDecay}

// Request is one operation with its arguments. Only the fields used by Op
// are read:
//   - binding: A, Z (Terms adds the per-term breakdown)
//   - fission: Mass
//   - fusion:  Mass1, Mass2
//   - decay:   Initial, HalfLife, Elapsed
type Request struct {
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Op       Op      `json:"op" yaml:"op"`
	A        float64 `json:"a,omitempty" yaml:"a,omitempty"`
	Z        float64 `json:"z,omitempty" yaml:"z,omitempty"`
	Terms    bool    `json:"terms,omitempty" yaml:"terms,omitempty"`
	Mass     float64 `json:"mass,omitempty" yaml:"mass,omitempty"`
	Mass1    float64 `json:"mass1,omitempty" yaml:"mass1,omitempty"`
	Mass2    float64 `json:"mass2,omitempty" yaml:"mass2,omitempty"`
	Initial  float64 `json:"initial,omitempty" yaml:"initial,omitempty"`
	HalfLife float64 `json:"half_life,omitempty" yaml:"half_life,omitempty"`
	Elapsed  float64 `json:"elapsed,omitempty" yaml:"elapsed,omitempty"`
}

// Result holds the outputs of one Request. Fields an operation does not
// produce are nil:
//   - binding: Energy (+ Terms when requested)
//   - fission: Mass (one fragment), Energy
//   - fusion:  Mass (fused nucleus), Energy
//   - decay:   Remaining
type Result struct {
	Index     int         `json:"index" yaml:"index"`
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	Op        Op          `json:"op" yaml:"op"`
	Energy    *float64    `json:"energy,omitempty" yaml:"energy,omitempty"`
	Mass      *float64    `json:"mass,omitempty" yaml:"mass,omitempty"`
	Remaining *float64    `json:"remaining,omitempty" yaml:"remaining,omitempty"`
	Terms     *semf.Terms `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// Format is the encoding of a request file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)
