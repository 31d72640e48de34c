package model

import (
	"fmt"
	"math"
)

// ErrConstruction is the umbrella sentinel for every model-construction
// failure; the specific sentinels below wrap it.
var ErrConstruction = fmt.Errorf("model: construction failed")

var (
	// ErrUnknownKind is returned for a Kind outside the four formulations.
	ErrUnknownKind = fmt.Errorf("%w: unknown formulation kind", ErrConstruction)

	// ErrBadScenario wraps the scenario validation failure that stopped
	// construction. Use errors.Is against the scenario sentinels for the
	// precise cause.
	ErrBadScenario = fmt.Errorf("%w: invalid scenario", ErrConstruction)
)

// Kind tags one of the four formulations.
type Kind int

const (
	MILP Kind = iota
	LP
	QP
	NLP
)

// kindNames is indexed by Kind.
var kindNames = [...]string{"MILP", "LP", "QP", "NLP"}

func (k Kind) String() string {
	if k < MILP || k > NLP {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the four formulations.
func (k Kind) Valid() bool { return k >= MILP && k <= NLP }

// ParseKind maps a formulation name ("MILP", "LP", "QP", "NLP") to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns all four formulation kinds in canonical order.
func Kinds() []Kind { return []Kind{MILP, LP, QP, NLP} }

// RowKind distinguishes the two constraint families of the skeleton.
type RowKind int

const (
	// RowBalance is the per-period inventory balance equality.
	RowBalance RowKind = iota

	// RowCapacity is the per-period capacity constraint; for MILP it is the
	// big-M linkage x_t - M·y_t ≤ 0.
	RowCapacity
)

// Row is one constraint in bounded form: Lo ≤ Σ Coefs[i]·v[Cols[i]] ≤ Hi.
// Equalities carry Lo == Hi. Period is 1-based.
type Row struct {
	Kind   RowKind
	Period int
	Cols   []int
	Coefs  []float64
	Lo     float64
	Hi     float64
}

// Eval computes the row's linear form at v.
func (r Row) Eval(v []float64) float64 {
	var sum float64
	for i, c := range r.Cols {
		sum += r.Coefs[i] * v[c]
	}
	return sum
}

// QuadTerm is one upper-triangular Hessian entry under the 0.5·vᵀHv
// convention used by QP backends.
type QuadTerm struct {
	I, J int
	V    float64
}

// Breakdown decomposes a plan's total cost by source. Components that a
// formulation does not carry are zero.
type Breakdown struct {
	Production float64
	Holding    float64
	Setup      float64
	Smoothing  float64
	Concave    float64
	Total      float64
}

// ProductionVar names the production variable of 1-based period t.
func ProductionVar(t int) string { return fmt.Sprintf("x_%d", t) }

// InventoryVar names the end-of-period inventory variable of period t.
func InventoryVar(t int) string { return fmt.Sprintf("s_%d", t) }

// SetupVar names the binary setup indicator of period t (MILP only).
func SetupVar(t int) string { return fmt.Sprintf("y_%d", t) }

// noBound is the open bound used for one-sided rows.
var noBound = math.Inf(1)
