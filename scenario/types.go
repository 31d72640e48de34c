package scenario

import "fmt"

// ErrConfig is the umbrella sentinel for every invalid-configuration case.
// All specific sentinels below wrap it, so errors.Is(err, ErrConfig) matches
// any of them.
var ErrConfig = fmt.Errorf("scenario: invalid config")

var (
	// ErrNonPositivePeriods is returned when Config.Periods <= 0.
	ErrNonPositivePeriods = fmt.Errorf("%w: periods must be positive", ErrConfig)

	// ErrNegativeCost is returned when any cost coefficient is negative.
	ErrNegativeCost = fmt.Errorf("%w: cost coefficients must be non-negative", ErrConfig)

	// ErrNonPositiveCapacity is returned when capacity is zero or negative.
	ErrNonPositiveCapacity = fmt.Errorf("%w: capacity must be positive", ErrConfig)

	// ErrNegativeInventory is returned when the initial inventory is negative.
	ErrNegativeInventory = fmt.Errorf("%w: initial inventory must be non-negative", ErrConfig)

	// ErrDemandLength is returned when an explicit demand series does not
	// match the configured number of periods.
	ErrDemandLength = fmt.Errorf("%w: demand length must equal periods", ErrConfig)

	// ErrNegativeDemand is returned when any demand value, explicit or
	// generated, is negative.
	ErrNegativeDemand = fmt.Errorf("%w: demand must be non-negative", ErrConfig)

	// ErrUnknownPattern is returned for a Pattern outside the recognized set.
	ErrUnknownPattern = fmt.Errorf("%w: unknown demand pattern", ErrConfig)

	// ErrSuiteExplicitDemand is returned when Suite is called with a Config
	// carrying an explicit demand series: the series cannot be rescaled to
	// several horizon lengths.
	ErrSuiteExplicitDemand = fmt.Errorf("%w: suite requires a generated demand pattern", ErrConfig)
)

// DemandPattern selects how the demand series is produced.
type DemandPattern string

const (
	// PatternConstant repeats BaseDemand every period. Variance is ignored.
	PatternConstant DemandPattern = "constant"

	// PatternSeasonal applies a yearly calendar profile:
	// demand is raised 20% in months 6, 7, 11, 12 and lowered 10% in
	// months 2, 3 (repeating for horizons beyond one year), with optional
	// uniform noise of amplitude Variance on top.
	PatternSeasonal DemandPattern = "seasonal"

	// PatternRandom draws each period uniformly from
	// [BaseDemand-Variance, BaseDemand+Variance].
	PatternRandom DemandPattern = "random"
)

// Costs groups every cost and curvature coefficient of the planning problem.
//
//   - Production: linear cost per produced unit.
//   - Holding:    cost per unit held in inventory per period.
//   - Setup:      fixed charge per period with non-zero production (MILP only).
//   - SmoothWeight: weight of the quadratic production-change penalty (QP only).
//   - ConcaveCoeff / ConcaveExponent: the concave production-cost term
//     ConcaveCoeff·x^ConcaveExponent added by the NLP formulation; the
//     exponent must lie in (0,1) so marginal cost diminishes with volume.
type Costs struct {
	Production      float64
	Holding         float64
	Setup           float64
	SmoothWeight    float64
	ConcaveCoeff    float64
	ConcaveExponent float64
}

// DefaultCosts returns the reference cost set:
// production 10, holding 2, setup 500, smoothing weight 0.1,
// concave coefficient 0.05 with exponent 0.8.
func DefaultCosts() Costs {
	return Costs{
		Production:      10,
		Holding:         2,
		Setup:           500,
		SmoothWeight:    0.1,
		ConcaveCoeff:    0.05,
		ConcaveExponent: 0.8,
	}
}

// Config enumerates every recognized generation option.
//
// Either set Demand explicitly (length must equal Periods; Pattern, BaseDemand,
// Variance and Seed are then ignored) or choose a Pattern and let Generate
// produce the series deterministically from Seed.
type Config struct {
	Periods    int
	Pattern    DemandPattern
	BaseDemand float64
	Variance   float64
	Seed       int64

	// Demand, when non-nil, is used verbatim instead of a generated series.
	Demand []float64

	Capacity         float64
	InitialInventory float64
	Costs            Costs
}

// DefaultConfig returns a Config for the reference instance at the given
// horizon: constant demand 100, capacity 200, zero initial inventory and
// DefaultCosts.
func DefaultConfig(periods int) Config {
	return Config{
		Periods:    periods,
		Pattern:    PatternConstant,
		BaseDemand: 100,
		Capacity:   200,
		Costs:      DefaultCosts(),
	}
}

// Scenario is an immutable planning instance. Treat all slice fields as
// read-only; Generate returns a fresh copy and every consumer shares it.
type Scenario struct {
	Periods          int
	Demand           []float64
	ProductionCost   float64
	HoldingCost      float64
	SetupCost        float64
	Capacity         float64
	InitialInventory float64

	// Formulation parameters carried with the instance so that every model
	// built from it is parameterized identically.
	SmoothWeight    float64
	ConcaveCoeff    float64
	ConcaveExponent float64
}

// Validate re-checks the Scenario invariants. Generate always returns a valid
// Scenario; model builders call Validate to reject hand-rolled values.
func (s Scenario) Validate() error {
	if s.Periods <= 0 {
		return ErrNonPositivePeriods
	}
	if len(s.Demand) != s.Periods {
		return ErrDemandLength
	}
	for _, d := range s.Demand {
		if d < 0 {
			return ErrNegativeDemand
		}
	}
	if s.ProductionCost < 0 || s.HoldingCost < 0 || s.SetupCost < 0 ||
		s.SmoothWeight < 0 || s.ConcaveCoeff < 0 {
		return ErrNegativeCost
	}
	if s.Capacity <= 0 {
		return ErrNonPositiveCapacity
	}
	if s.InitialInventory < 0 {
		return ErrNegativeInventory
	}
	return nil
}
