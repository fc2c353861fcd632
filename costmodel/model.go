package costmodel

// Default cost constants, named per the router's external interface.
const (
	DefaultViaCost           = 10
	DefaultWrongDirectionCost = 2
	DefaultCongestionWeight  = 2
)

// Model carries the cost constants used when scoring a candidate move
// during Path Search.
//
// Preferred-direction asymmetry: x-moves (East/West) are preferred and
// cost 1; y-moves (North/South) cost WrongDirectionCost. This asymmetry is
// applied identically on both layers — a deliberate simplification the
// spec calls out explicitly, rather than giving layer 2 a distinct
// preferred axis.
//
// TODO: if stakeholders confirm layer 2 should prefer y instead of x, give
// Model a per-layer preferred-axis table instead of a single global
// WrongDirectionCost.
type Model struct {
	// ViaCost is the base cost of a layer-toggle move at a fixed (x, y).
	ViaCost int
	// WrongDirectionCost is the base cost of a North/South move.
	WrongDirectionCost int
	// CongestionWeight multiplies a candidate cell's congestion count when
	// a Congestion Map is supplied to Path Search.
	CongestionWeight int
}

// Option configures a Model via functional options.
type Option func(*Model)

// Default returns a Model initialized with the router's named default
// constants.
func Default() Model {
	return Model{
		ViaCost:            DefaultViaCost,
		WrongDirectionCost: DefaultWrongDirectionCost,
		CongestionWeight:   DefaultCongestionWeight,
	}
}

// New builds a Model from Default(), applying each Option in order.
func New(opts ...Option) Model {
	m := Default()
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithViaCost overrides ViaCost. Panics if cost < 0.
func WithViaCost(cost int) Option {
	return func(m *Model) {
		if cost < 0 {
			panic("costmodel: ViaCost must be non-negative")
		}
		m.ViaCost = cost
	}
}

// WithWrongDirectionCost overrides WrongDirectionCost. Panics if cost < 0.
func WithWrongDirectionCost(cost int) Option {
	return func(m *Model) {
		if cost < 0 {
			panic("costmodel: WrongDirectionCost must be non-negative")
		}
		m.WrongDirectionCost = cost
	}
}

// WithCongestionWeight overrides CongestionWeight. Panics if weight < 0.
func WithCongestionWeight(weight int) Option {
	return func(m *Model) {
		if weight < 0 {
			panic("costmodel: CongestionWeight must be non-negative")
		}
		m.CongestionWeight = weight
	}
}
