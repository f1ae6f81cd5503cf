package dimension

// Each vector has exactly one marker type. Aliases share the marker, so
// Torque and Work (or Consumption and Area) are the same Go type.

type (
	Dimensionless struct{}
	Mass          struct{}
	Length        struct{}
	Time          struct{}
	TimeSquared   struct{}
	Frequency     struct{}
	Area          struct{}
	Volume        struct{}
	Speed         struct{}
	Acceleration  struct{}
	Force         struct{}
	Pressure      struct{}
	Work          struct{}
	Power         struct{}
	Economy       struct{}
)

type (
	// Torque is dimensionally identical to Work and deliberately indistinguishable from it.
	Torque = Work
	// Consumption (volume per distance) reduces to an area.
	Consumption = Area
)

func (Dimensionless) Vector() Vector { return Vector{} }
func (Mass) Vector() Vector          { return Vector{M: 1} }
func (Length) Vector() Vector        { return Vector{L: 1} }
func (Time) Vector() Vector          { return Vector{T: 1} }
func (TimeSquared) Vector() Vector   { return Vector{T: 2} }
func (Frequency) Vector() Vector     { return Vector{T: -1} }
func (Area) Vector() Vector          { return Vector{L: 2} }
func (Volume) Vector() Vector        { return Vector{L: 3} }
func (Speed) Vector() Vector         { return Vector{L: 1, T: -1} }
func (Acceleration) Vector() Vector  { return Vector{L: 1, T: -2} }
func (Force) Vector() Vector         { return Vector{M: 1, L: 1, T: -2} }
func (Pressure) Vector() Vector      { return Vector{M: 1, L: -1, T: -2} }
func (Work) Vector() Vector          { return Vector{M: 1, L: 2, T: -2} }
func (Power) Vector() Vector         { return Vector{M: 1, L: 2, T: -3} }
func (Economy) Vector() Vector       { return Vector{L: -2} }
