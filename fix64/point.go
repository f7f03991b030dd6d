package fix64

// A pair of [Value] coordinates. Commonly used to keep track of
// entity positions and velocities within a deterministic simulation.
type Point struct {
	X Value
	Y Value
}

// Creates a point from a pair of values.
func ValuesToPoint(x, y Value) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of ints.
func IntsToPoint(x, y int) Point {
	return Point{ X: FromInt(x), Y: FromInt(y) }
}

// Returns the result of adding the two points.
func (self Point) AddPoint(point Point) Point {
	self.X = self.X.Add(point.X)
	self.Y = self.Y.Add(point.Y)
	return self
}

// Returns the result of subtracting the given point from the
// current one.
func (self Point) SubPoint(point Point) Point {
	self.X = self.X.Sub(point.X)
	self.Y = self.Y.Sub(point.Y)
	return self
}

// Returns the result of scaling both coordinates by the given factor.
func (self Point) Scale(factor Value) Point {
	self.X = self.X.Mul(factor)
	self.Y = self.Y.Mul(factor)
	return self
}

// Returns the dot product of the two points.
func (self Point) Dot(point Point) Value {
	return self.X.Mul(point.X).Add(self.Y.Mul(point.Y))
}

// Returns the euclidean length of the point, through [Value.Sqrt]().
func (self Point) Length() Value {
	return self.Dot(self).Sqrt()
}

// Returns the point coordinates as a pair of ints, truncated
// toward zero.
func (self Point) ToInts() (int, int) {
	return self.X.ToInt(), self.Y.ToInt()
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	return "(" + self.X.String() + ", " + self.Y.String() + ")"
}
