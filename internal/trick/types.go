package trick

// Direction is the travel direction of the skater.
type Direction string

const (
	DirectionFront Direction = "front"
	DirectionBack  Direction = "back"
)

func (d Direction) Valid() bool { return d == DirectionFront || d == DirectionBack }

// Opposite flips front/back.
func (d Direction) Opposite() Direction {
	if d == DirectionFront {
		return DirectionBack
	}
	return DirectionFront
}

// Edge is the wheel edge the skater is weighted on.
type Edge string

const (
	EdgeInside  Edge = "inside"
	EdgeOutside Edge = "outside"
)

func (e Edge) Valid() bool { return e == EdgeInside || e == EdgeOutside }

// Opposite flips inside/outside.
func (e Edge) Opposite() Edge {
	if e == EdgeInside {
		return EdgeOutside
	}
	return EdgeInside
}

// Stance is the relative orientation of the feet.
type Stance string

const (
	StanceOpen   Stance = "open"
	StanceClosed Stance = "closed"
)

func (s Stance) Valid() bool { return s == StanceOpen || s == StanceClosed }

// Opposite flips open/closed.
func (s Stance) Opposite() Stance {
	if s == StanceOpen {
		return StanceClosed
	}
	return StanceOpen
}

// Point is the weight point on the skate. It has no opposite: exit specs
// must always name it outright.
type Point string

const (
	PointHeel Point = "heel"
	PointToe  Point = "toe"
)

func (p Point) Valid() bool { return p == PointHeel || p == PointToe }

// State is the full physical state of the skater at a trick boundary.
type State struct {
	Direction Direction `json:"direction"`
	Edge      Edge      `json:"edge"`
	Stance    Stance    `json:"stance"`
	Point     Point     `json:"point"`
}

// Category groups moves by the kind of maneuver.
type Category string

const (
	CategoryStance     Category = "stance"
	CategoryTransition Category = "transition"
	CategoryPress      Category = "press"
	CategoryRoll       Category = "roll"
	CategorySpin       Category = "spin"
	CategorySlide      Category = "slide"
	CategoryPivot      Category = "pivot"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryStance, CategoryTransition, CategoryPress, CategoryRoll,
		CategorySpin, CategorySlide, CategoryPivot:
		return true
	}
	return false
}
