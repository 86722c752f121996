package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Direction holds the movement directions requested this frame.
// It is reset and re-sampled from the keyboard once per frame.
type Direction struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
}

// DirectionResource is the singleton component carrying the world's Direction.
var DirectionResource = donburi.NewComponentType[Direction]()

// Unit vectors contributed by each held direction, in local space.
// Forward is -Z so that an unrotated entity looks down the negative Z axis.
var (
	forwardAxis = mgl64.Vec3{0, 0, -1}
	backAxis    = mgl64.Vec3{0, 0, 1}
	leftAxis    = mgl64.Vec3{-1, 0, 0}
	rightAxis   = mgl64.Vec3{1, 0, 0}
	upAxis      = mgl64.Vec3{0, 1, 0}
	downAxis    = mgl64.Vec3{0, -1, 0}
)

// Clear releases every direction.
func (d *Direction) Clear() {
	*d = Direction{}
}

// Any reports whether at least one direction is held.
func (d Direction) Any() bool {
	return d.Forward || d.Back || d.Left || d.Right || d.Up || d.Down
}

// Velocity returns the sum of the unit axes of all held directions.
// Opposite directions cancel out. The result is not normalized, so
// holding forward and right yields a vector of length sqrt(2).
func (d Direction) Velocity() mgl64.Vec3 {
	var v mgl64.Vec3
	if d.Forward {
		v = v.Add(forwardAxis)
	}
	if d.Back {
		v = v.Add(backAxis)
	}
	if d.Left {
		v = v.Add(leftAxis)
	}
	if d.Right {
		v = v.Add(rightAxis)
	}
	if d.Up {
		v = v.Add(upAxis)
	}
	if d.Down {
		v = v.Add(downAxis)
	}
	return v
}

// UnitVelocity is Velocity scaled to length 1, or the zero vector
// when nothing is held or the held directions cancel.
func (d Direction) UnitVelocity() mgl64.Vec3 {
	v := d.Velocity()
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// String renders the held directions as a compact flag string, e.g. "F.L...".
func (d Direction) String() string {
	flags := []struct {
		on   bool
		char byte
	}{
		{d.Forward, 'F'},
		{d.Back, 'B'},
		{d.Left, 'L'},
		{d.Right, 'R'},
		{d.Up, 'U'},
		{d.Down, 'D'},
	}
	out := make([]byte, len(flags))
	for i, f := range flags {
		out[i] = '.'
		if f.on {
			out[i] = f.char
		}
	}
	return string(out)
}
