package worldmap

import "strings"

// Role is the drawing role of a relay. For drawing purposes the roles are
// mutually exclusive: Guard wins over Exit when a relay carries both flags.
type Role int

const (
	RoleMiddle Role = iota
	RoleGuard
	RoleExit
)

// String returns the role's display name.
func (r Role) String() string {
	switch r {
	case RoleGuard:
		return "Guard"
	case RoleExit:
		return "Exit"
	default:
		return "Middle"
	}
}

// Dot colours and radii per role. Guards and exits get the larger radius so
// they stand out at world scale.
const (
	ColorGuard  = "#c084fc"
	ColorExit   = "#f87171"
	ColorMiddle = "#fde047"

	RadiusNotable = 4.0
	RadiusMiddle  = 3.0
)

// DotStyle is the visual style of one relay dot.
type DotStyle struct {
	Role   Role
	Color  string
	Radius float64
}

// Classify maps a relay's flag set to its dot style. The match is
// case-insensitive and order-independent: Guard takes priority over Exit,
// everything else is Middle. The function is total; it never consults
// position or country.
func Classify(flags []string) DotStyle {
	switch {
	case hasFlag(flags, "Guard"):
		return DotStyle{Role: RoleGuard, Color: ColorGuard, Radius: RadiusNotable}
	case hasFlag(flags, "Exit"):
		return DotStyle{Role: RoleExit, Color: ColorExit, Radius: RadiusNotable}
	default:
		return DotStyle{Role: RoleMiddle, Color: ColorMiddle, Radius: RadiusMiddle}
	}
}

func hasFlag(flags []string, name string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}
