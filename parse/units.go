package parse

// PtPerUnit converts absolute TeX units to points.
var PtPerUnit = map[string]float64{
	"pt": 1,
	"mm": 7227.0 / 2540,
	"cm": 7227.0 / 254,
	"in": 72.27,
	"bp": 803.0 / 800,
	"pc": 12,
	"dd": 1238.0 / 1157,
	"cc": 14856.0 / 1157,
	"nd": 685.0 / 642,
	"nc": 1370.0 / 107,
	"sp": 1.0 / 65536,
	// CSS px is defined as 1/96 inch, the same as bp.
	"px": 803.0 / 800,
}

// RelativeUnits depend on the current font.
var RelativeUnits = map[string]bool{"ex": true, "em": true, "mu": true}

// ValidUnit reports whether unit is a known TeX unit.
func ValidUnit(unit string) bool {
	_, ok := PtPerUnit[unit]
	return ok || RelativeUnits[unit]
}
