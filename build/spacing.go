package build

import "github.com/dpotapov/go-katex/parse"

var (
	thinSpace   = parse.Measurement{Number: 3, Unit: "mu"}
	mediumSpace = parse.Measurement{Number: 4, Unit: "mu"}
	thickSpace  = parse.Measurement{Number: 5, Unit: "mu"}
)

// AtomClasses are the spacing classes of atoms.
var AtomClasses = []string{"mord", "mop", "mbin", "mrel", "mopen", "mclose", "mpunct", "minner"}

// spacings is TeX's inter-atom spacing table for display and text styles.
var spacings = map[string]map[string]parse.Measurement{
	"mord": {
		"mop":    thinSpace,
		"mbin":   mediumSpace,
		"mrel":   thickSpace,
		"minner": thinSpace,
	},
	"mop": {
		"mord":   thinSpace,
		"mop":    thinSpace,
		"mrel":   thickSpace,
		"minner": thinSpace,
	},
	"mbin": {
		"mord":   mediumSpace,
		"mop":    mediumSpace,
		"mopen":  mediumSpace,
		"minner": mediumSpace,
	},
	"mrel": {
		"mord":   thickSpace,
		"mop":    thickSpace,
		"mopen":  thickSpace,
		"minner": thickSpace,
	},
	"mopen": {},
	"mclose": {
		"mop":    thinSpace,
		"mbin":   mediumSpace,
		"mrel":   thickSpace,
		"minner": thinSpace,
	},
	"mpunct": {
		"mord":   thinSpace,
		"mop":    thinSpace,
		"mrel":   thickSpace,
		"mopen":  thinSpace,
		"mclose": thinSpace,
		"mpunct": thinSpace,
		"minner": thinSpace,
	},
	"minner": {
		"mord":   thinSpace,
		"mop":    thinSpace,
		"mbin":   mediumSpace,
		"mrel":   thickSpace,
		"mopen":  thinSpace,
		"mpunct": thinSpace,
		"minner": thinSpace,
	},
}

// tightSpacings is the spacing table for script styles.
var tightSpacings = map[string]map[string]parse.Measurement{
	"mord":   {"mop": thinSpace},
	"mop":    {"mord": thinSpace, "mop": thinSpace},
	"mbin":   {},
	"mrel":   {},
	"mopen":  {},
	"mclose": {"mop": thinSpace},
	"mpunct": {},
	"minner": {"mop": thinSpace},
}

// InterAtomSpace returns the glue between atoms of class left and right.
// A zero Measurement means no space.
func InterAtomSpace(left, right string, tight bool) parse.Measurement {
	table := spacings
	if tight {
		table = tightSpacings
	}
	return table[left][right]
}
