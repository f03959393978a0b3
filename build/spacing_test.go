package build

import (
	"testing"

	"github.com/dpotapov/go-katex/parse"
	"github.com/stretchr/testify/require"
)

func TestInterAtomSpace(t *testing.T) {
	tests := []struct {
		left, right string
		tight       bool
		want        parse.Measurement
	}{
		{"mord", "mbin", false, mediumSpace},
		{"mbin", "mord", false, mediumSpace},
		{"mord", "mrel", false, thickSpace},
		{"mord", "mop", false, thinSpace},
		{"mpunct", "mord", false, thinSpace},
		{"mord", "mord", false, parse.Measurement{}},
		{"mopen", "mord", false, parse.Measurement{}},
		{"mord", "mbin", true, parse.Measurement{}},
		{"mord", "mrel", true, parse.Measurement{}},
		{"mord", "mop", true, thinSpace},
		{"mop", "mop", true, thinSpace},
	}
	for _, tt := range tests {
		got := InterAtomSpace(tt.left, tt.right, tt.tight)
		require.Equal(t, tt.want, got, "%s-%s tight=%v", tt.left, tt.right, tt.tight)
	}
}

func TestInterAtomSpace_TightIsSubset(t *testing.T) {
	for _, left := range AtomClasses {
		require.Contains(t, spacings, left)
		require.Contains(t, tightSpacings, left)
		for _, right := range AtomClasses {
			tight := InterAtomSpace(left, right, true)
			if tight == (parse.Measurement{}) {
				continue
			}
			require.Equal(t, InterAtomSpace(left, right, false), tight, "%s-%s", left, right)
		}
	}
}
