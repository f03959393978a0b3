package build

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testBox(height, depth float64) *Span {
	s := makeSpan(nil, nil, nil, nil)
	s.Height = height
	s.Depth = depth
	return s
}

func TestMakeVList(t *testing.T) {
	tests := []struct {
		name       string
		params     VListParams
		wantHeight float64
		wantDepth  float64
		wantRows   int
	}{
		{
			name: "individual shift",
			params: VListParams{
				PositionType: IndividualShift,
				Children: []VListChild{
					{Elem: testBox(0.5, 0.1), Shift: 0.5},
					{Elem: testBox(0.4, 0.2), Shift: -0.5},
				},
			},
			wantHeight: 0.9,
			wantDepth:  0.6,
			wantRows:   2,
		},
		{
			name: "bottom",
			params: VListParams{
				PositionType: Bottom,
				PositionData: 0.2,
				Children:     []VListChild{{Elem: testBox(1, 0)}},
			},
			wantHeight: 0.8,
			wantDepth:  0.2,
			wantRows:   2,
		},
		{
			name: "top",
			params: VListParams{
				PositionType: Top,
				PositionData: 1,
				Children:     []VListChild{{Elem: testBox(0.3, 0.2)}, kern(0.1), {Elem: testBox(0.5, 0.2)}},
			},
			wantHeight: 1,
			wantDepth:  0.3,
			wantRows:   2,
		},
		{
			name: "first baseline",
			params: VListParams{
				PositionType: FirstBaseline,
				Children:     []VListChild{{Elem: testBox(0.7, 0.3)}, kern(0.2), {Elem: testBox(0.5, 0)}},
			},
			wantHeight: 1.4,
			wantDepth:  0.3,
			wantRows:   2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vlist := MakeVList(tt.params)
			require.True(t, HasClass(vlist, "vlist-t"))
			require.InDelta(t, tt.wantHeight, vlist.Height, 1e-9)
			require.InDelta(t, tt.wantDepth, vlist.Depth, 1e-9)
			require.Len(t, vlist.Children, tt.wantRows)
			require.Equal(t, tt.wantRows == 2, HasClass(vlist, "vlist-t2"))

			// Every element sits in its own wrapper next to a strut.
			var elems int
			for _, c := range tt.params.Children {
				if c.Elem != nil {
					elems++
				}
			}
			inner := vlist.Children[0].(*Span).Children[0].(*Span)
			require.True(t, HasClass(inner, "vlist"))
			require.Len(t, inner.Children, elems)
			for _, wrap := range inner.Children {
				require.True(t, HasClass(wrap.(*Span).Children[0], "pstrut"))
			}
		})
	}
}

func TestEm(t *testing.T) {
	require.Equal(t, "0.2222em", em(4.0/18))
	require.Equal(t, "1em", em(1))
	require.Equal(t, "0em", em(0))
	require.Equal(t, "-0.5em", em(-0.5))
}
