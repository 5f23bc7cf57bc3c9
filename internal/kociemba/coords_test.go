package kociemba

import "testing"

func TestCoordinateRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		n    int
		get  func(Cubie) int
		set  func(int) Cubie
	}{
		{"twist", twistMax, getTwist, setTwist},
		{"flip", flipMax, getFlip, setFlip},
		{"slice", sliceMax, getSlice, setSlice},
		{"sliceSorted", sliceSortedMax, getSliceSorted, setSliceSorted},
		{"uEdges", uEdgesMax, getUEdges, setUEdges},
		{"dEdges", dEdgesMax, getDEdges, setDEdges},
		{"corners", cornersMax, getCorners, setCorners},
		{"udEdges", udEdgesMax, getUDEdges, setUDEdges},
	}
	for _, tc := range cases {
		for _, i := range []int{0, 1, tc.n / 3, tc.n - 1} {
			got := tc.get(tc.set(i))
			if got != i {
				t.Errorf("%s: get(set(%d)) = %d, want %d", tc.name, i, got, i)
			}
		}
	}
}

func TestSolvedCoordinatesAreZero(t *testing.T) {
	id := Identity()
	if getTwist(id) != 0 {
		t.Errorf("getTwist(Identity()) != 0")
	}
	if getFlip(id) != 0 {
		t.Errorf("getFlip(Identity()) != 0")
	}
	if getSliceSorted(id) != 0 {
		t.Errorf("getSliceSorted(Identity()) != 0")
	}
	if getCorners(id) != 0 {
		t.Errorf("getCorners(Identity()) != 0")
	}
	if getUDEdges(id) != 0 {
		t.Errorf("getUDEdges(Identity()) != 0")
	}
}

// TestScrambleCoordinates pins the exact coordinates of applying
// "U3 D2 R3 L2 F3" to a solved cube.
func TestScrambleCoordinates(t *testing.T) {
	moves, err := ParseMoveString("U3 D2 R3 L2 F3")
	if err != nil {
		t.Fatalf("ParseMoveString: %v", err)
	}
	c := Identity()
	for _, m := range moves {
		c = c.ApplyMove(m)
	}

	want := map[string]int{
		"twist":       1749,
		"flip":        550,
		"sliceSorted": 9155,
		"uEdges":      5691,
		"dEdges":      9512,
		"corners":     19131,
		"udEdges":     -1,
	}
	got := map[string]int{
		"twist":       getTwist(c),
		"flip":        getFlip(c),
		"sliceSorted": getSliceSorted(c),
		"uEdges":      getUEdges(c),
		"dEdges":      getDEdges(c),
		"corners":     getCorners(c),
		"udEdges":     getUDEdges(c),
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("coordinate %s = %d, want %d", k, got[k], w)
		}
	}
}

func TestBinomial(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{0, 0, 1}, {4, 0, 1}, {4, 4, 1}, {4, 5, 0}, {12, 4, 495}, {5, 2, 10},
	}
	for _, tc := range cases {
		if got := binomial(tc.n, tc.k); got != tc.want {
			t.Errorf("binomial(%d,%d) = %d, want %d", tc.n, tc.k, got, tc.want)
		}
	}
}
