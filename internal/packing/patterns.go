package packing

// Family identifies a close-packed strand-count family.
type Family int

const (
	// FamilyNone marks a count that matches no canonical total.
	FamilyNone Family = iota
	// FamilyHex is the 1, 7, 19, 37, ... family (single centre strand).
	FamilyHex
	// FamilyTriad is the 3, 12, 27, 48, ... family (three-strand centre).
	FamilyTriad
	// FamilyQuad is the 4, 14, 30, 52, ... family (four-strand centre).
	FamilyQuad
)

// Cumulative strand totals per family, one entry per completed layer.
var familyTotals = map[Family][]int{
	FamilyHex:   {1, 7, 19, 37, 61, 91, 127, 169},
	FamilyTriad: {3, 12, 27, 48, 75, 108, 147, 192},
	FamilyQuad:  {4, 14, 30, 52, 80, 114, 154, 200},
}

// Strands per layer, matching familyTotals entry for entry.
var familyLayers = map[Family][]int{
	FamilyHex:   {1, 6, 12, 18, 24, 30, 36, 42},
	FamilyTriad: {3, 9, 15, 21, 27, 33, 39, 45},
	FamilyQuad:  {4, 10, 16, 22, 28, 34, 40, 46},
}

// lookup order when a count belongs to more than one family
var familyOrder = []Family{FamilyHex, FamilyTriad, FamilyQuad}

// Layers returns the family and the per-layer strand counts whose cumulative
// total is exactly n. It returns FamilyNone and nil when n is not a
// canonical total.
func Layers(n int) (Family, []int) {
	for _, f := range familyOrder {
		for i, total := range familyTotals[f] {
			if total == n {
				layers := make([]int, i+1)
				copy(layers, familyLayers[f][:i+1])
				return f, layers
			}
		}
	}
	return FamilyNone, nil
}

func (f Family) String() string {
	switch f {
	case FamilyHex:
		return "hexagonal"
	case FamilyTriad:
		return "three-strand centre"
	case FamilyQuad:
		return "four-strand centre"
	default:
		return "greedy"
	}
}
