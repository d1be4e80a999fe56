package length

import "math/big"

// Unit defines a metric unit with its conversion factor to millimeters.
type Unit struct {
	Short string
	// ToMM is the conversion factor: value_in_mm = value * ToMM
	ToMM *big.Rat
}

func ratFromFrac(num, denom int64) *big.Rat {
	return new(big.Rat).SetFrac64(num, denom)
}

var metricUnits = []*Unit{
	{Short: "mm", ToMM: ratFromFrac(1, 1)},
	{Short: "cm", ToMM: ratFromFrac(10, 1)},
	{Short: "m", ToMM: ratFromFrac(1000, 1)},
}

// unitLookup maps short names to unit pointers.
var unitLookup map[string]*Unit

func init() {
	unitLookup = make(map[string]*Unit, len(metricUnits))
	for _, u := range metricUnits {
		unitLookup[u.Short] = u
	}
}

// LookupUnit looks up a metric unit by short name.
// Returns nil if not found.
func LookupUnit(name string) *Unit {
	return unitLookup[name]
}
