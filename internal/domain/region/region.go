// Package region defines the fixed set of leaderboard divisions.
package region

// Region identifies one independent ranking universe. The set is fixed by
// the upstream API and is not user-extensible.
type Region string

// The four divisions the upstream leaderboard publishes.
const (
	Americas Region = "americas"
	Europe   Region = "europe"
	SEAsia   Region = "se_asia"
	China    Region = "china"
)

// All returns every known region in a stable order.
func All() []Region {
	return []Region{Americas, Europe, SEAsia, China}
}

// Parse validates a region identifier coming from user input.
func Parse(s string) (Region, bool) {
	switch Region(s) {
	case Americas, Europe, SEAsia, China:
		return Region(s), true
	default:
		return "", false
	}
}

// String implements fmt.Stringer.
func (r Region) String() string { return string(r) }
