package problemgen

import "fmt"

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Bounds holds the operand ranges for one (age, stage) pair.
type Bounds struct {
	First  Range
	Second Range
}

// difficulty is the age x stage operand table. Ranges widen with both
// age and stage.
var difficulty = map[Age][5]Bounds{
	Age5: {
		{First: Range{1, 5}, Second: Range{1, 5}},
		{First: Range{1, 10}, Second: Range{1, 5}},
		{First: Range{1, 10}, Second: Range{1, 10}},
		{First: Range{1, 15}, Second: Range{1, 15}},
		{First: Range{1, 20}, Second: Range{1, 20}},
	},
	Age6: {
		{First: Range{1, 15}, Second: Range{1, 15}},
		{First: Range{1, 20}, Second: Range{1, 20}},
		{First: Range{1, 30}, Second: Range{1, 30}},
		{First: Range{10, 35}, Second: Range{10, 35}},
		{First: Range{20, 35}, Second: Range{20, 35}},
	},
	Age7: {
		{First: Range{10, 35}, Second: Range{10, 35}},
		{First: Range{20, 35}, Second: Range{20, 35}},
		{First: Range{20, 45}, Second: Range{20, 45}},
		{First: Range{20, 45}, Second: Range{20, 55}},
		{First: Range{30, 65}, Second: Range{30, 75}},
	},
	Age8: {
		{First: Range{20, 45}, Second: Range{20, 55}},
		{First: Range{30, 65}, Second: Range{30, 75}},
		{First: Range{30, 85}, Second: Range{30, 85}},
		{First: Range{30, 99}, Second: Range{30, 99}},
		{First: Range{50, 99}, Second: Range{50, 99}},
	},
}

// BoundsFor returns the operand ranges for an age and stage.
// It panics on a pair outside the table: callers validate Age and Stage
// at the input edge, so reaching here with one is a bug.
func BoundsFor(age Age, stage Stage) Bounds {
	rows, ok := difficulty[age]
	if !ok || !stage.Valid() {
		panic(fmt.Sprintf("problemgen: no difficulty bounds for age %d stage %d", age, stage))
	}
	return rows[stage-1]
}
