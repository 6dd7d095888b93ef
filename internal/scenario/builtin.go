package scenario

// the reference harness fixtures.
var (
	harnessA = Fixture{Rows: 2, Cols: 4, Values: []uint64{
		11, 12, 13, 14,
		21, 22, 23, 24,
	}}
	harnessB = Fixture{Rows: 2, Cols: 4, Values: []uint64{
		13, 14, 15, 16,
		22, 23, 24, 25,
	}}
	harnessAT = Fixture{Rows: 4, Cols: 2, Values: []uint64{
		11, 21,
		12, 22,
		13, 23,
		14, 24,
	}}
)

// Builtin returns the default scenario set. Each call returns fresh copies so
// callers may modify the result.
func Builtin() []Scenario {
	return []Scenario{
		{Name: "equal/reflexive", Op: OpEqual, Left: harnessA.clone()},
		{Name: "equal/different", Op: OpDiffer, Left: harnessA.clone(), Right: ptr(harnessB.clone())},
		{Name: "transpose/2x4", Op: OpTranspose, Left: harnessA.clone(), Right: ptr(harnessAT.clone())},
		{Name: "transpose/involution", Op: OpInvolution, Left: harnessA.clone()},
	}
}

func (t Fixture) clone() Fixture {
	t.Values = append([]uint64(nil), t.Values...)
	return t
}

func ptr[T any](v T) *T {
	return &v
}
