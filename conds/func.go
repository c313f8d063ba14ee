package conds

// Func adapts a plain predicate.
type Func func(n uint64) bool

var _ Condition = Func(nil)

func (f Func) Satisfies(n uint64) bool {
	return f(n)
}

func (f Func) String() string {
	return "func"
}
