package conds

// Condition decides whether a rule contributes output for n.
type Condition interface {
	Satisfies(n uint64) bool
	String() string
}

func Satisfies(cond Condition, n uint64) bool {
	return cond.Satisfies(n)
}
