package conds

import (
	"errors"
	"fmt"
)

var ErrZeroFactor = errors.New("zero factor")

// HasFactor is satisfied by multiples of its factor.
// The factor is stored minus one, so the zero value is HasFactor(1) and a zero factor cannot exist.
type HasFactor struct {
	factorMinusOne uint64
}

var _ Condition = HasFactor{}

func NewHasFactor(factor uint64) (HasFactor, error) {
	if factor == 0 {
		return HasFactor{}, ErrZeroFactor
	}
	return HasFactor{
		factorMinusOne: factor - 1,
	}, nil
}

func MustHasFactor(factor uint64) HasFactor {
	ret, err := NewHasFactor(factor)
	if err != nil {
		panic(err)
	}
	return ret
}

func (h HasFactor) Factor() uint64 {
	return h.factorMinusOne + 1
}

func (h HasFactor) Satisfies(n uint64) bool {
	return n%h.Factor() == 0
}

func (h HasFactor) String() string {
	return fmt.Sprintf("has_factor(%d)", h.Factor())
}
