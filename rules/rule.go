package rules

import (
	"github.com/reusee/rulegen/conds"
)

// Rule contributes Text when Condition holds.
// Text is held by value, programs generated from a rule do not depend on the rule's lifetime.
type Rule struct {
	Condition conds.Condition
	Text      string
}

type Rules []Rule

func Factor(factor uint64, text string) Rule {
	return Rule{
		Condition: conds.MustHasFactor(factor),
		Text:      text,
	}
}

func FizzBuzz() Rules {
	return Rules{
		Factor(3, "Fizz"),
		Factor(5, "Buzz"),
		Factor(7, "Hizz"),
		Factor(11, "Howl"),
	}
}

// AllMatch reports whether every rule is satisfied by n.
func (r Rules) AllMatch(n uint64) bool {
	for _, rule := range r {
		if !rule.Condition.Satisfies(n) {
			return false
		}
	}
	return true
}
