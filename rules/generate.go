package rules

import (
	"github.com/reusee/rulegen/programs"
	"github.com/samber/lo"
)

// Generate compiles the rules satisfied by n into a program.
// Each matched fragment is spliced before the hole and pushes a halt around everything folded so far,
// so the numeric fallback in the seed suffix is reached only when nothing matched.
func Generate(rules Rules, n uint64) programs.Program {
	matched := lo.Filter(rules, func(rule Rule, _ int) bool {
		return rule.Condition.Satisfies(n)
	})
	seed := programs.NewHole(
		programs.Single(programs.Skip()),
		programs.Concat(
			programs.Single(programs.PrintNumber(n)),
			programs.Single(programs.Halt()),
		),
	)
	return programs.Close(lo.Reduce(matched, func(acc programs.Hole, rule Rule, _ int) programs.Hole {
		return programs.Combine(acc, programs.NewHole(
			programs.Single(programs.PrintText(rule.Text)),
			programs.Single(programs.Halt()),
		))
	}, seed))
}

func Say(rules Rules, n uint64) string {
	return Generate(rules, n).Render()
}
