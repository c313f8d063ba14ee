package genconfigs

import (
	"fmt"
	"slices"

	"github.com/reusee/rulegen/cmds"
	"github.com/reusee/rulegen/conds"
	"github.com/reusee/rulegen/configs"
	"github.com/reusee/rulegen/rules"
	"github.com/samber/lo"
)

var ruleFlags rules.Rules

func init() {
	cmds.Define("rule", cmds.Func(func(factor uint64, text string) error {
		cond, err := conds.NewHasFactor(factor)
		if err != nil {
			return err
		}
		ruleFlags = append(ruleFlags, rules.Rule{
			Condition: cond,
			Text:      text,
		})
		return nil
	}).Desc("add a FACTOR TEXT rule, replacing configured rules"))
	cmds.Define("rule.", cmds.Func(func() {
		ruleFlags = nil
	}).Desc("clear rules added by command line"))
}

type ruleConfig struct {
	Factor uint64 `json:"factor"`
	Text   string `json:"text"`
}

func (Module) Rules(
	loader configs.Loader,
) rules.Rules {

	// flag
	if len(ruleFlags) > 0 {
		return slices.Clone(ruleFlags)
	}

	// config
	configured, err := configs.First[[]ruleConfig](loader, "rules")
	if err != nil {
		panic(fmt.Errorf("load rules: %w", err))
	}
	if configured != nil {
		// factors are positive by schema
		return lo.Map(configured, func(c ruleConfig, _ int) rules.Rule {
			return rules.Factor(c.Factor, c.Text)
		})
	}

	return rules.FizzBuzz()
}
