package genconfigs

import (
	"fmt"
	"runtime"

	"github.com/reusee/rulegen/cmds"
	"github.com/reusee/rulegen/configs"
	"github.com/reusee/rulegen/drivers"
	"github.com/reusee/rulegen/rules"
	"github.com/reusee/rulegen/vars"
)

var (
	startFlag       = cmds.Var[*uint64]("start")
	limitFlag       = cmds.Var[*uint64]("limit")
	concurrencyFlag = cmds.Var[int]("concurrency")
	stopFlag        = cmds.Var[StopMode]("stop")
)

// Start is the first integer fed to the generator.
type Start uint64

// Limit is the last integer fed to the generator, zero for none.
type Limit uint64

type Concurrency int

type StopMode string

const (
	StopAllMatched StopMode = "all_matched"
	StopLimit      StopMode = "limit"
	StopEither     StopMode = "either"
)

func mustFirst[T any](loader configs.Loader, path string) T {
	v, err := configs.First[T](loader, path)
	if err != nil {
		panic(fmt.Errorf("load %s: %w", path, err))
	}
	return v
}

func (Module) Start(
	loader configs.Loader,
) Start {
	if p := vars.FirstNonZero(
		*startFlag,
		mustFirst[*uint64](loader, "start"),
	); p != nil {
		return Start(*p)
	}
	return 1
}

func (Module) Limit(
	loader configs.Loader,
) Limit {
	return Limit(vars.DerefOrZero(vars.FirstNonZero(
		*limitFlag,
		mustFirst[*uint64](loader, "limit"),
	)))
}

func (Module) Concurrency(
	loader configs.Loader,
) Concurrency {
	return Concurrency(vars.FirstNonZero(
		*concurrencyFlag,
		mustFirst[int](loader, "concurrency"),
		runtime.GOMAXPROCS(0),
	))
}

func (Module) StopMode(
	loader configs.Loader,
	limit Limit,
) StopMode {
	defaultMode := StopAllMatched
	if limit > 0 {
		defaultMode = StopEither
	}
	return vars.FirstNonZero(
		*stopFlag,
		mustFirst[StopMode](loader, "stop"),
		defaultMode,
	)
}

func (Module) Until(
	rs rules.Rules,
	limit Limit,
	mode StopMode,
) drivers.Until {
	switch mode {
	case StopAllMatched:
		return drivers.UntilAllMatched(rs)
	case StopLimit:
		if limit == 0 {
			panic(fmt.Errorf("stop mode %s without limit", mode))
		}
		return drivers.UntilLimit(uint64(limit))
	case StopEither:
		if limit == 0 {
			return drivers.UntilAllMatched(rs)
		}
		return drivers.Either(
			drivers.UntilAllMatched(rs),
			drivers.UntilLimit(uint64(limit)),
		)
	}
	panic(fmt.Errorf("unknown stop mode: %s", mode))
}

func (Module) Options(
	start Start,
	concurrency Concurrency,
	until drivers.Until,
) drivers.Options {
	return drivers.Options{
		Start:       uint64(start),
		Concurrency: int(concurrency),
		Until:       until,
	}
}
