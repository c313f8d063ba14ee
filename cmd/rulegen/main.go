package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/rulegen/cmds"
	"github.com/reusee/rulegen/debugs"
	"github.com/reusee/rulegen/drivers"
	"github.com/reusee/rulegen/logs"
	"github.com/reusee/rulegen/modes"
	"github.com/reusee/rulegen/programs"
	"github.com/reusee/rulegen/rules"
)

var tapFlag = cmds.Switch("tap")

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() context.Context {
			return ctx
		},
		func() Output {
			return os.Stdout
		},
	).Call(generate)
}

// Output receives the generated lines.
type Output io.Writer

func generate(
	ctx context.Context,
	output Output,
	logger logs.Logger,
	rs rules.Rules,
	opts drivers.Options,
	run drivers.Run,
	tap debugs.Tap,
) {
	w := bufio.NewWriter(output)
	last, err := run(ctx, rs, opts, w)
	ce(w.Flush())
	if errors.Is(err, context.Canceled) {
		logger.Warn("interrupted", "last", last)
		return
	}
	ce(err)

	if *tapFlag {
		tap(ctx, "rulegen", tapGlobals(rs, last))
	}
}

func tapGlobals(rs rules.Rules, last uint64) map[string]any {
	return map[string]any{
		"rules": rs,
		"last":  last,
		"final": rules.Generate(rs, last),
		"say": debugs.UintFunc("say", func(n uint64) string {
			return rules.Say(rs, n)
		}),
		"program": debugs.UintFunc("program", func(n uint64) programs.Program {
			return rules.Generate(rs, n)
		}),
		"listing": debugs.UintFunc("listing", func(n uint64) string {
			return rules.Generate(rs, n).String()
		}),
	}
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
