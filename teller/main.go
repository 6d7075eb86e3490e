package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/rvallee/teller/cmd"
)

// completion describes the CLI surface to the shell. Run
// `COMP_INSTALL=1 teller` once to install it.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"menu":           {},
		"register":       {Flags: map[string]complete.Predictor{"name": predict.Nothing, "age": predict.Nothing}},
		"open":           {Flags: map[string]complete.Predictor{"customer": predict.Nothing, "type": predict.Set{"savings", "checking"}}},
		"deposit":        {Flags: map[string]complete.Predictor{"account": predict.Nothing, "amount": predict.Nothing}},
		"withdraw":       {Flags: map[string]complete.Predictor{"account": predict.Nothing, "amount": predict.Nothing}},
		"transfer":       {Flags: map[string]complete.Predictor{"from": predict.Nothing, "to": predict.Nothing, "amount": predict.Nothing}},
		"close-account":  {Flags: map[string]complete.Predictor{"account": predict.Nothing}},
		"close-customer": {Flags: map[string]complete.Predictor{"customer": predict.Nothing, "yes": predict.Nothing}},
		"customers":      {},
		"accounts":       {Flags: map[string]complete.Predictor{"customer": predict.Nothing}},
		"tx":             {Flags: map[string]complete.Predictor{"account": predict.Nothing, "head": predict.Nothing, "tail": predict.Nothing}},
		"fmt":            {},
		"topic":          {Args: predict.Set{"readme", "getting-started", "accounts", "transfer-limit", "files"}},
	},
	Flags: map[string]complete.Predictor{
		"customers-file":    predict.Files("*.txt"),
		"accounts-file":     predict.Files("*.txt"),
		"transactions-file": predict.Files("*.txt"),
		"debug":             predict.Nothing,
	},
}

func main() {
	completion.Complete("teller")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
