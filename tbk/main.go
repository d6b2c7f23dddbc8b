package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/mgraber/tradebook/cmd"
)

func main() {
	// completion must run before flag parsing; it exits when invoked by the shell.
	completion().Complete("tbk")

	// .env is optional, it only feeds the TBK_* overrides.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	account := map[string]complete.Predictor{
		"u": predict.Nothing,
		"p": predict.Nothing,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"session": {},
			"signup":  {Flags: account},
			"buy":     {Flags: account},
			"sell":    {Flags: account},
			"holding": {Flags: account},
			"top":     {Flags: account},
			"sort":    {Flags: account},
			"add-instrument": {Flags: map[string]complete.Predictor{
				"symbol": predict.Nothing,
				"name":   predict.Nothing,
				"price":  predict.Nothing,
				"qty":    predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "formats", "password", "trading"}},
		},
		Flags: map[string]complete.Predictor{
			"config":           predict.Files("*.yaml"),
			"credentials-file": predict.Files("*.txt"),
			"portfolio-dir":    predict.Dirs("*"),
			"strict-cash":      predict.Nothing,
		},
	}
}
