package cmd

import (
	"context"
	"flag"
	"strconv"

	"github.com/google/subcommands"

	"github.com/mgraber/tradebook"
	"github.com/mgraber/tradebook/payment"
	"github.com/mgraber/tradebook/renderer"
)

type sellCmd struct {
	username string
	password string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares held in the portfolio" }
func (*sellCmd) Usage() string {
	return `tbk sell -u <username> -p <password> <SYMBOL> <QTY>

  Sells QTY shares of SYMBOL at the unit price they were bought at. The
  position is removed when sold in full.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username (required)")
	f.StringVar(&c.password, "p", "", "Password (required)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return fail("Error: expected <SYMBOL> <QTY> arguments.")
	}
	qty, err := strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil {
		return fail("Error: invalid quantity %q.", f.Arg(1))
	}

	cfg := loadConfig()
	pf, err := signIn(cfg, c.username, c.password)
	if err != nil {
		return fail("Error: %v", err)
	}

	engine := tradebook.NewTradeEngine(tradebook.DefaultCatalog(cfg.Currency), payment.Noop{}, cfg.StrictCash)
	receipt, err := engine.Sell(pf, f.Arg(0), qty)
	if err != nil {
		return fail("Error: %v", err)
	}

	printMarkdown(renderer.Sell(receipt))
	return subcommands.ExitSuccess
}
