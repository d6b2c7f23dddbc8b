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

type buyCmd struct {
	username string
	password string
	method   string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares of a listed instrument" }
func (*buyCmd) Usage() string {
	return `tbk buy -u <username> -p <password> [-method <method>] <SYMBOL> <QTY>

  Buys QTY shares of SYMBOL at the listed price. The payment is
  auto-approved; for the interactive payment dialogs use 'tbk session'.

Usage Examples:
$ tbk buy -u alice -p 'Passw0rd!' AAPL 5
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username (required)")
	f.StringVar(&c.password, "p", "", "Password (required)")
	f.StringVar(&c.method, "method", "cash", "Payment method: cash, credit-card, debit-card or upi")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return fail("Error: expected <SYMBOL> <QTY> arguments.")
	}
	qty, err := strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil {
		return fail("Error: invalid quantity %q.", f.Arg(1))
	}
	method, err := tradebook.ParsePaymentMethod(c.method)
	if err != nil {
		return fail("Error: %v", err)
	}

	cfg := loadConfig()
	pf, err := signIn(cfg, c.username, c.password)
	if err != nil {
		return fail("Error: %v", err)
	}

	engine := tradebook.NewTradeEngine(tradebook.DefaultCatalog(cfg.Currency), payment.Noop{}, cfg.StrictCash)
	receipt, err := engine.Buy(pf, f.Arg(0), qty, method)
	if err != nil {
		return fail("Error: %v", err)
	}

	printMarkdown(renderer.Buy(receipt))
	return subcommands.ExitSuccess
}
