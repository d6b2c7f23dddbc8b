package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mgraber/tradebook/renderer"
)

type holdingCmd struct {
	username string
	password string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the portfolio with its total value" }
func (*holdingCmd) Usage() string {
	return `tbk holding -u <username> -p <password>

  Displays every position with its value, and the total portfolio value.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username (required)")
	f.StringVar(&c.password, "p", "", "Password (required)")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pf, err := signIn(loadConfig(), c.username, c.password)
	if err != nil {
		return fail("Error: %v", err)
	}
	printMarkdown(renderer.Holdings(pf))
	return subcommands.ExitSuccess
}
