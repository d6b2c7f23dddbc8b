package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mgraber/tradebook/renderer"
)

type topCmd struct {
	username string
	password string
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "display the most profitable share" }
func (*topCmd) Usage() string {
	return `tbk top -u <username> -p <password>

  Displays the position with the highest nominal value (unit price times
  quantity). Ties go to the earliest purchase.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username (required)")
	f.StringVar(&c.password, "p", "", "Password (required)")
}

func (c *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pf, err := signIn(loadConfig(), c.username, c.password)
	if err != nil {
		return fail("Error: %v", err)
	}
	printMarkdown(renderer.MostProfitable(pf.MostProfitable()))
	return subcommands.ExitSuccess
}
