package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mgraber/tradebook"
	"github.com/mgraber/tradebook/renderer"
)

type sortCmd struct {
	username string
	password string
	by       string
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "display the portfolio sorted by a key" }
func (*sortCmd) Usage() string {
	return `tbk sort -u <username> -p <password> [-by <key>]

  Sorts the portfolio ascending by symbol, price or quantity and displays
  it. The sort is stable; equal entries keep their purchase order.
`
}

func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username (required)")
	f.StringVar(&c.password, "p", "", "Password (required)")
	f.StringVar(&c.by, "by", "symbol", "Sort key: symbol, price or quantity")
}

func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := tradebook.ParseSortKey(c.by)
	if err != nil {
		return fail("Error: %v", err)
	}

	pf, err := signIn(loadConfig(), c.username, c.password)
	if err != nil {
		return fail("Error: %v", err)
	}

	pf.SortBy(key)
	printMarkdown(renderer.Holdings(pf))
	return subcommands.ExitSuccess
}
