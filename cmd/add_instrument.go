package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mgraber/tradebook"
	"github.com/mgraber/tradebook/renderer"
)

type addInstrumentCmd struct {
	symbol string
	name   string
	price  string
	qty    int64
}

func (*addInstrumentCmd) Name() string     { return "add-instrument" }
func (*addInstrumentCmd) Synopsis() string { return "add a new instrument to the catalog" }
func (*addInstrumentCmd) Usage() string {
	return `tbk add-instrument -symbol <symbol> -name <name> -price <price> -qty <qty>

  Adds an instrument to the catalog and displays the updated listing.
  The catalog is in-memory only: additions last for the current run.
  Inside 'tbk session' an added instrument is tradable until sign-out.
`
}

func (c *addInstrumentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Instrument symbol (required)")
	f.StringVar(&c.name, "name", "", "Instrument name (required)")
	f.StringVar(&c.price, "price", "", "Listed price, a decimal number (required)")
	f.Int64Var(&c.qty, "qty", 0, "Catalog quantity (required)")
}

func (c *addInstrumentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.name == "" || c.price == "" {
		return fail("Error: -symbol, -name and -price are required.")
	}

	cfg := loadConfig()
	price, err := tradebook.ParseMoney(c.price, cfg.Currency)
	if err != nil {
		return fail("Error: %v", err)
	}

	ins, err := tradebook.NewInstrument(c.symbol, c.name, price, c.qty)
	if err != nil {
		return fail("Error: %v", err)
	}

	catalog := tradebook.DefaultCatalog(cfg.Currency)
	if err := catalog.Add(ins); err != nil {
		return fail("Error: %v", err)
	}

	fmt.Println("New instrument added for this run.")
	printMarkdown(renderer.Catalog(catalog))
	return subcommands.ExitSuccess
}
