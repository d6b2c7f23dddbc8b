// Package cmd implements the CLI application to run the trading desk.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/mgraber/tradebook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "session")

	c.Register(&signupCmd{}, "account")

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&holdingCmd{}, "trading")
	c.Register(&topCmd{}, "trading")
	c.Register(&sortCmd{}, "trading")
	c.Register(&addInstrumentCmd{}, "trading")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "tradebook.yaml", "Path to the configuration file")
var credentialsFile = flag.String("credentials-file", "", "Path to the credentials file (overrides config)")
var portfolioDir = flag.String("portfolio-dir", "", "Path to the portfolio files directory (overrides config)")
var strictCash = flag.Bool("strict-cash", false, "Check purchases against remaining cash instead of total value")

// loadConfig resolves the effective configuration: file, then environment,
// then command line flags.
func loadConfig() tradebook.Config {
	cfg, err := tradebook.LoadConfig(*configFile)
	if err != nil {
		log.Printf("warning, %v, using defaults", err)
	}
	if *credentialsFile != "" {
		cfg.CredentialsFile = *credentialsFile
	}
	if *portfolioDir != "" {
		cfg.PortfolioDir = *portfolioDir
	}
	if *strictCash {
		cfg.StrictCash = true
	}
	return cfg
}

// openCredentials is the central function to open the credential store.
func openCredentials(cfg tradebook.Config) *tradebook.CredentialStore {
	store, err := tradebook.LoadCredentials(cfg.CredentialsFile)
	if err != nil {
		log.Printf("warning, %v, starting with an empty store", err)
	}
	return store
}

// openPortfolio loads the portfolio of an authenticated user.
func openPortfolio(cfg tradebook.Config, username string) (*tradebook.Portfolio, error) {
	return tradebook.LoadPortfolio(cfg.PortfolioDir, username, cfg.Currency)
}

// signIn authenticates the scripted commands' -u/-p flags against the
// credential store and loads the user's portfolio.
func signIn(cfg tradebook.Config, username, password string) (*tradebook.Portfolio, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("both -u and -p are required")
	}
	store := openCredentials(cfg)
	if !store.Authenticate(username, password) {
		return nil, fmt.Errorf("invalid username or password")
	}
	return openPortfolio(cfg, username)
}

// renderMarkdown renders markdown for the terminal, falling back to the
// raw source when the renderer fails.
func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		return md
	}
	return out
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}

func fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
