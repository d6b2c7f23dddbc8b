package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/mgraber/tradebook"
	"github.com/mgraber/tradebook/payment"
	"github.com/mgraber/tradebook/renderer"
)

type sessionCmd struct {
	// streams are fields so tests can script a whole session.
	in  io.Reader
	out io.Writer
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start an interactive trading session" }
func (*sessionCmd) Usage() string {
	return `tbk session

  Starts the interactive console: sign in or sign up, then trade from the
  menu (buy, sell, view, most profitable, sort, add instrument, sign out).
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}

	s := &session{
		cfg: loadConfig(),
		in:  bufio.NewScanner(c.in),
		out: c.out,
	}
	s.store = openCredentials(s.cfg)
	s.run()
	return subcommands.ExitSuccess
}

// session holds the state of one interactive run.
type session struct {
	cfg   tradebook.Config
	in    *bufio.Scanner
	out   io.Writer
	store *tradebook.CredentialStore
}

func (s *session) run() {
	fmt.Fprintln(s.out, "Welcome to the trading desk.")
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "1. Sign In")
		fmt.Fprintln(s.out, "2. Sign Up")
		fmt.Fprintln(s.out, "3. Exit")
		choice, ok := s.askInt("Enter your choice: ")
		if !ok {
			// input stream closed
			return
		}
		switch choice {
		case 1:
			s.signIn()
		case 2:
			s.signUp()
		case 3:
			fmt.Fprintln(s.out, "Exiting...")
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *session) signUp() {
	username := s.ask("Enter new username: ")
	password := s.ask("Enter password: ")

	outcome, err := s.store.AddUser(username, password)
	if err != nil {
		fmt.Fprintf(s.out, "Error saving credentials: %v\n", err)
		return
	}
	switch outcome {
	case tradebook.Added:
		fmt.Fprintln(s.out, "Sign up successful. You can now sign in.")
	case tradebook.DuplicateUser:
		fmt.Fprintln(s.out, "Username already exists. Please try again.")
	case tradebook.PasswordPolicyFailed:
		fmt.Fprintln(s.out, "Password must contain at least one number, one letter, one special character, and be at least 8 characters long.")
	case tradebook.InvalidUsername:
		fmt.Fprintln(s.out, "Username must be non-empty and contain no whitespace.")
	}
}

func (s *session) signIn() {
	username := s.ask("Enter username: ")
	password := s.ask("Enter password: ")

	if !s.store.Authenticate(username, password) {
		fmt.Fprintln(s.out, "Invalid username or password. Please try again.")
		return
	}
	fmt.Fprintln(s.out, "Sign in successful.")

	pf, err := openPortfolio(s.cfg, username)
	if err != nil {
		fmt.Fprintf(s.out, "Error loading portfolio: %v\n", err)
		return
	}

	// the catalog lives for the signed-in session: added instruments are
	// tradable until sign-out and then forgotten.
	catalog := tradebook.DefaultCatalog(s.cfg.Currency)
	gateway := payment.NewConsoleScanner(s.in, s.out)
	engine := tradebook.NewTradeEngine(catalog, gateway, s.cfg.StrictCash)

	s.trade(pf, catalog, engine)
}

func (s *session) trade(pf *tradebook.Portfolio, catalog *tradebook.Catalog, engine *tradebook.TradeEngine) {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "1. Buy")
		fmt.Fprintln(s.out, "2. Sell")
		fmt.Fprintln(s.out, "3. View Portfolio")
		fmt.Fprintln(s.out, "4. Most Profitable Share")
		fmt.Fprintln(s.out, "5. Sort Portfolio")
		fmt.Fprintln(s.out, "6. Add New Instrument")
		fmt.Fprintln(s.out, "7. Sign Out")
		choice, ok := s.askInt("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			s.buy(pf, catalog, engine)
		case 2:
			s.sell(pf, engine)
		case 3:
			s.print(renderer.Holdings(pf))
		case 4:
			s.print(renderer.MostProfitable(pf.MostProfitable()))
		case 5:
			s.sortPortfolio(pf)
		case 6:
			s.addInstrument(catalog)
		case 7:
			fmt.Fprintln(s.out, "Signing out...")
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *session) buy(pf *tradebook.Portfolio, catalog *tradebook.Catalog, engine *tradebook.TradeEngine) {
	s.print(renderer.Catalog(catalog))

	symbol, qty, ok := s.askOrder("Enter symbol and quantity to buy separated by a space: ")
	if !ok {
		return
	}

	method, ok := s.askMethod()
	if !ok {
		fmt.Fprintln(s.out, "Invalid choice. Payment failed.")
		return
	}

	receipt, err := engine.Buy(pf, symbol, qty, method)
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	s.print(renderer.Buy(receipt))
}

func (s *session) sell(pf *tradebook.Portfolio, engine *tradebook.TradeEngine) {
	s.print(renderer.Holdings(pf))

	symbol, qty, ok := s.askOrder("Enter symbol and quantity to sell separated by a space: ")
	if !ok {
		return
	}

	receipt, err := engine.Sell(pf, symbol, qty)
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	s.print(renderer.Sell(receipt))
}

func (s *session) sortPortfolio(pf *tradebook.Portfolio) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Sort portfolio by:")
	fmt.Fprintln(s.out, "1. Symbol")
	fmt.Fprintln(s.out, "2. Price")
	fmt.Fprintln(s.out, "3. Quantity")
	choice, ok := s.askInt("Enter your choice: ")
	if !ok {
		return
	}

	var key tradebook.SortKey
	switch choice {
	case 1:
		key = tradebook.BySymbol
	case 2:
		key = tradebook.ByPrice
	case 3:
		key = tradebook.ByQuantity
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
		return
	}
	pf.SortBy(key)
	fmt.Fprintln(s.out, "Portfolio sorted.")
	s.print(renderer.Holdings(pf))
}

func (s *session) addInstrument(catalog *tradebook.Catalog) {
	symbol := s.ask("Enter symbol: ")
	name := s.ask("Enter name: ")
	priceText := s.ask("Enter price: ")
	qtyText := s.ask("Enter quantity: ")

	price, err := tradebook.ParseMoney(priceText, s.cfg.Currency)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid price: %v\n", err)
		return
	}
	qty, err := strconv.ParseInt(qtyText, 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid quantity %q.\n", qtyText)
		return
	}

	ins, err := tradebook.NewInstrument(symbol, name, price, qty)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid instrument: %v\n", err)
		return
	}
	if err := catalog.Add(ins); err != nil {
		fmt.Fprintf(s.out, "Could not add instrument: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "New instrument added for this session.")
}

// askOrder reads a "SYMBOL QTY" line.
func (s *session) askOrder(prompt string) (symbol string, qty int64, ok bool) {
	line := s.ask(prompt)
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Fprintln(s.out, "Invalid input. Please try again.")
		return "", 0, false
	}
	qty, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid quantity %q.\n", parts[1])
		return "", 0, false
	}
	return parts[0], qty, true
}

func (s *session) askMethod() (tradebook.PaymentMethod, bool) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Choose payment method:")
	fmt.Fprintln(s.out, "1. Cash")
	fmt.Fprintln(s.out, "2. Credit Card")
	fmt.Fprintln(s.out, "3. Debit Card")
	fmt.Fprintln(s.out, "4. UPI")
	choice, ok := s.askInt("Enter your choice: ")
	if !ok {
		return 0, false
	}
	switch choice {
	case 1:
		return tradebook.Cash, true
	case 2:
		return tradebook.CreditCard, true
	case 3:
		return tradebook.DebitCard, true
	case 4:
		return tradebook.UPI, true
	default:
		return 0, false
	}
}

func (s *session) ask(prompt string) string {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// askInt reads a menu choice; ok is false when the input stream ends.
func (s *session) askInt(prompt string) (int, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s.in.Text()))
	if err != nil {
		return -1, true
	}
	return n, true
}

func (s *session) print(md string) {
	fmt.Fprint(s.out, renderMarkdown(md))
}
