package payment

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/mgraber/tradebook"
)

const cvvAttempts = 3

// Console is an interactive gateway that walks the user through the
// payment dialog of the chosen method. It reads answers from in and
// writes prompts to out, so a session can run it over any stream.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a console gateway over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// NewConsoleScanner creates a console gateway sharing an existing line
// scanner, so an interactive session and the payment dialog read from the
// same buffered stream without losing lines.
func NewConsoleScanner(in *bufio.Scanner, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// Charge runs the dialog for method and reports the outcome.
func (c *Console) Charge(method tradebook.PaymentMethod, amount tradebook.Money) tradebook.PaymentOutcome {
	switch method {
	case tradebook.Cash:
		fmt.Fprintf(c.out, "Paid %s by cash.\n", amount)
		return paid(method)
	case tradebook.CreditCard:
		return c.card(method, amount, 4)
	case tradebook.DebitCard:
		return c.card(method, amount, 6)
	case tradebook.UPI:
		return c.upi(amount)
	default:
		return tradebook.PaymentOutcome{Note: "unknown payment method"}
	}
}

// card runs the card dialog: the card number must have numberLen digits
// (the user may retry until the input ends), the CVV must have 3 digits
// within cvvAttempts attempts or the card is blocked.
func (c *Console) card(method tradebook.PaymentMethod, amount tradebook.Money, numberLen int) tradebook.PaymentOutcome {
	for {
		number, ok := c.ask("Enter card number: ")
		if !ok {
			return c.abort()
		}
		if len(number) == numberLen {
			break
		}
		fmt.Fprintln(c.out, "Payment failed, try again.")
	}
	if _, ok := c.ask("Enter card holder name: "); !ok {
		return c.abort()
	}
	if _, ok := c.ask("Enter expiry month and year (MM/YY): "); !ok {
		return c.abort()
	}

	for attempt := 1; attempt <= cvvAttempts; attempt++ {
		cvv, ok := c.ask("Enter CVV: ")
		if !ok {
			return c.abort()
		}
		if len(cvv) == 3 {
			fmt.Fprintf(c.out, "Paid %s by %s.\n", amount, method)
			return paid(method)
		}
		fmt.Fprintln(c.out, "Enter correct CVV.")
	}
	fmt.Fprintln(c.out, "Payment failed, card blocked for 24 hours.")
	return tradebook.PaymentOutcome{Note: "card blocked for 24 hours"}
}

func (c *Console) upi(amount tradebook.Money) tradebook.PaymentOutcome {
	if _, ok := c.ask("Enter UPI id: "); !ok {
		return c.abort()
	}
	if _, ok := c.ask("Enter UPI pin: "); !ok {
		return c.abort()
	}
	fmt.Fprintf(c.out, "Paid %s by UPI.\n", amount)
	return paid(tradebook.UPI)
}

// ask prompts for one answer; ok is false when the input stream ends.
func (c *Console) ask(prompt string) (answer string, ok bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// abort fails the dialog when the input stream closed mid-payment.
func (c *Console) abort() tradebook.PaymentOutcome {
	fmt.Fprintln(c.out, "Payment aborted.")
	return tradebook.PaymentOutcome{Note: "payment aborted"}
}

func paid(method tradebook.PaymentMethod) tradebook.PaymentOutcome {
	return tradebook.PaymentOutcome{
		Paid:      true,
		Reference: uuid.NewString(),
		Note:      "paid by " + method.String(),
	}
}
