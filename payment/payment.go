// Package payment provides gateways that settle purchases for the trade
// engine. The Console gateway drives the interactive card/UPI dialogs;
// Noop auto-approves and is meant for scripted, non-interactive use.
package payment

import (
	"github.com/google/uuid"

	"github.com/mgraber/tradebook"
)

// Noop is a gateway that approves every charge without interaction.
type Noop struct{}

// Charge approves the amount and issues a fresh reference.
func (Noop) Charge(method tradebook.PaymentMethod, amount tradebook.Money) tradebook.PaymentOutcome {
	return tradebook.PaymentOutcome{
		Paid:      true,
		Reference: uuid.NewString(),
		Note:      "paid " + amount.String() + " by " + method.String(),
	}
}
