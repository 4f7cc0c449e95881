package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// pay <amount>: run the payment adapter against the external gateway stub.
func payCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <amount>",
		Short: "Pay an amount through the adapted external gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parse amount: %w", err)
			}
			if amount.IsNegative() {
				return fmt.Errorf("amount must be non-negative, got %s", amount)
			}
			appCtx.Payments.Pay(amount)
			return nil
		},
	}
}
