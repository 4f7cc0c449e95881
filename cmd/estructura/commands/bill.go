package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// bill <user> <amount>: run the billing facade once.
func billCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bill <user> <amount>",
		Short: "Run the billing pipeline for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parse amount: %w", err)
			}
			if amount.IsNegative() {
				return fmt.Errorf("amount must be non-negative, got %s", amount)
			}
			appCtx.Billing.Process(args[0], amount)
			return nil
		},
	}
}
