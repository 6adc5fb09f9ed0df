package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func pourCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pour <address> <amount>",
		Short: "Pour gates from the node faucet into an account",
		Long: `Pour asks the node faucet to transfer gates into an account.

The address is forwarded as given; whether it names a payable account is for
the node to decide.`,
		Args: ExactArgs("address", "amount"),
		RunE: func(c *cobra.Command, args []string) error {
			amount, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: amount %q is not a non-negative integer",
					ErrMalformedArgument, args[1])
			}
			nodeClient, err := newClient(c)
			if err != nil {
				return err
			}
			res, err := nodeClient.Pour(c.Context(), args[0], amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Poured %d gates into %s\n", amount, res.Address)
			fmt.Fprintf(c.OutOrStdout(), "Balance once sealed: %d gates\n", res.Balance)
			fmt.Fprintf(c.OutOrStdout(), "Transaction %s\n", res.TransactionID)
			return nil
		},
	}
}
