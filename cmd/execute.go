package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/program"
)

func executeCmd() *cobra.Command {
	var fee uint64
	cmd := &cobra.Command{
		Use:   "execute <program> <function> [inputs...]",
		Short: "Execute a function of a deployed program",
		Long: `Execute asks the node to run a function of a deployed program. Inputs are
forwarded to the node exactly as given, in order; the node parses them
against the function signature.`,
		Args: MinArgs("program", "function"),
		RunE: func(c *cobra.Command, args []string) error {
			id := types.ProgramID(args[0])
			if err := id.Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedArgument, err)
			}
			function := args[1]
			if !program.ValidFunctionName(function) {
				return fmt.Errorf("%w: %q is not a function name", ErrMalformedArgument, function)
			}
			nodeClient, err := newClient(c)
			if err != nil {
				return err
			}
			res, err := nodeClient.Execute(c.Context(), string(id), function, args[2:], fee)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Executed %s/%s", id, function)
			if len(args) > 2 {
				fmt.Fprintf(c.OutOrStdout(), " with inputs %s", strings.Join(args[2:], " "))
			}
			fmt.Fprintln(c.OutOrStdout())
			fmt.Fprintf(c.OutOrStdout(), "Transaction %s\n", res.TransactionID)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&fee, "fee", 0, "additional fee to attach to the execution, in gates")
	return cmd
}
