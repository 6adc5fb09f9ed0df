package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/slingshotlabs/go-slingshot/api/node/models"
	"github.com/slingshotlabs/go-slingshot/program"
)

func deployCmd() *cobra.Command {
	var (
		dir string
		fee uint64
	)
	cmd := &cobra.Command{
		Use:   "deploy --path <dir>",
		Short: "Deploy the program package at --path to the chain",
		Long: `Deploy reads the program package at --path, validates its manifest and
ships the program source to the node. The node signs and pools the
deployment transaction; the next sealing round puts it on chain.`,
		Args: ExactArgs(),
		RunE: func(c *cobra.Command, args []string) error {
			if dir == "" {
				return fmt.Errorf("%w: --path", ErrMissingArgument)
			}
			pkg, err := program.Open(afero.NewOsFs(), dir)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedArgument, err)
			}
			nodeClient, err := newClient(c)
			if err != nil {
				return err
			}
			res, err := nodeClient.Deploy(c.Context(), models.Program{
				ID:     pkg.ID().String(),
				Source: string(pkg.Source()),
			}, fee)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Deployed %s\n", pkg.ID())
			fmt.Fprintf(c.OutOrStdout(), "Transaction %s\n", res.TransactionID)
			return nil
		},
	}
	// shadows the persistent --path, which selects the node account key
	// for `node start`
	cmd.Flags().StringVar(&dir, "path", "", "program directory holding program.json and main.sling")
	cmd.Flags().Uint64Var(&fee, "fee", 0, "additional fee to attach to the deployment, in gates")
	return cmd
}
