package cmd

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/slingshotlabs/go-slingshot/api/node/client"
	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/program"
	"github.com/slingshotlabs/go-slingshot/signing"
)

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View chain state through an account's view key",
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.Help()
			}
			return fmt.Errorf("%w: view %q", ErrUnknownVerb, args[0])
		},
	}
	cmd.AddCommand(viewRecordCmd())
	return cmd
}

func viewRecordCmd() *cobra.Command {
	var (
		key     string
		dir     string
		spent   bool
		unspent bool
	)
	cmd := &cobra.Command{
		Use:   "record [--key <view_key> | --path <dir>] [--spent|--unspent]",
		Short: "List the records an account owns",
		Long: `Record lists the records an account owns on the chain. The account is
named by its view key, given directly with --key or read from the program
manifest at --path. With neither, the node's own development account is
viewed.`,
		Args: ExactArgs(),
		RunE: func(c *cobra.Command, args []string) error {
			if key != "" && dir != "" {
				return fmt.Errorf("%w: --key and --path are mutually exclusive", ErrMalformedArgument)
			}
			if spent && unspent {
				return fmt.Errorf("%w: --spent and --unspent are mutually exclusive", ErrMalformedArgument)
			}
			scope := client.AllRecords
			if spent {
				scope = client.SpentRecords
			}
			if unspent {
				scope = client.UnspentRecords
			}

			var raw []byte
			switch {
			case key != "":
				var err error
				if raw, err = decodeViewKey(key); err != nil {
					return err
				}
			case dir != "":
				pkg, err := program.Open(afero.NewOsFs(), dir)
				if err != nil {
					return fmt.Errorf("%w: %v", ErrMalformedArgument, err)
				}
				priv, err := pkg.PrivateKey()
				if err != nil {
					return fmt.Errorf("%w: %v", ErrMalformedArgument, err)
				}
				raw = signing.Public(priv)
				key = hex.EncodeToString(raw)
			}

			nodeClient, err := newClient(c)
			if err != nil {
				return err
			}
			if key == "" {
				if key, err = nodeClient.DevelopmentViewKey(c.Context()); err != nil {
					return err
				}
				if raw, err = hex.DecodeString(key); err != nil {
					return fmt.Errorf("node returned an unusable view key %q: %w", key, err)
				}
			}
			records, err := nodeClient.Records(c.Context(), key, scope)
			if err != nil {
				return err
			}

			var filter string
			if scope != client.AllRecords {
				filter = string(scope) + " "
			}
			fmt.Fprintf(c.OutOrStdout(), "Found %d %srecord(s) for account %s\n",
				len(records), filter, types.GenerateAddress(raw))
			ids := make([]string, 0, len(records))
			for id := range records {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				rec := records[id]
				fmt.Fprintf(c.OutOrStdout(), "%s\n", id)
				fmt.Fprintf(c.OutOrStdout(), "  owner %s value %d nonce %d\n", rec.Owner, rec.Value, rec.Nonce)
				if rec.Data != "" {
					fmt.Fprintf(c.OutOrStdout(), "  data %s\n", rec.Data)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "view key of the account, the hex encoded public key")
	cmd.Flags().StringVar(&dir, "path", "", "program directory whose manifest carries the account key")
	cmd.Flags().BoolVar(&spent, "spent", false, "list consumed records only")
	cmd.Flags().BoolVar(&unspent, "unspent", false, "list spendable records only")
	return cmd
}

func decodeViewKey(key string) ([]byte, error) {
	raw, err := hex.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: view key is not hex: %v", ErrMalformedArgument, err)
	}
	if len(raw) != signing.PublicKeySize {
		return nil, fmt.Errorf("%w: view key must be %d bytes, got %d",
			ErrMalformedArgument, signing.PublicKeySize, len(raw))
	}
	return raw, nil
}
