// Package cmd wires the slingshot command line: the client verbs talk to a
// running node over its REST api, `node start` (registered by the node
// package) runs the node itself.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/slingshotlabs/go-slingshot/api/node/client"
	"github.com/slingshotlabs/go-slingshot/log"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the app. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// EndpointEnv overrides the configured node endpoint when set. The
// --endpoint flag beats it.
const EndpointEnv = "SLINGSHOT_ENDPOINT"

// RootCmd builds the slingshot command with the client verbs attached.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "slingshot",
		Short:         "develop against a local slingshot chain",
		SilenceErrors: true,
		SilenceUsage:  true,
		// ArbitraryArgs so that an unmatched first argument reaches RunE
		// instead of cobra's own unknown command error
		Args: cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.Help()
			}
			return fmt.Errorf("%w: %q", ErrUnknownVerb, args[0])
		},
	}
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrMalformedArgument, err)
	})
	AddFlags(root)
	root.AddCommand(
		pourCmd(),
		deployCmd(),
		executeCmd(),
		viewCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs root and exits the process. Usage errors exit with a distinct
// code so scripts can tell a bad invocation from a failed operation.
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// newClient dials the node api for a client verb. The endpoint comes from
// the --endpoint flag, the SLINGSHOT_ENDPOINT environment variable or the
// config, in that order.
func newClient(cmd *cobra.Command) (*client.NodeClient, error) {
	conf, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	endpoint := conf.Client.Endpoint
	if !cmd.Flags().Changed("endpoint") {
		if env := os.Getenv(EndpointEnv); env != "" {
			endpoint = env
		}
	}
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(conf.LOGGING.ClientLoggerLevel)); err != nil {
		log.Warning("cannot parse client logging level: %v", err)
	}
	nodeClient, err := client.New(endpoint, conf.Client,
		client.WithLogger(log.NewWithLevel("client", lvl).Zap()))
	if err != nil {
		return nil, fmt.Errorf("%w: endpoint: %v", ErrMalformedArgument, err)
	}
	return nodeClient, nil
}

// ExactArgs mirrors cobra.ExactArgs but names the argument that is missing.
func ExactArgs(names ...string) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return fmt.Errorf("%w: %s", ErrMissingArgument, names[len(args)])
		}
		if len(args) > len(names) {
			return fmt.Errorf("%w: unexpected argument %q", ErrMalformedArgument, args[len(names)])
		}
		return nil
	}
}

// MinArgs requires the named arguments and lets any number of extras through.
func MinArgs(names ...string) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return fmt.Errorf("%w: %s", ErrMissingArgument, names[len(args)])
		}
		return nil
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprint(c.OutOrStdout(), Version)
			if Commit != "" {
				fmt.Fprintf(c.OutOrStdout(), "+%s", Commit)
			}
			fmt.Fprintln(c.OutOrStdout())
		},
	}
}
