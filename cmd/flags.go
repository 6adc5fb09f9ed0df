package cmd

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	cfg "github.com/slingshotlabs/go-slingshot/config"
)

var config = cfg.DefaultConfig()

// AddFlags registers the shared flags on cmd. Flag values land in the
// package level config; LoadConfig folds the changed ones over whatever the
// config file says.
func AddFlags(cmd *cobra.Command) {
	/** ======================== BaseConfig Flags ========================== **/
	cmd.PersistentFlags().StringVarP(&config.BaseConfig.ConfigFile,
		"config", "c", config.BaseConfig.ConfigFile, "Set Load configuration from file")
	cmd.PersistentFlags().StringVarP(&config.BaseConfig.DataDirParent, "data-folder", "d",
		config.BaseConfig.DataDirParent, "Specify data directory for slingshot")
	cmd.PersistentFlags().StringVar(&config.BaseConfig.PrivateKey, "key",
		config.BaseConfig.PrivateKey, "Hex encoded private key of the node account")
	cmd.PersistentFlags().StringVar(&config.BaseConfig.KeyDir, "path",
		config.BaseConfig.KeyDir, "Program directory whose manifest carries the node account key")
	cmd.PersistentFlags().BoolVar(&config.CollectMetrics, "metrics",
		config.CollectMetrics, "collect node metrics")
	cmd.PersistentFlags().IntVar(&config.MetricsPort, "metrics-port",
		config.MetricsPort, "metric server port")
	cmd.PersistentFlags().StringVar(&config.NetworkHRP, "network-hrp",
		config.NetworkHRP, "The human readable prefix of account addresses")
	cmd.PersistentFlags().StringVar(&config.ProfilerURL, "profiler-url",
		config.ProfilerURL, "send profiler data to certain url, if no url no profiling will be sent, format: http://<IP>:<PORT>")
	cmd.PersistentFlags().StringVar(&config.ProfilerName, "profiler-name",
		config.ProfilerName, "the name to use when sending profiles")
	cmd.PersistentFlags().StringVar(&config.FileLock, "filelock",
		config.FileLock, "Filesystem lock that prevents two nodes from sharing a data directory")
	cmd.PersistentFlags().StringVar(&config.LOGGING.Encoder, "log-encoder",
		config.LOGGING.Encoder, "Log as JSON instead of plain text")

	/** ======================== Genesis Flags ========================== **/
	cmd.PersistentFlags().StringVar(&config.Genesis.GenesisTime, "genesis-time",
		config.Genesis.GenesisTime, "Time of the genesis block in 2019-13-02T17:02:00+00:00 format")
	cmd.PersistentFlags().StringVar(&config.Genesis.ExtraData, "genesis-extra-data",
		config.Genesis.ExtraData, "genesis extra-data, used to differentiate chains")
	cmd.PersistentFlags().Uint32Var(&config.Genesis.Records, "genesis-records",
		config.Genesis.Records, "number of records the genesis block credits to the node account")
	cmd.PersistentFlags().Uint64Var(&config.Genesis.RecordValue, "genesis-record-value",
		config.Genesis.RecordValue, "value of each genesis record, in gates")

	/** ======================== Database Flags ========================== **/
	cmd.PersistentFlags().BoolVar(&config.Database.InMemory, "in-memory",
		config.Database.InMemory, "Keep the ledger in memory, state is dropped when the node exits")

	/** ======================== API Flags ========================== **/
	cmd.PersistentFlags().StringVar(&config.API.Listen, "rest-listener",
		config.API.Listen, "REST api server bind address")
	cmd.PersistentFlags().Uint64Var(&config.API.MaxBlockRange, "max-block-range",
		config.API.MaxBlockRange, "Maximum number of blocks served by one range query")
	cmd.PersistentFlags().DurationVar(&config.API.PourInterval, "pour-interval",
		config.API.PourInterval, "Minimum time between faucet pours")
	cmd.PersistentFlags().IntVar(&config.API.PourBurst, "pour-burst",
		config.API.PourBurst, "Number of pours allowed to exceed the pour interval")

	/** ======================== Client Flags ========================== **/
	cmd.PersistentFlags().StringVarP(&config.Client.Endpoint, "endpoint", "e",
		config.Client.Endpoint, "REST api endpoint of the node the client verbs talk to")

	/** ======================== Producer Flags ========================== **/
	cmd.PersistentFlags().DurationVar(&config.Producer.RoundTime, "round-time",
		config.Producer.RoundTime, "Interval between block sealing rounds")
}

// EnsureCLIFlags copies the value of every changed flag into conf. Flags
// bind to the package level config while the file unmarshals into conf; this
// is ugly but we have to do it because viper can't handle nested structs
// when deserializing, and flags given on the command line must win over the
// file.
func EnsureCLIFlags(cmd *cobra.Command, conf *cfg.Config) {
	assignField := func(source, target reflect.Value, name string) bool {
		p := source.Type()
		for i := 0; i < p.NumField(); i++ {
			if p.Field(i).Tag.Get("mapstructure") == name {
				target.Field(i).Set(source.Field(i))
				return true
			}
		}
		return false
	}

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		sections := []struct{ source, target reflect.Value }{
			{reflect.ValueOf(config.BaseConfig), reflect.ValueOf(&conf.BaseConfig).Elem()},
			{reflect.ValueOf(config.Genesis), reflect.ValueOf(&conf.Genesis).Elem()},
			{reflect.ValueOf(config.Database), reflect.ValueOf(&conf.Database).Elem()},
			{reflect.ValueOf(config.API), reflect.ValueOf(&conf.API).Elem()},
			{reflect.ValueOf(config.Client), reflect.ValueOf(&conf.Client).Elem()},
			{reflect.ValueOf(config.Producer), reflect.ValueOf(&conf.Producer).Elem()},
			{reflect.ValueOf(config.LOGGING), reflect.ValueOf(&conf.LOGGING).Elem()},
		}
		for _, s := range sections {
			if assignField(s.source, s.target, f.Name) {
				return
			}
		}
	})
}

// LoadConfig builds the effective configuration for cmd: defaults, then the
// config file, then any flags changed on the command line. A config file
// that cannot be read is only an error when --config asked for it
// explicitly.
func LoadConfig(cmd *cobra.Command) (*cfg.Config, error) {
	vip := viper.New()
	if err := cfg.LoadConfig(config.ConfigFile, vip); err != nil {
		if cmd.Flags().Changed("config") {
			return nil, fmt.Errorf("%w: %v", ErrMalformedArgument, err)
		}
	}

	conf := cfg.DefaultConfig()
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	if err := vip.Unmarshal(&conf, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("%w: unmarshal config: %v", ErrMalformedArgument, err)
	}
	EnsureCLIFlags(cmd, &conf)
	return &conf, nil
}
