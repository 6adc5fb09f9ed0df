// Package node assembles and runs a slingshot development node: ledger,
// memory pool, block producer and the REST api, wired together in a single
// process over one configuration.
package node

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/slingshotlabs/go-slingshot/api/node/server"
	cmdp "github.com/slingshotlabs/go-slingshot/cmd"
	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/config"
	"github.com/slingshotlabs/go-slingshot/database"
	"github.com/slingshotlabs/go-slingshot/filesystem"
	"github.com/slingshotlabs/go-slingshot/ledger"
	"github.com/slingshotlabs/go-slingshot/log"
	"github.com/slingshotlabs/go-slingshot/mempool"
	"github.com/slingshotlabs/go-slingshot/metrics"
	"github.com/slingshotlabs/go-slingshot/producer"
	"github.com/slingshotlabs/go-slingshot/program"
	"github.com/slingshotlabs/go-slingshot/signing"
)

// Logger names. addLogger resolves the configured level for each.
const (
	AppLogger      = "node"
	APILogger      = "api"
	LedgerLogger   = "ledger"
	MempoolLogger  = "mempool"
	ProducerLogger = "producer"
	DatabaseLogger = "database"
)

// GetCommand returns the node verb. `node start` runs the development node
// in the foreground until interrupted.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "run a slingshot development node",
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.Help()
			}
			return fmt.Errorf("%w: node %q", cmdp.ErrUnknownVerb, args[0])
		},
	}
	cmd.AddCommand(startCmd())
	return cmd
}

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start --key <private_key> | --path <dir>",
		Short: "start the development node",
		Long: `Start runs an isolated single-node chain. The chain belongs to one
account, named either directly by --key or by the development key in the
program manifest at --path. State lives in memory unless the node is started
with --in-memory=false.`,
		Args: cmdp.ExactArgs(),
		RunE: func(c *cobra.Command, args []string) error {
			conf, err := cmdp.LoadConfig(c)
			if err != nil {
				return err
			}
			key, err := loadPrivateKey(conf)
			if err != nil {
				return err
			}
			if conf.LOGGING.Encoder == config.JSONLogEncoder {
				log.JSONLog(true)
			}
			lvl := zap.NewAtomicLevel()
			if err := lvl.UnmarshalText([]byte(conf.LOGGING.AppLoggerLevel)); err != nil {
				return fmt.Errorf("%w: cannot parse app logging level: %v", cmdp.ErrMalformedArgument, err)
			}

			app := New(
				WithConfig(conf),
				WithKey(key),
				WithLog(log.NewWithLevel(AppLogger, lvl)),
			)
			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := app.Initialize(); err != nil {
				return err
			}
			defer app.Cleanup()
			return app.Start(ctx)
		},
	}
}

// loadPrivateKey resolves the node account key: --key carries the hex
// encoded key itself, --path points at a program directory whose manifest
// carries it. Exactly one of the two must be given.
func loadPrivateKey(conf *config.Config) (signing.PrivateKey, error) {
	switch {
	case conf.PrivateKey == "" && conf.KeyDir == "":
		return nil, fmt.Errorf("%w: --key", cmdp.ErrMissingArgument)
	case conf.PrivateKey != "" && conf.KeyDir != "":
		return nil, fmt.Errorf("%w: --key and --path are mutually exclusive", cmdp.ErrMalformedArgument)
	case conf.PrivateKey != "":
		key, err := signing.HexToPrivateKey(conf.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("%w: --key: %v", cmdp.ErrMalformedArgument, err)
		}
		return key, nil
	default:
		pkg, err := program.Open(afero.NewOsFs(), conf.KeyDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cmdp.ErrMalformedArgument, err)
		}
		key, err := pkg.PrivateKey()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cmdp.ErrMalformedArgument, err)
		}
		return key, nil
	}
}

// App ties the node components together over one config.
type App struct {
	Config *config.Config

	log     log.Log
	loggers map[string]*zap.AtomicLevel

	key       signing.PrivateKey
	signer    *signing.EdSigner
	genesis   ledger.Genesis
	db        database.Database
	ledger    *ledger.Ledger
	pool      *mempool.TxMempool
	producer  *producer.Producer
	apiServer *server.Server
	fileLock  *flock.Flock

	cancel  context.CancelFunc
	term    chan struct{}
	started chan struct{}
}

// Option modifies an App instance.
type Option func(app *App)

// WithConfig overwrites the default App config.
func WithConfig(conf *config.Config) Option {
	return func(app *App) {
		app.Config = conf
	}
}

// WithKey sets the private key of the node account.
func WithKey(key signing.PrivateKey) Option {
	return func(app *App) {
		app.key = key
	}
}

// WithLog sets the application logger.
func WithLog(logger log.Log) Option {
	return func(app *App) {
		app.log = logger
	}
}

// New creates an App instance.
func New(opts ...Option) *App {
	defaultConfig := config.DefaultConfig()
	app := &App{
		Config:  &defaultConfig,
		log:     log.NewNop(),
		loggers: make(map[string]*zap.AtomicLevel),
		term:    make(chan struct{}),
		started: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Started is closed once every service is up.
func (app *App) Started() <-chan struct{} {
	return app.started
}

// Initialize prepares the node environment: data directory, file lock,
// address prefix and genesis parameters. No service is started yet.
func (app *App) Initialize() error {
	if err := filesystem.ExistOrCreate(app.Config.DataDir()); err != nil {
		return fmt.Errorf("ensure data dir %s: %w", app.Config.DataDir(), err)
	}

	lock := flock.New(app.Config.FileLock)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("flock %s: %w", lock.Path(), err)
	}
	if !locked {
		return fmt.Errorf("only one node can hold %s, is another instance running?", lock.Path())
	}
	app.fileLock = lock

	types.SetAddressHRP(app.Config.NetworkHRP)

	if err := app.Config.Genesis.Validate(); err != nil {
		return fmt.Errorf("invalid genesis config: %w", err)
	}
	genesisTime, err := time.Parse(time.RFC3339, app.Config.Genesis.GenesisTime)
	if err != nil {
		return fmt.Errorf("cannot parse genesis time %s: %w", app.Config.Genesis.GenesisTime, err)
	}
	app.genesis = ledger.Genesis{
		ID:          app.Config.Genesis.GenesisID(),
		Time:        genesisTime,
		Records:     app.Config.Genesis.Records,
		RecordValue: app.Config.Genesis.RecordValue,
		RecordData:  app.Config.Genesis.RecordData.Bytes(),
	}
	return nil
}

// Start starts all node services and blocks until ctx is canceled.
func (app *App) Start(ctx context.Context) error {
	ctx, app.cancel = context.WithCancel(ctx)

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("error reading hostname: %w", err)
	}
	app.log.With().Info("starting slingshot node",
		log.String("data_dir", app.Config.DataDir()),
		log.String("hostname", hostname),
		log.String("genesis_id", app.genesis.ID.ShortString()),
	)

	if app.Config.ProfilerURL != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: app.Config.ProfilerName,
			ServerAddress:   app.Config.ProfilerURL,
		})
		if err != nil {
			return fmt.Errorf("cannot start profiling client: %w", err)
		}
		defer profiler.Stop()
	}

	if app.Config.CollectMetrics {
		metrics.StartMetricsServer(app.Config.MetricsPort)
	}

	if err := app.startServices(ctx); err != nil {
		return err
	}

	close(app.started)
	app.log.With().Info("node is ready",
		log.String("api", app.apiServer.BoundAddress()),
		log.String("account", app.signer.Address().String()),
	)

	select {
	case <-ctx.Done():
	case <-app.term:
	}
	return nil
}

func (app *App) startServices(ctx context.Context) error {
	signer, err := signing.NewEdSigner(
		signing.WithPrivateKey(app.key),
		signing.WithPrefix(app.genesis.ID.Bytes()),
	)
	if err != nil {
		return fmt.Errorf("build node signer: %w", err)
	}
	app.signer = signer

	if app.Config.Database.InMemory {
		app.db = database.NewMemDatabase()
	} else {
		db, err := database.NewLDBDatabase(app.Config.LedgerDBPath(), 0, 0,
			app.addLogger(DatabaseLogger, app.log))
		if err != nil {
			return fmt.Errorf("open ledger database at %s: %w", app.Config.LedgerDBPath(), err)
		}
		app.db = db
	}

	chain, err := ledger.New(app.db, app.signer, app.genesis,
		app.addLogger(LedgerLogger, app.log))
	if err != nil {
		return fmt.Errorf("build ledger: %w", err)
	}
	app.ledger = chain

	app.pool = mempool.NewTxMempool()

	app.producer = producer.New(chain, app.pool,
		producer.WithConfig(app.Config.Producer),
		producer.WithLogger(app.addLogger(ProducerLogger, app.log)),
	)
	app.producer.Start(ctx)

	app.apiServer = server.New(chain, app.pool,
		newTxBuilder(chain, app.pool, app.addLogger(MempoolLogger, app.log)),
		app.signer,
		server.WithConfig(app.Config.API),
		server.WithLogger(app.addLogger(APILogger, app.log)),
	)
	if err := app.apiServer.Start(); err != nil {
		return fmt.Errorf("start api server: %w", err)
	}
	return nil
}

func (app *App) stopServices() {
	// goroutines that listen on term will close; there is no guarantee
	// a listener exits before stopServices returns
	close(app.term)
	if app.cancel != nil {
		app.cancel()
	}

	if app.apiServer != nil {
		app.log.Info("closing the api server")
		if err := app.apiServer.Close(); err != nil {
			app.log.With().Error("api server closed uncleanly", log.Err(err))
		}
	}
	if app.producer != nil {
		app.log.Info("closing the block producer")
		app.producer.Close()
	}
	if app.db != nil {
		app.log.Info("closing the ledger database")
		app.db.Close()
	}
}

// Cleanup stops all services and releases the file lock.
func (app *App) Cleanup() {
	app.log.Info("app cleanup starting...")
	app.stopServices()
	if app.fileLock != nil {
		if err := app.fileLock.Unlock(); err != nil {
			app.log.With().Error("failed to release file lock", log.Err(err))
		}
	}
	app.log.Info("app cleanup completed")
}

// addLogger derives a named sub-logger with the level configured for name.
// The level stays adjustable through the retained AtomicLevel.
func (app *App) addLogger(name string, logger log.Log) log.Log {
	lvl := zap.NewAtomicLevel()
	var err error
	switch name {
	case AppLogger:
		err = lvl.UnmarshalText([]byte(app.Config.LOGGING.AppLoggerLevel))
	case APILogger:
		err = lvl.UnmarshalText([]byte(app.Config.LOGGING.APILoggerLevel))
	case LedgerLogger:
		err = lvl.UnmarshalText([]byte(app.Config.LOGGING.LedgerLoggerLevel))
	case MempoolLogger:
		err = lvl.UnmarshalText([]byte(app.Config.LOGGING.MempoolLoggerLevel))
	case ProducerLogger:
		err = lvl.UnmarshalText([]byte(app.Config.LOGGING.ProducerLoggerLevel))
	case DatabaseLogger:
		err = lvl.UnmarshalText([]byte(app.Config.LOGGING.DatabaseLoggerLevel))
	default:
		lvl.SetLevel(zapcore.InfoLevel)
	}
	if err != nil {
		app.log.Error("cannot parse logging level for %v: %v", name, err)
		lvl.SetLevel(zapcore.InfoLevel)
	}
	app.loggers[name] = &lvl
	return logger.SetLevel(&lvl).WithName(name)
}
