// Package server implements the node's JSON REST API in the testnet3 route
// layout.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	httpmetrics "github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/slingshotlabs/go-slingshot/ledger"
	"github.com/slingshotlabs/go-slingshot/log"
	"github.com/slingshotlabs/go-slingshot/metrics"
	"github.com/slingshotlabs/go-slingshot/signing"
)

const shutdownGrace = 5 * time.Second

// Server serves the chain, the memory pool and the transaction builders of a
// development node over JSON HTTP.
type Server struct {
	cfg     Config
	logger  log.Log
	chain   chain
	pool    pool
	builder builder
	signer  *signing.EdSigner

	pours    *rate.Limiter
	listener net.Listener
	srv      *http.Server
	eg       errgroup.Group
}

// Opt modifies the Server.
type Opt func(*Server)

// WithConfig sets the server configuration.
func WithConfig(cfg Config) Opt {
	return func(s *Server) {
		s.cfg = cfg
	}
}

// WithLogger sets the logger.
func WithLogger(logger log.Log) Opt {
	return func(s *Server) {
		s.logger = logger
	}
}

// New builds the API server. The signer is the node account: it answers the
// node address and development key routes.
func New(chain chain, pool pool, builder builder, signer *signing.EdSigner, opts ...Opt) *Server {
	s := &Server{
		cfg:     DefaultConfig(),
		logger:  log.NewNop(),
		chain:   chain,
		pool:    pool,
		builder: builder,
		signer:  signer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pours = rate.NewLimiter(rate.Every(s.cfg.PourInterval), s.cfg.PourBurst)
	s.srv = &http.Server{Handler: s.handler()}
	return s
}

// handler assembles the route mux and wraps it with per-route prometheus
// metrics, permissive CORS and debug request logging.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /testnet3/latest/height", s.latestHeight)
	mux.HandleFunc("GET /testnet3/latest/hash", s.latestHash)
	mux.HandleFunc("GET /testnet3/latest/block", s.latestBlock)
	mux.HandleFunc("GET /testnet3/latest/stateRoot", s.latestStateRoot)

	// the upstream serves GET block/<height> and GET block/<hash> on the
	// same position, the handler disambiguates
	mux.HandleFunc("GET /testnet3/block/{ref}", s.getBlock)
	mux.HandleFunc("GET /testnet3/block/{height}/transactions", s.getBlockTransactions)
	mux.HandleFunc("GET /testnet3/blocks", s.getBlocks)
	mux.HandleFunc("GET /testnet3/height/{hash}", s.getBlockHeight)

	mux.HandleFunc("GET /testnet3/transaction/{id}", s.getTransaction)
	mux.HandleFunc("GET /testnet3/memoryPool/transactions", s.memoryPoolTransactions)
	mux.HandleFunc("GET /testnet3/program/{id}", s.getProgram)
	mux.HandleFunc("GET /testnet3/node/address", s.nodeAddress)

	mux.HandleFunc("GET /testnet3/find/blockHash/{id}", s.findBlockHash)
	mux.HandleFunc("GET /testnet3/find/transactionID/{id}", s.findTransactionID)
	mux.HandleFunc("GET /testnet3/find/deploymentID/{id}", s.findDeploymentID)

	mux.HandleFunc("GET /testnet3/development/privateKey", s.developmentPrivateKey)
	mux.HandleFunc("GET /testnet3/development/viewKey", s.developmentViewKey)
	mux.HandleFunc("GET /testnet3/development/address", s.developmentAddress)

	mux.HandleFunc("POST /testnet3/records/all", s.records(ledger.AllRecords))
	mux.HandleFunc("POST /testnet3/records/spent", s.records(ledger.SpentRecords))
	mux.HandleFunc("POST /testnet3/records/unspent", s.records(ledger.UnspentRecords))

	mux.HandleFunc("POST /testnet3/faucet/pour", s.faucetPour)
	mux.HandleFunc("POST /testnet3/program/deploy", s.programDeploy)
	mux.HandleFunc("POST /testnet3/program/execute", s.programExecute)

	mdlw := middleware.New(middleware.Config{
		Recorder: httpmetrics.NewRecorder(httpmetrics.Config{Prefix: metrics.Namespace}),
	})
	handler := std.Handler("", mdlw, mux)
	handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"content-type"},
	}).Handler(handler)
	return s.logRequests(handler)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.logger.With().Debug("handled api request",
			log.String("method", r.Method),
			log.String("path", r.URL.Path),
			log.Int("status", sw.status),
			log.String("remote", r.RemoteAddr))
	})
}

// Start begins serving on the configured listener.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Listen, err)
	}
	s.listener = listener
	s.logger.With().Info("api server listening", log.Endpoint(listener.Addr().String()))
	s.eg.Go(func() error {
		if err := s.srv.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	return nil
}

// BoundAddress returns the address the server listens on. Valid after Start.
func (s *Server) BoundAddress() string {
	return s.listener.Addr().String()
}

// Close shuts the server down, allowing inflight requests a grace period.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown api server: %w", err)
	}
	return s.eg.Wait()
}
