// Package client implements a REST client for the node API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/slingshotlabs/go-slingshot/api/node/models"
	"github.com/slingshotlabs/go-slingshot/common/types"
)

// apiPrefix is the route prefix all node API endpoints live under.
const apiPrefix = "testnet3"

var (
	// ErrNotFound is returned when the queried entity is not on the chain.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest is returned when the node rejects the request.
	ErrInvalidRequest = errors.New("invalid request")
)

// RecordScope selects which account records to fetch.
type RecordScope string

const (
	// AllRecords fetches spent and unspent records.
	AllRecords RecordScope = "all"
	// SpentRecords fetches consumed records only.
	SpentRecords RecordScope = "spent"
	// UnspentRecords fetches spendable records only.
	UnspentRecords RecordScope = "unspent"
)

// NodeClient talks to the REST API of a node.
type NodeClient struct {
	baseURL *url.URL
	client  *retryablehttp.Client
	logger  *zap.Logger
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	// 4xx responses are final, the node rejected the request.
	if resp != nil && resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// A wrapper around zap.Logger to make it compatible with
// retryablehttp.LeveledLogger interface.
type retryableHttpLogger struct {
	inner *zap.Logger
}

func (r retryableHttpLogger) Error(format string, args ...any) {
	r.inner.Sugar().Errorw(format, args...)
}

func (r retryableHttpLogger) Info(format string, args ...any) {
	r.inner.Sugar().Infow(format, args...)
}

func (r retryableHttpLogger) Warn(format string, args ...any) {
	r.inner.Sugar().Warnw(format, args...)
}

func (r retryableHttpLogger) Debug(format string, args ...any) {
	r.inner.Sugar().Debugw(format, args...)
}

type NodeClientOpt func(*NodeClient)

func WithLogger(logger *zap.Logger) NodeClientOpt {
	return func(c *NodeClient) {
		c.logger = logger
		c.client.Logger = &retryableHttpLogger{inner: logger}
		c.client.ResponseLogHook = func(logger retryablehttp.Logger, resp *http.Response) {
			c.logger.Debug(
				"response received",
				zap.Stringer("url", resp.Request.URL),
				zap.Int("status", resp.StatusCode),
			)
		}
	}
}

// New returns a NodeClient connecting to the node at the given endpoint.
func New(endpoint string, cfg Config, opts ...NodeClientOpt) (*NodeClient, error) {
	client := &retryablehttp.Client{
		HTTPClient:   &http.Client{Timeout: cfg.Timeout},
		RetryMax:     cfg.RetryMax,
		RetryWaitMin: cfg.RetryWaitMin,
		RetryWaitMax: cfg.RetryWaitMax,
		Backoff:      retryablehttp.LinearJitterBackoff,
		CheckRetry:   checkRetry,
	}

	baseURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint: %w", err)
	}
	if baseURL.Scheme == "" {
		baseURL.Scheme = "http"
	}

	nodeClient := &NodeClient{
		baseURL: baseURL.JoinPath(apiPrefix),
		client:  client,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(nodeClient)
	}

	nodeClient.logger.Debug(
		"created node api client",
		zap.Stringer("url", baseURL),
		zap.Int("max retries", client.RetryMax),
		zap.Duration("min retry wait", client.RetryWaitMin),
		zap.Duration("max retry wait", client.RetryWaitMax),
	)
	return nodeClient, nil
}

// Endpoint returns the base URL the client connects to.
func (c *NodeClient) Endpoint() string {
	return c.baseURL.String()
}

// LatestHeight returns the height of the latest sealed block.
func (c *NodeClient) LatestHeight(ctx context.Context) (uint64, error) {
	var height uint64
	if err := c.req(ctx, http.MethodGet, "latest/height", nil, nil, &height); err != nil {
		return 0, fmt.Errorf("querying latest height: %w", err)
	}
	return height, nil
}

// LatestHash returns the hash of the latest sealed block.
func (c *NodeClient) LatestHash(ctx context.Context) (types.Hash32, error) {
	var hash types.Hash32
	if err := c.req(ctx, http.MethodGet, "latest/hash", nil, nil, &hash); err != nil {
		return types.Hash32{}, fmt.Errorf("querying latest hash: %w", err)
	}
	return hash, nil
}

// LatestBlock returns the latest sealed block.
func (c *NodeClient) LatestBlock(ctx context.Context) (*models.Block, error) {
	var block models.Block
	if err := c.req(ctx, http.MethodGet, "latest/block", nil, nil, &block); err != nil {
		return nil, fmt.Errorf("querying latest block: %w", err)
	}
	return &block, nil
}

// LatestStateRoot returns the state root of the latest sealed block.
func (c *NodeClient) LatestStateRoot(ctx context.Context) (types.Hash32, error) {
	var root types.Hash32
	if err := c.req(ctx, http.MethodGet, "latest/stateRoot", nil, nil, &root); err != nil {
		return types.Hash32{}, fmt.Errorf("querying latest state root: %w", err)
	}
	return root, nil
}

// Block returns the block at the given height.
func (c *NodeClient) Block(ctx context.Context, height uint64) (*models.Block, error) {
	var block models.Block
	if err := c.req(ctx, http.MethodGet, fmt.Sprintf("block/%d", height), nil, nil, &block); err != nil {
		return nil, fmt.Errorf("querying block %d: %w", height, err)
	}
	return &block, nil
}

// BlockByHash returns the block with the given hash.
func (c *NodeClient) BlockByHash(ctx context.Context, hash types.Hash32) (*models.Block, error) {
	var block models.Block
	if err := c.req(ctx, http.MethodGet, "block/"+hash.String(), nil, nil, &block); err != nil {
		return nil, fmt.Errorf("querying block %s: %w", hash.ShortString(), err)
	}
	return &block, nil
}

// BlockTransactions returns the transactions sealed in the block at the given
// height.
func (c *NodeClient) BlockTransactions(ctx context.Context, height uint64) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.req(ctx, http.MethodGet, fmt.Sprintf("block/%d/transactions", height), nil, nil, &txs); err != nil {
		return nil, fmt.Errorf("querying transactions of block %d: %w", height, err)
	}
	return txs, nil
}

// Blocks returns the blocks in the half open range [start, end).
func (c *NodeClient) Blocks(ctx context.Context, start, end uint64) ([]models.Block, error) {
	query := url.Values{}
	query.Set("start", fmt.Sprintf("%d", start))
	query.Set("end", fmt.Sprintf("%d", end))
	var blocks []models.Block
	if err := c.req(ctx, http.MethodGet, "blocks", query, nil, &blocks); err != nil {
		return nil, fmt.Errorf("querying blocks [%d, %d): %w", start, end, err)
	}
	return blocks, nil
}

// BlockHeight returns the height of the block with the given hash.
func (c *NodeClient) BlockHeight(ctx context.Context, hash types.Hash32) (uint64, error) {
	var height uint64
	if err := c.req(ctx, http.MethodGet, "height/"+hash.String(), nil, nil, &height); err != nil {
		return 0, fmt.Errorf("querying height of block %s: %w", hash.ShortString(), err)
	}
	return height, nil
}

// Transaction returns the sealed transaction with the given id.
func (c *NodeClient) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.req(ctx, http.MethodGet, "transaction/"+id, nil, nil, &tx); err != nil {
		return nil, fmt.Errorf("querying transaction %s: %w", id, err)
	}
	return &tx, nil
}

// MemoryPoolTransactions returns the transactions waiting in the node's
// memory pool.
func (c *NodeClient) MemoryPoolTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.req(ctx, http.MethodGet, "memoryPool/transactions", nil, nil, &txs); err != nil {
		return nil, fmt.Errorf("querying memory pool: %w", err)
	}
	return txs, nil
}

// Program returns the deployed program with the given id.
func (c *NodeClient) Program(ctx context.Context, id string) (*models.Program, error) {
	var program models.Program
	if err := c.req(ctx, http.MethodGet, "program/"+id, nil, nil, &program); err != nil {
		return nil, fmt.Errorf("querying program %s: %w", id, err)
	}
	return &program, nil
}

// NodeAddress returns the account address of the node.
func (c *NodeClient) NodeAddress(ctx context.Context) (string, error) {
	var address string
	if err := c.req(ctx, http.MethodGet, "node/address", nil, nil, &address); err != nil {
		return "", fmt.Errorf("querying node address: %w", err)
	}
	return address, nil
}

// FindBlockHash returns the hash of the block that seals the given
// transaction.
func (c *NodeClient) FindBlockHash(ctx context.Context, txID string) (string, error) {
	var hash string
	if err := c.req(ctx, http.MethodGet, "find/blockHash/"+txID, nil, nil, &hash); err != nil {
		return "", fmt.Errorf("finding block of transaction %s: %w", txID, err)
	}
	return hash, nil
}

// FindTransactionID reports whether the given transaction is sealed on the
// chain, echoing the id back when it is.
func (c *NodeClient) FindTransactionID(ctx context.Context, txID string) (string, error) {
	var id string
	if err := c.req(ctx, http.MethodGet, "find/transactionID/"+txID, nil, nil, &id); err != nil {
		return "", fmt.Errorf("finding transaction %s: %w", txID, err)
	}
	return id, nil
}

// FindDeploymentID returns the id of the transaction that deployed the given
// program.
func (c *NodeClient) FindDeploymentID(ctx context.Context, programID string) (string, error) {
	var id string
	if err := c.req(ctx, http.MethodGet, "find/deploymentID/"+programID, nil, nil, &id); err != nil {
		return "", fmt.Errorf("finding deployment of %s: %w", programID, err)
	}
	return id, nil
}

// DevelopmentPrivateKey returns the hex encoded private key of the node's
// development account.
func (c *NodeClient) DevelopmentPrivateKey(ctx context.Context) (string, error) {
	var key string
	if err := c.req(ctx, http.MethodGet, "development/privateKey", nil, nil, &key); err != nil {
		return "", fmt.Errorf("querying development private key: %w", err)
	}
	return key, nil
}

// DevelopmentViewKey returns the view key of the node's development account.
func (c *NodeClient) DevelopmentViewKey(ctx context.Context) (string, error) {
	var key string
	if err := c.req(ctx, http.MethodGet, "development/viewKey", nil, nil, &key); err != nil {
		return "", fmt.Errorf("querying development view key: %w", err)
	}
	return key, nil
}

// DevelopmentAddress returns the address of the node's development account.
func (c *NodeClient) DevelopmentAddress(ctx context.Context) (string, error) {
	var address string
	if err := c.req(ctx, http.MethodGet, "development/address", nil, nil, &address); err != nil {
		return "", fmt.Errorf("querying development address: %w", err)
	}
	return address, nil
}

// Records returns the account records selected by scope, keyed by their
// commitment. The view key is the hex encoded account public key.
func (c *NodeClient) Records(ctx context.Context, viewKey string, scope RecordScope) (map[string]models.Record, error) {
	request := models.RecordViewRequest{ViewKey: viewKey}
	var response models.RecordViewResponse
	if err := c.req(ctx, http.MethodPost, "records/"+string(scope), nil, &request, &response); err != nil {
		return nil, fmt.Errorf("querying %s records: %w", scope, err)
	}
	return response.Records, nil
}

// Pour asks the node's faucet to transfer amount to the given address.
func (c *NodeClient) Pour(ctx context.Context, address string, amount uint64) (*models.PourResponse, error) {
	request := models.PourRequest{Address: address, Amount: amount}
	var response models.PourResponse
	if err := c.req(ctx, http.MethodPost, "faucet/pour", nil, &request, &response); err != nil {
		return nil, fmt.Errorf("pouring %d to %s: %w", amount, address, err)
	}
	return &response, nil
}

// Deploy submits a program for deployment, signed by the node account.
func (c *NodeClient) Deploy(ctx context.Context, program models.Program, additionalFee uint64) (*models.DeployResponse, error) {
	request := models.DeployRequest{Program: program, AdditionalFee: additionalFee}
	var response models.DeployResponse
	if err := c.req(ctx, http.MethodPost, "program/deploy", nil, &request, &response); err != nil {
		return nil, fmt.Errorf("deploying %s: %w", program.ID, err)
	}
	return &response, nil
}

// Execute submits a function call against a deployed program, signed by the
// node account. Inputs are forwarded verbatim.
func (c *NodeClient) Execute(ctx context.Context, programID, function string, inputs []string, additionalFee uint64) (*models.ExecuteResponse, error) {
	request := models.ExecuteRequest{
		ProgramID:     programID,
		Function:      function,
		Inputs:        inputs,
		AdditionalFee: additionalFee,
	}
	var response models.ExecuteResponse
	if err := c.req(ctx, http.MethodPost, "program/execute", nil, &request, &response); err != nil {
		return nil, fmt.Errorf("executing %s/%s: %w", programID, function, err)
	}
	return &response, nil
}

func (c *NodeClient) req(
	ctx context.Context,
	method, path string,
	query url.Values,
	reqBody, resBody any,
) error {
	var jsonReqBody []byte
	if reqBody != nil {
		var err error
		jsonReqBody, err = json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
	}

	reqURL := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, reqURL.String(), jsonReqBody)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("doing request: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response body (%w)", err)
	}

	if res.StatusCode != http.StatusOK {
		c.logger.Debug("api request failed", zap.String("status", res.Status), zap.String("body", string(data)))
	}

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, errorBody(data, res.Status))
	case http.StatusBadRequest, http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, errorBody(data, res.Status))
	default:
		return fmt.Errorf("unrecognized error: status code: %s, body: %s", res.Status, string(data))
	}

	if resBody != nil {
		if err := json.Unmarshal(data, resBody); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

// errorBody extracts the node's error message from a failed response,
// falling back to the raw body.
func errorBody(data []byte, status string) string {
	var apiErr models.Error
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
		return apiErr.Error
	}
	return fmt.Sprintf("response status code: %s, body: %s", status, string(data))
}
