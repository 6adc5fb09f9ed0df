package server

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/slingshotlabs/go-slingshot/api/node/models"
	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/common/util"
	"github.com/slingshotlabs/go-slingshot/ledger"
	"github.com/slingshotlabs/go-slingshot/log"
	"github.com/slingshotlabs/go-slingshot/signing"
)

// Request body caps. The account routes take small fixed payloads; deploy and
// execute carry program sources and inputs.
const (
	maxAccountBody = 512
	maxProgramBody = 1 << 20
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.With().Debug("failed to write api response", log.Err(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, models.Error{Error: err.Error()})
}

// readJSON decodes the request body into v, refusing bodies over limit bytes.
func readJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

// queryStatus maps chain lookup failures to http statuses.
func queryStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrBlockNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, ledger.ErrRecordNotFound),
		errors.Is(err, ledger.ErrProgramNotFound),
		errors.Is(err, ledger.ErrFunctionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrInvalidRange),
		errors.Is(err, ledger.ErrNoSufficientRecord),
		errors.Is(err, ledger.ErrProgramExists):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// submitStatus maps transaction build failures. Anything that is not a known
// lookup failure is the caller's fault: a request the chain refuses.
func submitStatus(err error) int {
	if status := queryStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return http.StatusBadRequest
}

func parseHash(text string) (types.Hash32, error) {
	var hash types.Hash32
	if err := hash.UnmarshalText([]byte(text)); err != nil {
		return types.Hash32{}, err
	}
	return hash, nil
}

func parseTransactionID(text string) (types.TransactionID, error) {
	hash, err := parseHash(text)
	if err != nil {
		return types.EmptyTransactionID, err
	}
	return types.TransactionID(hash), nil
}

// viewKeyAddress derives the account address from a view key, the hex encoded
// account public key.
func viewKeyAddress(viewKey string) (types.Address, error) {
	raw, err := hex.DecodeString(viewKey)
	if err != nil {
		return types.Address{}, fmt.Errorf("view key is not hex: %w", err)
	}
	if len(raw) != signing.PublicKeySize {
		return types.Address{}, fmt.Errorf("view key must be %d bytes, got %d", signing.PublicKeySize, len(raw))
	}
	return types.GenerateAddress(raw), nil
}

func (s *Server) latestHeight(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.chain.LatestHeight())
}

func (s *Server) latestHash(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.chain.LatestHash().String())
}

func (s *Server) latestBlock(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, toBlock(s.chain.LatestBlock()))
}

func (s *Server) latestStateRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.chain.StateRoot().String())
}

// getBlock serves a block by height or by hash, whichever the path segment
// parses as.
func (s *Server) getBlock(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	var (
		block *types.Block
		err   error
	)
	if height, perr := strconv.ParseUint(ref, 10, 64); perr == nil {
		block, err = s.chain.GetBlock(height)
	} else {
		hash, perr := parseHash(ref)
		if perr != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("parse block reference %q: %w", ref, perr))
			return
		}
		block, err = s.chain.GetBlockByHash(hash)
	}
	if err != nil {
		s.writeError(w, queryStatus(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, toBlock(block))
}

func (s *Server) getBlockTransactions(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseUint(r.PathValue("height"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("parse height: %w", err))
		return
	}
	block, err := s.chain.GetBlock(height)
	if err != nil {
		s.writeError(w, queryStatus(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, toTransactions(block.Transactions))
}

// getBlocks serves the range [start, end), capped at MaxBlockRange per call.
func (s *Server) getBlocks(w http.ResponseWriter, r *http.Request) {
	start, err := strconv.ParseUint(r.URL.Query().Get("start"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("parse start: %w", err))
		return
	}
	end, err := strconv.ParseUint(r.URL.Query().Get("end"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("parse end: %w", err))
		return
	}
	if start > end {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid block range"))
		return
	}
	if end-start > s.cfg.MaxBlockRange {
		s.writeError(w, http.StatusBadRequest,
			fmt.Errorf("cannot request more than %d blocks per call (requested %d)", s.cfg.MaxBlockRange, end-start))
		return
	}
	blocks, err := s.chain.Blocks(start, end)
	if err != nil {
		s.writeError(w, queryStatus(err), err)
		return
	}
	out := make([]models.Block, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, toBlock(block))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) getBlockHeight(w http.ResponseWriter, r *http.Request) {
	hash, err := parseHash(r.PathValue("hash"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("parse block hash: %w", err))
		return
	}
	height, err := s.chain.GetBlockHeight(hash)
	if err != nil {
		s.writeError(w, queryStatus(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, height)
}

func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseTransactionID(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("parse transaction id: %w", err))
		return
	}
	tx, err := s.chain.GetTransaction(id)
	if err != nil {
		s.writeError(w, queryStatus(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, toTransaction(tx))
}

func (s *Server) memoryPoolTransactions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, toTransactions(s.pool.Transactions()))
}

func (s *Server) getProgram(w http.ResponseWriter, r *http.Request) {
	id := types.ProgramID(r.PathValue("id"))
	if err := id.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	program, err := s.chain.GetProgram(id)
	if err != nil {
		s.writeError(w, queryStatus(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProgram(program))
}

func (s *Server) nodeAddress(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.signer.Address().String())
}

func (s *Server) findBlockHash(w http.ResponseWriter, r *http.Request) {
	id, err := parseTransactionID(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("parse transaction id: %w", err))
		return
	}
	hash, err := s.chain.GetTransactionBlockHash(id)
	if err != nil {
		s.writeError(w, queryStatus(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, hash.String())
}

// findTransactionID answers whether the transaction is sealed on chain,
// echoing the id back when it is.
func (s *Server) findTransactionID(w http.ResponseWriter, r *http.Request) {
	id, err := parseTransactionID(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("parse transaction id: %w", err))
		return
	}
	has, err := s.chain.HasTransaction(id)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !has {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("%s: %w", id.ShortString(), ledger.ErrTransactionNotFound))
		return
	}
	s.writeJSON(w, http.StatusOK, id.String())
}

func (s *Server) findDeploymentID(w http.ResponseWriter, r *http.Request) {
	id := types.ProgramID(r.PathValue("id"))
	if err := id.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	txID, err := s.chain.GetDeployment(id)
	if err != nil {
		s.writeError(w, queryStatus(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, txID.String())
}

func (s *Server) developmentPrivateKey(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, hex.EncodeToString(s.signer.PrivateKey()))
}

func (s *Server) developmentViewKey(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.signer.PublicKey().String())
}

func (s *Server) developmentAddress(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.signer.Address().String())
}

// records serves the account records selected by filter for a posted view
// key.
func (s *Server) records(filter ledger.RecordFilter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RecordViewRequest
		if err := readJSON(w, r, maxAccountBody, &req); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		addr, err := viewKeyAddress(req.ViewKey)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		records, err := s.chain.Records(addr, filter)
		if err != nil {
			s.writeError(w, queryStatus(err), err)
			return
		}
		s.writeJSON(w, http.StatusOK, models.RecordViewResponse{Records: toRecords(records)})
	}
}

// faucetPour transfers value from the node account to the requested address
// and reports the balance the recipient will hold once the pool seals.
func (s *Server) faucetPour(w http.ResponseWriter, r *http.Request) {
	var req models.PourRequest
	if err := readJSON(w, r, maxAccountBody, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if !s.pours.Allow() {
		s.writeError(w, http.StatusTooManyRequests, errors.New("faucet rate limit exceeded"))
		return
	}
	addr, err := types.StringToAddress(req.Address)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("parse address: %w", err))
		return
	}
	tx, err := s.builder.Pour(addr, req.Amount)
	if err != nil {
		s.writeError(w, submitStatus(err), err)
		return
	}
	balance, err := s.chain.Balance(addr)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, models.PourResponse{
		Address:       addr.String(),
		Balance:       balance + s.pool.PendingBalance(addr),
		TransactionID: tx.ID().String(),
	})
}

func (s *Server) programDeploy(w http.ResponseWriter, r *http.Request) {
	var req models.DeployRequest
	if err := readJSON(w, r, maxProgramBody, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	tx, err := s.builder.Deploy(types.ProgramID(req.Program.ID), []byte(req.Program.Source), req.AdditionalFee)
	if err != nil {
		s.writeError(w, submitStatus(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, models.DeployResponse{TransactionID: tx.ID().String()})
}

func (s *Server) programExecute(w http.ResponseWriter, r *http.Request) {
	var req models.ExecuteRequest
	if err := readJSON(w, r, maxProgramBody, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	tx, err := s.builder.Execute(types.ProgramID(req.ProgramID), req.Function, req.Inputs, req.AdditionalFee)
	if err != nil {
		s.writeError(w, submitStatus(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, models.ExecuteResponse{TransactionID: tx.ID().String()})
}

func toRecord(record *types.Record) models.Record {
	out := models.Record{
		Owner: record.Owner.String(),
		Value: record.Value,
		Nonce: record.Nonce,
	}
	if len(record.Data) > 0 {
		out.Data = util.Encode(record.Data)
	}
	return out
}

func toRecords(records map[types.RecordID]*types.Record) map[string]models.Record {
	out := make(map[string]models.Record, len(records))
	for id, record := range records {
		out[id.String()] = toRecord(record)
	}
	return out
}

func toProgram(program *types.Program) models.Program {
	return models.Program{
		ID:        program.ID.String(),
		Source:    string(program.Source),
		Owner:     program.Owner.String(),
		Functions: program.Functions,
		Checksum:  program.Checksum.String(),
	}
}

func toTransaction(tx *types.Transaction) models.Transaction {
	out := models.Transaction{
		ID:        tx.ID().String(),
		Kind:      tx.Kind.String(),
		Principal: tx.Principal.String(),
		Fee:       tx.Fee,
		Nonce:     tx.Nonce,
	}
	for _, id := range tx.Consumed() {
		out.Consumed = append(out.Consumed, id.String())
	}
	for _, record := range tx.Produced() {
		out.Produced = append(out.Produced, toRecord(&record))
	}
	switch {
	case tx.Kind == types.DeployTransaction && tx.Deploy != nil:
		program := toProgram(&tx.Deploy.Program)
		out.Program = &program
	case tx.Kind == types.ExecuteTransaction && tx.Execute != nil:
		out.ProgramID = tx.Execute.ProgramID.String()
		out.Function = tx.Execute.Function
		out.Inputs = tx.Execute.Inputs
	}
	return out
}

func toTransactions(txs []*types.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransaction(tx))
	}
	return out
}

func toBlock(block *types.Block) models.Block {
	return models.Block{
		Height:           block.Height,
		Hash:             block.Hash().String(),
		PreviousHash:     block.PreviousHash.String(),
		TransactionsRoot: block.TransactionsRoot.String(),
		StateRoot:        block.StateRoot.String(),
		Timestamp:        block.Timestamp,
		Transactions:     toTransactions(block.Transactions),
	}
}
