package ledger

import (
	"errors"
	"fmt"
	"slices"

	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/program"
	"github.com/slingshotlabs/go-slingshot/signing"
)

// blockContext tracks the effects of the transactions already accepted into a
// block, so later transactions in the same block cannot conflict with them.
type blockContext struct {
	ids      map[types.TransactionID]struct{}
	consumed map[types.RecordID]struct{}
	produced map[types.RecordID]struct{}
	deployed map[types.ProgramID]*types.Program
}

func newBlockContext() *blockContext {
	return &blockContext{
		ids:      map[types.TransactionID]struct{}{},
		consumed: map[types.RecordID]struct{}{},
		produced: map[types.RecordID]struct{}{},
		deployed: map[types.ProgramID]*types.Program{},
	}
}

// validateBlock checks the block header against the head and every
// transaction against chain state. The caller holds the ledger lock.
func (l *Ledger) validateBlock(block *types.Block) error {
	if len(block.Transactions) == 0 {
		return errors.New("block carries no transactions")
	}
	head := l.head
	if block.Height != head.Height+1 {
		return fmt.Errorf("height %d does not extend head %d", block.Height, head.Height)
	}
	if block.PreviousHash != head.Hash() {
		return fmt.Errorf("previous hash %s is not the head %s",
			block.PreviousHash.ShortString(), head.ShortString())
	}
	if block.Timestamp < head.Timestamp {
		return fmt.Errorf("timestamp %d before head timestamp %d", block.Timestamp, head.Timestamp)
	}
	root, err := transactionsRoot(block.Transactions)
	if err != nil {
		return err
	}
	if block.TransactionsRoot != root {
		return fmt.Errorf("transactions root %s, computed %s",
			block.TransactionsRoot.ShortString(), root.ShortString())
	}
	if state := evolveStateRoot(head.StateRoot, block.Transactions); block.StateRoot != state {
		return fmt.Errorf("state root %s, computed %s",
			block.StateRoot.ShortString(), state.ShortString())
	}
	ctx := newBlockContext()
	for _, tx := range block.Transactions {
		if err := l.validateTransaction(tx, ctx); err != nil {
			return fmt.Errorf("transaction %s: %w", tx.ID().ShortString(), err)
		}
	}
	return nil
}

// validateTransaction checks a single transaction against chain state and the
// transactions already accepted into the same block. On success the block
// context is extended with the transaction's effects.
func (l *Ledger) validateTransaction(tx *types.Transaction, ctx *blockContext) error {
	id := tx.ID()
	if _, ok := ctx.ids[id]; ok {
		return errors.New("duplicate transaction in block")
	}
	onChain, err := l.HasTransaction(id)
	if err != nil {
		return err
	}
	if onChain {
		return errors.New("transaction already on chain")
	}
	spend := tx.Spend()
	if spend == nil {
		return errors.New("transaction body missing")
	}
	signed, err := tx.SignedBytes()
	if err != nil {
		return err
	}
	if !l.verifier.Verify(signing.TRANSACTION, tx.PublicKey, signed, tx.Signature) {
		return errors.New("invalid signature")
	}
	if types.GenerateAddress(tx.PublicKey) != tx.Principal {
		return errors.New("principal does not match public key")
	}
	if err := l.validateSpend(tx, spend, ctx); err != nil {
		return err
	}

	switch tx.Kind {
	case types.TransferTransaction:
		if len(spend.Inputs) == 0 {
			return errors.New("transfer consumes no records")
		}
		if len(spend.Outputs) == 0 {
			return errors.New("transfer produces no records")
		}
	case types.DeployTransaction:
		if err := l.validateDeploy(&tx.Deploy.Program, tx.Principal, ctx); err != nil {
			return err
		}
	case types.ExecuteTransaction:
		if err := l.validateExecute(tx.Execute, ctx); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown transaction kind %d", tx.Kind)
	}

	ctx.ids[id] = struct{}{}
	for _, rid := range spend.Inputs {
		ctx.consumed[rid] = struct{}{}
	}
	for i := range spend.Outputs {
		ctx.produced[spend.Outputs[i].Commitment()] = struct{}{}
	}
	if tx.Kind == types.DeployTransaction {
		ctx.deployed[tx.Deploy.Program.ID] = &tx.Deploy.Program
	}
	return nil
}

// validateSpend checks the record flow of a transaction: inputs exist, are
// unspent and owned by the principal, outputs are new, and the values balance
// out with the fee.
func (l *Ledger) validateSpend(tx *types.Transaction, spend *types.TransferBody, ctx *blockContext) error {
	unspent, err := l.loadIDSet(unspentKey(tx.Principal))
	if err != nil {
		return err
	}
	var in uint64
	for _, id := range spend.Inputs {
		if _, ok := ctx.consumed[id]; ok {
			return fmt.Errorf("record %s consumed twice in block", id.ShortString())
		}
		record, err := l.loadRecord(id)
		if err != nil {
			return err
		}
		if record.Owner != tx.Principal {
			return fmt.Errorf("record %s not owned by principal", id.ShortString())
		}
		if !containsID(unspent, id) {
			return fmt.Errorf("record %s already spent", id.ShortString())
		}
		in += record.Value
	}
	var out uint64
	for i := range spend.Outputs {
		id := spend.Outputs[i].Commitment()
		if _, ok := ctx.produced[id]; ok {
			return fmt.Errorf("record %s produced twice in block", id.ShortString())
		}
		exists, err := l.hasRecord(id)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("record %s already exists", id.ShortString())
		}
		out += spend.Outputs[i].Value
	}
	if in != out+tx.Fee {
		return fmt.Errorf("inputs %d do not cover outputs %d and fee %d", in, out, tx.Fee)
	}
	return nil
}

// validateDeploy checks that the deployed program is well formed and its id
// is free.
func (l *Ledger) validateDeploy(prog *types.Program, principal types.Address, ctx *blockContext) error {
	if err := prog.ID.Validate(); err != nil {
		return err
	}
	if prog.Owner != principal {
		return errors.New("program owner does not match principal")
	}
	if len(prog.Source) == 0 {
		return errors.New("program source is empty")
	}
	if prog.Checksum != prog.CalcChecksum() {
		return errors.New("program checksum does not match source")
	}
	if !slices.Equal(prog.Functions, program.Functions(prog.Source)) {
		return errors.New("function inventory does not match source")
	}
	if _, ok := ctx.deployed[prog.ID]; ok {
		return fmt.Errorf("program %s deployed twice in block", prog.ID)
	}
	if _, err := l.loadProgram(prog.ID); err == nil {
		return fmt.Errorf("%s: %w", prog.ID, ErrProgramExists)
	} else if !errors.Is(err, ErrProgramNotFound) {
		return err
	}
	return nil
}

// validateExecute checks that the executed program is deployed, either on
// chain or earlier in the same block, and declares the requested function.
func (l *Ledger) validateExecute(body *types.ExecuteBody, ctx *blockContext) error {
	prog, ok := ctx.deployed[body.ProgramID]
	if !ok {
		var err error
		prog, err = l.loadProgram(body.ProgramID)
		if err != nil {
			return err
		}
	}
	if !prog.HasFunction(body.Function) {
		return fmt.Errorf("%s in %s: %w", body.Function, body.ProgramID, ErrFunctionNotFound)
	}
	return nil
}

func containsID(ids []types.RecordID, id types.RecordID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
