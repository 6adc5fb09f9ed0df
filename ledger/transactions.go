package ledger

import (
	"errors"
	"fmt"

	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/program"
)

// CreateTransfer builds and signs a transfer of amount gates from the node
// account to the given address. One unspent record is consumed, preferring
// the smallest that covers amount and fee; the remainder comes back as a
// change record. Records in exclude are not considered, so callers can keep
// pooled transactions from spending the same record twice.
func (l *Ledger) CreateTransfer(to types.Address, amount, fee uint64, exclude map[types.RecordID]struct{}) (*types.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, record, err := l.selectSpend(amount+fee, false, exclude)
	if err != nil {
		return nil, err
	}
	outputs := []types.Record{{Owner: to, Value: amount, Nonce: l.drawNonce()}}
	if change := record.Value - amount - fee; change > 0 {
		outputs = append(outputs, types.Record{Owner: l.signer.Address(), Value: change, Nonce: l.drawNonce()})
	}
	return l.signTransaction(&types.Transaction{
		Kind: types.TransferTransaction,
		Transfer: &types.TransferBody{
			Inputs:  []types.RecordID{id},
			Outputs: outputs,
		},
		Fee: fee,
	})
}

// CreateDeploy builds and signs a deployment of the given program source
// under the given id. The callable functions are read off the source. The
// deployment fee is paid from the node account's largest record.
func (l *Ledger) CreateDeploy(id types.ProgramID, source []byte, fee uint64, exclude map[types.RecordID]struct{}) (*types.Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(source) == 0 {
		return nil, errors.New("program source is empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.loadProgram(id); err == nil {
		return nil, fmt.Errorf("%s: %w", id, ErrProgramExists)
	} else if !errors.Is(err, ErrProgramNotFound) {
		return nil, err
	}
	feeBody, err := l.feeSpend(fee, exclude)
	if err != nil {
		return nil, err
	}
	prog := types.Program{
		ID:        id,
		Owner:     l.signer.Address(),
		Functions: program.Functions(source),
		Source:    source,
	}
	prog.Checksum = prog.CalcChecksum()
	return l.signTransaction(&types.Transaction{
		Kind:   types.DeployTransaction,
		Deploy: &types.DeployBody{Program: prog, Fee: feeBody},
		Fee:    fee,
	})
}

// CreateExecute builds and signs an execution of a deployed program function.
// Inputs are carried verbatim. The execution fee is paid from the node
// account's largest record.
func (l *Ledger) CreateExecute(id types.ProgramID, function string, inputs []string, fee uint64, exclude map[types.RecordID]struct{}) (*types.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prog, err := l.loadProgram(id)
	if err != nil {
		return nil, err
	}
	if !prog.HasFunction(function) {
		return nil, fmt.Errorf("%s in %s: %w", function, id, ErrFunctionNotFound)
	}
	feeBody, err := l.feeSpend(fee, exclude)
	if err != nil {
		return nil, err
	}
	return l.signTransaction(&types.Transaction{
		Kind: types.ExecuteTransaction,
		Execute: &types.ExecuteBody{
			ProgramID: id,
			Function:  function,
			Inputs:    inputs,
			Fee:       feeBody,
		},
		Fee: fee,
	})
}

// feeSpend funds a fee from the node account's largest record. A zero fee
// needs no record and yields an empty body.
func (l *Ledger) feeSpend(fee uint64, exclude map[types.RecordID]struct{}) (types.TransferBody, error) {
	if fee == 0 {
		return types.TransferBody{}, nil
	}
	id, record, err := l.selectSpend(fee, true, exclude)
	if err != nil {
		return types.TransferBody{}, err
	}
	body := types.TransferBody{Inputs: []types.RecordID{id}}
	if change := record.Value - fee; change > 0 {
		body.Outputs = append(body.Outputs, types.Record{
			Owner: l.signer.Address(),
			Value: change,
			Nonce: l.drawNonce(),
		})
	}
	return body, nil
}

// selectSpend picks one unspent record of the node account with value at
// least need, skipping excluded records. The unspent set iterates in
// commitment order, so value ties resolve to the lowest commitment and
// selection is deterministic.
func (l *Ledger) selectSpend(need uint64, preferLargest bool, exclude map[types.RecordID]struct{}) (types.RecordID, *types.Record, error) {
	unspent, err := l.loadIDSet(unspentKey(l.signer.Address()))
	if err != nil {
		return types.RecordID{}, nil, err
	}
	var (
		bestID types.RecordID
		best   *types.Record
	)
	for _, id := range unspent {
		if _, ok := exclude[id]; ok {
			continue
		}
		record, err := l.loadRecord(id)
		if err != nil {
			return types.RecordID{}, nil, err
		}
		if record.Value < need {
			continue
		}
		if best == nil ||
			(preferLargest && record.Value > best.Value) ||
			(!preferLargest && record.Value < best.Value) {
			best, bestID = record, id
		}
	}
	if best == nil {
		return types.RecordID{}, nil, ErrNoSufficientRecord
	}
	return bestID, best, nil
}
