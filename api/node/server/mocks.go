package server

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/ledger"
)

// Mockchain is a mock of chain interface.
type Mockchain struct {
	ctrl     *gomock.Controller
	recorder *MockchainMockRecorder
}

// MockchainMockRecorder is the mock recorder for Mockchain.
type MockchainMockRecorder struct {
	mock *Mockchain
}

// NewMockchain creates a new mock instance.
func NewMockchain(ctrl *gomock.Controller) *Mockchain {
	mock := &Mockchain{ctrl: ctrl}
	mock.recorder = &MockchainMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Mockchain) EXPECT() *MockchainMockRecorder {
	return m.recorder
}

// Balance mocks base method.
func (m *Mockchain) Balance(addr types.Address) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Balance", addr)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Balance indicates an expected call of Balance.
func (mr *MockchainMockRecorder) Balance(addr any) *MockchainBalanceCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Balance", reflect.TypeOf((*Mockchain)(nil).Balance), addr)
	return &MockchainBalanceCall{Call: call}
}

// MockchainBalanceCall wrap *gomock.Call.
type MockchainBalanceCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainBalanceCall) Return(arg0 uint64, arg1 error) *MockchainBalanceCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainBalanceCall) Do(f func(types.Address) (uint64, error)) *MockchainBalanceCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainBalanceCall) DoAndReturn(f func(types.Address) (uint64, error)) *MockchainBalanceCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Blocks mocks base method.
func (m *Mockchain) Blocks(start, end uint64) ([]*types.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Blocks", start, end)
	ret0, _ := ret[0].([]*types.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Blocks indicates an expected call of Blocks.
func (mr *MockchainMockRecorder) Blocks(start, end any) *MockchainBlocksCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Blocks", reflect.TypeOf((*Mockchain)(nil).Blocks), start, end)
	return &MockchainBlocksCall{Call: call}
}

// MockchainBlocksCall wrap *gomock.Call.
type MockchainBlocksCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainBlocksCall) Return(arg0 []*types.Block, arg1 error) *MockchainBlocksCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainBlocksCall) Do(f func(uint64, uint64) ([]*types.Block, error)) *MockchainBlocksCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainBlocksCall) DoAndReturn(f func(uint64, uint64) ([]*types.Block, error)) *MockchainBlocksCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// GetBlock mocks base method.
func (m *Mockchain) GetBlock(height uint64) (*types.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlock", height)
	ret0, _ := ret[0].(*types.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBlock indicates an expected call of GetBlock.
func (mr *MockchainMockRecorder) GetBlock(height any) *MockchainGetBlockCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlock", reflect.TypeOf((*Mockchain)(nil).GetBlock), height)
	return &MockchainGetBlockCall{Call: call}
}

// MockchainGetBlockCall wrap *gomock.Call.
type MockchainGetBlockCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainGetBlockCall) Return(arg0 *types.Block, arg1 error) *MockchainGetBlockCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainGetBlockCall) Do(f func(uint64) (*types.Block, error)) *MockchainGetBlockCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainGetBlockCall) DoAndReturn(f func(uint64) (*types.Block, error)) *MockchainGetBlockCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// GetBlockByHash mocks base method.
func (m *Mockchain) GetBlockByHash(hash types.Hash32) (*types.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlockByHash", hash)
	ret0, _ := ret[0].(*types.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBlockByHash indicates an expected call of GetBlockByHash.
func (mr *MockchainMockRecorder) GetBlockByHash(hash any) *MockchainGetBlockByHashCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlockByHash", reflect.TypeOf((*Mockchain)(nil).GetBlockByHash), hash)
	return &MockchainGetBlockByHashCall{Call: call}
}

// MockchainGetBlockByHashCall wrap *gomock.Call.
type MockchainGetBlockByHashCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainGetBlockByHashCall) Return(arg0 *types.Block, arg1 error) *MockchainGetBlockByHashCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainGetBlockByHashCall) Do(f func(types.Hash32) (*types.Block, error)) *MockchainGetBlockByHashCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainGetBlockByHashCall) DoAndReturn(f func(types.Hash32) (*types.Block, error)) *MockchainGetBlockByHashCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// GetBlockHeight mocks base method.
func (m *Mockchain) GetBlockHeight(hash types.Hash32) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlockHeight", hash)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBlockHeight indicates an expected call of GetBlockHeight.
func (mr *MockchainMockRecorder) GetBlockHeight(hash any) *MockchainGetBlockHeightCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlockHeight", reflect.TypeOf((*Mockchain)(nil).GetBlockHeight), hash)
	return &MockchainGetBlockHeightCall{Call: call}
}

// MockchainGetBlockHeightCall wrap *gomock.Call.
type MockchainGetBlockHeightCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainGetBlockHeightCall) Return(arg0 uint64, arg1 error) *MockchainGetBlockHeightCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainGetBlockHeightCall) Do(f func(types.Hash32) (uint64, error)) *MockchainGetBlockHeightCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainGetBlockHeightCall) DoAndReturn(f func(types.Hash32) (uint64, error)) *MockchainGetBlockHeightCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// GetDeployment mocks base method.
func (m *Mockchain) GetDeployment(id types.ProgramID) (types.TransactionID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDeployment", id)
	ret0, _ := ret[0].(types.TransactionID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDeployment indicates an expected call of GetDeployment.
func (mr *MockchainMockRecorder) GetDeployment(id any) *MockchainGetDeploymentCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDeployment", reflect.TypeOf((*Mockchain)(nil).GetDeployment), id)
	return &MockchainGetDeploymentCall{Call: call}
}

// MockchainGetDeploymentCall wrap *gomock.Call.
type MockchainGetDeploymentCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainGetDeploymentCall) Return(arg0 types.TransactionID, arg1 error) *MockchainGetDeploymentCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainGetDeploymentCall) Do(f func(types.ProgramID) (types.TransactionID, error)) *MockchainGetDeploymentCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainGetDeploymentCall) DoAndReturn(f func(types.ProgramID) (types.TransactionID, error)) *MockchainGetDeploymentCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// GetProgram mocks base method.
func (m *Mockchain) GetProgram(id types.ProgramID) (*types.Program, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProgram", id)
	ret0, _ := ret[0].(*types.Program)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProgram indicates an expected call of GetProgram.
func (mr *MockchainMockRecorder) GetProgram(id any) *MockchainGetProgramCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProgram", reflect.TypeOf((*Mockchain)(nil).GetProgram), id)
	return &MockchainGetProgramCall{Call: call}
}

// MockchainGetProgramCall wrap *gomock.Call.
type MockchainGetProgramCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainGetProgramCall) Return(arg0 *types.Program, arg1 error) *MockchainGetProgramCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainGetProgramCall) Do(f func(types.ProgramID) (*types.Program, error)) *MockchainGetProgramCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainGetProgramCall) DoAndReturn(f func(types.ProgramID) (*types.Program, error)) *MockchainGetProgramCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// GetTransaction mocks base method.
func (m *Mockchain) GetTransaction(id types.TransactionID) (*types.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTransaction", id)
	ret0, _ := ret[0].(*types.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTransaction indicates an expected call of GetTransaction.
func (mr *MockchainMockRecorder) GetTransaction(id any) *MockchainGetTransactionCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTransaction", reflect.TypeOf((*Mockchain)(nil).GetTransaction), id)
	return &MockchainGetTransactionCall{Call: call}
}

// MockchainGetTransactionCall wrap *gomock.Call.
type MockchainGetTransactionCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainGetTransactionCall) Return(arg0 *types.Transaction, arg1 error) *MockchainGetTransactionCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainGetTransactionCall) Do(f func(types.TransactionID) (*types.Transaction, error)) *MockchainGetTransactionCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainGetTransactionCall) DoAndReturn(f func(types.TransactionID) (*types.Transaction, error)) *MockchainGetTransactionCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// GetTransactionBlockHash mocks base method.
func (m *Mockchain) GetTransactionBlockHash(id types.TransactionID) (types.Hash32, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTransactionBlockHash", id)
	ret0, _ := ret[0].(types.Hash32)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTransactionBlockHash indicates an expected call of GetTransactionBlockHash.
func (mr *MockchainMockRecorder) GetTransactionBlockHash(id any) *MockchainGetTransactionBlockHashCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTransactionBlockHash", reflect.TypeOf((*Mockchain)(nil).GetTransactionBlockHash), id)
	return &MockchainGetTransactionBlockHashCall{Call: call}
}

// MockchainGetTransactionBlockHashCall wrap *gomock.Call.
type MockchainGetTransactionBlockHashCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainGetTransactionBlockHashCall) Return(arg0 types.Hash32, arg1 error) *MockchainGetTransactionBlockHashCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainGetTransactionBlockHashCall) Do(f func(types.TransactionID) (types.Hash32, error)) *MockchainGetTransactionBlockHashCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainGetTransactionBlockHashCall) DoAndReturn(f func(types.TransactionID) (types.Hash32, error)) *MockchainGetTransactionBlockHashCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// HasTransaction mocks base method.
func (m *Mockchain) HasTransaction(id types.TransactionID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasTransaction", id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasTransaction indicates an expected call of HasTransaction.
func (mr *MockchainMockRecorder) HasTransaction(id any) *MockchainHasTransactionCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasTransaction", reflect.TypeOf((*Mockchain)(nil).HasTransaction), id)
	return &MockchainHasTransactionCall{Call: call}
}

// MockchainHasTransactionCall wrap *gomock.Call.
type MockchainHasTransactionCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainHasTransactionCall) Return(arg0 bool, arg1 error) *MockchainHasTransactionCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainHasTransactionCall) Do(f func(types.TransactionID) (bool, error)) *MockchainHasTransactionCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainHasTransactionCall) DoAndReturn(f func(types.TransactionID) (bool, error)) *MockchainHasTransactionCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// LatestBlock mocks base method.
func (m *Mockchain) LatestBlock() *types.Block {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestBlock")
	ret0, _ := ret[0].(*types.Block)
	return ret0
}

// LatestBlock indicates an expected call of LatestBlock.
func (mr *MockchainMockRecorder) LatestBlock() *MockchainLatestBlockCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestBlock", reflect.TypeOf((*Mockchain)(nil).LatestBlock))
	return &MockchainLatestBlockCall{Call: call}
}

// MockchainLatestBlockCall wrap *gomock.Call.
type MockchainLatestBlockCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainLatestBlockCall) Return(arg0 *types.Block) *MockchainLatestBlockCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainLatestBlockCall) Do(f func() *types.Block) *MockchainLatestBlockCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainLatestBlockCall) DoAndReturn(f func() *types.Block) *MockchainLatestBlockCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// LatestHash mocks base method.
func (m *Mockchain) LatestHash() types.Hash32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestHash")
	ret0, _ := ret[0].(types.Hash32)
	return ret0
}

// LatestHash indicates an expected call of LatestHash.
func (mr *MockchainMockRecorder) LatestHash() *MockchainLatestHashCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestHash", reflect.TypeOf((*Mockchain)(nil).LatestHash))
	return &MockchainLatestHashCall{Call: call}
}

// MockchainLatestHashCall wrap *gomock.Call.
type MockchainLatestHashCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainLatestHashCall) Return(arg0 types.Hash32) *MockchainLatestHashCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainLatestHashCall) Do(f func() types.Hash32) *MockchainLatestHashCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainLatestHashCall) DoAndReturn(f func() types.Hash32) *MockchainLatestHashCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// LatestHeight mocks base method.
func (m *Mockchain) LatestHeight() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestHeight")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// LatestHeight indicates an expected call of LatestHeight.
func (mr *MockchainMockRecorder) LatestHeight() *MockchainLatestHeightCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestHeight", reflect.TypeOf((*Mockchain)(nil).LatestHeight))
	return &MockchainLatestHeightCall{Call: call}
}

// MockchainLatestHeightCall wrap *gomock.Call.
type MockchainLatestHeightCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainLatestHeightCall) Return(arg0 uint64) *MockchainLatestHeightCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainLatestHeightCall) Do(f func() uint64) *MockchainLatestHeightCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainLatestHeightCall) DoAndReturn(f func() uint64) *MockchainLatestHeightCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Records mocks base method.
func (m *Mockchain) Records(addr types.Address, filter ledger.RecordFilter) (map[types.RecordID]*types.Record, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Records", addr, filter)
	ret0, _ := ret[0].(map[types.RecordID]*types.Record)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Records indicates an expected call of Records.
func (mr *MockchainMockRecorder) Records(addr, filter any) *MockchainRecordsCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Records", reflect.TypeOf((*Mockchain)(nil).Records), addr, filter)
	return &MockchainRecordsCall{Call: call}
}

// MockchainRecordsCall wrap *gomock.Call.
type MockchainRecordsCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainRecordsCall) Return(arg0 map[types.RecordID]*types.Record, arg1 error) *MockchainRecordsCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainRecordsCall) Do(f func(types.Address, ledger.RecordFilter) (map[types.RecordID]*types.Record, error)) *MockchainRecordsCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainRecordsCall) DoAndReturn(f func(types.Address, ledger.RecordFilter) (map[types.RecordID]*types.Record, error)) *MockchainRecordsCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// StateRoot mocks base method.
func (m *Mockchain) StateRoot() types.Hash32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StateRoot")
	ret0, _ := ret[0].(types.Hash32)
	return ret0
}

// StateRoot indicates an expected call of StateRoot.
func (mr *MockchainMockRecorder) StateRoot() *MockchainStateRootCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StateRoot", reflect.TypeOf((*Mockchain)(nil).StateRoot))
	return &MockchainStateRootCall{Call: call}
}

// MockchainStateRootCall wrap *gomock.Call.
type MockchainStateRootCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainStateRootCall) Return(arg0 types.Hash32) *MockchainStateRootCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainStateRootCall) Do(f func() types.Hash32) *MockchainStateRootCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainStateRootCall) DoAndReturn(f func() types.Hash32) *MockchainStateRootCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Mockpool is a mock of pool interface.
type Mockpool struct {
	ctrl     *gomock.Controller
	recorder *MockpoolMockRecorder
}

// MockpoolMockRecorder is the mock recorder for Mockpool.
type MockpoolMockRecorder struct {
	mock *Mockpool
}

// NewMockpool creates a new mock instance.
func NewMockpool(ctrl *gomock.Controller) *Mockpool {
	mock := &Mockpool{ctrl: ctrl}
	mock.recorder = &MockpoolMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Mockpool) EXPECT() *MockpoolMockRecorder {
	return m.recorder
}

// PendingBalance mocks base method.
func (m *Mockpool) PendingBalance(addr types.Address) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PendingBalance", addr)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// PendingBalance indicates an expected call of PendingBalance.
func (mr *MockpoolMockRecorder) PendingBalance(addr any) *MockpoolPendingBalanceCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PendingBalance", reflect.TypeOf((*Mockpool)(nil).PendingBalance), addr)
	return &MockpoolPendingBalanceCall{Call: call}
}

// MockpoolPendingBalanceCall wrap *gomock.Call.
type MockpoolPendingBalanceCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockpoolPendingBalanceCall) Return(arg0 uint64) *MockpoolPendingBalanceCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockpoolPendingBalanceCall) Do(f func(types.Address) uint64) *MockpoolPendingBalanceCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockpoolPendingBalanceCall) DoAndReturn(f func(types.Address) uint64) *MockpoolPendingBalanceCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Transactions mocks base method.
func (m *Mockpool) Transactions() []*types.Transaction {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transactions")
	ret0, _ := ret[0].([]*types.Transaction)
	return ret0
}

// Transactions indicates an expected call of Transactions.
func (mr *MockpoolMockRecorder) Transactions() *MockpoolTransactionsCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transactions", reflect.TypeOf((*Mockpool)(nil).Transactions))
	return &MockpoolTransactionsCall{Call: call}
}

// MockpoolTransactionsCall wrap *gomock.Call.
type MockpoolTransactionsCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockpoolTransactionsCall) Return(arg0 []*types.Transaction) *MockpoolTransactionsCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockpoolTransactionsCall) Do(f func() []*types.Transaction) *MockpoolTransactionsCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockpoolTransactionsCall) DoAndReturn(f func() []*types.Transaction) *MockpoolTransactionsCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Mockbuilder is a mock of builder interface.
type Mockbuilder struct {
	ctrl     *gomock.Controller
	recorder *MockbuilderMockRecorder
}

// MockbuilderMockRecorder is the mock recorder for Mockbuilder.
type MockbuilderMockRecorder struct {
	mock *Mockbuilder
}

// NewMockbuilder creates a new mock instance.
func NewMockbuilder(ctrl *gomock.Controller) *Mockbuilder {
	mock := &Mockbuilder{ctrl: ctrl}
	mock.recorder = &MockbuilderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Mockbuilder) EXPECT() *MockbuilderMockRecorder {
	return m.recorder
}

// Deploy mocks base method.
func (m *Mockbuilder) Deploy(id types.ProgramID, source []byte, fee uint64) (*types.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Deploy", id, source, fee)
	ret0, _ := ret[0].(*types.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Deploy indicates an expected call of Deploy.
func (mr *MockbuilderMockRecorder) Deploy(id, source, fee any) *MockbuilderDeployCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deploy", reflect.TypeOf((*Mockbuilder)(nil).Deploy), id, source, fee)
	return &MockbuilderDeployCall{Call: call}
}

// MockbuilderDeployCall wrap *gomock.Call.
type MockbuilderDeployCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockbuilderDeployCall) Return(arg0 *types.Transaction, arg1 error) *MockbuilderDeployCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockbuilderDeployCall) Do(f func(types.ProgramID, []byte, uint64) (*types.Transaction, error)) *MockbuilderDeployCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockbuilderDeployCall) DoAndReturn(f func(types.ProgramID, []byte, uint64) (*types.Transaction, error)) *MockbuilderDeployCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Execute mocks base method.
func (m *Mockbuilder) Execute(id types.ProgramID, function string, inputs []string, fee uint64) (*types.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Execute", id, function, inputs, fee)
	ret0, _ := ret[0].(*types.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Execute indicates an expected call of Execute.
func (mr *MockbuilderMockRecorder) Execute(id, function, inputs, fee any) *MockbuilderExecuteCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Execute", reflect.TypeOf((*Mockbuilder)(nil).Execute), id, function, inputs, fee)
	return &MockbuilderExecuteCall{Call: call}
}

// MockbuilderExecuteCall wrap *gomock.Call.
type MockbuilderExecuteCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockbuilderExecuteCall) Return(arg0 *types.Transaction, arg1 error) *MockbuilderExecuteCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockbuilderExecuteCall) Do(f func(types.ProgramID, string, []string, uint64) (*types.Transaction, error)) *MockbuilderExecuteCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockbuilderExecuteCall) DoAndReturn(f func(types.ProgramID, string, []string, uint64) (*types.Transaction, error)) *MockbuilderExecuteCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Pour mocks base method.
func (m *Mockbuilder) Pour(to types.Address, amount uint64) (*types.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Pour", to, amount)
	ret0, _ := ret[0].(*types.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Pour indicates an expected call of Pour.
func (mr *MockbuilderMockRecorder) Pour(to, amount any) *MockbuilderPourCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Pour", reflect.TypeOf((*Mockbuilder)(nil).Pour), to, amount)
	return &MockbuilderPourCall{Call: call}
}

// MockbuilderPourCall wrap *gomock.Call.
type MockbuilderPourCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockbuilderPourCall) Return(arg0 *types.Transaction, arg1 error) *MockbuilderPourCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockbuilderPourCall) Do(f func(types.Address, uint64) (*types.Transaction, error)) *MockbuilderPourCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockbuilderPourCall) DoAndReturn(f func(types.Address, uint64) (*types.Transaction, error)) *MockbuilderPourCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}
