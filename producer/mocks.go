package producer

import (
	"reflect"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/slingshotlabs/go-slingshot/common/types"
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

// AddBlock mocks base method.
func (m *Mockchain) AddBlock(block *types.Block) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddBlock", block)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddBlock indicates an expected call of AddBlock.
func (mr *MockchainMockRecorder) AddBlock(block any) *MockchainAddBlockCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddBlock", reflect.TypeOf((*Mockchain)(nil).AddBlock), block)
	return &MockchainAddBlockCall{Call: call}
}

// MockchainAddBlockCall wrap *gomock.Call.
type MockchainAddBlockCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainAddBlockCall) Return(arg0 error) *MockchainAddBlockCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainAddBlockCall) Do(f func(*types.Block) error) *MockchainAddBlockCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainAddBlockCall) DoAndReturn(f func(*types.Block) error) *MockchainAddBlockCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// ProposeBlock mocks base method.
func (m *Mockchain) ProposeBlock(txs []*types.Transaction, at time.Time) (*types.Block, []*types.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProposeBlock", txs, at)
	ret0, _ := ret[0].(*types.Block)
	ret1, _ := ret[1].([]*types.Transaction)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ProposeBlock indicates an expected call of ProposeBlock.
func (mr *MockchainMockRecorder) ProposeBlock(txs, at any) *MockchainProposeBlockCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProposeBlock", reflect.TypeOf((*Mockchain)(nil).ProposeBlock), txs, at)
	return &MockchainProposeBlockCall{Call: call}
}

// MockchainProposeBlockCall wrap *gomock.Call.
type MockchainProposeBlockCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockchainProposeBlockCall) Return(arg0 *types.Block, arg1 []*types.Transaction, arg2 error) *MockchainProposeBlockCall {
	c.Call = c.Call.Return(arg0, arg1, arg2)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockchainProposeBlockCall) Do(f func([]*types.Transaction, time.Time) (*types.Block, []*types.Transaction, error)) *MockchainProposeBlockCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockchainProposeBlockCall) DoAndReturn(f func([]*types.Transaction, time.Time) (*types.Block, []*types.Transaction, error)) *MockchainProposeBlockCall {
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

// Invalidate mocks base method.
func (m *Mockpool) Invalidate(id types.TransactionID) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Invalidate", id)
}

// Invalidate indicates an expected call of Invalidate.
func (mr *MockpoolMockRecorder) Invalidate(id any) *MockpoolInvalidateCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Invalidate", reflect.TypeOf((*Mockpool)(nil).Invalidate), id)
	return &MockpoolInvalidateCall{Call: call}
}

// MockpoolInvalidateCall wrap *gomock.Call.
type MockpoolInvalidateCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockpoolInvalidateCall) Return() *MockpoolInvalidateCall {
	c.Call = c.Call.Return()
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockpoolInvalidateCall) Do(f func(types.TransactionID)) *MockpoolInvalidateCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockpoolInvalidateCall) DoAndReturn(f func(types.TransactionID)) *MockpoolInvalidateCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Len mocks base method.
func (m *Mockpool) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *MockpoolMockRecorder) Len() *MockpoolLenCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*Mockpool)(nil).Len))
	return &MockpoolLenCall{Call: call}
}

// MockpoolLenCall wrap *gomock.Call.
type MockpoolLenCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockpoolLenCall) Return(arg0 int) *MockpoolLenCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockpoolLenCall) Do(f func() int) *MockpoolLenCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockpoolLenCall) DoAndReturn(f func() int) *MockpoolLenCall {
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
