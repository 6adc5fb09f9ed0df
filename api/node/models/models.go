// Package models defines the JSON messages exchanged with the node REST API.
package models

// PourRequest asks the node faucet to transfer value to an account.
type PourRequest struct {
	// Address of the recipient account.
	Address string `json:"address"`
	// Amount to transfer, in gates.
	Amount uint64 `json:"amount"`
}

// PourResponse reports a faucet transfer admitted to the memory pool.
type PourResponse struct {
	Address string `json:"address"`
	// Balance the recipient holds once the pooled transfer is sealed.
	Balance       uint64 `json:"balance"`
	TransactionID string `json:"transaction_id"`
}

// Program is the wire form of a program: the deployable bundle in requests,
// extended with the chain-derived fields in responses.
type Program struct {
	ID     string `json:"id"`
	Source string `json:"source"`

	// Set on programs read back from the chain.
	Owner     string   `json:"owner,omitempty"`
	Functions []string `json:"functions,omitempty"`
	Checksum  string   `json:"checksum,omitempty"`
}

// DeployRequest asks the node to deploy a program.
type DeployRequest struct {
	Program Program `json:"program"`
	// AdditionalFee charged against the node account, in gates.
	AdditionalFee uint64 `json:"additional_fee"`
}

// DeployResponse reports a deployment admitted to the memory pool.
type DeployResponse struct {
	TransactionID string `json:"transaction_id"`
}

// ExecuteRequest asks the node to record a function call against a deployed
// program. Inputs are forwarded verbatim.
type ExecuteRequest struct {
	ProgramID     string   `json:"program_id"`
	Function      string   `json:"function"`
	Inputs        []string `json:"inputs"`
	AdditionalFee uint64   `json:"additional_fee"`
}

// ExecuteResponse reports an execution admitted to the memory pool.
type ExecuteResponse struct {
	TransactionID string `json:"transaction_id"`
}

// RecordViewRequest asks for the records of the account identified by a view
// key, the hex encoded account public key.
type RecordViewRequest struct {
	ViewKey string `json:"view_key"`
}

// RecordViewResponse maps record commitments to records.
type RecordViewResponse struct {
	Records map[string]Record `json:"records"`
}

// Record is the wire form of a spendable record.
type Record struct {
	Owner string `json:"owner"`
	Value uint64 `json:"value"`
	// Data is the hex encoded record payload.
	Data  string `json:"data,omitempty"`
	Nonce uint64 `json:"nonce"`
}

// Transaction is the wire form of a chain transaction. Consumed and Produced
// describe the record flow; the remaining body fields are set according to
// Kind.
type Transaction struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Principal string `json:"principal"`
	Fee       uint64 `json:"fee"`
	Nonce     uint64 `json:"nonce"`

	Consumed []string `json:"consumed,omitempty"`
	Produced []Record `json:"produced,omitempty"`

	// Program deployed by deploy transactions.
	Program *Program `json:"program,omitempty"`

	// Call recorded by execute transactions.
	ProgramID string   `json:"program_id,omitempty"`
	Function  string   `json:"function,omitempty"`
	Inputs    []string `json:"inputs,omitempty"`
}

// Block is the wire form of a chain block.
type Block struct {
	Height           uint64        `json:"height"`
	Hash             string        `json:"hash"`
	PreviousHash     string        `json:"previous_hash"`
	TransactionsRoot string        `json:"transactions_root"`
	StateRoot        string        `json:"state_root"`
	Timestamp        int64         `json:"timestamp"`
	Transactions     []Transaction `json:"transactions"`
}

// Error is the body of a failed request.
type Error struct {
	Error string `json:"error"`
}
