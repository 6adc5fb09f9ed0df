package mempool

import (
	"github.com/slingshotlabs/go-slingshot/metrics"
)

const namespace = "mempool"

var (
	pooledTxs = metrics.NewGauge(
		"txs",
		namespace,
		"number of transactions waiting in the pool",
		[]string{},
	).WithLabelValues()
	refusedTxs = metrics.NewCounter(
		"refused_txs",
		namespace,
		"number of transactions refused at admission",
		[]string{"reason"},
	)
	refusedDuplicate = refusedTxs.WithLabelValues("duplicate")
	refusedConflict  = refusedTxs.WithLabelValues("record_conflict")
)
