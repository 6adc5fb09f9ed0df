package producer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/slingshotlabs/go-slingshot/metrics"
)

const namespace = "producer"

var (
	sealedBlocks = metrics.NewCounter(
		"sealed_blocks",
		namespace,
		"number of blocks sealed onto the chain",
		[]string{},
	).WithLabelValues()
	sealedTxs = metrics.NewCounter(
		"sealed_txs",
		namespace,
		"number of transactions sealed into blocks",
		[]string{},
	).WithLabelValues()
	evictedTxs = metrics.NewCounter(
		"evicted_txs",
		namespace,
		"number of transactions evicted after the chain refused them",
		[]string{},
	).WithLabelValues()

	sealLatency = metrics.NewHistogramWithBuckets(
		"seal_seconds",
		namespace,
		"duration to seal a round in seconds",
		[]string{},
		prometheus.ExponentialBuckets(0.001, 2, 12),
	).WithLabelValues()
)
