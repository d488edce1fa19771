package cluster

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	directionSent     = "sent"
	directionReceived = "received"

	collectiveBroadcast = "broadcast"
	collectiveScatter   = "scatter"
)

var (
	// messagesTotal counts point-to-point messages by direction.
	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spanmst_cluster_messages_total",
		Help: "Point-to-point messages moved through the cluster transport.",
	}, []string{"direction"})

	// bytesTotal counts payload bytes by direction.
	bytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spanmst_cluster_bytes_total",
		Help: "Payload bytes moved through the cluster transport.",
	}, []string{"direction"})

	// collectivesTotal counts collective operations by kind.
	collectivesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spanmst_cluster_collectives_total",
		Help: "Collective operations entered, by kind.",
	}, []string{"kind"})
)

// observeMessage accounts one point-to-point payload.
func observeMessage(direction string, bytes int) {
	messagesTotal.WithLabelValues(direction).Inc()
	bytesTotal.WithLabelValues(direction).Add(float64(bytes))
}

// observeCollective accounts one collective entry.
func observeCollective(kind string) {
	collectivesTotal.WithLabelValues(kind).Inc()
}
