package cluster

import "errors"

// Sentinel errors for cluster operations.
var (
	// ErrRankRange indicates a peer rank outside [0, Size).
	ErrRankRange = errors.New("cluster: rank out of range")
	// ErrSelfMessage indicates a send or receive addressed to the
	// calling rank itself.
	ErrSelfMessage = errors.New("cluster: rank cannot message itself")
	// ErrClosed indicates the transport was closed while an operation
	// was outstanding.
	ErrClosed = errors.New("cluster: transport closed")
	// ErrPayloadFraming indicates an int32 payload whose byte length is
	// not a multiple of four.
	ErrPayloadFraming = errors.New("cluster: payload is not a whole number of int32 values")
	// ErrScatterLength indicates a scatter buffer shorter than
	// chunk·Size values on the root.
	ErrScatterLength = errors.New("cluster: scatter buffer shorter than chunk times size")
	// ErrTopologySize indicates a topology file with no rank addresses.
	ErrTopologySize = errors.New("cluster: topology must list at least one rank address")
	// ErrTopologyAddr indicates an empty address inside a topology file.
	ErrTopologyAddr = errors.New("cluster: topology contains an empty rank address")
	// ErrClusterSize indicates a requested rank count below one.
	ErrClusterSize = errors.New("cluster: size must be at least 1")
)

// Transport moves opaque byte payloads between ranks. Implementations
// must deliver messages between any ordered rank pair in send order;
// messages from different senders are independent streams demultiplexed
// by Recv's from argument.
type Transport interface {
	// Rank returns this member's rank in [0, Size).
	Rank() int

	// Size returns the number of ranks in the environment.
	Size() int

	// Send delivers payload to the given rank. It may block when the
	// peer is slow to drain its inbox.
	Send(to int, payload []byte) error

	// Recv blocks until a payload from the given rank arrives.
	Recv(from int) ([]byte, error)

	// Close releases the member's resources. With ChannelTransport a
	// peer's pending Recv from the closed member fails with ErrClosed;
	// with TCPTransport only this member's own pending Recvs fail with
	// ErrClosed, and a peer waiting on it keeps blocking.
	Close() error
}
