// Package cluster models the bulk-synchronous message-passing
// environment the parallel kernels run on: P ranks executing the same
// program, each with private memory, exchanging data through matched
// sends and receives and through rooted collectives.
//
// What:
//
//   - Transport is the narrow wire contract: Rank, Size, Send, Recv,
//     Close. Messages between a rank pair are delivered in send order.
//   - ChannelTransport connects in-process ranks (goroutines) through a
//     mesh of buffered channels; Run spawns one goroutine per rank and
//     joins their errors. This is the default execution mode and the
//     harness every multi-rank test uses.
//   - TCPTransport connects one OS process per rank using
//     length-delimited gob frames over TCP; rank addresses come from a
//     YAML topology file.
//   - Cluster wraps a Transport with the collectives the kernels need:
//     Broadcast, Scatter, and typed int32 send/receive. The
//     recursive-doubling reductions themselves live with the kernels
//     that own their operators.
//
// Why a handle instead of process-global state:
//
//   - Rank and size travel with the Cluster value, so a test can run
//     several clusters of different sizes in one process.
//
// Suspension points: Recv and every collective block until the matching
// peer acts. The transport is assumed reliable and synchronous; when a
// rank fails its error surfaces through Run (or the process exit code
// in TCP mode) and surviving ranks may block on the next collective,
// which is acceptable under that assumption.
//
// Prometheus counters (messages, bytes, collectives by kind) are
// registered at package init and account for all traffic.
package cluster
