package cluster

import (
	"encoding/gob"
	"fmt"
	"net"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// inboxDepth buffers frames per sender so a fast peer can run
	// ahead of this rank by a bounded amount.
	inboxDepth = 64

	// dialAttempts and dialBackoff cover the startup window in which
	// peer listeners come up in arbitrary order.
	dialAttempts = 50
	dialBackoff  = 100 * time.Millisecond
)

// frame is the gob-encoded unit on the wire: the sender's rank plus the
// opaque payload.
type frame struct {
	From    int
	Payload []byte
}

// TCPTransport connects one OS process per rank. Each rank listens on
// its topology address, dials peers lazily on first send, and streams
// gob frames; an accept loop demultiplexes incoming frames into
// per-sender inbox queues so Recv(from) observes exactly that peer's
// send order.
type TCPTransport struct {
	rank  int
	topo  *Topology
	inbox []chan []byte
	done  chan struct{}
	log   *log.Entry

	listener net.Listener

	mu    sync.Mutex
	peers map[int]*gob.Encoder
	conns []net.Conn

	closeOnce sync.Once
}

// NewTCPTransport binds this rank's listener and starts accepting peer
// connections. Peers are dialed lazily on first Send, with retries to
// ride out ranks that start a little later.
func NewTCPTransport(rank int, topo *Topology) (*TCPTransport, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	if rank < 0 || rank >= topo.Size() {
		return nil, ErrRankRange
	}

	addr, err := topo.Addr(rank)
	if err != nil {
		return nil, err
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("cluster: listen on %s: %w", addr, err)
	}

	inbox := make([]chan []byte, topo.Size())
	for i := range inbox {
		inbox[i] = make(chan []byte, inboxDepth)
	}

	t := &TCPTransport{
		rank:     rank,
		topo:     topo,
		inbox:    inbox,
		done:     make(chan struct{}),
		log:      log.WithFields(log.Fields{"rank": rank, "addr": addr}),
		listener: listener,
		peers:    make(map[int]*gob.Encoder),
	}
	go t.acceptLoop()

	return t, nil
}

// Rank returns this member's rank.
func (t *TCPTransport) Rank() int { return t.rank }

// Size returns the topology's rank count.
func (t *TCPTransport) Size() int { return t.topo.Size() }

// Send encodes one frame to the peer, dialing it first if no
// connection exists yet.
func (t *TCPTransport) Send(to int, payload []byte) error {
	if to < 0 || to >= t.Size() {
		return ErrRankRange
	}
	if to == t.rank {
		return ErrSelfMessage
	}
	select {
	case <-t.done:
		return ErrClosed
	default:
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	enc, err := t.encoderForLocked(to)
	if err != nil {
		return err
	}
	if err = enc.Encode(frame{From: t.rank, Payload: payload}); err != nil {
		return fmt.Errorf("cluster: send to rank %d: %w", to, err)
	}

	return nil
}

// Recv blocks until a frame from the peer arrives or the transport
// closes.
func (t *TCPTransport) Recv(from int) ([]byte, error) {
	if from < 0 || from >= t.Size() {
		return nil, ErrRankRange
	}
	if from == t.rank {
		return nil, ErrSelfMessage
	}

	select {
	case payload := <-t.inbox[from]:
		return payload, nil
	case <-t.done:
		return nil, ErrClosed
	}
}

// Close stops the accept loop, closes the listener and every
// connection, and releases blocked Recvs. Idempotent.
func (t *TCPTransport) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		_ = t.listener.Close()

		t.mu.Lock()
		for _, conn := range t.conns {
			_ = conn.Close()
		}
		t.conns = nil
		t.peers = nil
		t.mu.Unlock()
	})

	return nil
}

// encoderForLocked returns the peer's encoder, dialing on first use.
// Callers hold t.mu.
func (t *TCPTransport) encoderForLocked(to int) (*gob.Encoder, error) {
	if enc, ok := t.peers[to]; ok {
		return enc, nil
	}

	addr, err := t.topo.Addr(to)
	if err != nil {
		return nil, err
	}

	var conn net.Conn
	for attempt := 0; attempt < dialAttempts; attempt++ {
		conn, err = net.Dial("tcp", addr)
		if err == nil {
			break
		}
		time.Sleep(dialBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("cluster: dial rank %d at %s: %w", to, addr, err)
	}

	t.conns = append(t.conns, conn)
	enc := gob.NewEncoder(conn)
	t.peers[to] = enc

	return enc, nil
}

// acceptLoop admits peer connections until Close.
func (t *TCPTransport) acceptLoop() {
	for {
		conn, err := t.listener.Accept()
		if err != nil {
			select {
			case <-t.done:
			default:
				t.log.WithError(err).Debug("accept loop stopped")
			}

			return
		}

		t.mu.Lock()
		t.conns = append(t.conns, conn)
		t.mu.Unlock()
		go t.readLoop(conn)
	}
}

// readLoop decodes frames off one connection and routes them into the
// sender's inbox.
func (t *TCPTransport) readLoop(conn net.Conn) {
	dec := gob.NewDecoder(conn)
	for {
		var f frame
		if err := dec.Decode(&f); err != nil {
			select {
			case <-t.done:
			default:
				t.log.WithError(err).Debug("peer stream ended")
			}

			return
		}
		if f.From < 0 || f.From >= t.Size() || f.From == t.rank {
			t.log.WithField("from", f.From).Warn("dropping frame with bad sender rank")
			continue
		}

		select {
		case t.inbox[f.From] <- f.Payload:
		case <-t.done:
			return
		}
	}
}
