package cluster

import (
	"encoding/binary"

	log "github.com/sirupsen/logrus"
)

// Cluster is the handle a rank holds on the message-passing
// environment: its transport plus the collectives the kernels are
// written against. Acquire one per rank at program start and Close it
// at program end.
type Cluster struct {
	transport Transport
	log       *log.Entry
}

// New wraps a connected Transport.
func New(t Transport) *Cluster {
	return &Cluster{
		transport: t,
		log:       log.WithFields(log.Fields{"rank": t.Rank(), "size": t.Size()}),
	}
}

// Rank returns this member's rank in [0, Size).
func (c *Cluster) Rank() int { return c.transport.Rank() }

// Size returns the number of ranks.
func (c *Cluster) Size() int { return c.transport.Size() }

// Close releases the underlying transport.
func (c *Cluster) Close() error { return c.transport.Close() }

// SendBytes delivers an opaque payload to a peer rank.
func (c *Cluster) SendBytes(to int, payload []byte) error {
	if err := c.transport.Send(to, payload); err != nil {
		return err
	}
	c.log.WithFields(log.Fields{"to": to, "bytes": len(payload)}).Debug("sent")
	observeMessage(directionSent, len(payload))

	return nil
}

// RecvBytes blocks until a payload from the peer rank arrives.
func (c *Cluster) RecvBytes(from int) ([]byte, error) {
	payload, err := c.transport.Recv(from)
	if err != nil {
		return nil, err
	}
	c.log.WithFields(log.Fields{"from": from, "bytes": len(payload)}).Debug("received")
	observeMessage(directionReceived, len(payload))

	return payload, nil
}

// SendInts delivers an int32 slice, framed little-endian.
func (c *Cluster) SendInts(to int, data []int32) error {
	return c.SendBytes(to, packInts(data))
}

// RecvInts blocks until an int32 slice from the peer rank arrives.
func (c *Cluster) RecvInts(from int) ([]int32, error) {
	payload, err := c.RecvBytes(from)
	if err != nil {
		return nil, err
	}

	return unpackInts(payload)
}

// BroadcastBytes distributes the root's payload to every rank. The
// root passes data and gets it back unchanged; other ranks ignore
// their data argument and return the received payload.
func (c *Cluster) BroadcastBytes(root int, data []byte) ([]byte, error) {
	if root < 0 || root >= c.Size() {
		return nil, ErrRankRange
	}
	observeCollective(collectiveBroadcast)

	if c.Rank() != root {
		return c.RecvBytes(root)
	}
	for to := 0; to < c.Size(); to++ {
		if to == root {
			continue
		}
		if err := c.SendBytes(to, data); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// Broadcast is BroadcastBytes for an int32 slice.
func (c *Cluster) Broadcast(root int, data []int32) ([]int32, error) {
	if c.Rank() == root {
		if _, err := c.BroadcastBytes(root, packInts(data)); err != nil {
			return nil, err
		}

		return data, nil
	}

	payload, err := c.BroadcastBytes(root, nil)
	if err != nil {
		return nil, err
	}

	return unpackInts(payload)
}

// Scatter splits the root's data into Size equal chunks of chunk int32
// values and hands chunk r to rank r. The root must supply at least
// chunk·Size values (pad the tail when the payload does not divide
// evenly); every rank returns its own chunk as a fresh slice.
func (c *Cluster) Scatter(root int, data []int32, chunk int) ([]int32, error) {
	if root < 0 || root >= c.Size() {
		return nil, ErrRankRange
	}
	observeCollective(collectiveScatter)

	if c.Rank() != root {
		return c.RecvInts(root)
	}

	if len(data) < chunk*c.Size() {
		return nil, ErrScatterLength
	}
	var own []int32
	for to := 0; to < c.Size(); to++ {
		part := data[to*chunk : (to+1)*chunk]
		if to == root {
			own = make([]int32, chunk)
			copy(own, part)
			continue
		}
		if err := c.SendInts(to, part); err != nil {
			return nil, err
		}
	}

	return own, nil
}

// packInts frames an int32 slice as little-endian bytes.
func packInts(data []int32) []byte {
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}

	return buf
}

// unpackInts reverses packInts, rejecting torn frames.
func unpackInts(buf []byte) ([]int32, error) {
	if len(buf)%4 != 0 {
		return nil, ErrPayloadFraming
	}

	data := make([]int32, len(buf)/4)
	for i := range data {
		data[i] = int32(binary.LittleEndian.Uint32(buf[4*i:]))
	}

	return data, nil
}
