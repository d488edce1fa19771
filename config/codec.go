package config

import (
	"encoding/binary"
	"errors"
	"math"
)

// Wire codec errors.
var (
	// ErrCodecShort indicates a broadcast buffer truncated below its
	// declared layout.
	ErrCodecShort = errors.New("config: broadcast buffer too short")
	// ErrPathLength indicates a graph file path longer than the wire
	// format's 16-bit length prefix allows.
	ErrPathLength = errors.New("config: graph file path too long for wire format")
)

// Flag bit positions inside the wire format's flags byte.
const (
	flagCreate = 1 << iota
	flagMaze
	flagVerbose
)

// codecHeaderLen is the fixed part of the wire format: one flags byte,
// three int32 fields, and the path length prefix.
const codecHeaderLen = 1 + 3*4 + 2

// MarshalBinary encodes the solver fields into the fixed little-endian
// wire format rank 0 broadcasts: a flags byte (create, maze, verbose),
// then algorithm, columns and rows as int32, then the graph file path
// with a uint16 length prefix. Launcher-local fields are not encoded.
func (c Config) MarshalBinary() ([]byte, error) {
	if len(c.GraphFile) > math.MaxUint16 {
		return nil, ErrPathLength
	}

	buf := make([]byte, codecHeaderLen+len(c.GraphFile))

	var flags byte
	if c.Create {
		flags |= flagCreate
	}
	if c.Maze {
		flags |= flagMaze
	}
	if c.Verbose {
		flags |= flagVerbose
	}
	buf[0] = flags

	binary.LittleEndian.PutUint32(buf[1:], uint32(int32(c.Algorithm)))
	binary.LittleEndian.PutUint32(buf[5:], uint32(int32(c.Columns)))
	binary.LittleEndian.PutUint32(buf[9:], uint32(int32(c.Rows)))
	binary.LittleEndian.PutUint16(buf[13:], uint16(len(c.GraphFile)))
	copy(buf[codecHeaderLen:], c.GraphFile)

	return buf, nil
}

// UnmarshalBinary decodes a MarshalBinary buffer over the receiver,
// replacing the solver fields and leaving launcher-local fields
// untouched.
func (c *Config) UnmarshalBinary(buf []byte) error {
	if len(buf) < codecHeaderLen {
		return ErrCodecShort
	}

	pathLen := int(binary.LittleEndian.Uint16(buf[13:]))
	if len(buf) < codecHeaderLen+pathLen {
		return ErrCodecShort
	}

	flags := buf[0]
	c.Create = flags&flagCreate != 0
	c.Maze = flags&flagMaze != 0
	c.Verbose = flags&flagVerbose != 0
	c.Algorithm = int(int32(binary.LittleEndian.Uint32(buf[1:])))
	c.Columns = int(int32(binary.LittleEndian.Uint32(buf[5:])))
	c.Rows = int(int32(binary.LittleEndian.Uint32(buf[9:])))
	c.GraphFile = string(buf[codecHeaderLen : codecHeaderLen+pathLen])

	return nil
}
