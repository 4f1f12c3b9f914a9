package protocol

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

// Cell sizes for padded packets
const (
	CellSize256  = 256
	CellSize512  = 512
	CellSize1024 = 1024
)

var ErrInvalidPadding = errors.New("invalid padding")

// PadPacket pads an encoded packet up to the next cell size so packet
// lengths on the link reveal less about content. Layout:
// [original_length(4 bytes)] + [packet] + [random fill].
//
// Padding is a transport-boundary concern: a caller that pads must
// unpad on the receive side before handing bytes to a decoder. The
// codecs themselves never pad.
func PadPacket(packet []byte) ([]byte, error) {
	if len(packet) > MaxPacketSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPacketTooLarge, len(packet), MaxPacketSize)
	}

	target := cellSizeFor(4 + len(packet))

	buf := make([]byte, target)
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(packet)))
	copy(buf[4:], packet)

	if _, err := rand.Read(buf[4+len(packet):]); err != nil {
		return nil, fmt.Errorf("failed to generate padding: %w", err)
	}

	return buf, nil
}

// UnpadPacket strips cell padding and returns the original packet bytes.
// The length prefix is untrusted and checked against the buffer.
func UnpadPacket(padded []byte) ([]byte, error) {
	if len(padded) < 4 {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrInvalidPadding, len(padded))
	}

	n := binary.BigEndian.Uint32(padded[0:4])
	if int64(n) > int64(len(padded)-4) {
		return nil, fmt.Errorf("%w: declared length %d exceeds %d padded bytes", ErrInvalidPadding, n, len(padded)-4)
	}

	return padded[4 : 4+int(n)], nil
}

// cellSizeFor chooses the smallest cell that fits n bytes
func cellSizeFor(n int) int {
	switch {
	case n <= CellSize256:
		return CellSize256
	case n <= CellSize512:
		return CellSize512
	case n <= CellSize1024:
		return CellSize1024
	default:
		return ((n + CellSize1024 - 1) / CellSize1024) * CellSize1024
	}
}
