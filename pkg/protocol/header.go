package protocol

import (
	"encoding/binary"
	"errors"
	"io"
)

var (
	ErrInvalidMagic   = errors.New("invalid packet magic")
	ErrInvalidVersion = errors.New("unsupported protocol version")
	ErrInvalidHeader  = errors.New("invalid packet header")
)

// Header represents the fixed packet header
type Header struct {
	Magic      uint16      // Magic number (0xBCBC)
	Version    uint8       // Protocol version
	Type       MessageType // Message type code as received
	TTL        uint8       // Hop budget
	PayloadLen uint16      // Payload length in bytes
	Timestamp  uint64      // Unix timestamp (ms)
	Reserved   uint8       // Reserved, must be zero
}

// Encode encodes the header to bytes
func (h *Header) Encode() []byte {
	buf := make([]byte, HeaderSize)

	binary.BigEndian.PutUint16(buf[0:2], h.Magic)
	buf[2] = h.Version
	buf[3] = byte(h.Type)
	buf[4] = h.TTL
	binary.BigEndian.PutUint16(buf[5:7], h.PayloadLen)
	binary.BigEndian.PutUint64(buf[7:15], h.Timestamp)
	buf[15] = h.Reserved

	return buf
}

// Decode decodes the header from bytes
func (h *Header) Decode(buf []byte) error {
	if len(buf) < HeaderSize {
		return ErrInvalidHeader
	}

	h.Magic = binary.BigEndian.Uint16(buf[0:2])
	h.Version = buf[2]
	h.Type = MessageType(buf[3])
	h.TTL = buf[4]
	h.PayloadLen = binary.BigEndian.Uint16(buf[5:7])
	h.Timestamp = binary.BigEndian.Uint64(buf[7:15])
	h.Reserved = buf[15]

	return nil
}

// Validate validates the header
func (h *Header) Validate() error {
	if h.Magic != PacketMagic {
		return ErrInvalidMagic
	}

	if h.Version != ProtocolVersion {
		return ErrInvalidVersion
	}

	return nil
}

// ReadHeader reads a header from an io.Reader
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderSize)

	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}

	header := &Header{}
	if err := header.Decode(buf); err != nil {
		return nil, err
	}

	if err := header.Validate(); err != nil {
		return nil, err
	}

	return header, nil
}

// WriteHeader writes a header to an io.Writer
func WriteHeader(w io.Writer, h *Header) error {
	buf := h.Encode()
	_, err := w.Write(buf)
	return err
}
