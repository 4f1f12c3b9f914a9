package protocol

import (
	"errors"
	"fmt"
	"time"

	"github.com/meshtalk/meshtalk-node/pkg/compression"
)

var (
	ErrPacketTooLarge  = errors.New("packet exceeds maximum size")
	ErrTruncatedPacket = errors.New("truncated packet")
)

// EncodePacket serializes msg into the fixed-header packet format for
// the constrained transport. The content is compressed when that makes
// the payload strictly smaller, otherwise it is sent raw; the decoder
// does not need to know which, since raw payloads pass through
// decompression unchanged.
//
// There is no fragmentation: content that pushes the total past
// MaxPacketSize fails with ErrPacketTooLarge and the caller must chunk
// or shorten it (see SplitContent).
func EncodePacket(msg *ChatMessage) ([]byte, error) {
	payload := []byte(msg.Content)
	if compressed := compression.Compress(msg.Content); len(compressed) < len(payload) {
		payload = compressed
	}

	total := HeaderSize + len(payload)
	if total > MaxPacketSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPacketTooLarge, total, MaxPacketSize)
	}

	header := &Header{
		Magic:      PacketMagic,
		Version:    ProtocolVersion,
		Type:       msg.Type,
		TTL:        ClampTTL(msg.TTL),
		PayloadLen: uint16(len(payload)),
		Timestamp:  uint64(msg.Timestamp),
		Reserved:   0,
	}

	buf := make([]byte, 0, total)
	buf = append(buf, header.Encode()...)
	buf = append(buf, payload...)

	return buf, nil
}

// DecodePacket deserializes a packet received from the transport. The
// header carries no identity, so SenderID and RoomID are filled with
// fixed defaults; the transport knows which peer delivered the bytes
// and associates identity itself. Local-only fields come back as zero
// values.
//
// The declared payload length is untrusted and is bounds-checked before
// slicing. A failed packet should be discarded, not buffered: this
// format is not stream-resumable.
func DecodePacket(buf []byte) (*ChatMessage, error) {
	header := &Header{}
	if err := header.Decode(buf); err != nil {
		return nil, err
	}

	if err := header.Validate(); err != nil {
		return nil, err
	}

	end := HeaderSize + int(header.PayloadLen)
	if end > len(buf) {
		return nil, fmt.Errorf("%w: declared %d payload bytes, %d available",
			ErrTruncatedPacket, header.PayloadLen, len(buf)-HeaderSize)
	}

	timestamp := int64(header.Timestamp)

	return &ChatMessage{
		ID:        receivedMessageID(timestamp),
		Content:   compression.Decompress(buf[HeaderSize:end]),
		SenderID:  UnknownSender,
		RoomID:    PublicRoom,
		Timestamp: timestamp,
		Type:      MessageTypeFromCode(byte(header.Type)),
		TTL:       int(ClampTTL(int(header.TTL))),
	}, nil
}

// ValidatePacket reports whether buf is structurally a well-formed
// packet: complete header, correct magic and version, and a declared
// payload length matching the actual buffer. It never inspects the
// payload and never errors.
func ValidatePacket(buf []byte) bool {
	header := &Header{}
	if err := header.Decode(buf); err != nil {
		return false
	}

	if err := header.Validate(); err != nil {
		return false
	}

	return HeaderSize+int(header.PayloadLen) == len(buf)
}

// InspectPacket returns the header fields for logging and diagnostics
// without decompressing the payload. Magic and version are reported as
// received, not checked.
func InspectPacket(buf []byte) (*Header, error) {
	header := &Header{}
	if err := header.Decode(buf); err != nil {
		return nil, err
	}

	return header, nil
}

// receivedMessageID synthesizes an id for a packet, which carries none
// on the wire. Derived from the sender timestamp plus a decode-time
// disambiguator; not collision-free under rapid decode, so transports
// needing stable identity must assign their own.
func receivedMessageID(timestamp int64) string {
	return fmt.Sprintf("msg-%d-%d", timestamp, time.Now().UnixMilli()%1000)
}
