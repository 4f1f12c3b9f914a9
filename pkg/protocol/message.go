package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrMalformedMessage = errors.New("malformed message")

// MaxContentLength bounds content accepted by ValidateMessage
const MaxContentLength = 1024

const lenPrefixSize = 8

// EncodeMessage serializes msg into the length-prefixed stream format.
// Unlike the packet format it carries identity fields, applies no
// compression and has no size ceiling; it assumes the whole buffer
// reaches the peer in one piece. Integers are little-endian.
//
// The TTL byte is written as-is on this path, without clamping.
func EncodeMessage(msg *ChatMessage) []byte {
	id := []byte(msg.ID)
	sender := []byte(msg.SenderID)
	content := []byte(msg.Content)

	size := 3 +
		lenPrefixSize + len(id) +
		lenPrefixSize + len(sender) +
		lenPrefixSize + len(content) +
		8

	buf := make([]byte, 0, size)
	buf = append(buf, ProtocolVersion, byte(msg.Type), byte(msg.TTL))
	buf = appendPrefixed(buf, id)
	buf = appendPrefixed(buf, sender)
	buf = appendPrefixed(buf, content)

	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(msg.Timestamp))

	return append(buf, ts[:]...)
}

// DecodeMessage deserializes the length-prefixed stream format. Every
// length prefix is untrusted and bounds-checked before slicing; any
// prefix implying a slice past the end of the buffer fails with
// ErrMalformedMessage. RoomID is not carried and comes back as the
// public room, mirroring the packet decoder.
func DecodeMessage(buf []byte) (*ChatMessage, error) {
	if len(buf) < 3 {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrMalformedMessage, len(buf))
	}

	if buf[0] != ProtocolVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedMessage, buf[0])
	}

	msgType := MessageTypeFromCode(buf[1])
	ttl := int(buf[2])
	offset := 3

	id, offset, err := readPrefixed(buf, offset)
	if err != nil {
		return nil, err
	}

	sender, offset, err := readPrefixed(buf, offset)
	if err != nil {
		return nil, err
	}

	content, offset, err := readPrefixed(buf, offset)
	if err != nil {
		return nil, err
	}

	if offset+8 > len(buf) {
		return nil, fmt.Errorf("%w: missing timestamp", ErrMalformedMessage)
	}
	timestamp := int64(binary.LittleEndian.Uint64(buf[offset : offset+8]))

	return &ChatMessage{
		ID:        string(id),
		Content:   string(content),
		SenderID:  string(sender),
		RoomID:    PublicRoom,
		Timestamp: timestamp,
		Type:      msgType,
		TTL:       ttl,
	}, nil
}

// ValidateMessage is the pre-send gate shared by both wire formats:
// callers invoke it before EncodePacket or EncodeMessage and drop the
// message on false. It reports rather than errors.
func ValidateMessage(msg *ChatMessage) bool {
	if msg == nil {
		return false
	}

	if msg.ID == "" || msg.Content == "" || msg.SenderID == "" {
		return false
	}

	if len(msg.Content) > MaxContentLength {
		return false
	}

	if msg.TTL < MinTTL || msg.TTL > MaxTTL {
		return false
	}

	return true
}

func appendPrefixed(buf, field []byte) []byte {
	var n [lenPrefixSize]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(field)))

	buf = append(buf, n[:]...)
	return append(buf, field...)
}

func readPrefixed(buf []byte, offset int) ([]byte, int, error) {
	if offset+lenPrefixSize > len(buf) {
		return nil, 0, fmt.Errorf("%w: missing length prefix at offset %d", ErrMalformedMessage, offset)
	}

	n := binary.LittleEndian.Uint64(buf[offset : offset+lenPrefixSize])
	offset += lenPrefixSize

	if n > uint64(len(buf)-offset) {
		return nil, 0, fmt.Errorf("%w: field length %d overruns buffer", ErrMalformedMessage, n)
	}

	return buf[offset : offset+int(n)], offset + int(n), nil
}
