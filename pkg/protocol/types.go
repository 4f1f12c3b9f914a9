package protocol

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Protocol constants
const (
	// Magic number for meshtalk packets
	PacketMagic uint16 = 0xBCBC

	// Protocol version
	ProtocolVersion uint8 = 0x01

	// Header size
	HeaderSize = 16

	// MaxPacketSize bounds header plus payload for the small-MTU link
	MaxPacketSize = 1024

	// TTL hop budget bounds on the wire
	MinTTL = 0
	MaxTTL = 7

	// DefaultTTL is used when the application leaves TTL unset
	DefaultTTL = 7
)

// Defaults for identity fields the packet header does not carry.
// The transport layer knows which peer delivered the bytes and is
// expected to overwrite these.
const (
	UnknownSender = "unknown"
	PublicRoom    = "public"
)

// MessageType identifies the kind of chat message (1-byte wire code)
type MessageType uint8

// Message type wire codes
const (
	MessageTypeText      MessageType = 0x01
	MessageTypePrivate   MessageType = 0x02
	MessageTypeRoom      MessageType = 0x03
	MessageTypeDiscovery MessageType = 0x04
	MessageTypePing      MessageType = 0x05
	MessageTypePong      MessageType = 0x06
	MessageTypeFile      MessageType = 0x07
	MessageTypeVoice     MessageType = 0x08
	MessageTypeImage     MessageType = 0x09
	MessageTypeSystem    MessageType = 0x0A
)

// MessageTypeFromCode maps a wire code to its enumeration member.
// Unrecognized codes fall back to MessageTypeText rather than erroring.
func MessageTypeFromCode(code byte) MessageType {
	switch t := MessageType(code); t {
	case MessageTypeText, MessageTypePrivate, MessageTypeRoom,
		MessageTypeDiscovery, MessageTypePing, MessageTypePong,
		MessageTypeFile, MessageTypeVoice, MessageTypeImage,
		MessageTypeSystem:
		return t
	default:
		return MessageTypeText
	}
}

// String returns the type name for diagnostics
func (t MessageType) String() string {
	switch t {
	case MessageTypeText:
		return "text"
	case MessageTypePrivate:
		return "private"
	case MessageTypeRoom:
		return "room"
	case MessageTypeDiscovery:
		return "discovery"
	case MessageTypePing:
		return "ping"
	case MessageTypePong:
		return "pong"
	case MessageTypeFile:
		return "file"
	case MessageTypeVoice:
		return "voice"
	case MessageTypeImage:
		return "image"
	case MessageTypeSystem:
		return "system"
	default:
		return fmt.Sprintf("unknown(0x%02X)", uint8(t))
	}
}

// ChatMessage is the logical chat message produced by the application
// layer. It is immutable once constructed; the codecs never retain one
// between calls.
type ChatMessage struct {
	ID          string            // Unique per message instance
	Content     string            // UTF-8 text payload
	SenderID    string            // Opaque sender identifier
	RecipientID string            // Opaque recipient, empty for broadcast
	RoomID      string            // Opaque room identifier
	Timestamp   int64             // Unix timestamp (ms)
	Type        MessageType       // Message type wire code
	TTL         int               // Hop budget, 0-7 on the wire
	Signature   []byte            // Local-only, dropped on encode
	IsEncrypted bool              // Local-only, dropped on encode
	Metadata    map[string]string // Local-only, dropped on encode
}

// NewChatMessage creates a message with a fresh ID, the current
// timestamp and the default hop budget.
func NewChatMessage(content, senderID, roomID string, msgType MessageType) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.NewString(),
		Content:   content,
		SenderID:  senderID,
		RoomID:    roomID,
		Timestamp: NowUnixMilli(),
		Type:      msgType,
		TTL:       DefaultTTL,
	}
}

// ===== HELPER FUNCTIONS =====

// ClampTTL forces a hop budget into the 0-7 wire range. Encoders clamp
// out-of-range input, they never reject it.
func ClampTTL(ttl int) uint8 {
	if ttl < MinTTL {
		return MinTTL
	}
	if ttl > MaxTTL {
		return MaxTTL
	}
	return uint8(ttl)
}

// NowUnixMilli returns current time in Unix milliseconds
func NowUnixMilli() int64 {
	return time.Now().UnixMilli()
}
