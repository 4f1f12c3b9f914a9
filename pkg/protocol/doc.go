// Package protocol implements the meshtalk wire formats.
//
// The protocol package defines the chat message model and the two
// independent serializations used by the meshtalk peer-to-peer chat
// network, plus the validation and introspection helpers both share.
//
// # Wire Formats
//
// There are two deliberately separate formats for the same logical
// message, selected explicitly by the caller:
//
// Packet format (EncodePacket/DecodePacket): the canonical, size-bounded
// format for the constrained small-MTU radio transport. A fixed 16-byte
// big-endian header followed by a payload that is compressed when
// compression makes it smaller. Total size is capped at 1024 bytes with
// no fragmentation; callers chunk oversized content first.
//
// Stream message format (EncodeMessage/DecodeMessage): a length-prefixed,
// uncompressed layout with no fixed header or magic number, used where
// the whole buffer is known to arrive in one piece. It carries the
// message and sender identifiers the packet format omits.
//
// The two formats are not wire compatible and are not meant to be
// unified; they serve different transports.
//
// # Packet Header Format
//
// Every packet starts with a 16-byte header:
//   - Magic (2 bytes): Packet identifier (0xBCBC)
//   - Version (1 byte): Protocol version (0x01)
//   - Type (1 byte): Message type code
//   - TTL (1 byte): Hop budget, clamped to 0-7
//   - Length (2 bytes): Payload length in bytes
//   - Timestamp (8 bytes): Unix milliseconds
//   - Reserved (1 byte): Must be zero
//
// # Message Types
//
// Type codes form a closed enumeration (text, private, room, discovery,
// ping, pong, file, voice, image, system). An unrecognized code decodes
// to text; it is an explicit fallback, not an error.
//
// # Identity
//
// The packet header carries no identity. The decoder fills SenderID and
// RoomID with fixed defaults and synthesizes a timestamp-derived message
// id; associating real identity with received bytes is the transport
// layer's job. Signatures and encryption state are local-only fields the
// codecs drop on encode, and the codecs never generate or check either.
//
// # Error Handling
//
// Encode fails only when a packet would exceed the size ceiling. Decode
// fails on a short or mismatched header, on a declared length overrunning
// the buffer, or on a malformed stream message. All length fields in
// received bytes are treated as untrusted and bounds-checked. Nothing
// here is fatal to the process; every failure is scoped to the single
// message in hand, and compression failures degrade to passthrough
// rather than erroring at all.
//
// # Usage Example
//
//	msg := protocol.NewChatMessage("hello", "alice", "lobby", protocol.MessageTypeText)
//
//	if !protocol.ValidateMessage(msg) {
//	    // drop the message
//	}
//
//	packet, err := protocol.EncodePacket(msg)
//	if err != nil {
//	    // content too large for one packet: SplitContent and resend
//	}
//
//	// Send over the radio link...
//
//	received, err := protocol.DecodePacket(packet)
//
// # Concurrency
//
// All operations are pure, synchronous and stateless between calls. Any
// number of encode/decode calls may run concurrently on independent
// buffers; callers own every buffer before and after a call.
package protocol
