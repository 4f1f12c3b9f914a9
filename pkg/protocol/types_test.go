package protocol

import (
	"testing"
	"time"
)

func TestNewChatMessage(t *testing.T) {
	before := time.Now().UnixMilli()
	msg := NewChatMessage("hello", "alice", "lobby", MessageTypeRoom)
	after := time.Now().UnixMilli()

	if msg.ID == "" {
		t.Error("NewChatMessage() produced empty ID")
	}
	if msg.Content != "hello" {
		t.Errorf("Content = %q, want %q", msg.Content, "hello")
	}
	if msg.SenderID != "alice" {
		t.Errorf("SenderID = %q, want %q", msg.SenderID, "alice")
	}
	if msg.RoomID != "lobby" {
		t.Errorf("RoomID = %q, want %q", msg.RoomID, "lobby")
	}
	if msg.Type != MessageTypeRoom {
		t.Errorf("Type = %v, want %v", msg.Type, MessageTypeRoom)
	}
	if msg.TTL != DefaultTTL {
		t.Errorf("TTL = %d, want default %d", msg.TTL, DefaultTTL)
	}
	if msg.Timestamp < before || msg.Timestamp > after {
		t.Errorf("Timestamp = %d, want between %d and %d", msg.Timestamp, before, after)
	}
}

func TestNewChatMessageUniqueIDs(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		msg := NewChatMessage("hi", "u1", "r1", MessageTypeText)
		if ids[msg.ID] {
			t.Fatalf("NewChatMessage() ID collision at iteration %d", i)
		}
		ids[msg.ID] = true
	}
}

func TestMessageTypeFromCode(t *testing.T) {
	tests := []struct {
		name string
		code byte
		want MessageType
	}{
		{"text", 0x01, MessageTypeText},
		{"private", 0x02, MessageTypePrivate},
		{"room", 0x03, MessageTypeRoom},
		{"discovery", 0x04, MessageTypeDiscovery},
		{"ping", 0x05, MessageTypePing},
		{"pong", 0x06, MessageTypePong},
		{"file", 0x07, MessageTypeFile},
		{"voice", 0x08, MessageTypeVoice},
		{"image", 0x09, MessageTypeImage},
		{"system", 0x0A, MessageTypeSystem},
		{"unknown falls back to text", 0x99, MessageTypeText},
		{"zero falls back to text", 0x00, MessageTypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageTypeFromCode(tt.code); got != tt.want {
				t.Errorf("MessageTypeFromCode(0x%02X) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMessageTypeString(t *testing.T) {
	if got := MessageTypeVoice.String(); got != "voice" {
		t.Errorf("String() = %q, want %q", got, "voice")
	}

	if got := MessageType(0x99).String(); got != "unknown(0x99)" {
		t.Errorf("String() = %q, want %q", got, "unknown(0x99)")
	}
}

func TestClampTTL(t *testing.T) {
	tests := []struct {
		ttl  int
		want uint8
	}{
		{-100, 0},
		{-1, 0},
		{0, 0},
		{4, 4},
		{7, 7},
		{8, 7},
		{255, 7},
	}

	for _, tt := range tests {
		if got := ClampTTL(tt.ttl); got != tt.want {
			t.Errorf("ClampTTL(%d) = %d, want %d", tt.ttl, got, tt.want)
		}
	}
}
