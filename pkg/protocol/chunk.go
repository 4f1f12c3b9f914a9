package protocol

import (
	"unicode/utf8"

	"github.com/samber/lo"
)

// MaxPayloadSize is the largest payload a single packet can carry
const MaxPayloadSize = MaxPacketSize - HeaderSize

// SplitContent splits content into pieces whose UTF-8 encoding fits
// limit bytes each, cutting on rune boundaries only. The packet codec
// does not fragment, so senders chunk oversized content into separate
// messages before encoding; MaxPayloadSize is the usual limit.
//
// Chunk sizing is conservative (limit / 4 runes per piece), which keeps
// every piece within the limit for any mix of rune widths. A limit
// below utf8.UTFMax degrades to one rune per piece.
func SplitContent(content string, limit int) []string {
	if limit <= 0 || len(content) <= limit {
		return []string{content}
	}

	perChunk := limit / utf8.UTFMax
	if perChunk < 1 {
		perChunk = 1
	}

	return lo.Map(lo.Chunk([]rune(content), perChunk), func(chunk []rune, _ int) string {
		return string(chunk)
	})
}
