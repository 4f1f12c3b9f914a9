// Package compression implements the repeated-pattern payload compressor
// used by the packet codec.
//
// The format is a single-pass escape scheme: a 0xFF byte introduces a
// repeat record (pattern length, repeat count, then the pattern bytes);
// every other byte is a literal. Compress and Decompress are total
// functions: input that cannot be compressed passes through unchanged,
// and malformed or truncated repeat records decompress literally rather
// than failing, so a damaged payload degrades instead of dropping the
// whole message.
//
// Known property: the scheme has no escaping rule for a literal 0xFF
// byte. Payloads containing bare 0xFF bytes can decompress to something
// other than the original. Callers that need exact round-trips must keep
// 0xFF out of the payload; changing this would be a wire format break.
package compression

import "bytes"

// EscapeByte introduces a repeat record in the compressed stream.
const EscapeByte = 0xFF

// Repeat search bounds
const (
	minPatternLen  = 2
	maxPatternLen  = 8
	maxRepeatCount = 255
)

// Compress encodes the UTF-8 bytes of text, replacing consecutive
// repeats of short patterns with repeat records. Output is never
// guaranteed to be smaller than the input; see IsBeneficial.
func Compress(text string) []byte {
	data := []byte(text)
	out := make([]byte, 0, len(data))

	for i := 0; i < len(data); {
		// Best repeat starting at the cursor: largest repeat count
		// across pattern lengths, first found wins ties.
		bestLen, bestCount := 0, 1

		for patLen := minPatternLen; patLen <= maxPatternLen && i+2*patLen <= len(data); patLen++ {
			pattern := data[i : i+patLen]
			count := 1

			for count < maxRepeatCount &&
				i+(count+1)*patLen <= len(data) &&
				bytes.Equal(pattern, data[i+count*patLen:i+(count+1)*patLen]) {
				count++
			}

			if count > bestCount {
				bestLen, bestCount = patLen, count
			}
		}

		if bestCount > 1 {
			out = append(out, EscapeByte, byte(bestLen), byte(bestCount))
			out = append(out, data[i:i+bestLen]...)
			i += bestLen * bestCount
			continue
		}

		out = append(out, data[i])
		i++
	}

	return out
}

// Decompress expands repeat records back into their patterns. Bytes that
// are not part of a complete repeat record are emitted literally, so raw
// uncompressed payloads pass through unchanged.
func Decompress(data []byte) string {
	out := make([]byte, 0, len(data))

	for i := 0; i < len(data); {
		if data[i] == EscapeByte && i+2 < len(data) {
			patLen := int(data[i+1])
			count := int(data[i+2])

			if i+3+patLen <= len(data) {
				pattern := data[i+3 : i+3+patLen]
				for n := 0; n < count; n++ {
					out = append(out, pattern...)
				}
				i += 3 + patLen
				continue
			}
			// Truncated record: fall through and emit literally.
		}

		out = append(out, data[i])
		i++
	}

	return string(out)
}

// IsBeneficial reports whether compressing text produces strictly fewer
// bytes than its UTF-8 encoding.
func IsBeneficial(text string) bool {
	return len(Compress(text)) < len(text)
}

// Ratio returns the space saved by compression as a percentage of the
// original UTF-8 size. Empty input yields 0.
func Ratio(original string, compressed []byte) float64 {
	if len(original) == 0 {
		return 0.0
	}
	return (1 - float64(len(compressed))/float64(len(original))) * 100
}
