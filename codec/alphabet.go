package codec

// alphabet is the fixed 64-character set the wire format packs six bits
// at a time into: A-Z, a-z, 0-9, +, /. Unlike standard base64 this is not
// used for arbitrary byte data — the bit stream is already a sequence of
// hand-rolled, variably-sized fields (see lookup.go), so there is no
// padding character and no byte-alignment requirement between characters.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var reverseAlphabet = buildReverseAlphabet()

func buildReverseAlphabet() map[byte]int {
	m := make(map[byte]int, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = i
	}
	return m
}

// encodeBits packs a bit stream into the alphabet, six bits per character,
// LSB-first within each group; the final partial group is padded with
// zero bits on its high end.
func encodeBits(bitLen int, buf []byte) string {
	out := make([]byte, 0, (bitLen+5)/6)
	reader := NewBitReader(buf)
	remaining := bitLen
	for remaining > 0 {
		n := 6
		if remaining < 6 {
			n = remaining
		}
		v, _ := reader.ReadBits(n)
		out = append(out, alphabet[v])
		remaining -= n
	}
	return string(out)
}

// decodeBits unpacks a hash string into a bit stream of exactly bitLen
// bits (the caller supplies bitLen once the lookup table's total field
// width is known; any padding bits in the final character are discarded).
func decodeBits(s string, bitLen int) (*BitWriter, error) {
	w := NewBitWriter()
	remaining := bitLen
	for i := 0; remaining > 0; i++ {
		if i >= len(s) {
			return nil, ErrTruncated
		}
		idx, ok := reverseAlphabet[s[i]]
		if !ok {
			return nil, ErrInvalidChar
		}
		n := 6
		if remaining < 6 {
			n = remaining
		}
		w.WriteBits(uint64(idx), n)
		remaining -= n
	}
	return w, nil
}
