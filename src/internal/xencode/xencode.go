// FILE: srunauth/src/internal/xencode/xencode.go

// Package xencode implements the SRUN "xEncode" transform: a variable-length
// XXTEA-family block mix keyed by the gateway challenge token.
//
// The whole message is a single block of little-endian 32-bit words. Only the
// encrypt direction exists; the gateway performs the inverse.
package xencode

// delta is the TEA key schedule constant
const delta uint32 = 0x9E3779B9

// minKeyWords is the number of key words the mix indexes into
const minKeyWords = 4

// Pack converts data into little-endian 32-bit words, zero-filling the final group.
// With appendLength set, one extra word holding len(data) is appended so the inverse
// direction can recover the exact length.
func Pack(data []byte, appendLength bool) []uint32 {
	words := make([]uint32, (len(data)+3)/4, (len(data)+3)/4+1)
	for i, b := range data {
		words[i>>2] |= uint32(b) << (uint(i&3) << 3)
	}
	if appendLength {
		words = append(words, uint32(len(data)))
	}
	return words
}

// Unpack renders words back to bytes in the same little-endian order used by Pack.
// No length truncation is applied.
func Unpack(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		out[i*4] = byte(w)
		out[i*4+1] = byte(w >> 8)
		out[i*4+2] = byte(w >> 16)
		out[i*4+3] = byte(w >> 24)
	}
	return out
}

// PrepareKey packs key without a length word and right-pads it with zero words to at
// least four words. An empty key yields an all-zero four word key.
func PrepareKey(key []byte) []uint32 {
	k := Pack(key, false)
	if len(k) < minKeyWords {
		k = append(k, make([]uint32, minKeyWords-len(k))...)
	}
	return k
}

// Rounds returns the number of mix rounds for a block of the given word count.
func Rounds(words int) int {
	return 6 + 52/words
}

// Encrypt mixes data under key and returns the raw ciphertext bytes. Empty input
// returns empty output without running any round.
func Encrypt(data, key []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}

	v := Pack(data, true)
	k := PrepareKey(key)
	encryptWords(v, k)
	return Unpack(v)
}

// EncryptString is Encrypt over string operands.
func EncryptString(data, key string) []byte {
	return Encrypt([]byte(data), []byte(key))
}

// encryptWords runs the block mix in place. v must hold at least two words, which
// Pack guarantees for non-empty input with the length word appended.
func encryptWords(v, k []uint32) {
	n := len(v) - 1
	z := v[n]
	var sum uint32

	for q := Rounds(n + 1); q > 0; q-- {
		sum += delta
		e := (sum >> 2) & 3

		p := 0
		for ; p < n; p++ {
			y := v[p+1]
			v[p] += mx(sum, y, z, k[uint32(p&3)^e])
			z = v[p]
		}

		y := v[0]
		v[n] += mx(sum, y, z, k[uint32(p&3)^e])
		z = v[n]
	}
}

// mx is the SRUN variant of the XXTEA mixing function: the three terms are summed
// instead of XXTEA's xor of two sums. All additions wrap modulo 2^32.
func mx(sum, y, z, key uint32) uint32 {
	return (z>>5 ^ y<<2) + ((y>>3 ^ z<<4) ^ (sum ^ y)) + (key ^ z)
}
