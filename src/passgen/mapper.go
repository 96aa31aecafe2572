package passgen

// MapBytes maps random bytes onto a character pool, one output character
// per input byte: out[i] = alphabet[random[i] % len(alphabet)].
//
// The modulo is slightly biased whenever 256 is not a multiple of the pool
// size. With pools of 10-84 characters against a 256-value byte the
// residual bias is cryptographically negligible, so it is accepted here
// for initial character selection. It is NOT acceptable for the shuffle
// step, where bias compounds across the whole permutation space; Shuffle
// uses rejection sampling instead.
func MapBytes(random []byte, alphabet string) []byte {
	out := make([]byte, len(random))
	for i, b := range random {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return out
}
