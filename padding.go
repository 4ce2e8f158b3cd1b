package idea

// zeroPad returns b extended with zero bytes to a multiple of size. A length
// that is already aligned gets no padding. b is never modified.
func zeroPad(b []byte, size int) []byte {
	n := (len(b) + size - 1) / size * size
	out := make([]byte, n)
	copy(out, b)
	return out
}

// zeroUnpad drops every trailing zero byte, including ones that belong to
// the plaintext itself.
func zeroUnpad(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == 0 {
		i--
	}
	return b[:i]
}
