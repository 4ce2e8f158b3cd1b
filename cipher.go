// Package idea implements the IDEA block cipher (64-bit blocks, 128-bit keys)
// with a block-independent (ECB) driver.
//
// The password folding in KeyFromPassword and the zero-byte padding used by
// Encrypt and Decrypt are kept for compatibility with existing ciphertexts.
// Neither is a standard construction and neither should be used to protect
// real data.
package idea

import (
	"crypto/cipher"
	"encoding/binary"
)

type Direction uint8

const (
	Encryption Direction = iota
	Decryption
)

func (d Direction) String() string {
	switch d {
	case Encryption:
		return "encrypt"
	case Decryption:
		return "decrypt"
	}
	return "unknown"
}

// Block is one 64-bit cipher block, read as four big-endian 16-bit words.
type Block [BlockSize]byte

// Cipher processes blocks in a single direction. Its schedule is computed
// once and never written again, so one Cipher may be shared by goroutines.
type Cipher struct {
	dir   Direction
	sched schedule
}

func NewCipher(key []byte, dir Direction) (*Cipher, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}
	return NewCipherFromKey(k, dir), nil
}

func NewCipherFromKey(key Key, dir Direction) *Cipher {
	c := &Cipher{dir: dir}
	ek := expandKey(key)
	if dir == Decryption {
		c.sched = invertSchedule(ek)
	} else {
		c.sched = ek
	}
	return c
}

func (c *Cipher) Direction() Direction { return c.dir }

func (c *Cipher) Transform(b Block) Block {
	var out Block
	crypt(out[:], b[:], &c.sched)
	return out
}

// Process transforms one block from src into dst. dst and src may overlap
// entirely.
func (c *Cipher) Process(dst, src []byte) {
	if len(src) < BlockSize {
		panic("idea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("idea: output not full block")
	}
	crypt(dst, src, &c.sched)
}

func crypt(dst, src []byte, sk *schedule) {
	x1 := binary.BigEndian.Uint16(src[0:])
	x2 := binary.BigEndian.Uint16(src[2:])
	x3 := binary.BigEndian.Uint16(src[4:])
	x4 := binary.BigEndian.Uint16(src[6:])

	k := sk[:]
	for r := 0; r < Rounds; r++ {
		y1 := mul(x1, k[0])
		y2 := add16(x2, k[1])
		y3 := add16(x3, k[2])
		y4 := mul(x4, k[3])

		y7 := mul(y1^y3, k[4])
		y9 := mul(add16(y2^y4, y7), k[5])
		y10 := add16(y7, y9)

		x1 = y1 ^ y9
		x2 = y3 ^ y9
		x3 = y2 ^ y10
		x4 = y4 ^ y10
		k = k[6:]
	}

	// the last round left x2 and x3 swapped
	binary.BigEndian.PutUint16(dst[0:], mul(x1, k[0]))
	binary.BigEndian.PutUint16(dst[2:], add16(x3, k[1]))
	binary.BigEndian.PutUint16(dst[4:], add16(x2, k[2]))
	binary.BigEndian.PutUint16(dst[6:], mul(x4, k[3]))
}

// blockCipher exposes both schedules through crypto/cipher.Block.
type blockCipher struct {
	enc *Cipher
	dec *Cipher
}

func NewBlockCipher(key []byte) (cipher.Block, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}
	return &blockCipher{
		enc: NewCipherFromKey(k, Encryption),
		dec: NewCipherFromKey(k, Decryption),
	}, nil
}

func (b *blockCipher) BlockSize() int          { return BlockSize }
func (b *blockCipher) Encrypt(dst, src []byte) { b.enc.Process(dst, src) }
func (b *blockCipher) Decrypt(dst, src []byte) { b.dec.Process(dst, src) }
