package idea

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/pkg/errors"
)

const (
	KeySize   = 16
	BlockSize = 8
	Rounds    = 8

	scheduleLen = Rounds*6 + 4
)

var ErrInvalidKeyLength = errors.New("idea: invalid key length")

// Key is a raw 128-bit IDEA key.
type Key [KeySize]byte

func NewKey(b []byte) (Key, error) {
	var key Key
	if len(b) != KeySize {
		return key, errors.Wrapf(ErrInvalidKeyLength, "got %d bytes, want %d", len(b), KeySize)
	}
	copy(key[:], b)
	return key, nil
}

// KeyFromPassword folds the password into a key by XOR-ing the low byte of
// every UTF-16 code unit into position i mod KeySize. It is not a KDF.
func KeyFromPassword(password string) Key {
	var key Key
	for i, u := range utf16.Encode([]rune(password)) {
		key[i%KeySize] ^= byte(u)
	}
	return key
}

type schedule [scheduleLen]uint16

func expandKey(key Key) (sk schedule) {
	for i := 0; i < 8; i++ {
		sk[i] = binary.BigEndian.Uint16(key[i*2:])
	}
	for i := 8; i < scheduleLen; i++ {
		hi := sk[i-7]
		if (i+1)%8 == 0 {
			hi = sk[i-15]
		}
		lo := sk[i-6]
		if (i+2)%8 < 2 {
			lo = sk[i-14]
		}
		sk[i] = hi<<9 | lo>>7
	}
	return
}

// invertSchedule derives the decryption schedule. Round r of the result
// undoes round Rounds-1-r of ek; the MA subkeys move with their round.
func invertSchedule(ek schedule) (dk schedule) {
	n := 0
	next := func() uint16 {
		v := ek[n]
		n++
		return v
	}

	i := Rounds * 6
	dk[i] = mulInverse(next())
	dk[i+1] = addInverse16(next())
	dk[i+2] = addInverse16(next())
	dk[i+3] = mulInverse(next())

	for round := Rounds - 1; round > 0; round-- {
		i = round * 6
		dk[i+4] = next()
		dk[i+5] = next()
		dk[i] = mulInverse(next())
		dk[i+2] = addInverse16(next())
		dk[i+1] = addInverse16(next())
		dk[i+3] = mulInverse(next())
	}

	dk[4] = next()
	dk[5] = next()
	dk[0] = mulInverse(next())
	dk[1] = addInverse16(next())
	dk[2] = addInverse16(next())
	dk[3] = mulInverse(next())
	return
}
