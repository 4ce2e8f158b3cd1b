package idea

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var ErrBlockSize = errors.New("idea: input not a multiple of the block size")

// parallelThreshold is the block count from which a buffer is split across
// worker goroutines.
const parallelThreshold = 4096

// Encrypt zero-pads plaintext to a whole number of blocks and encrypts every
// block independently with the key folded from password.
func Encrypt(plaintext []byte, password string) ([]byte, error) {
	return encryptECB(plaintext, KeyFromPassword(password)), nil
}

// Decrypt reverses Encrypt. All trailing zero bytes are removed afterwards,
// so a message that itself ended in zeros comes back shorter.
func Decrypt(ciphertext []byte, password string) ([]byte, error) {
	return decryptECB(ciphertext, KeyFromPassword(password))
}

func EncryptKey(plaintext []byte, key []byte) ([]byte, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}
	return encryptECB(plaintext, k), nil
}

func DecryptKey(ciphertext []byte, key []byte) ([]byte, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}
	return decryptECB(ciphertext, k)
}

func encryptECB(plaintext []byte, key Key) []byte {
	data := zeroPad(plaintext, BlockSize)
	processBlocks(NewCipherFromKey(key, Encryption), data)
	return data
}

func decryptECB(ciphertext []byte, key Key) ([]byte, error) {
	if len(ciphertext)%BlockSize != 0 {
		return nil, errors.Wrapf(ErrBlockSize, "got %d bytes", len(ciphertext))
	}
	data := make([]byte, len(ciphertext))
	copy(data, ciphertext)
	processBlocks(NewCipherFromKey(key, Decryption), data)
	return zeroUnpad(data), nil
}

// processBlocks transforms data in place. len(data) must be a multiple of
// BlockSize.
func processBlocks(c *Cipher, data []byte) {
	blocks := len(data) / BlockSize
	workers := runtime.GOMAXPROCS(0)
	if blocks < parallelThreshold || workers < 2 {
		processRange(c, data)
		return
	}

	per := (blocks + workers - 1) / workers * BlockSize
	var g errgroup.Group
	g.SetLimit(workers)
	for off := 0; off < len(data); off += per {
		end := off + per
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]
		g.Go(func() error {
			processRange(c, chunk)
			return nil
		})
	}
	_ = g.Wait()
}

func processRange(c *Cipher, data []byte) {
	for i := 0; i < len(data); i += BlockSize {
		c.Process(data[i:], data[i:])
	}
}
