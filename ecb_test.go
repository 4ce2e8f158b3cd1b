package idea

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

func TestEncryptPassword(t *testing.T) {
	plaintext := []byte("zółć")
	encryptedExpect, _ := hex.DecodeString("e8f85e7776e11f49")
	t.Run("Encrypt", func(t *testing.T) {
		res, err := Encrypt(plaintext, "key")
		require.NoError(t, err)
		require.Equal(t, encryptedExpect, res)
	})
	t.Run("Decrypt", func(t *testing.T) {
		res, err := Decrypt(encryptedExpect, "key")
		require.NoError(t, err)
		require.Equal(t, plaintext, res)
		require.Equal(t, "zółć", string(res))
	})
	t.Run("InputUntouched", func(t *testing.T) {
		in := append([]byte(nil), plaintext...)
		_, err := Encrypt(in, "key")
		require.NoError(t, err)
		require.Equal(t, plaintext, in)

		ct := append([]byte(nil), encryptedExpect...)
		_, err = Decrypt(ct, "key")
		require.NoError(t, err)
		require.Equal(t, encryptedExpect, ct)
	})
}

func TestEncryptKnownVector(t *testing.T) {
	key, _ := hex.DecodeString("00010002000300040005000600070008")
	data, _ := hex.DecodeString("00000001000200030000000100020003")
	encryptedExpect, _ := hex.DecodeString("11fbed2b01986de511fbed2b01986de5")
	res, err := EncryptKey(data, key)
	require.NoError(t, err)
	require.Equal(t, encryptedExpect, res)

	res, err = DecryptKey(res, key)
	require.NoError(t, err)
	require.Equal(t, data, res)
}

func TestEncryptPadding(t *testing.T) {
	for i := 1; i <= 3*BlockSize; i++ {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			data := bytes.Repeat([]byte{0xa5}, i)
			res, err := Encrypt(data, "padding")
			require.NoError(t, err)
			require.Equal(t, (i+BlockSize-1)/BlockSize*BlockSize, len(res))
			if i%BlockSize == 0 {
				require.Equal(t, i, len(res))
			}

			decrypted, err := Decrypt(res, "padding")
			require.NoError(t, err)
			require.Equal(t, data, decrypted)
		})
	}
	t.Run("Empty", func(t *testing.T) {
		res, err := Encrypt(nil, "padding")
		require.NoError(t, err)
		require.Empty(t, res)
		decrypted, err := Decrypt(res, "padding")
		require.NoError(t, err)
		require.Empty(t, decrypted)
	})
}

func TestDecryptTrailingZeros(t *testing.T) {
	data := []byte{'a', 'b', 'c', 0, 0}
	res, err := Encrypt(data, "key")
	require.NoError(t, err)
	decrypted, err := Decrypt(res, "key")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), decrypted)
}

func TestDecryptBlockSize(t *testing.T) {
	for _, n := range []int{1, 7, 9, 15} {
		res, err := Decrypt(make([]byte, n), "key")
		require.ErrorIs(t, err, ErrBlockSize)
		require.Nil(t, res)
	}
}

func TestKeyLength(t *testing.T) {
	_, err := EncryptKey([]byte("data"), make([]byte, 8))
	require.ErrorIs(t, err, ErrInvalidKeyLength)
	_, err = DecryptKey(make([]byte, BlockSize), make([]byte, 24))
	require.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		var key Key
		r.Read(key[:])
		data := make([]byte, BlockSize*(1+r.Intn(16)))
		r.Read(data)
		if data[len(data)-1] == 0 {
			data[len(data)-1] = 1
		}
		res, err := EncryptKey(data, key[:])
		require.NoError(t, err)
		decrypted, err := DecryptKey(res, key[:])
		require.NoError(t, err)
		require.Equal(t, data, decrypted)
	}
}

func TestProcessBlocksParallel(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	var key Key
	r.Read(key[:])
	// uneven block count so the last chunk is short
	data := make([]byte, BlockSize*(parallelThreshold*3+5))
	r.Read(data)

	c := NewCipherFromKey(key, Encryption)
	sequential := append([]byte(nil), data...)
	processRange(c, sequential)
	parallel := append([]byte(nil), data...)
	processBlocks(c, parallel)
	require.Equal(t, sequential, parallel)

	processBlocks(NewCipherFromKey(key, Decryption), parallel)
	require.Equal(t, data, parallel)
}

func BenchmarkEncrypt(b *testing.B) {
	data := make([]byte, BlockSize*parallelThreshold*4)
	rand.Read(data)
	b.Run("Encrypt", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			_, _ = Encrypt(data, "benchmark")
		}
	})
}
