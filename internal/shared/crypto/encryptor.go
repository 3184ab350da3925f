package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrDecrypt = errors.New("decrypt: malformed ciphertext")

// Encryptor is AES-256-CBC with PKCS7 padding. Ciphertexts are
// hex(iv || ct), the format already stored for existing staff rows.
type Encryptor struct {
	block cipher.Block
}

func NewEncryptor(key []byte) (*Encryptor, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Encryptor{block: block}, nil
}

// NewEncryptorFromFile loads (creating if needed) the split key file.
func NewEncryptorFromFile(path string) (*Encryptor, error) {
	splitter := NewKeySplitter(path)
	if err := splitter.CreateSplitKey(); err != nil {
		return nil, err
	}
	key, err := splitter.RealKey()
	if err != nil {
		return nil, err
	}
	return NewEncryptor(key)
}

func (e *Encryptor) Encrypt(text string) (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}

	plain := pad([]byte(text))
	out := make([]byte, aes.BlockSize+len(plain))
	copy(out, iv)
	cipher.NewCBCEncrypter(e.block, iv).CryptBlocks(out[aes.BlockSize:], plain)

	return hex.EncodeToString(out), nil
}

func (e *Encryptor) Decrypt(encrypted string) (string, error) {
	data, err := hex.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	if len(data) < 2*aes.BlockSize || len(data)%aes.BlockSize != 0 {
		return "", ErrDecrypt
	}

	iv, body := data[:aes.BlockSize], data[aes.BlockSize:]
	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(e.block, iv).CryptBlocks(plain, body)

	plain, err = unpad(plain)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, ErrDecrypt
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, ErrDecrypt
		}
	}
	return b[:len(b)-n], nil
}
