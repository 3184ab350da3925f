// Package crypto keeps bank account numbers encrypted at rest. The key is
// never stored whole: it is the XOR of every part held in the key file.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

const (
	KeySize    = 32
	PartsCount = 64
)

var ErrKeyFileMissing = errors.New("key file does not exist")

type KeySplitter struct {
	File   string
	logger *zap.Logger
}

func NewKeySplitter(file string, logger ...*zap.Logger) *KeySplitter {
	l := zap.L().Named("crypto.keysplit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &KeySplitter{File: file, logger: l}
}

// CreateSplitKey writes a fresh split key unless the file already exists.
// An existing file is never overwritten: data encrypted under it would be lost.
func (k *KeySplitter) CreateSplitKey() error {
	if _, err := os.Stat(k.File); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat key file: %w", err)
	}

	key, err := randomKey()
	if err != nil {
		return err
	}

	parts := make([]string, 0, PartsCount)
	for i := 0; i < PartsCount-1; i++ {
		part, err := randomKey()
		if err != nil {
			return err
		}
		parts = append(parts, base64.StdEncoding.EncodeToString(part))
		xorInto(key, part)
	}
	parts = append(parts, base64.StdEncoding.EncodeToString(key))

	data, err := json.Marshal(parts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(k.File, data, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}

	k.logger.Info("split key parts created", zap.String("file", k.File))
	return nil
}

// RealKey reassembles the key from the parts on disk.
func (k *KeySplitter) RealKey() ([]byte, error) {
	data, err := os.ReadFile(k.File)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrKeyFileMissing, k.File)
	}
	if err != nil {
		return nil, err
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("parse key file %s: %w", k.File, err)
	}
	if len(parts) != PartsCount {
		return nil, fmt.Errorf("invalid number of split key parts in %s: %d", k.File, len(parts))
	}

	key := make([]byte, KeySize)
	for i, p := range parts {
		raw, err := base64.StdEncoding.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("decode key part %d: %w", i, err)
		}
		if len(raw) != KeySize {
			return nil, fmt.Errorf("key part %d has %d bytes", i, len(raw))
		}
		xorInto(key, raw)
	}
	return key, nil
}

func randomKey() ([]byte, error) {
	b := make([]byte, KeySize)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return b, nil
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
