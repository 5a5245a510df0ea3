// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package encryption seals vendor configuration at rest with AES-256-GCM.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	ivLength  = 12
	tagLength = 16
	keyLength = 32

	scryptN = 16384
	scryptR = 8
	scryptP = 1

	DefaultSalt = "salt"
)

var (
	ErrEmptyKey         = errors.New("encryption key must not be empty")
	ErrMalformedPayload = errors.New("malformed encrypted payload")
)

var _ EncrypterInterface = (*Encrypter)(nil)

// Encrypter produces payloads formatted as hex(iv):hex(tag):hex(ciphertext).
type Encrypter struct {
	aead cipher.AEAD
}

func (e *Encrypter) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	sealed := e.aead.Seal(nil, iv, []byte(plaintext), nil)
	ct, tag := sealed[:len(sealed)-tagLength], sealed[len(sealed)-tagLength:]

	return strings.Join([]string{hex.EncodeToString(iv), hex.EncodeToString(tag), hex.EncodeToString(ct)}, ":"), nil
}

func (e *Encrypter) Decrypt(payload string) (string, error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 3 {
		return "", ErrMalformedPayload
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != ivLength {
		return "", ErrMalformedPayload
	}

	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != tagLength {
		return "", ErrMalformedPayload
	}

	ct, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrMalformedPayload
	}

	plaintext, err := e.aead.Open(nil, iv, append(ct, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt payload: %w", err)
	}

	return string(plaintext), nil
}

// NewEncrypter derives the AES key from secret and salt with scrypt.
func NewEncrypter(secret, salt string) (*Encrypter, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}
	if salt == "" {
		salt = DefaultSalt
	}

	key, err := scrypt.Key([]byte(secret), []byte(salt), scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcm: %w", err)
	}

	e := new(Encrypter)
	e.aead = aead

	return e, nil
}
