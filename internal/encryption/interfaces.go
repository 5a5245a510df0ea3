// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package encryption

type EncrypterInterface interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
