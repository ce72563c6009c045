package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrDecryptToken = errors.New("não foi possível decifrar o token")

func secretKey(key string) *[32]byte {
	sum := sha256.Sum256([]byte(key))
	return &sum
}

// EncryptToken cifra o token com secretbox; o resultado é base64(nonce || caixa)
func EncryptToken(key, plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("erro ao gerar nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, secretKey(key))
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func DecryptToken(key, encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptToken, err)
	}

	if len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrDecryptToken
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, secretKey(key))
	if !ok {
		return "", ErrDecryptToken
	}

	return string(plain), nil
}
