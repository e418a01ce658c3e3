package tools

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex devolve uma string hex com nBytes de entropia criptográfica.
// Usado pros tokens de reset de senha.
func RandomHex(nBytes int) string {
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		// rand.Read só falha se o SO estiver quebrado
		panic(err)
	}
	return hex.EncodeToString(b)
}
