package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

func signHex(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// validSignature сравнивает подписи за постоянное время. Пустой секрет
// не принимает ничего.
func validSignature(secret string, payload []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected := signHex(secret, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}
