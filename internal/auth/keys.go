package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// APIKeyLength is the length in characters of a generated API key.
const APIKeyLength = 64

// NewAPIKey generates a random 64-character hex API key.
func NewAPIKey() (string, error) {
	buf := make([]byte, APIKeyLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// LooksLikeAPIKey reports whether a bearer credential has API-key shape,
// as opposed to a JWT.
func LooksLikeAPIKey(s string) bool {
	if len(s) != APIKeyLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// SignBody computes the webhook body signature: "sha256=<hex HMAC>".
func SignBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
