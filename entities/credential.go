package entities

import "strings"

// Credential is either RealCredential or NoCredential.
type Credential interface {
	isCredential()
}

// RealCredential carries a provider API key for the duration of one request.
type RealCredential struct {
	Key string
}

// NoCredential selects the offline fallback.
type NoCredential struct{}

func (RealCredential) isCredential() {}
func (NoCredential) isCredential()   {}

// ParseCredential never validates the key, it only checks presence.
func ParseCredential(raw string) Credential {
	key := strings.TrimSpace(raw)
	if key == "" {
		return NoCredential{}
	}
	return RealCredential{Key: key}
}

// String masks the key so credentials never reach the logs.
func (c RealCredential) String() string {
	if len(c.Key) <= 4 {
		return "****"
	}
	return "****" + c.Key[len(c.Key)-4:]
}
