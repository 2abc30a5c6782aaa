// File: utils/constants.go
package utils

import "time"

// Suffixes for the per-store Redis keys of a flow session. Each store is
// persisted independently, mirroring the client's separate storage entries.
const (
	RegistrationStorageKey = "registration-storage"
	GroupStorageKey        = "group-registration-storage"
	SpectatorStorageKey    = "spectator-storage"
	PaymentStorageKey      = "payment-storage"
	TypeStorageKey         = "registration-type-storage"
)

// EventCacheTTL is the time-to-live for cached upstream event records.
const EventCacheTTL = 5 * time.Minute
