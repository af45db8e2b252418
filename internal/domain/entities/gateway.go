package entities

import "time"

// GatewayType is the closed enumeration of supported sub-acquirers. Adding a
// gateway means adding a constant here plus the matching adapter and webhook
// normalizer; the factory switch makes the addition compile-time checked.

type GatewayType string

const (
	GatewayTypeSubadqA GatewayType = "subadq_a"
	GatewayTypeSubadqB GatewayType = "subadq_b"
)

func (t GatewayType) Valid() bool {
	switch t {
	case GatewayTypeSubadqA, GatewayTypeSubadqB:
		return true
	}
	return false
}

// Gateway is a configured sub-acquirer record. Read-only from this service's
// perspective; records are seeded by operations.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (type-index): type, unique per type

type Gateway struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      GatewayType `json:"type"`
	BaseURL   string      `json:"base_url"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}
