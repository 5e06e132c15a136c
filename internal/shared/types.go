package shared

import "time"

// Task types handled by cmd/worker
const (
	TypePhysicalizationRequested = "physicalization:requested"
	TypeDeleteStorageObject      = "storage:delete_object"
	TypePurgeCatalogCache        = "catalog:purge_cache"
)

// Queues and their worker priorities
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// PhysicalizationRequestedPayload is enqueued after a physicalization request is accepted
type PhysicalizationRequestedPayload struct {
	WorkID        string        `json:"workId"`
	WalletAddress string        `json:"walletAddress"`
	ShippingInfo  *ShippingInfo `json:"shippingInfo,omitempty"`
	RequestedAt   time.Time     `json:"requestedAt"`
}

// ShippingInfo (kept here to avoid an import cycle with the physicalization domain)
type ShippingInfo struct {
	Address        string `json:"address"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
}

// DeleteStorageObjectPayload retries the removal of an orphaned upload
type DeleteStorageObjectPayload struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// PurgeCatalogCachePayload drops cached search pages
type PurgeCatalogCachePayload struct {
	Pattern string `json:"pattern"`
}
