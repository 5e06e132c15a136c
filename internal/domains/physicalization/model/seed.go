package model

import "time"

const seedOwner = "0xdef...456"

// SeedPhysicalizations is the demo data loaded into an empty store
func SeedPhysicalizations() []Physicalization {
	return []Physicalization{
		{
			PhysicalizationID: "phy-001",
			OrderID:           "ord-001",
			WorkID:            "1",
			OwnerAddress:      seedOwner,
			Status:            StatusShipped,
			RequestDate:       time.Date(2025, 8, 16, 9, 0, 0, 0, time.UTC),
			ShippingInfo: &ShippingInfo{
				Address:        "123 Art Lane, Collector City, 12345",
				TrackingNumber: "1Z999AA10123456784",
				Carrier:        "UPS",
			},
		},
		{
			PhysicalizationID: "phy-002",
			OrderID:           "ord-002",
			WorkID:            "3",
			OwnerAddress:      seedOwner,
			Status:            StatusRequested,
			RequestDate:       time.Date(2025, 8, 18, 18, 0, 0, 0, time.UTC),
		},
	}
}
