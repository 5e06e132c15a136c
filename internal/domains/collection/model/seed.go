package model

import "time"

const seedOwner = "0xdef...456"

// SeedCollection is the demo wallet's holdings
func SeedCollection() []CollectionItem {
	return []CollectionItem{
		{TokenID: "101", WorkID: "1", OwnerAddress: seedOwner, Status: StatusListed, PurchaseDate: time.Date(2025, 8, 15, 14, 30, 0, 0, time.UTC)},
		{TokenID: "201", WorkID: "3", OwnerAddress: seedOwner, Status: StatusOwned, PurchaseDate: time.Date(2025, 8, 10, 11, 0, 0, 0, time.UTC)},
		{TokenID: "401", WorkID: "4", OwnerAddress: seedOwner, Status: StatusPhysicalizing, PurchaseDate: time.Date(2025, 8, 5, 18, 0, 0, 0, time.UTC)},
	}
}
