package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const seedBuyer = "0xdef...456"

// SeedOrders is the demo order history loaded into an empty store
func SeedOrders() []Order {
	return []Order{
		{
			OrderID: "ord-001", WorkID: "1", EditionID: 1, Quantity: 1, BuyerAddress: seedBuyer,
			Price: decimal.RequireFromString("0.5"), Currency: "ETH", Status: StatusCompleted,
			Timestamp: time.Date(2025, 8, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			OrderID: "ord-002", WorkID: "3", EditionID: 1, Quantity: 1, BuyerAddress: seedBuyer,
			Price: decimal.RequireFromString("1.2"), Currency: "ETH", Status: StatusCompleted,
			Timestamp: time.Date(2025, 8, 10, 11, 0, 0, 0, time.UTC),
		},
		{
			OrderID: "ord-003", WorkID: "2", EditionID: 1, Quantity: 1, BuyerAddress: seedBuyer,
			Price: decimal.RequireFromString("0.2"), Currency: "ETH", Status: StatusPending,
			Timestamp: time.Date(2025, 8, 19, 10, 0, 0, 0, time.UTC),
		},
	}
}
