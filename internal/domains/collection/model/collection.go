package model

import (
	"time"

	workModel "stillform-backend/internal/domains/work/model"
)

type Status string

const (
	StatusOwned         Status = "owned"
	StatusListed        Status = "listed"
	StatusPhysicalizing Status = "physicalizing"
	StatusLocked        Status = "locked"
)

var Statuses = []interface{}{StatusOwned, StatusListed, StatusPhysicalizing, StatusLocked}

// CollectionItem is a token held by a wallet
type CollectionItem struct {
	TokenID      string    `json:"tokenId"`
	WorkID       string    `json:"workId"`
	OwnerAddress string    `json:"ownerAddress"`
	PurchaseDate time.Time `json:"purchaseDate"`
	Status       Status    `json:"status"`
}

func (c CollectionItem) DocumentID() string { return c.TokenID }

// Item is a collection entry joined with its work
type Item struct {
	CollectionItem
	Work workModel.Work `json:"work"`
}
