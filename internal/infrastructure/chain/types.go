package chain

import "errors"

// Product types as encoded in config().ptype
const (
	ProductNormal   = "NORMAL"
	ProductBlindbox = "BLINDBOX"
	ProductUnknown  = "UNKNOWN"
)

var (
	ErrInvalidAddress = errors.New("invalid contract address")
	ErrNotConfigured  = errors.New("rpc endpoint not configured")
)

// CollectionInfo is the on-chain state of an ArtProductCollection
type CollectionInfo struct {
	Address     string           `json:"address"`
	ChainID     int64            `json:"chainId"`
	Name        string           `json:"name"`
	Symbol      string           `json:"symbol"`
	TotalSupply string           `json:"totalSupply"`
	Config      CollectionConfig `json:"config"`
	Styles      []Style          `json:"styles"`
}

type CollectionConfig struct {
	ProductType   string `json:"productType"`
	PriceWei      string `json:"priceWei"`
	MaxSupply     uint32 `json:"maxSupply"`
	UnrevealedURI string `json:"unrevealedUri,omitempty"`
	Creator       string `json:"creator"`
	Registry      string `json:"registry"`
}

type Style struct {
	Index     int    `json:"index"`
	WeightBp  uint16 `json:"weightBp"`
	MaxSupply uint32 `json:"maxSupply"`
	Minted    uint32 `json:"minted"`
	BaseURI   string `json:"baseUri"`
}

func productType(ptype uint8) string {
	switch ptype {
	case 0:
		return ProductNormal
	case 1:
		return ProductBlindbox
	default:
		return ProductUnknown
	}
}
