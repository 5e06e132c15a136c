package model

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ============ ENUMS ============

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	Media3D    MediaKind = "3d"
)

type ChainType string

const (
	ChainEVM ChainType = "evm"
	ChainSui ChainType = "sui"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusListed   Status = "listed"
	StatusUnlisted Status = "unlisted"
)

type WorkType string

const (
	TypeStandard WorkType = "standard"
	TypeBlindbox WorkType = "blindbox"
)

// Accepted values, used by filter validation
var (
	MediaKinds = []interface{}{MediaImage, MediaVideo, Media3D}
	ChainTypes = []interface{}{ChainEVM, ChainSui}
	WorkTypes  = []interface{}{TypeStandard, TypeBlindbox}
)

// ============ ENTITIES ============

type Media struct {
	Type  MediaKind `json:"type"`
	URL   string    `json:"url"`
	Cover string    `json:"cover,omitempty"`
}

type Creator struct {
	Address     string `json:"address"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

// Edition - a priced, supply-limited variant of a Work
type Edition struct {
	EditionID int             `json:"editionId"`
	Supply    int             `json:"supply"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
}

type Chain struct {
	Type            ChainType `json:"type"`
	ChainID         *int64    `json:"chainId,omitempty"`
	ContractAddress string    `json:"contractAddress,omitempty"`
}

type BlindboxStyle struct {
	Name        string  `json:"name"`
	MediaURL    string  `json:"mediaUrl"`
	Rarity      string  `json:"rarity"`
	Probability float64 `json:"probability"`
}

type Stats struct {
	Favorites int `json:"favorites"`
	Sales     int `json:"sales"`
}

// Work - core sellable art entity
type Work struct {
	ID              string          `json:"id"`
	Slug            string          `json:"slug"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Tags            []string        `json:"tags"`
	Media           []Media         `json:"media"`
	Creator         Creator         `json:"creator"`
	Editions        []Edition       `json:"editions"`
	Chain           Chain           `json:"chain"`
	Status          Status          `json:"status"`
	Type            WorkType        `json:"type"`
	BlindboxStyles  []BlindboxStyle `json:"blindboxStyles,omitempty"`
	PhysicalOptions []string        `json:"physicalOptions"`
	Stats           Stats           `json:"stats"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (w Work) DocumentID() string {
	return w.ID
}

// Edition looks up an edition by id
func (w Work) Edition(editionID int) (Edition, bool) {
	for _, e := range w.Editions {
		if e.EditionID == editionID {
			return e, true
		}
	}
	return Edition{}, false
}

// HasSupply reports whether any edition can still be sold
func (w Work) HasSupply() bool {
	return slices.ContainsFunc(w.Editions, func(e Edition) bool { return e.Supply > 0 })
}

// Visible is the storefront predicate: listed with supply left
func (w Work) Visible() bool {
	return w.Status == StatusListed && w.HasSupply()
}

// DisplayPrice is the first edition price, zero when there are no editions
func (w Work) DisplayPrice() decimal.Decimal {
	if len(w.Editions) == 0 {
		return decimal.Zero
	}
	return w.Editions[0].Price
}

// PrimaryMedia is the kind of the first media item
func (w Work) PrimaryMedia() (MediaKind, bool) {
	if len(w.Media) == 0 {
		return "", false
	}
	return w.Media[0].Type, true
}

// MatchesText is a case-insensitive substring match on title,
// description, creator name and tags.
func (w Work) MatchesText(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(w.Title), q) ||
		strings.Contains(strings.ToLower(w.Description), q) ||
		strings.Contains(strings.ToLower(w.Creator.DisplayName), q) {
		return true
	}
	for _, tag := range w.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// MatchesCreator: display-name substring or exact address, case-insensitive
func (w Work) MatchesCreator(c string) bool {
	c = strings.ToLower(c)
	return strings.Contains(strings.ToLower(w.Creator.DisplayName), c) ||
		strings.EqualFold(w.Creator.Address, c)
}

// OffersPhysical reports any overlap with the requested physical options
func (w Work) OffersPhysical(options []string) bool {
	for _, o := range options {
		if slices.Contains(w.PhysicalOptions, o) {
			return true
		}
	}
	return false
}
