package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const seedAvatar = "/art/avatar.jpeg"

func chainID(id int64) *int64 { return &id }

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedWorks is the demo catalog loaded into an empty store
func SeedWorks() []Work {
	return []Work{
		{
			ID:          "1",
			Slug:        "ethereal-dreams",
			Title:       "Ethereal Dreams",
			Description: "A journey through the clouds of a digital sky.",
			Media:       []Media{{Type: MediaImage, URL: "/art/1742821706278.png"}},
			Creator:     Creator{Address: "0x123...abc", DisplayName: "Studio Glimmer", AvatarURL: seedAvatar},
			Editions: []Edition{
				{EditionID: 1, Supply: 10, Price: decimal.RequireFromString("0.5"), Currency: "ETH"},
			},
			Chain:           Chain{Type: ChainEVM, ChainID: chainID(1)},
			Status:          StatusListed,
			Type:            TypeStandard,
			Tags:            []string{"abstract", "dream", "sky", "digital"},
			PhysicalOptions: []string{"canvas_print", "metal_print"},
			Stats:           Stats{Favorites: 120, Sales: 15},
			CreatedAt:       mustTime("2025-08-18T10:00:00Z"),
		},
		{
			ID:          "2",
			Slug:        "concrete-jungle-box",
			Title:       "Concrete Jungle (Blind Box)",
			Description: "Unbox a unique perspective of the city. What will you get?",
			Media:       []Media{{Type: MediaImage, URL: "/art/concrete-jungle.jpg"}},
			Creator:     Creator{Address: "0x456...def", DisplayName: "Urban Lens", AvatarURL: seedAvatar},
			Editions: []Edition{
				{EditionID: 1, Supply: 100, Price: decimal.RequireFromString("0.1"), Currency: "ETH"},
			},
			Chain:           Chain{Type: ChainEVM, ChainID: chainID(137)},
			Status:          StatusListed,
			Type:            TypeBlindbox,
			Tags:            []string{"cityscape", "urban", "light", "blindbox"},
			PhysicalOptions: []string{"framed_print"},
			Stats:           Stats{Favorites: 350, Sales: 50},
			CreatedAt:       mustTime("2025-08-19T11:00:00Z"),
			BlindboxStyles: []BlindboxStyle{
				{Name: "Daylight Commute", MediaURL: "/art/daylight-commute.jpg", Rarity: "Common", Probability: 60},
				{Name: "Midnight Neon", MediaURL: "/art/midnight-neon.jpg", Rarity: "Rare", Probability: 30},
				{Name: "Golden Hour Gridlock", MediaURL: "/art/golden-hour-gridlock.jpg", Rarity: "Super Rare", Probability: 9.9},
				{Name: "The Glitch", MediaURL: "/art/the-glitch.jpg", Rarity: "Legendary", Probability: 0.1},
			},
		},
		{
			ID:          "3",
			Slug:        "oceanic-whispers",
			Title:       "Oceanic Whispers",
			Description: "Secrets of the deep, whispered in waves of color.",
			Media:       []Media{{Type: MediaImage, URL: "/art/oceanic-whispers.jpg"}},
			Creator:     Creator{Address: "0x789...ghi", DisplayName: "Aqua Chroma", AvatarURL: seedAvatar},
			// sold out
			Editions: []Edition{
				{EditionID: 1, Supply: 0, Price: decimal.RequireFromString("1.2"), Currency: "ETH"},
			},
			Chain:           Chain{Type: ChainEVM, ChainID: chainID(1)},
			Status:          StatusListed,
			Type:            TypeStandard,
			Tags:            []string{"ocean", "abstract", "color", "underwater"},
			PhysicalOptions: []string{"canvas_print", "acrylic_print"},
			Stats:           Stats{Favorites: 300, Sales: 5},
			CreatedAt:       mustTime("2025-08-15T11:00:00Z"),
		},
		{
			ID:          "4",
			Slug:        "forest-spirit",
			Title:       "Forest Spirit",
			Description: "A guardian of the ancient woods, rendered in digital light.",
			Media:       []Media{{Type: MediaImage, URL: "/art/forest-spirit.jpg"}},
			Creator:     Creator{Address: "0xabc...123", DisplayName: "Sylva Digital", AvatarURL: seedAvatar},
			Editions: []Edition{
				{EditionID: 1, Supply: 50, Price: decimal.RequireFromString("0.1"), Currency: "SUI"},
			},
			Chain:           Chain{Type: ChainSui},
			Status:          StatusListed,
			Type:            TypeStandard,
			Tags:            []string{"forest", "fantasy", "spirit", "nature"},
			PhysicalOptions: []string{"wood_print"},
			Stats:           Stats{Favorites: 80, Sales: 45},
			CreatedAt:       mustTime("2025-08-12T09:00:00Z"),
		},
	}
}
