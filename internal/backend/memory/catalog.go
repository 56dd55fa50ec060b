package memory

import "github.com/tamarw/sillage/internal/domain"

// seedCatalog returns the built-in development catalog. Kept small but wide
// enough to exercise every filter field.
func seedCatalog() []domain.PerfumeSummary {
	return []domain.PerfumeSummary{
		{
			ID:          "9f2d1c3a-0001-4b5e-8f10-000000000001",
			Name:        "Cedar Line",
			Brand:       "Maison Verte",
			Gender:      domain.GenderForMen,
			Accords:     []string{"woody", "musky"},
			TopNotes:    []string{"bergamot", "pepper"},
			MiddleNotes: []string{"cedar", "vetiver"},
			BaseNotes:   []string{"musk", "amber"},
			ImageURLs:   []string{"https://img.example/cedar-line.jpg"},
			Tradable:    true,
			LikeCount:   412,
		},
		{
			ID:          "9f2d1c3a-0002-4b5e-8f10-000000000002",
			Name:        "Jardin Blanc",
			Brand:       "Maison Verte",
			Gender:      domain.GenderForWomen,
			Accords:     []string{"floral", "sweet"},
			TopNotes:    []string{"pear", "neroli"},
			MiddleNotes: []string{"jasmine", "rose"},
			BaseNotes:   []string{"vanilla", "musk"},
			ImageURLs:   []string{"https://img.example/jardin-blanc.jpg"},
			Tradable:    false,
			LikeCount:   388,
		},
		{
			ID:          "9f2d1c3a-0003-4b5e-8f10-000000000003",
			Name:        "Agrume",
			Brand:       "Atelier Sud",
			Gender:      domain.GenderNone,
			Accords:     []string{"fresh", "citrus"},
			TopNotes:    []string{"lemon", "grapefruit"},
			MiddleNotes: []string{"petitgrain"},
			BaseNotes:   []string{"cedar"},
			ImageURLs:   []string{"https://img.example/agrume.jpg"},
			Tradable:    true,
			LikeCount:   301,
		},
		{
			ID:          "9f2d1c3a-0004-4b5e-8f10-000000000004",
			Name:        "Nuit d'Ambre",
			Brand:       "Atelier Sud",
			Gender:      domain.GenderForWomen,
			Accords:     []string{"musky", "amber", "sweet"},
			TopNotes:    []string{"saffron"},
			MiddleNotes: []string{"labdanum", "rose"},
			BaseNotes:   []string{"amber", "vanilla"},
			ImageURLs:   []string{"https://img.example/nuit-dambre.jpg"},
			Tradable:    true,
			LikeCount:   275,
		},
		{
			ID:          "9f2d1c3a-0005-4b5e-8f10-000000000005",
			Name:        "Forge",
			Brand:       "Brume Noire",
			Gender:      domain.GenderForMen,
			Accords:     []string{"spicy", "woody"},
			TopNotes:    []string{"cinnamon", "pink pepper"},
			MiddleNotes: []string{"incense"},
			BaseNotes:   []string{"oud", "leather"},
			ImageURLs:   []string{"https://img.example/forge.jpg"},
			Tradable:    false,
			LikeCount:   240,
		},
		{
			ID:          "9f2d1c3a-0006-4b5e-8f10-000000000006",
			Name:        "Marée",
			Brand:       "Brume Noire",
			Gender:      domain.GenderNone,
			Accords:     []string{"fresh", "aquatic"},
			TopNotes:    []string{"sea salt", "mint"},
			MiddleNotes: []string{"sage"},
			BaseNotes:   []string{"driftwood"},
			ImageURLs:   []string{"https://img.example/maree.jpg"},
			Tradable:    true,
			LikeCount:   198,
		},
		{
			ID:          "9f2d1c3a-0007-4b5e-8f10-000000000007",
			Name:        "Poudre de Lune",
			Brand:       "Maison Verte",
			Gender:      domain.GenderForWomen,
			Accords:     []string{"powdery", "floral"},
			TopNotes:    []string{"iris", "violet"},
			MiddleNotes: []string{"heliotrope"},
			BaseNotes:   []string{"tonka", "musk"},
			ImageURLs:   []string{"https://img.example/poudre-de-lune.jpg"},
			Tradable:    false,
			LikeCount:   167,
		},
		{
			ID:          "9f2d1c3a-0008-4b5e-8f10-000000000008",
			Name:        "Orient Express",
			Brand:       "Atelier Sud",
			Gender:      domain.GenderForMen,
			Accords:     []string{"oriental", "spicy", "amber"},
			TopNotes:    []string{"cardamom"},
			MiddleNotes: []string{"myrrh", "cinnamon"},
			BaseNotes:   []string{"amber", "benzoin"},
			ImageURLs:   []string{"https://img.example/orient-express.jpg"},
			Tradable:    true,
			LikeCount:   154,
		},
		{
			ID:          "9f2d1c3a-0009-4b5e-8f10-000000000009",
			Name:        "Verger",
			Brand:       "Jardin Privé",
			Gender:      domain.GenderForWomen,
			Accords:     []string{"fruity", "sweet"},
			TopNotes:    []string{"apple", "blackcurrant"},
			MiddleNotes: []string{"peach", "freesia"},
			BaseNotes:   []string{"cedar", "musk"},
			ImageURLs:   []string{"https://img.example/verger.jpg"},
			Tradable:    true,
			LikeCount:   133,
		},
		{
			ID:          "9f2d1c3a-000a-4b5e-8f10-00000000000a",
			Name:        "Racine",
			Brand:       "Jardin Privé",
			Gender:      domain.GenderNone,
			Accords:     []string{"woody", "green"},
			TopNotes:    []string{"galbanum"},
			MiddleNotes: []string{"vetiver", "fig leaf"},
			BaseNotes:   []string{"patchouli", "moss"},
			ImageURLs:   []string{"https://img.example/racine.jpg"},
			Tradable:    false,
			LikeCount:   95,
		},
	}
}
