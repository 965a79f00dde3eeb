package content

import (
	"cmp"
	"slices"

	"github.com/dmitrijs2005/artfolio/internal/server/models"
)

// DefaultRelatedArtworks is the related-works limit used when none is given.
const DefaultRelatedArtworks = 4

// CompareArtworks orders by display priority descending (absent counts as 0),
// then by creation time descending, then by ID ascending.
func CompareArtworks(a, b *models.Artwork) int {
	if c := cmp.Compare(b.Priority(), a.Priority()); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// RankArtworks returns a ranked copy; the input slice is not modified.
func RankArtworks(artworks []*models.Artwork) []*models.Artwork {
	out := slices.Clone(artworks)
	slices.SortStableFunc(out, CompareArtworks)
	return out
}

func FeaturedArtworks(artworks []*models.Artwork) []*models.Artwork {
	out := filter(artworks, func(a *models.Artwork) bool { return a.Featured })
	slices.SortStableFunc(out, CompareArtworks)
	return out
}

// RelatedArtworks returns up to limit ranked artworks of the same category,
// excluding excludeID.
func RelatedArtworks(artworks []*models.Artwork, category, excludeID string, limit int) []*models.Artwork {
	if limit <= 0 {
		limit = DefaultRelatedArtworks
	}
	out := filter(artworks, func(a *models.Artwork) bool {
		return a.Category == category && a.ID != excludeID
	})
	slices.SortStableFunc(out, CompareArtworks)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
