package services

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"shinaBack/internal/models"
)

const (
	maxBrandMatches = 5
	maxModelMatches = 5
	modelsPerBrand  = 2
)

// popularBrandSlugs is the curated set of manufacturers whose models are
// always probed during autocomplete, so that a model-only query like "camry"
// still finds its brand.
var popularBrandSlugs = []string{
	// European
	"audi", "bmw", "mercedes-benz", "volkswagen", "skoda", "opel",
	"porsche", "volvo", "renault", "peugeot", "citroen", "fiat", "land-rover",
	// Japanese
	"toyota", "nissan", "honda", "mazda", "mitsubishi", "subaru",
	"suzuki", "lexus", "infiniti",
	// Korean
	"hyundai", "kia", "genesis", "ssangyong",
	// American
	"ford", "chevrolet", "jeep", "cadillac", "dodge",
	// Chinese
	"geely", "chery", "haval", "changan", "exeed", "omoda", "jac", "byd",
	// Russian
	"lada", "uaz", "gaz",
}

// FitmentCatalog is the slice of the fitment API the aggregator needs.
type FitmentCatalog interface {
	Brands(ctx context.Context) ([]models.BrandRef, error)
	Models(ctx context.Context, brandSlug string) ([]models.ModelRef, error)
}

// SearchService resolves free-text vehicle queries into brand and model
// suggestions.
type SearchService struct {
	Catalog FitmentCatalog
}

// Search returns up to 5 brand and 5 model matches for the query. The first
// word is treated as the brand candidate and the remainder as the model
// phrase. Model lookups fan out in parallel over the matched brands plus the
// curated popular set; a failed per-brand lookup contributes zero models
// without failing the request.
func (s *SearchService) Search(ctx context.Context, query string) (models.SearchResponse, error) {
	resp := models.SearchResponse{
		Brands: []models.SearchMatch{},
		Models: []models.SearchMatch{},
	}

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return resp, nil
	}

	lower := strings.ToLower(query)
	words := strings.Fields(lower)
	firstWord := words[0]
	remaining := strings.Join(words[1:], " ")

	brands, err := s.Catalog.Brands(ctx)
	if err != nil {
		return resp, err
	}

	brandNameBySlug := make(map[string]string, len(brands))
	for _, b := range brands {
		brandNameBySlug[b.Slug] = b.Name
	}

	// Brand matches keep upstream order; no secondary sort.
	for _, b := range brands {
		name := strings.ToLower(b.Name)
		if !strings.Contains(name, firstWord) && !strings.Contains(name, lower) {
			continue
		}
		resp.Brands = append(resp.Brands, models.SearchMatch{
			Type: models.MatchBrand,
			Name: b.Name,
			Slug: b.Slug,
		})
		if len(resp.Brands) == maxBrandMatches {
			break
		}
	}

	term := remaining
	if term == "" {
		term = lower
	}

	// Candidate brands in query order: matches first, then the popular set.
	seen := make(map[string]bool)
	candidates := make([]string, 0, len(resp.Brands)+len(popularBrandSlugs))
	for _, b := range resp.Brands {
		if !seen[b.Slug] {
			seen[b.Slug] = true
			candidates = append(candidates, b.Slug)
		}
	}
	for _, slug := range popularBrandSlugs {
		if !seen[slug] {
			seen[slug] = true
			candidates = append(candidates, slug)
		}
	}

	// One lookup per candidate brand, unbounded; results land in a slice
	// indexed by candidate position so merge order stays deterministic.
	perBrand := make([][]models.SearchMatch, len(candidates))
	var wg sync.WaitGroup
	for i, slug := range candidates {
		wg.Add(1)
		go func(i int, slug string) {
			defer wg.Done()
			refs, err := s.Catalog.Models(ctx, slug)
			if err != nil {
				return
			}
			ranked := rankModels(refs, term)
			if len(ranked) > modelsPerBrand {
				ranked = ranked[:modelsPerBrand]
			}
			brandName := brandNameBySlug[slug]
			if brandName == "" {
				brandName = humanizeSlug(slug)
			}
			matches := make([]models.SearchMatch, 0, len(ranked))
			for _, ref := range ranked {
				matches = append(matches, models.SearchMatch{
					Type:      models.MatchModel,
					Name:      ref.Name,
					Slug:      ref.Slug,
					BrandName: brandName,
					BrandSlug: slug,
				})
			}
			perBrand[i] = matches
		}(i, slug)
	}
	wg.Wait()

	for _, matches := range perBrand {
		for _, m := range matches {
			if len(resp.Models) == maxModelMatches {
				return resp, nil
			}
			resp.Models = append(resp.Models, m)
		}
	}
	return resp, nil
}

// rankModels filters models containing the term and orders them by match
// tier: exact, prefix, word boundary, everything else. Order is stable
// within a tier.
func rankModels(refs []models.ModelRef, term string) []models.ModelRef {
	matched := make([]models.ModelRef, 0)
	for _, ref := range refs {
		if strings.Contains(strings.ToLower(ref.Name), term) {
			matched = append(matched, ref)
		}
	}
	if len(matched) < 2 {
		return matched
	}

	boundary := boundaryPattern(term)
	tier := func(name string) int {
		lower := strings.ToLower(name)
		switch {
		case lower == term:
			return 0
		case strings.HasPrefix(lower, term):
			return 1
		case boundary.MatchString(name):
			return 2
		default:
			return 3
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return tier(matched[i].Name) < tier(matched[j].Name)
	})
	return matched
}

// boundaryPattern matches the term delimited by start/end, whitespace or a
// hyphen, with metacharacters escaped.
func boundaryPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|\s|-)` + regexp.QuoteMeta(term) + `($|\s|-)`)
}

// humanizeSlug turns a brand slug into a readable fallback name when the
// brand list does not contain it. Parts of up to three letters are treated
// as acronyms (bmw, uaz, gaz).
func humanizeSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if len(p) <= 3 {
			parts[i] = strings.ToUpper(p)
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
