// Package news selects and scores stories for personalized briefings. A
// live RSS path is tried first when feeds are configured; the built-in
// catalog serves as the designed fallback.
package news

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/brieflyhq/briefly/pkg/domain"
)

// baseCategories are always part of a personalized briefing
var baseCategories = []string{"technology", "productivity", "health"}

// Service answers briefing requests from the static catalog and,
// when a fetcher is supplied, from live RSS feeds
type Service struct {
	catalog map[string][]domain.NewsItem
	fetcher *Fetcher
	now     func() time.Time
}

// NewService creates a news service. The fetcher may be nil, which leaves
// only the catalog path.
func NewService(fetcher *Fetcher) *Service {
	return &Service{
		catalog: catalog(time.Now()),
		fetcher: fetcher,
		now:     time.Now,
	}
}

// ByCategory returns up to maxStories items across the requested
// categories, taking an equal share from each. Unknown categories yield no
// items; lookup is case-insensitive. Deterministic.
func (s *Service) ByCategory(categories []string, maxStories int) domain.Briefing {
	if maxStories <= 0 {
		maxStories = 5
	}
	if len(categories) == 0 {
		return domain.Briefing{
			Summary:     "No categories requested",
			GeneratedAt: s.now(),
			Source:      "Briefly News",
		}
	}

	var items []domain.NewsItem
	perCategory := (maxStories + len(categories) - 1) / len(categories) // ceil
	for _, category := range categories {
		catalogItems := s.catalog[strings.ToLower(category)]
		if len(catalogItems) > perCategory {
			catalogItems = catalogItems[:perCategory]
		}
		items = append(items, catalogItems...)
	}
	if len(items) > maxStories {
		items = items[:maxStories]
	}

	return domain.Briefing{
		Items:       items,
		Summary:     fmt.Sprintf("Latest updates in %s", strings.Join(categories, ", ")),
		GeneratedAt: s.now(),
		Source:      "Briefly News",
	}
}

// Local returns templated local stories for the location. The radius is
// accepted for API compatibility but not used.
func (s *Service) Local(location string, _ int) domain.Briefing {
	now := s.now()
	items := []domain.NewsItem{
		{
			Title:       fmt.Sprintf("%s Tech Community Growing", location),
			Description: fmt.Sprintf("Local developers and entrepreneurs in %s are forming new collaborations and startups.", location),
			Category:    "local",
			Source:      "Local Tech News",
			PublishedAt: now,
			URL:         "#",
			Relevance:   0.7,
		},
		{
			Title:       fmt.Sprintf("Weather Perfect for Outdoor Meetings in %s", location),
			Description: "Clear skies and comfortable temperatures make this a great week for walking meetings.",
			Category:    "local",
			Source:      "Local Weather",
			PublishedAt: now,
			URL:         "#",
			Relevance:   0.6,
		},
	}

	return domain.Briefing{
		Items:       items,
		Summary:     fmt.Sprintf("What's happening in and around %s", location),
		GeneratedAt: now,
		Source:      "Briefly Local",
	}
}

// PersonalizedBriefing selects, scores, and summarizes stories for the
// user's preferences. Live feeds are tried first; failure there is the
// designed trigger for the catalog fallback, reported as a degraded result
// rather than an error.
func (s *Service) PersonalizedBriefing(ctx context.Context, prefs domain.Preferences, style domain.BriefingStyle) domain.Result[domain.Briefing] {
	categories := s.relevantCategories(prefs)

	if s.fetcher != nil && s.fetcher.Enabled() {
		items, err := s.fetcher.Fetch(ctx, categories)
		if err == nil && len(items) > 0 {
			return domain.Ok(s.buildBriefing(items, prefs, style, "Briefly Live"))
		}
		reason := "live feeds returned no stories"
		if err != nil {
			reason = fmt.Sprintf("live feeds unavailable: %v", err)
			log.Printf("[WARN] %s", reason)
		}
		return domain.Fallback(s.mockBriefing(categories, prefs, style), reason)
	}

	return domain.Fallback(s.mockBriefing(categories, prefs, style), "no live news feeds configured")
}

// mockBriefing assembles a briefing from the static catalog
func (s *Service) mockBriefing(categories []string, prefs domain.Preferences, style domain.BriefingStyle) domain.Briefing {
	var items []domain.NewsItem
	for _, category := range categories {
		items = append(items, s.catalog[category]...)
	}
	return s.buildBriefing(items, prefs, style, "Briefly News Network")
}

// buildBriefing recomputes relevance, substitutes the location into titles,
// sorts, truncates per style, and composes the summary line
func (s *Service) buildBriefing(items []domain.NewsItem, prefs domain.Preferences, style domain.BriefingStyle, source string) domain.Briefing {
	scored := make([]domain.NewsItem, len(items))
	for i, item := range items {
		if prefs.Location != "" {
			item.Title = strings.ReplaceAll(item.Title, "Local", prefs.Location)
		}
		item.Relevance = relevance(item, prefs)
		scored[i] = item
	}

	// stable keeps catalog order on ties
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Relevance > scored[j].Relevance
	})

	limit := 5
	if style == domain.StyleDetailed {
		limit = 8
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}

	return domain.Briefing{
		Items:       scored,
		Summary:     summary(scored, style),
		GeneratedAt: s.now(),
		Source:      source,
	}
}

// relevantCategories is the base set plus local when a location is known
// plus any interests not already present, lower-cased
func (s *Service) relevantCategories(prefs domain.Preferences) []string {
	categories := make([]string, len(baseCategories))
	copy(categories, baseCategories)

	if prefs.Location != "" {
		categories = append(categories, "local")
	}

	for _, interest := range prefs.Interests {
		interest = strings.ToLower(interest)
		found := false
		for _, c := range categories {
			if c == interest {
				found = true
				break
			}
		}
		if !found {
			categories = append(categories, interest)
		}
	}

	return categories
}

// relevance boosts the item's base score for interest matches and local
// stories, clamped to [0, 1]
func relevance(item domain.NewsItem, prefs domain.Preferences) float64 {
	score := item.Relevance
	if score == 0 {
		score = 0.5
	}

	for _, interest := range prefs.Interests {
		lowered := strings.ToLower(interest)
		if strings.Contains(strings.ToLower(item.Title), lowered) ||
			strings.Contains(strings.ToLower(item.Description), lowered) {
			score += 0.3
			break
		}
	}

	if prefs.Location != "" && item.Category == "local" {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}
	if score < 0 {
		score = 0
	}
	return score
}

// summary composes the one-line briefing summary per style
func summary(items []domain.NewsItem, style domain.BriefingStyle) string {
	switch style {
	case domain.StyleConcise:
		return fmt.Sprintf("Your %d most relevant news stories today.", len(items))
	case domain.StyleMotivational:
		return fmt.Sprintf("Stay informed and inspired with %d carefully selected updates!", len(items))
	default:
		var seen []string
		for _, item := range items {
			found := false
			for _, c := range seen {
				if c == item.Category {
					found = true
					break
				}
			}
			if !found {
				seen = append(seen, item.Category)
			}
		}
		return fmt.Sprintf("Today's briefing includes %d stories across %s.", len(items), strings.Join(seen, ", "))
	}
}
