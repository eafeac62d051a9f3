package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieflyhq/briefly/pkg/config"
	"github.com/brieflyhq/briefly/pkg/domain"
)

func TestService_ByCategory(t *testing.T) {
	svc := NewService(nil)

	t.Run("single category respects limit", func(t *testing.T) {
		briefing := svc.ByCategory([]string{"technology"}, 2)
		require.Len(t, briefing.Items, 2)
		for _, item := range briefing.Items {
			assert.Equal(t, "technology", item.Category)
		}
		assert.Equal(t, "Briefly News", briefing.Source)
		assert.Contains(t, briefing.Summary, "technology")
	})

	t.Run("multiple categories split the budget", func(t *testing.T) {
		briefing := svc.ByCategory([]string{"technology", "health"}, 2)
		require.Len(t, briefing.Items, 2)
		assert.Equal(t, "technology", briefing.Items[0].Category)
		assert.Equal(t, "health", briefing.Items[1].Category)
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		briefing := svc.ByCategory([]string{"Technology"}, 5)
		assert.Len(t, briefing.Items, 2)
	})

	t.Run("empty category list yields empty briefing", func(t *testing.T) {
		briefing := svc.ByCategory(nil, 2)
		assert.Empty(t, briefing.Items)
		assert.Equal(t, "Briefly News", briefing.Source)
		assert.False(t, briefing.GeneratedAt.IsZero())
	})

	t.Run("unknown category yields nothing", func(t *testing.T) {
		briefing := svc.ByCategory([]string{"sports"}, 5)
		assert.Empty(t, briefing.Items)
	})

	t.Run("non-positive limit defaults to five", func(t *testing.T) {
		briefing := svc.ByCategory([]string{"technology", "health", "productivity"}, 0)
		assert.Len(t, briefing.Items, 5)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := svc.ByCategory([]string{"technology"}, 2)
		second := svc.ByCategory([]string{"technology"}, 2)
		assert.Equal(t, first.Items, second.Items)
	})
}

func TestService_Local(t *testing.T) {
	svc := NewService(nil)

	briefing := svc.Local("Portland", 10)
	require.Len(t, briefing.Items, 2)
	assert.Equal(t, "Briefly Local", briefing.Source)
	assert.Contains(t, briefing.Items[0].Title, "Portland")
	assert.Contains(t, briefing.Summary, "Portland")
	for _, item := range briefing.Items {
		assert.Equal(t, "local", item.Category)
	}
}

func TestService_PersonalizedBriefing(t *testing.T) {
	t.Run("no feeds configured falls back to catalog", func(t *testing.T) {
		svc := NewService(nil)
		res := svc.PersonalizedBriefing(context.Background(), domain.Preferences{}, domain.StyleConcise)
		assert.True(t, res.Degraded())
		assert.Equal(t, "no live news feeds configured", res.Reason)
		assert.Equal(t, "Briefly News Network", res.Value.Source)
		assert.NotEmpty(t, res.Value.Items)
	})

	t.Run("relevance within bounds and sorted", func(t *testing.T) {
		svc := NewService(nil)
		prefs := domain.Preferences{Location: "Austin", Interests: []string{"AI"}}
		res := svc.PersonalizedBriefing(context.Background(), prefs, domain.StyleDetailed)

		items := res.Value.Items
		require.NotEmpty(t, items)
		assert.LessOrEqual(t, len(items), 8)
		for i, item := range items {
			assert.GreaterOrEqual(t, item.Relevance, 0.0)
			assert.LessOrEqual(t, item.Relevance, 1.0)
			if i > 0 {
				assert.LessOrEqual(t, item.Relevance, items[i-1].Relevance, "sorted by relevance")
			}
		}
	})

	t.Run("interest boost outranks base score", func(t *testing.T) {
		svc := NewService(nil)
		prefs := domain.Preferences{Interests: []string{"sleep"}}
		res := svc.PersonalizedBriefing(context.Background(), prefs, domain.StyleDetailed)

		// "Digital Detox Improves Sleep Quality" starts at 0.6 but the
		// interest boost lifts it to 0.9, tying the catalog leaders
		var boosted float64
		for _, item := range res.Value.Items {
			if item.Title == "Digital Detox Improves Sleep Quality" {
				boosted = item.Relevance
			}
		}
		assert.InDelta(t, 0.9, boosted, 0.001)
	})

	t.Run("location substitutes into local titles", func(t *testing.T) {
		svc := NewService(nil)
		prefs := domain.Preferences{Location: "Austin"}
		res := svc.PersonalizedBriefing(context.Background(), prefs, domain.StyleDetailed)

		var found bool
		for _, item := range res.Value.Items {
			if item.Category == "local" {
				found = true
				assert.Contains(t, item.Title, "Austin")
				assert.InDelta(t, 0.7, item.Relevance, 0.001, "0.5 base plus 0.2 local boost")
			}
		}
		assert.True(t, found, "local story included when location known")
	})

	t.Run("concise style truncates to five", func(t *testing.T) {
		svc := NewService(nil)
		prefs := domain.Preferences{Location: "Austin", Interests: []string{"AI"}}
		res := svc.PersonalizedBriefing(context.Background(), prefs, domain.StyleConcise)
		assert.LessOrEqual(t, len(res.Value.Items), 5)
		assert.Contains(t, res.Value.Summary, "most relevant news stories today")
	})

	t.Run("motivational summary", func(t *testing.T) {
		svc := NewService(nil)
		res := svc.PersonalizedBriefing(context.Background(), domain.Preferences{}, domain.StyleMotivational)
		assert.Contains(t, res.Value.Summary, "carefully selected updates!")
	})

	t.Run("detailed summary lists categories", func(t *testing.T) {
		svc := NewService(nil)
		res := svc.PersonalizedBriefing(context.Background(), domain.Preferences{}, domain.StyleDetailed)
		assert.Contains(t, res.Value.Summary, "stories across")
		assert.Contains(t, res.Value.Summary, "technology")
	})

	t.Run("live feeds produce ok result", func(t *testing.T) {
		rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Live Wire</title>
	<item>
		<title>Breaking Tech Story</title>
		<link>http://example.com/live1</link>
		<description>Live story</description>
	</item>
</channel>
</rss>`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(rssContent))
		}))
		defer server.Close()

		fetcher := NewFetcher(config.NewsConfig{
			Feeds:   map[string][]string{"technology": {server.URL}},
			Timeout: 5 * time.Second,
		})
		svc := NewService(fetcher)

		res := svc.PersonalizedBriefing(context.Background(), domain.Preferences{}, domain.StyleConcise)
		assert.False(t, res.Degraded())
		assert.Equal(t, "Briefly Live", res.Value.Source)
		require.Len(t, res.Value.Items, 1)
		assert.Equal(t, "Breaking Tech Story", res.Value.Items[0].Title)
	})

	t.Run("live feed failure degrades to catalog", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		fetcher := NewFetcher(config.NewsConfig{
			Feeds:   map[string][]string{"technology": {server.URL}},
			Timeout: 5 * time.Second,
		})
		svc := NewService(fetcher)

		res := svc.PersonalizedBriefing(context.Background(), domain.Preferences{}, domain.StyleConcise)
		assert.True(t, res.Degraded())
		assert.Contains(t, res.Reason, "live feeds unavailable")
		assert.Equal(t, "Briefly News Network", res.Value.Source)
		assert.NotEmpty(t, res.Value.Items, "catalog fallback still serves stories")
	})
}

func TestService_RelevantCategories(t *testing.T) {
	svc := NewService(nil)

	t.Run("base set only", func(t *testing.T) {
		categories := svc.relevantCategories(domain.Preferences{})
		assert.Equal(t, []string{"technology", "productivity", "health"}, categories)
	})

	t.Run("location adds local", func(t *testing.T) {
		categories := svc.relevantCategories(domain.Preferences{Location: "Austin"})
		assert.Contains(t, categories, "local")
	})

	t.Run("interests deduplicated case-insensitively", func(t *testing.T) {
		categories := svc.relevantCategories(domain.Preferences{Interests: []string{"Technology", "finance"}})
		assert.Equal(t, []string{"technology", "productivity", "health", "finance"}, categories)
	})
}
