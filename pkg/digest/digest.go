// Package digest composes the daily briefing text from success insights,
// a location-aware news block, and rotating motivational content.
package digest

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/brieflyhq/briefly/pkg/domain"
)

// quotes and tips rotate through the motivational sections of the digest
var quotes = []string{
	"The future depends on what you do today.",
	"Don't watch the clock; do what it does. Keep going.",
	"The way to get started is to quit talking and begin doing.",
	"It's not whether you get knocked down, it's whether you get up.",
	"Your time is limited, don't waste it living someone else's life.",
}

var tips = []string{
	"Break large goals into small, daily actions",
	"Celebrate small wins to maintain motivation",
	"Review your progress at the end of each day",
	"Stay consistent - daily effort compounds over time",
	"Focus on progress, not perfection",
}

// InsightsProvider supplies per-user success insights for the digest
type InsightsProvider interface {
	Insights(userID string, events []domain.CalendarEvent) (domain.Insights, error)
}

// Composer assembles digests. Random source and clock are injected so
// output is reproducible in tests.
type Composer struct {
	insights InsightsProvider
	rnd      *rand.Rand
	now      func() time.Time
}

// NewComposer creates a digest composer with a time-seeded random source
func NewComposer(insights InsightsProvider) *Composer {
	return NewComposerWithSeed(insights, time.Now().UnixNano())
}

// NewComposerWithSeed creates a composer with a deterministic random source
func NewComposerWithSeed(insights InsightsProvider, seed int64) *Composer {
	return &Composer{
		insights: insights,
		rnd:      rand.New(rand.NewSource(seed)), //nolint:gosec // quote rotation, not crypto
		now:      time.Now,
	}
}

// Compose builds the full daily digest for the user context. A failing
// insights provider does not fail the digest; default insights are used
// and the degradation is recorded on the result.
func (c *Composer) Compose(userCtx domain.UserContext) domain.Digest {
	var degradations []string

	insights := c.collectInsights(userCtx, &degradations)
	newsBlock := newsBriefing(userCtx.Location)

	quote := quotes[c.rnd.Intn(len(quotes))]
	tip := tips[c.rnd.Intn(len(tips))]

	now := c.now()
	var b strings.Builder
	fmt.Fprintf(&b, "🌅 Good %s! Happy %s! 🌅\n\n", timeOfDay(now), now.Weekday())
	b.WriteString("Here's your comprehensive daily briefing from Briefly:\n\n")

	b.WriteString("🎯 SUCCESS TRACKING\n")
	if insights.HasGoal {
		fmt.Fprintf(&b, "Goal: %q\nProgress Today: %d achievements\nMotivation Level: %s\n", insights.GoalText, insights.ProgressToday, insights.MotivationLevel)
	} else {
		b.WriteString("No goal set yet. Set a goal to start tracking your success journey!\n")
	}

	b.WriteString("\n📰 NEWS BRIEFING\n")
	b.WriteString(newsBlock)

	b.WriteString("\n\n📊 PRODUCTIVITY METRICS\n")
	fmt.Fprintf(&b, "Productive Hours Scheduled: %d\n", insights.ProductiveHours)
	if insights.ProductiveHours < 3 {
		b.WriteString("💡 Tip: Try to schedule more focused work time\n")
	} else {
		b.WriteString("🎉 Great job on scheduling productive time!\n")
	}

	b.WriteString("\n💪 SUCCESS SUGGESTIONS\n")
	for i, suggestion := range insights.Suggestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, suggestion)
	}

	fmt.Fprintf(&b, "\n🌟 DAILY SUCCESS TIP\n%s\n", tip)
	fmt.Fprintf(&b, "\n📖 MOTIVATIONAL QUOTE\n%q\n", quote)
	b.WriteString("\n🚀 TODAY'S CHALLENGE\nComplete at least one action that moves you toward your goals today!\n")
	b.WriteString("\nRemember: Small, consistent actions lead to big achievements. You've got this! 💫")

	return domain.Digest{
		Text:         b.String(),
		Degradations: degradations,
		GeneratedAt:  now,
	}
}

// ComposeSimple builds the short digest that needs no user context
func (c *Composer) ComposeSimple() domain.Digest {
	now := c.now()
	text := fmt.Sprintf(`🌅 Good %s! Happy %s!

Here's your daily brief from Briefly:

🎯 SUCCESS REMINDER
Today is a new opportunity to make progress toward your goals!

📰 QUICK NEWS UPDATE
• AI tools are helping people be more productive
• New research on morning routines shows benefits
• Local communities are organizing tech events

💡 PRODUCTIVITY TIP
Start with your most important task to build momentum.

🌟 DAILY MOTIVATION
"Don't wait for opportunity. Create it."

Have a productive and successful day! 🚀`, timeOfDay(now), now.Weekday())

	return domain.Digest{Text: text, GeneratedAt: now}
}

// collectInsights asks the provider, substituting defaults when it is
// absent or failing and recording the degradation on the digest
func (c *Composer) collectInsights(userCtx domain.UserContext, degradations *[]string) domain.Insights {
	if c.insights == nil {
		*degradations = append(*degradations, "success insights unavailable, using defaults")
		return defaultInsights()
	}

	insights, err := c.insights.Insights(userCtx.UserID, userCtx.CalendarEvents)
	if err != nil {
		log.Printf("[WARN] insights provider failed for %s: %v", userCtx.UserID, err)
		*degradations = append(*degradations, "success insights unavailable, using defaults")
		return defaultInsights()
	}
	return insights
}

func defaultInsights() domain.Insights {
	return domain.Insights{
		MotivationLevel: "Ready to start!",
		ProductiveHours: 2,
		Suggestions: []string{
			"Set a clear goal for today",
			"Break your goal into small, manageable tasks",
			"Schedule focused work time in your calendar",
		},
	}
}

// newsBriefing renders the static news block, localized when a location
// is known
func newsBriefing(location *domain.Location) string {
	var local string
	if location != nil {
		city := location.City
		if city == "" {
			city = "your area"
		}
		local = fmt.Sprintf("🏠 **Local - %s**\n• Tech community events happening this week\n• Great weather for outdoor meetings and activities", city)
	} else {
		local = "🏠 **Local News**\n• Connect location services for local updates"
	}

	return fmt.Sprintf(`📰 **Today's Top Stories** 📰

🤖 **Technology & AI**
• New AI assistants are becoming more helpful for daily planning
• Productivity apps now feature advanced scheduling tools

💪 **Health & Wellness**
• Morning sunlight exposure shown to boost energy levels
• Digital detox before bed improves sleep quality by 30%%

📈 **Productivity**
• Time-blocking techniques help professionals manage schedules
• The 2-minute rule reduces procrastination for small tasks

%s

Stay informed and productive! 📊`, local)
}

func timeOfDay(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "morning"
	case hour < 17:
		return "afternoon"
	default:
		return "evening"
	}
}
