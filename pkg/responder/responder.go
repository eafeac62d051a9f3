// Package responder answers questions with canned, keyword-matched
// responses. It needs no external services and backs the assistant when
// the LLM is unavailable.
package responder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var weatherResponses = []string{
	"🌤️ The weather looks great today! Perfect conditions for productivity. The temperature is comfortable and there's a nice breeze. Great day to open a window while you work!",
	"☀️ It's sunny and beautiful outside! Excellent weather for focus and getting things done. Consider taking a short walk during breaks to enjoy the sunshine.",
	"🌧️ There might be some rain today, but that makes it perfect for cozy indoor work! It's a great opportunity for deep focus sessions.",
	"⛅ Partly cloudy with comfortable temperatures. Ideal conditions for maintaining focus and energy throughout your workday.",
}

var jokes = []string{
	"Why don't scientists trust atoms? Because they make up everything!",
	"Why did the scarecrow win an award? Because he was outstanding in his field!",
	"What do you call a fake noodle? An impasta!",
	"Why did the coffee file a police report? It got mugged!",
	"What do you call a sleeping bull? A bulldozer!",
	"Why don't eggs tell jokes? They'd crack each other up!",
}

var successTips = []string{
	"🎯 **Success Tip**: Start with your most important task each day. This builds momentum and ensures progress on your key goals!",
	"🚀 **Productivity Insight**: Break large projects into small, manageable tasks. Each small completion builds motivation!",
	"💡 **Goal Strategy**: Write down your goals and review them daily. This keeps them top of mind and increases achievement likelihood!",
	"🌟 **Mindset Tip**: Celebrate small wins along the way. Progress compounds into significant achievements over time!",
}

const calendarResponse = `📅 I can help you manage your calendar! For full calendar integration, connect your Google Calendar using the "Connect" button in the Briefly app. Once connected, I'll be able to tell you about your schedule, suggest optimal meeting times, and help you plan your day more effectively!`

const newsResponse = `📰 For the latest news updates, try generating a daily digest! The digest feature provides curated news summaries along with weather, schedule insights, and success coaching. Click "Generate Digest" to get your comprehensive daily briefing!`

// Responder matches questions to canned answers. The random source and
// clock are injected so behavior is reproducible in tests.
type Responder struct {
	rnd *rand.Rand
	now func() time.Time
}

// New creates a responder with a time-seeded random source
func New() *Responder {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed creates a responder with a deterministic random source
func NewWithSeed(seed int64) *Responder {
	return &Responder{
		rnd: rand.New(rand.NewSource(seed)), //nolint:gosec // canned response picking, not crypto
		now: time.Now,
	}
}

// Respond matches the question against keyword groups in priority order
// and returns a canned answer. Unmatched questions get the capability menu.
func (r *Responder) Respond(question string) string {
	lowered := strings.ToLower(question)

	switch {
	case containsAny(lowered, "weather", "temperature"):
		return r.pick(weatherResponses)
	case containsAny(lowered, "joke", "funny", "humor", "laugh"):
		return "😄 " + r.pick(jokes)
	case containsAny(lowered, "goal", "success", "productive", "achieve"):
		return r.pick(successTips)
	case containsAny(lowered, "calendar", "schedule", "meeting", "event"):
		return calendarResponse
	case containsAny(lowered, "news", "headline", "update"):
		return newsResponse
	case containsAny(lowered, "hello", "hi", "hey", "how are you"):
		return r.greeting()
	default:
		return defaultResponse
	}
}

func (r *Responder) pick(options []string) string {
	return options[r.rnd.Intn(len(options))]
}

func (r *Responder) greeting() string {
	hour := r.now().Hour()
	timeGreeting := "Good evening"
	switch {
	case hour < 12:
		timeGreeting = "Good morning"
	case hour < 17:
		timeGreeting = "Good afternoon"
	}
	return fmt.Sprintf("%s! I'm Briefly, your daily assistant. I can help you with weather information, schedule management, news updates, productivity tips, and even tell you a joke! What would you like to know about your day?", timeGreeting)
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

const defaultResponse = `Thanks for your question! I'm Briefly, your daily assistant. I can help you with:

• 🌤️ Weather information and recommendations
• 📅 Calendar and schedule management
• 📰 News updates and summaries
• 🎯 Success coaching and goal tracking
• 😄 Jokes and humor

Try asking about the weather, your schedule, or request a joke! You can also generate a complete daily digest for a comprehensive overview of your day.`
