package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/brieflyhq/briefly/pkg/db"
	"github.com/brieflyhq/briefly/pkg/domain"
)

// askHandler answers a question with the LLM assistant, falling back to
// the rule-based responder when the assistant is unavailable or failing
func (s *Server) askHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		renderError(w, r, fmt.Errorf("question is required"), http.StatusBadRequest)
		return
	}

	resp := map[string]interface{}{"question": req.Question}

	if s.assistant != nil && s.assistant.Enabled() {
		answer, err := s.assistant.Answer(r.Context(), req.Question)
		if err == nil {
			resp["answer"] = answer
			resp["source"] = "llm"
			resp["degraded"] = false
			renderJSON(w, r, http.StatusOK, resp)
			return
		}
		log.Printf("[WARN] assistant failed, using fallback responder: %v", err)
		resp["reason"] = fmt.Sprintf("assistant unavailable: %v", err)
	} else {
		resp["reason"] = "assistant not configured"
	}

	resp["answer"] = s.responder.Respond(req.Question)
	resp["source"] = "fallback"
	resp["degraded"] = true
	renderJSON(w, r, http.StatusOK, resp)
}

// digestHandler returns the composed daily digest for the current user
func (s *Server) digestHandler(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)

	userCtx := domain.UserContext{UserID: user.ID}
	if prefs, err := s.store.GetPreferences(r.Context(), user.ID); err == nil && prefs.Location != "" {
		userCtx.Location = &domain.Location{City: prefs.Location}
	}

	digest := s.digest.Compose(userCtx)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"digest":       digest.Text,
		"degradations": digest.Degradations,
		"generated_at": digest.GeneratedAt,
	})
}

// digestBasicHandler returns the static digest
func (s *Server) digestBasicHandler(w http.ResponseWriter, r *http.Request) {
	digest := s.digest.ComposeSimple()
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"digest":       digest.Text,
		"generated_at": digest.GeneratedAt,
	})
}

// setGoalHandler records the user's goal and persists it for signed-in users
func (s *Server) setGoalHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Goal     string `json:"goal"`
		Deadline string `json:"deadline"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Goal) == "" {
		renderError(w, r, fmt.Errorf("goal is required"), http.StatusBadRequest)
		return
	}

	var deadline *time.Time
	if req.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			renderError(w, r, fmt.Errorf("deadline must be RFC3339"), http.StatusBadRequest)
			return
		}
		deadline = &parsed
	}

	user := requestUser(r)
	s.tracker.SetGoal(user.ID, req.Goal, deadline)
	s.persistGoalState(r, user)

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "goal set", "goal": req.Goal})
}

// logProgressHandler records an achievement and persists it for signed-in users
func (s *Server) logProgressHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Achievement string `json:"achievement"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Achievement) == "" {
		renderError(w, r, fmt.Errorf("achievement is required"), http.StatusBadRequest)
		return
	}

	user := requestUser(r)
	s.tracker.LogProgress(user.ID, req.Achievement)
	s.persistGoalState(r, user)

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "progress logged", "achievement": req.Achievement})
}

// insightsHandler returns success insights for the current user
func (s *Server) insightsHandler(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	insights := s.tracker.Insights(user.ID, nil)
	renderJSON(w, r, http.StatusOK, insights)
}

// persistGoalState writes the tracker's serialized state to preferences
// for signed-in users; anonymous tracking stays in memory only
func (s *Server) persistGoalState(r *http.Request, user sessionUser) {
	if !user.signedIn() {
		return
	}
	goals, progress := s.tracker.ExportState(user.ID)
	if err := s.store.UpdateGoalState(r.Context(), user.ID, goals, progress); err != nil {
		log.Printf("[WARN] failed to persist goal state for %s: %v", user.ID, err)
	}
}

// newsHandler returns stories for the requested categories
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	categories := splitParam(r.URL.Query().Get("categories"))
	if len(categories) == 0 {
		categories = []string{"technology", "productivity", "health"}
	}

	maxStories := 0
	if maxStr := r.URL.Query().Get("max"); maxStr != "" {
		parsed, err := strconv.Atoi(maxStr)
		if err != nil {
			renderError(w, r, fmt.Errorf("max must be a number"), http.StatusBadRequest)
			return
		}
		maxStories = parsed
	}

	renderJSON(w, r, http.StatusOK, s.news.ByCategory(categories, maxStories))
}

// localNewsHandler returns local stories for the given or stored location
func (s *Server) localNewsHandler(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		user := requestUser(r)
		if prefs, err := s.store.GetPreferences(r.Context(), user.ID); err == nil {
			location = prefs.Location
		}
	}
	if location == "" {
		renderError(w, r, fmt.Errorf("location is required"), http.StatusBadRequest)
		return
	}

	radius := 10
	if radiusStr := r.URL.Query().Get("radius"); radiusStr != "" {
		if parsed, err := strconv.Atoi(radiusStr); err == nil {
			radius = parsed
		}
	}

	renderJSON(w, r, http.StatusOK, s.news.Local(location, radius))
}

// briefingHandler returns a personalized briefing using stored preferences
func (s *Server) briefingHandler(w http.ResponseWriter, r *http.Request) {
	style := domain.BriefingStyle(r.URL.Query().Get("style"))
	switch style {
	case "":
		style = domain.StyleConcise
	case domain.StyleConcise, domain.StyleDetailed, domain.StyleMotivational:
	default:
		renderError(w, r, fmt.Errorf("style must be concise, detailed, or motivational"), http.StatusBadRequest)
		return
	}

	user := requestUser(r)
	prefs := domain.Preferences{}
	if stored, err := s.store.GetPreferences(r.Context(), user.ID); err == nil {
		prefs.Location = stored.Location
		prefs.Interests = []string(stored.Interests)
	}

	res := s.news.PersonalizedBriefing(r.Context(), prefs, style)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"briefing": res.Value,
		"degraded": res.Degraded(),
		"reason":   res.Reason,
	})
}

// setLocationHandler stores the user's location in preferences
func (s *Server) setLocationHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		City      string  `json:"city"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.City) == "" {
		renderError(w, r, fmt.Errorf("city is required"), http.StatusBadRequest)
		return
	}

	user := requestUser(r)
	if err := s.store.UpdateLocation(r.Context(), user.ID, req.City); err != nil {
		log.Printf("[ERROR] failed to update location: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "location saved", "city": req.City})
}

// getPreferencesHandler returns stored preferences for the current user
func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	prefs, err := s.store.GetPreferences(r.Context(), user.ID)
	if err != nil {
		// no stored row yet, return defaults
		renderJSON(w, r, http.StatusOK, &db.Preferences{UserID: user.ID, Timezone: "UTC", WeatherUnit: "celsius"})
		return
	}
	renderJSON(w, r, http.StatusOK, prefs)
}

// updatePreferencesHandler replaces stored preferences for the current user
func (s *Server) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Location    string   `json:"location"`
		Timezone    string   `json:"timezone"`
		WeatherUnit string   `json:"weather_unit"`
		Interests   []string `json:"interests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	user := requestUser(r)

	// preserve fields not owned by this endpoint
	prefs := &db.Preferences{UserID: user.ID}
	if stored, err := s.store.GetPreferences(r.Context(), user.ID); err == nil {
		prefs = stored
	}
	prefs.Location = req.Location
	prefs.Timezone = req.Timezone
	prefs.WeatherUnit = req.WeatherUnit
	prefs.Interests = db.InterestsList(req.Interests)

	if err := s.store.UpsertPreferences(r.Context(), prefs); err != nil {
		log.Printf("[ERROR] failed to update preferences: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, prefs)
}

// calendarAuthHandler returns the Google OAuth consent URL
func (s *Server) calendarAuthHandler(w http.ResponseWriter, r *http.Request) {
	cfg := s.config.GetCalendarConfig()
	if cfg.GoogleClientID == "" {
		renderError(w, r, fmt.Errorf("calendar integration not configured"), http.StatusServiceUnavailable)
		return
	}

	params := url.Values{}
	params.Set("client_id", cfg.GoogleClientID)
	params.Set("redirect_uri", cfg.RedirectURL)
	params.Set("response_type", "code")
	params.Set("scope", "https://www.googleapis.com/auth/calendar.readonly")
	params.Set("access_type", "offline")

	renderJSON(w, r, http.StatusOK, map[string]string{
		"auth_url": "https://accounts.google.com/o/oauth2/v2/auth?" + params.Encode(),
	})
}

// calendarCallbackHandler records a calendar connection for the user. The
// OAuth code exchange is not performed; the code is stored as received.
func (s *Server) calendarCallbackHandler(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		renderError(w, r, fmt.Errorf("code is required"), http.StatusBadRequest)
		return
	}

	user := requestUser(r)
	conn := &db.CalendarConnection{
		UserID:      user.ID,
		Provider:    "google",
		AccessToken: code,
		Email:       user.Email,
	}
	if err := s.store.SaveCalendarConnection(r.Context(), conn); err != nil {
		log.Printf("[ERROR] failed to save calendar connection: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "calendar connected", "provider": "google"})
}

// calendarStatusHandler reports whether a calendar connection exists
func (s *Server) calendarStatusHandler(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	conn, err := s.store.GetCalendarConnection(r.Context(), user.ID)
	if err != nil {
		renderJSON(w, r, http.StatusOK, map[string]interface{}{"connected": false})
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"connected": true,
		"provider":  conn.Provider,
		"email":     conn.Email,
	})
}

// calendarDisconnectHandler removes all calendar connections for the user
func (s *Server) calendarDisconnectHandler(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	if err := s.store.DeleteCalendarConnections(r.Context(), user.ID); err != nil {
		log.Printf("[ERROR] failed to delete calendar connections: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "calendar disconnected"})
}

// splitParam splits a comma-separated query parameter into trimmed parts
func splitParam(value string) []string {
	if value == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
