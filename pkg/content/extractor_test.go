package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		wantContent string
		wantErr     bool
		statusCode  int
	}{
		{
			name: "successful extraction",
			htmlContent: `<!DOCTYPE html>
				<html>
				<head><title>Test Article</title></head>
				<body>
					<article>
						<h1>Test Article Title</h1>
						<p>This is the main content of the article.</p>
						<p>It has multiple paragraphs.</p>
					</article>
				</body>
				</html>`,
			wantContent: "main content of the article",
			statusCode:  http.StatusOK,
		},
		{
			name: "minimal content",
			htmlContent: `<!DOCTYPE html>
				<html>
				<body>
					<p>Short content</p>
				</body>
				</html>`,
			wantContent: "Short content",
			statusCode:  http.StatusOK,
		},
		{
			name:        "server error",
			htmlContent: "error",
			wantErr:     true,
			statusCode:  http.StatusInternalServerError,
		},
		{
			name:        "not found",
			htmlContent: "not found",
			wantErr:     true,
			statusCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NotEmpty(t, r.Header.Get("User-Agent"))
				assert.NotEmpty(t, r.Header.Get("Accept-Language"))
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.htmlContent))
			}))
			defer ts.Close()

			extractor := NewExtractor(5 * time.Second)
			content, err := extractor.Extract(context.Background(), ts.URL)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, content, tt.wantContent)
		})
	}
}

func TestExtractor_Extract_InvalidURL(t *testing.T) {
	extractor := NewExtractor(time.Second)

	_, err := extractor.Extract(context.Background(), "not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestExtractor_Snippet(t *testing.T) {
	longText := strings.Repeat("some article words here ", 50)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><article><p>" + longText + "</p></article></body></html>"))
	}))
	defer ts.Close()

	extractor := NewExtractor(5 * time.Second)

	t.Run("truncates at word boundary", func(t *testing.T) {
		snippet, err := extractor.Snippet(context.Background(), ts.URL, 100)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(snippet), 103)
		assert.True(t, strings.HasSuffix(snippet, "..."))
		assert.NotContains(t, snippet, "... ")
	})

	t.Run("short text returned whole", func(t *testing.T) {
		snippet, err := extractor.Snippet(context.Background(), ts.URL, 100000)
		require.NoError(t, err)
		assert.False(t, strings.HasSuffix(snippet, "..."))
	})
}
