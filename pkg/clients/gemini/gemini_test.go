package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledClientAnswersWithFallbacks(t *testing.T) {
	bridge := NewDisabled()
	ctx := context.Background()

	assert.Equal(t, FallbackLegalAdvice, bridge.LegalAdvice(ctx, "quórum de votação"))
	assert.Equal(t, FallbackNotice, bridge.MeetingNotice(ctx, NoticeContext{Title: "Assembleia"}))
	assert.Equal(t, FallbackMinutes, bridge.Minutes(ctx, MinutesContext{}))
}

func TestUnreachableAPIDegradesToFallbacks(t *testing.T) {
	// No server listens here; every call must come back as fallback text,
	// never as an error surfaced to the caller.
	bridge := NewClient("test-key", "gemini-1.5-flash", nil)
	bridge.(*geminiClient).base = "http://127.0.0.1:1/models"

	ctx := context.Background()
	assert.Equal(t, FallbackLegalAdvice, bridge.LegalAdvice(ctx, "pergunta"))
	assert.Equal(t, FallbackNotice, bridge.MeetingNotice(ctx, NoticeContext{}))
	assert.Equal(t, FallbackMinutes, bridge.Minutes(ctx, MinutesContext{}))
}

func TestGenerateReturnsCandidateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Texto gerado.  "}]}}]}`))
	}))
	defer srv.Close()

	bridge := NewClient("test-key", "gemini-1.5-flash", nil)
	bridge.(*geminiClient).base = srv.URL + "/models"

	assert.Equal(t, "Texto gerado.", bridge.LegalAdvice(context.Background(), "pergunta"))
}

func TestGenerateEmptyCandidatesFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	bridge := NewClient("test-key", "gemini-1.5-flash", nil)
	bridge.(*geminiClient).base = srv.URL + "/models"

	assert.Equal(t, FallbackMinutes, bridge.Minutes(context.Background(), MinutesContext{}))
}
