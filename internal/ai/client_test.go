package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProvider(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestAnalyzeEntry_ParsesProviderJSON(t *testing.T) {
	srv := fakeProvider(t, http.StatusOK, `{"mood":"happy","score":82,"keywords":["work","friends"],"insight":"A good day."}`)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", "gpt-4o-mini", srv.URL)
	analysis, err := client.AnalyzeEntry("Had a great day with friends after work")
	require.NoError(t, err)

	assert.Equal(t, "happy", analysis.Mood)
	assert.Equal(t, 82, analysis.Score)
	assert.Equal(t, []string{"work", "friends"}, analysis.Keywords)
	assert.Equal(t, "A good day.", analysis.Insight)
}

func TestAnalyzeEntry_StripsCodeFence(t *testing.T) {
	srv := fakeProvider(t, http.StatusOK, "```json\n{\"mood\":\"calm\",\"score\":70,\"keywords\":[],\"insight\":\"Steady.\"}\n```")
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", "gpt-4o-mini", srv.URL)
	analysis, err := client.AnalyzeEntry("quiet evening")
	require.NoError(t, err)

	assert.Equal(t, "calm", analysis.Mood)
	assert.Equal(t, 70, analysis.Score)
}

func TestAnalyzeEntry_OutOfRangeScoreClamped(t *testing.T) {
	srv := fakeProvider(t, http.StatusOK, `{"mood":"happy","score":400,"keywords":[],"insight":"x"}`)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", "gpt-4o-mini", srv.URL)
	analysis, err := client.AnalyzeEntry("great")
	require.NoError(t, err)

	assert.Equal(t, 50, analysis.Score)
}

func TestAnalyzeEntry_ProviderErrorFallsBack(t *testing.T) {
	srv := fakeProvider(t, http.StatusInternalServerError, "")
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", "gpt-4o-mini", srv.URL)
	analysis, err := client.AnalyzeEntry("I feel so anxious and stressed about tomorrow")
	require.NoError(t, err, "provider failures must degrade, not fail")

	assert.Equal(t, "anxious", analysis.Mood)
	assert.NotEmpty(t, analysis.Insight)
}

func TestAnalyzeEntry_NoKeyUsesKeywordHeuristic(t *testing.T) {
	client := NewClientWithBaseURL("", "gpt-4o-mini", "http://localhost:1")

	analysis, err := client.AnalyzeEntry("I am so happy and grateful, what a wonderful day")
	require.NoError(t, err)

	assert.Equal(t, "happy", analysis.Mood)
	assert.Equal(t, 85, analysis.Score)
	assert.NotEmpty(t, analysis.Keywords)
}

func TestAnalyzeEntry_NoKeywordHitsDefaultsToNeutral(t *testing.T) {
	client := NewClientWithBaseURL("", "gpt-4o-mini", "http://localhost:1")

	analysis, err := client.AnalyzeEntry("went to the shop, bought bread")
	require.NoError(t, err)

	assert.Equal(t, "neutral", analysis.Mood)
	assert.Equal(t, 50, analysis.Score)
}

func TestCompanionReply_UsesProvider(t *testing.T) {
	srv := fakeProvider(t, http.StatusOK, "That sounds tough. What helped last time?")
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", "gpt-4o-mini", srv.URL)
	reply, err := client.CompanionReply([]ChatTurn{{Role: "user", Content: "rough week"}})
	require.NoError(t, err)

	assert.Equal(t, "That sounds tough. What helped last time?", reply)
}

func TestCompanionReply_FallbackRotates(t *testing.T) {
	client := NewClientWithBaseURL("", "gpt-4o-mini", "http://localhost:1")

	short, err := client.CompanionReply([]ChatTurn{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	longer, err := client.CompanionReply([]ChatTurn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: short},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, short)
	assert.NotEmpty(t, longer)
	assert.NotEqual(t, short, longer)
}

func TestRecommend_ParsesProviderArray(t *testing.T) {
	srv := fakeProvider(t, http.StatusOK, `[{"title":"Evening walk","kind":"activity","reason":"Movement lifts low moods."}]`)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", "gpt-4o-mini", srv.URL)
	suggestions, err := client.Recommend([]string{"sad"}, []string{"work"})
	require.NoError(t, err)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Evening walk", suggestions[0].Title)
	assert.Equal(t, "activity", suggestions[0].Kind)
}

func TestRecommend_MalformedJSONFallsBack(t *testing.T) {
	srv := fakeProvider(t, http.StatusOK, "here are some ideas: go for a walk")
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", "gpt-4o-mini", srv.URL)
	suggestions, err := client.Recommend([]string{"anxious"}, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Kind)
	}
}

func TestRecommend_NoMoodSummaryUsesDefaults(t *testing.T) {
	client := NewClientWithBaseURL("", "gpt-4o-mini", "http://localhost:1")

	suggestions, err := client.Recommend(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, defaultSuggestions, suggestions)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
