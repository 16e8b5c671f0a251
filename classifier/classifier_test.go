package classifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safestride/routing/router"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
		err  bool
	}{
		{"plain", `{"ROBBERY": 0.8, "PETTY THEFT": 0.3}`, "ROBBERY", false},
		{"fenced", "```json\n{\"ARSON\": 0.2, \"VANDALISM\": 0.7}\n```", "VANDALISM", false},
		{"bare fence", "```\n{\"DUI\": 1.0}\n```", "DUI", false},
		{"tie", `{"THREATS": 0.5, "FRAUD": 0.5}`, "FRAUD", false},
		{"empty object", `{}`, "", true},
		{"prose", `I think this is a robbery.`, "", true},
		{"list", `["ROBBERY"]`, "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parseCategory(c.text)
			if c.err {
				assert.True(t, eris.Is(err, ErrClassifier))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 40)
	seen := map[string]bool{}
	for _, c := range Categories {
		assert.False(t, seen[c], c)
		seen[c] = true
	}
}

func TestKeyword(t *testing.T) {
	k := Keyword{}
	cases := map[string]string{
		"A man mugged me near the lake":           "ROBBERY",
		"someone STOLE my phone off the table":    "PETTY THEFT",
		"there is a drunk driver swerving around": "DUI",
		"lovely evening, nothing to report":       router.UNKNOWN_CATEGORY,
		"":                                        router.UNKNOWN_CATEGORY,
	}
	for transcript, want := range cases {
		got, err := k.Classify(context.Background(), transcript)
		require.NoError(t, err)
		assert.Equal(t, want, got, transcript)
	}
}

type slowClassifier struct{ delay time.Duration }

func (s slowClassifier) Classify(ctx context.Context, _ string) (string, error) {
	select {
	case <-time.After(s.delay):
		return "ROBBERY", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

type failingClassifier struct{}

func (failingClassifier) Classify(context.Context, string) (string, error) {
	return "", eris.Wrap(ErrClassifier, "boom")
}

func TestClassifyWithTimeout(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "ROBBERY", ClassifyWithTimeout(ctx, slowClassifier{}, "x", time.Second))
	assert.Equal(t, router.UNKNOWN_CATEGORY, ClassifyWithTimeout(ctx, slowClassifier{delay: time.Minute}, "x", 20*time.Millisecond))
	assert.Equal(t, router.UNKNOWN_CATEGORY, ClassifyWithTimeout(ctx, failingClassifier{}, "x", time.Second))
	assert.Equal(t, router.UNKNOWN_CATEGORY, ClassifyWithTimeout(ctx, nil, "x", time.Second))
}

func newMessagesServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/messages")
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, DefaultModel, req["model"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
				"type":  "error",
				"error": map[string]any{"type": "api_error", "message": "unavailable"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": text}},
			"model":       DefaultModel,
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 120, "output_tokens": 12},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClaude(url string) *Claude {
	return NewClaude("test-key", WithRequestOptions(option.WithBaseURL(url), option.WithMaxRetries(0)))
}

func TestClaudeClassify(t *testing.T) {
	srv := newMessagesServer(t, http.StatusOK, "```json\n{\"ROBBERY\": 0.9, \"WEAPONS\": 0.6}\n```")
	got, err := newTestClaude(srv.URL).Classify(context.Background(), "a guy pulled a knife and took my bag")
	require.NoError(t, err)
	assert.Equal(t, "ROBBERY", got)
}

func TestClaudeClassifyFailures(t *testing.T) {
	srv := newMessagesServer(t, http.StatusOK, "Sorry, I cannot help with that.")
	c := newTestClaude(srv.URL)
	_, err := c.Classify(context.Background(), "something happened")
	assert.True(t, eris.Is(err, ErrClassifier))
	assert.Equal(t, router.UNKNOWN_CATEGORY, ClassifyWithTimeout(context.Background(), c, "something happened", time.Second))

	_, err = c.Classify(context.Background(), "   ")
	assert.True(t, eris.Is(err, ErrClassifier))

	srv = newMessagesServer(t, http.StatusInternalServerError, "")
	_, err = newTestClaude(srv.URL).Classify(context.Background(), "something happened")
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt("he grabbed my wallet")
	assert.Contains(t, p, `"he grabbed my wallet"`)
	assert.Contains(t, p, "MISDEMEANOR WARRANT")
	assert.Contains(t, p, "confidence_score")
}
