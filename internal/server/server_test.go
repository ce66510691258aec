package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/keenanbraz/merch-digest-bot/internal/cache"
	"github.com/keenanbraz/merch-digest-bot/internal/command"
	"github.com/keenanbraz/merch-digest-bot/internal/models"
)

type fakeBuilder struct {
	digest models.Digest
	err    error
	calls  int
}

func (f *fakeBuilder) Build(ctx context.Context, cmd models.Command) (models.Digest, error) {
	f.calls++
	return f.digest, f.err
}

type fakeNotifier struct {
	sent chan string
}

func (f *fakeNotifier) SendDigest(text string) error {
	f.sent <- text
	return nil
}

func sampleDigest() models.Digest {
	return models.Digest{
		League:       "NFL",
		LookbackDays: 7,
		Summary:      "1 HOT storyline.",
		Trending: []models.ScoredArticle{
			{
				Article: models.Article{
					Title:       "Mahomes sets record",
					URL:         "https://example.com/mahomes",
					SourceName:  "ESPN",
					PublishedAt: time.Now(),
				},
				RelevanceScore: 3,
				Category:       models.CategoryPlayer,
				Heat:           models.HeatHot,
				MerchAngle:     "record chase drives jersey demand",
			},
		},
	}
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/digest", h.HandleDigest)
	r.GET("/livez", h.HandleLivez)
	r.GET("/health", h.HandleHealth)
	return r
}

func newTestHandler(builder DigestBuilder, apiKeySet bool, ttl time.Duration) (*Handler, *cache.Cache) {
	c := cache.New(ttl)
	parser := command.NewParser("NFL", 7)
	return NewHandler(parser, builder, c, apiKeySet, 5*time.Second), c
}

func postDigest(r *gin.Engine, text string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("text", text)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/digest", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) slackResponse {
	t.Helper()
	var res slackResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return res
}

func TestDigestMissingAPIKey(t *testing.T) {
	builder := &fakeBuilder{digest: sampleDigest()}
	h, c := newTestHandler(builder, false, 0)
	defer c.Close()
	r := newTestRouter(h)

	w := postDigest(r, "NFL 7")
	res := decodeResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ephemeral", res.ResponseType)
	assert.Equal(t, true, strings.Contains(res.Text, "Missing"))
	// No upstream call is attempted.
	assert.Equal(t, 0, builder.calls)
}

func TestDigestHelp(t *testing.T) {
	builder := &fakeBuilder{}
	h, c := newTestHandler(builder, true, 0)
	defer c.Close()
	r := newTestRouter(h)

	w := postDigest(r, "help")
	res := decodeResponse(t, w)

	assert.Equal(t, "ephemeral", res.ResponseType)
	assert.Equal(t, true, strings.Contains(res.Text, "Usage"))
	assert.Equal(t, 0, builder.calls)
}

func TestDigestSuccess(t *testing.T) {
	builder := &fakeBuilder{digest: sampleDigest()}
	h, c := newTestHandler(builder, true, 0)
	defer c.Close()
	r := newTestRouter(h)

	w := postDigest(r, "NFL 7")
	res := decodeResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "in_channel", res.ResponseType)
	assert.Equal(t, true, strings.Contains(res.Text, "NFL Merch Digest"))
	assert.Equal(t, true, strings.Contains(res.Text, "<https://example.com/mahomes|Mahomes sets record>"))
	assert.Equal(t, 1, builder.calls)
}

func TestDigestFetchErrorIsEphemeral(t *testing.T) {
	builder := &fakeBuilder{err: errors.New("fetch failed: newsapi returned status 500")}
	h, c := newTestHandler(builder, true, 0)
	defer c.Close()
	r := newTestRouter(h)

	w := postDigest(r, "NFL 7")
	res := decodeResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ephemeral", res.ResponseType)
	assert.Equal(t, true, strings.Contains(res.Text, "Fetch error:"))
	assert.Equal(t, true, strings.Contains(res.Text, "newsapi returned status 500"))
}

func TestDigestEmptyResultIsChannelVisible(t *testing.T) {
	builder := &fakeBuilder{digest: models.Digest{League: "NFL", LookbackDays: 7}}
	h, c := newTestHandler(builder, true, 0)
	defer c.Close()
	r := newTestRouter(h)

	w := postDigest(r, "NFL 7")
	res := decodeResponse(t, w)

	assert.Equal(t, "in_channel", res.ResponseType)
	assert.Equal(t, "No relevant stories found in the past 7 days.", res.Text)
}

func TestDigestCacheCollapsesRepeatRequests(t *testing.T) {
	builder := &fakeBuilder{digest: sampleDigest()}
	h, c := newTestHandler(builder, true, time.Minute)
	defer c.Close()
	r := newTestRouter(h)

	first := decodeResponse(t, postDigest(r, "NFL 7"))
	second := decodeResponse(t, postDigest(r, "NFL 7"))

	assert.Equal(t, 1, builder.calls)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, "in_channel", second.ResponseType)
}

func TestDigestNotifierReceivesBroadcast(t *testing.T) {
	builder := &fakeBuilder{digest: sampleDigest()}
	h, c := newTestHandler(builder, true, 0)
	defer c.Close()

	notifier := &fakeNotifier{sent: make(chan string, 1)}
	h.WithNotifier(notifier)
	r := newTestRouter(h)

	postDigest(r, "NFL 7")

	select {
	case text := <-notifier.sent:
		assert.Equal(t, true, strings.Contains(text, "NFL Merch Digest"))
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestLivez(t *testing.T) {
	h, c := newTestHandler(&fakeBuilder{}, true, 0)
	defer c.Close()
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/livez", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	h, c := newTestHandler(&fakeBuilder{}, true, 0)
	defer c.Close()
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, "healthy", body["status"])

	cacheStats, ok := body["cache"].(map[string]interface{})
	assert.Equal(t, true, ok)
	assert.Equal(t, float64(0), cacheStats["entries"])
	assert.Equal(t, "0s", cacheStats["ttl"])
}
