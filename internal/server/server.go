// Package server exposes the slash-command webhook and the health
// probes. Everything here is thin plumbing around the digest pipeline.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keenanbraz/merch-digest-bot/internal/cache"
	"github.com/keenanbraz/merch-digest-bot/internal/command"
	"github.com/keenanbraz/merch-digest-bot/internal/digest"
	"github.com/keenanbraz/merch-digest-bot/internal/models"
)

const (
	responseEphemeral = "ephemeral"
	responseInChannel = "in_channel"
)

// slackResponse is the chat platform's expected reply shape.
type slackResponse struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

// DigestBuilder runs the pipeline for one parsed command.
type DigestBuilder interface {
	Build(ctx context.Context, cmd models.Command) (models.Digest, error)
}

// Notifier mirrors a digest to a secondary channel (Telegram).
type Notifier interface {
	SendDigest(text string) error
}

type Handler struct {
	parser       *command.Parser
	builder      DigestBuilder
	cache        *cache.Cache
	notifier     Notifier
	apiKeySet    bool
	fetchTimeout time.Duration
}

func NewHandler(parser *command.Parser, builder DigestBuilder, digestCache *cache.Cache, apiKeySet bool, fetchTimeout time.Duration) *Handler {
	return &Handler{
		parser:       parser,
		builder:      builder,
		cache:        digestCache,
		apiKeySet:    apiKeySet,
		fetchTimeout: fetchTimeout,
	}
}

// WithNotifier attaches an optional broadcast channel.
func (h *Handler) WithNotifier(n Notifier) *Handler {
	h.notifier = n
	return h
}

// NewRouter wires the handler into a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.POST("/digest", h.HandleDigest)
	r.GET("/livez", h.HandleLivez)
	r.GET("/health", h.HandleHealth)

	return r
}

// HandleDigest answers the slash command. Errors become ephemeral
// messages, never HTTP failures: the chat platform only renders 200s.
func (h *Handler) HandleDigest(c *gin.Context) {
	text := c.PostForm("text")

	if command.IsHelp(text) {
		c.JSON(http.StatusOK, slackResponse{ResponseType: responseEphemeral, Text: command.Usage()})
		return
	}

	if !h.apiKeySet {
		c.JSON(http.StatusOK, slackResponse{
			ResponseType: responseEphemeral,
			Text:         "Missing NEWS_API_KEY — ask an admin to configure the news search credential.",
		})
		return
	}

	cmd := h.parser.Parse(text)

	key := cache.Key(cmd)
	if cached, ok := h.cache.Get(key); ok {
		slog.Debug("digest cache hit", "key", key)
		c.JSON(http.StatusOK, slackResponse{ResponseType: responseInChannel, Text: cached})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.fetchTimeout)
	defer cancel()

	d, err := h.builder.Build(ctx, cmd)
	if err != nil {
		slog.Error("digest build failed", "league", cmd.League, "error", err)
		c.JSON(http.StatusOK, slackResponse{
			ResponseType: responseEphemeral,
			Text:         "Fetch error: " + err.Error(),
		})
		return
	}

	rendered := digest.Render(d)
	h.cache.Set(key, rendered)

	if h.notifier != nil && !d.Empty() {
		go func(text string) {
			if err := h.notifier.SendDigest(text); err != nil {
				slog.Warn("telegram broadcast failed", "error", err)
			}
		}(rendered)
	}

	c.JSON(http.StatusOK, slackResponse{ResponseType: responseInChannel, Text: rendered})
}

func (h *Handler) HandleLivez(c *gin.Context) {
	c.Status(http.StatusOK)
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"cache":     h.cache.Stats(),
	})
}
