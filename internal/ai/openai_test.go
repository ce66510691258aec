package ai

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/keenanbraz/merch-digest-bot/internal/models"
)

func TestNewOpenAIClient(t *testing.T) {
	c := NewOpenAIClient("test-key")
	assert.NotEqual(t, c, nil)
}

func TestSummarizeTrendingEmptyInput(t *testing.T) {
	c := NewOpenAIClient("test-key")

	summary, err := c.SummarizeTrending(context.Background(), "NFL", nil)

	assert.Equal(t, err, nil)
	assert.Equal(t, summary, "")
}

func TestBuildSummaryPrompt(t *testing.T) {
	c := NewOpenAIClient("test-key")
	trending := []models.ScoredArticle{
		{
			Article: models.Article{
				Title:       "Mahomes breaks passing record",
				PublishedAt: time.Now(),
			},
			Category: models.CategoryPlayer,
			Heat:     models.HeatHot,
		},
		{
			Article: models.Article{
				Title:       "Broncos rookie impresses in prime time",
				PublishedAt: time.Now(),
			},
			Category: models.CategoryMedia,
			Heat:     models.HeatWatch,
		},
	}

	prompt := c.buildSummaryPrompt("NFL", trending)

	assert.Equal(t, strings.Contains(prompt, "NFL headlines"), true)
	assert.Equal(t, strings.Contains(prompt, "1. [player/HOT] Mahomes breaks passing record"), true)
	assert.Equal(t, strings.Contains(prompt, "2. [media/WATCH] Broncos rookie impresses in prime time"), true)
}
