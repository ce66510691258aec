package digest

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/keenanbraz/merch-digest-bot/internal/models"
	"github.com/keenanbraz/merch-digest-bot/internal/rules"
)

var (
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	testFrom = testNow.AddDate(0, 0, -7)
)

func testPipeline(opts Options) *Pipeline {
	return NewPipeline(rules.Defaults(), opts)
}

func article(title, desc string, published time.Time) models.Article {
	return models.Article{
		Title:       title,
		Description: desc,
		URL:         "https://example.com/story",
		SourceName:  "ESPN",
		PublishedAt: published,
	}
}

func TestFilterKeepsFreshRelevant(t *testing.T) {
	p := testPipeline(Options{})

	in := []models.Article{
		article("Chiefs clinch the division", "Kansas City rolls on", testNow.Add(-2*time.Hour)),
	}

	out := p.Filter(in, testFrom, testNow)

	assert.Equal(t, 1, len(out))
}

func TestFilterDropsUnverifiableTimestamp(t *testing.T) {
	p := testPipeline(Options{})

	in := []models.Article{
		article("Chiefs clinch the division", "", time.Time{}),
	}

	out := p.Filter(in, testFrom, testNow)

	assert.Equal(t, 0, len(out))
}

func TestFilterDropsOutsideWindow(t *testing.T) {
	p := testPipeline(Options{})

	in := []models.Article{
		article("Chiefs old news", "", testNow.AddDate(0, 0, -10)),
		article("Chiefs from the future", "", testNow.Add(2*time.Hour)),
	}

	out := p.Filter(in, testFrom, testNow)

	assert.Equal(t, 0, len(out))
}

func TestFilterDenyVetoBeatsAllowMatch(t *testing.T) {
	p := testPipeline(Options{})

	// Team name present, but the deny list always wins.
	in := []models.Article{
		article("Taylor Swift attends Chiefs game", "Celebrity sighting at Arrowhead", testNow.Add(-time.Hour)),
	}

	out := p.Filter(in, testFrom, testNow)

	assert.Equal(t, 0, len(out))
}

func TestFilterRequiresAllowSignal(t *testing.T) {
	p := testPipeline(Options{})

	in := []models.Article{
		article("Local marathon draws record crowd downtown", "City closes streets for runners", testNow.Add(-time.Hour)),
		article("Weather outlook for the weekend", "Sunny with a chance of rain", testNow.Add(-time.Hour)),
	}

	out := p.Filter(in, testFrom, testNow)

	// "record" is an allow term, so the first survives; the second has
	// no sport signal at all.
	assert.Equal(t, 1, len(out))
	assert.Equal(t, "Local marathon draws record crowd downtown", out[0].Title)
}

func TestFilterDomainAllowlist(t *testing.T) {
	p := testPipeline(Options{DomainFilter: true})

	espn := article("Chiefs win again", "", testNow.Add(-time.Hour))
	espn.URL = "https://www.espn.com/nfl/story/123"

	blog := article("Chiefs win again, says blog", "", testNow.Add(-time.Hour))
	blog.URL = "https://random-hot-takes.example/post"

	out := p.Filter([]models.Article{espn, blog}, testFrom, testNow)

	assert.Equal(t, 1, len(out))
	assert.Equal(t, "https://www.espn.com/nfl/story/123", out[0].URL)
}

func TestFilterDomainAllowlistOffByDefault(t *testing.T) {
	p := testPipeline(Options{})

	blog := article("Chiefs win again, says blog", "", testNow.Add(-time.Hour))
	blog.URL = "https://random-hot-takes.example/post"

	out := p.Filter([]models.Article{blog}, testFrom, testNow)

	assert.Equal(t, 1, len(out))
}

func TestFilterPreservesOrder(t *testing.T) {
	p := testPipeline(Options{})

	in := []models.Article{
		article("Bills beat the Jets", "", testNow.Add(-3*time.Hour)),
		article("Eagles sign a kicker", "", testNow.Add(-2*time.Hour)),
		article("Packers rookie shines", "", testNow.Add(-time.Hour)),
	}

	out := p.Filter(in, testFrom, testNow)

	assert.Equal(t, 3, len(out))
	assert.Equal(t, "Bills beat the Jets", out[0].Title)
	assert.Equal(t, "Packers rookie shines", out[2].Title)
}
