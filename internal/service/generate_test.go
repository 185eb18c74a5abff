package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/pkg/logger"
)

func newGenerateService() *GenerateService {
	return NewGenerateService(nil, logger.NewNop())
}

func TestDeckFallbackUsesIndustryTemplate(t *testing.T) {
	svc := newGenerateService()

	payload, err := svc.Deck(context.Background(), &model.GenerateDeckRequest{
		BusinessDescription: "Acme automates invoicing for small businesses",
		Industry:            "fintech",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme - Fintech & Financial Services Investor Pitch", payload.Title)
	assert.Equal(t, "fintech", payload.Industry)
	require.NotEmpty(t, payload.Slides)
	for _, slide := range payload.Slides {
		assert.NotEmpty(t, slide.Title)
		assert.NotEmpty(t, slide.Content)
		assert.NotContains(t, slide.Content, "[Company Name]")
	}
}

func TestDeckFallbackDefaultsToSaaS(t *testing.T) {
	svc := newGenerateService()

	payload, err := svc.Deck(context.Background(), &model.GenerateDeckRequest{
		BusinessDescription: "Acme does things",
	})
	require.NoError(t, err)
	assert.Equal(t, "saas", payload.Industry)
}

func TestScriptFallbackKeysSlidesByPosition(t *testing.T) {
	svc := newGenerateService()

	resp, err := svc.Script(context.Background(), &model.GenerateScriptRequest{
		DeckTitle: "Acme Pitch",
		Slides: []model.Slide{
			{ID: "slide_0", Title: "Problem", Content: "Invoicing is manual"},
			{ID: "slide_1", Title: "Solution", Content: "Acme automates it"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Script, "Acme Pitch")
	require.Len(t, resp.SlideScripts, 2)
	assert.Contains(t, resp.SlideScripts["slide_0"], "Problem")
	assert.Contains(t, resp.SlideScripts["slide_1"], "Solution")
}

func TestSlideAssistFallbackSuggestsUpdatesOnRewrite(t *testing.T) {
	svc := newGenerateService()
	ctx := context.Background()
	slide := model.Slide{ID: "slide_0", Title: "Traction", Content: "Growing fast"}

	resp, err := svc.SlideAssist(ctx, &model.SlideAssistRequest{
		CurrentSlide: slide,
		UserRequest:  "What do you think of this slide?",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.UpdatedSlide)
	assert.Contains(t, resp.Response, "Traction")

	resp, err = svc.SlideAssist(ctx, &model.SlideAssistRequest{
		CurrentSlide: slide,
		UserRequest:  "Please rewrite it",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.UpdatedSlide)
	assert.Contains(t, resp.UpdatedSlide.Content, "Growing fast")
	assert.NotEmpty(t, resp.UpdatedSlide.SuggestedImages)
}

func TestSearchImagesFallback(t *testing.T) {
	svc := newGenerateService()

	resp, err := svc.SearchImages(context.Background(), &model.SearchImagesRequest{Query: "growth"})
	require.NoError(t, err)
	require.Len(t, resp.Images, 3)
	for _, img := range resp.Images {
		assert.NotEmpty(t, img.Description)
		assert.NotEmpty(t, img.SearchTerms)
		assert.NotEmpty(t, img.Type)
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}
