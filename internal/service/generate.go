package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/pitchdeck-ai/platform/internal/llm"
	"github.com/pitchdeck-ai/platform/internal/model"
	"github.com/pitchdeck-ai/platform/internal/prompt"
	"github.com/pitchdeck-ai/platform/pkg/logger"
)

// GenerateService drives the single-shot generation endpoints. When no
// LLM client is configured every method returns a deterministic canned
// result so the rest of the product stays usable.
type GenerateService struct {
	llmClient llm.Client
	logger    *logger.Logger
}

// NewGenerateService creates a new generation service. llmClient may be
// nil.
func NewGenerateService(llmClient llm.Client, log *logger.Logger) *GenerateService {
	return &GenerateService{
		llmClient: llmClient,
		logger:    log,
	}
}

// Deck generates a full deck payload from a business description.
func (s *GenerateService) Deck(ctx context.Context, req *model.GenerateDeckRequest) (*model.DeckPayload, error) {
	if s.llmClient == nil {
		return mockDeckPayload(req.BusinessDescription, req.Industry), nil
	}

	var payload model.DeckPayload
	if err := s.completeJSON(ctx, prompt.Deck(req), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Outline generates a deck outline from a business description. The
// result is the same payload shape a full generation produces.
func (s *GenerateService) Outline(ctx context.Context, req *model.GenerateOutlineRequest) (*model.DeckPayload, error) {
	if s.llmClient == nil {
		return mockDeckPayload(req.BusinessDescription, req.Industry), nil
	}

	var payload model.DeckPayload
	if err := s.completeJSON(ctx, prompt.Outline(req), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SlideContent enhances a single slide's content.
func (s *GenerateService) SlideContent(ctx context.Context, req *model.GenerateSlideContentRequest) (*model.GenerateSlideContentResponse, error) {
	if s.llmClient == nil {
		return &model.GenerateSlideContentResponse{
			Title: "Enhanced " + req.CurrentTitle,
			Content: req.CurrentContent + "\n\n" +
				"• Market-leading solution with proven ROI\n" +
				"• Scalable technology platform serving 10,000+ customers\n" +
				"• Strategic partnerships with industry leaders\n" +
				"• Projected 300% revenue growth over next 24 months\n" +
				"• Award-winning team with 50+ years combined experience",
			SuggestedImages: []string{
				"Professional team photo with diverse backgrounds",
				"Clean data visualization showing growth metrics",
				"Modern office or product interface screenshot",
			},
			KeyPoints: []string{
				"Emphasize quantifiable results and metrics",
				"Highlight competitive advantages and moats",
				"Address potential investor concerns proactively",
				"Connect to broader market trends and opportunities",
			},
			SpeakerNotes: "Focus on the most compelling data points that demonstrate traction and potential. Be prepared to discuss the assumptions behind projections and provide supporting evidence for claims.",
		}, nil
	}

	var resp model.GenerateSlideContentResponse
	if err := s.completeJSON(ctx, prompt.SlideContent(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Script generates a full presentation script plus per-slide scripts
// keyed by positional slide ID.
func (s *GenerateService) Script(ctx context.Context, req *model.GenerateScriptRequest) (*model.GenerateScriptResponse, error) {
	if s.llmClient == nil {
		slideScripts := make(map[string]string, len(req.Slides))
		for i, slide := range req.Slides {
			content := slide.Content
			if len(content) > 100 {
				content = content[:100]
			}
			slideScripts[fmt.Sprintf("slide_%d", i)] = fmt.Sprintf("For slide %q: %s...", slide.Title, content)
		}

		return &model.GenerateScriptResponse{
			Script: fmt.Sprintf("Welcome everyone, and thank you for your time today.\n\n"+
				"I'm excited to share %s with you - a company that's solving a critical problem in the market.\n\n"+
				"[Continue with your presentation following the slides...]\n\n"+
				"Let me walk you through our journey and the opportunity ahead.", req.DeckTitle),
			SlideScripts: slideScripts,
		}, nil
	}

	var resp model.GenerateScriptResponse
	if err := s.completeJSON(ctx, prompt.Script(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SlideScript generates a speaking script for one slide.
func (s *GenerateService) SlideScript(ctx context.Context, req *model.GenerateSlideScriptRequest) (*model.GenerateSlideScriptResponse, error) {
	if s.llmClient == nil {
		return &model.GenerateSlideScriptResponse{
			Script: fmt.Sprintf("For the %q slide: Start by introducing the key concept, then elaborate on the main points from your slide content. Remember to pause for emphasis and engage with your audience.", req.Slide.Title),
		}, nil
	}

	var resp model.GenerateSlideScriptResponse
	if err := s.completeJSON(ctx, prompt.SlideScript(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SlideAssist answers a slide-editing request, optionally returning
// concrete updates for the caller to merge into the slide.
func (s *GenerateService) SlideAssist(ctx context.Context, req *model.SlideAssistRequest) (*model.SlideAssistResponse, error) {
	if s.llmClient == nil {
		resp := &model.SlideAssistResponse{
			Response: fmt.Sprintf("I can help you improve your %q slide! Here are some suggestions:\n\n"+
				"• Add more specific metrics and data points\n"+
				"• Include industry benchmarks for credibility\n"+
				"• Strengthen the value proposition with quantifiable benefits\n"+
				"• Add compelling visuals and charts\n\n"+
				"Would you like me to rewrite the content with these improvements?", req.CurrentSlide.Title),
		}

		lower := strings.ToLower(req.UserRequest)
		if strings.Contains(lower, "rewrite") || strings.Contains(lower, "improve") {
			resp.UpdatedSlide = &model.SlideUpdates{
				Content: req.CurrentSlide.Content + "\n\n" +
					"• Enhanced with specific metrics and data points\n" +
					"• Industry benchmarks and competitive analysis\n" +
					"• Quantifiable benefits and ROI calculations\n" +
					"• Strategic positioning and market opportunity",
				SuggestedImages: []string{
					"Professional data visualization charts",
					"Industry comparison infographics",
					"ROI calculation screenshots",
				},
				SpeakerNotes: "Focus on the enhanced metrics and be prepared to discuss the underlying assumptions and data sources.",
			}
		}

		return resp, nil
	}

	var resp model.SlideAssistResponse
	if err := s.completeJSON(ctx, prompt.SlideAssist(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchImages suggests visuals for a slide.
func (s *GenerateService) SearchImages(ctx context.Context, req *model.SearchImagesRequest) (*model.SearchImagesResponse, error) {
	if s.llmClient == nil {
		return &model.SearchImagesResponse{
			Images: []model.ImageSuggestion{
				{
					Description:    "Professional business growth chart showing upward trend",
					SearchTerms:    []string{"business growth", "upward trend", "success chart"},
					Type:           "chart",
					StockPhotoURL:  "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800&q=80",
					IconSuggestion: "TrendingUp icon",
				},
				{
					Description:    "Modern team collaboration workspace",
					SearchTerms:    []string{"team collaboration", "modern office", "workspace"},
					Type:           "photo",
					StockPhotoURL:  "https://images.unsplash.com/photo-1600880292203-757bb62b4baf?w=800&q=80",
					IconSuggestion: "Users icon",
				},
				{
					Description:    "Clean data visualization dashboard",
					SearchTerms:    []string{"dashboard", "analytics", "data visualization"},
					Type:           "screenshot",
					StockPhotoURL:  "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&q=80",
					IconSuggestion: "BarChart icon",
				},
			},
		}, nil
	}

	var resp model.SearchImagesResponse
	if err := s.completeJSON(ctx, prompt.SearchImages(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// completeJSON runs a structured completion and decodes the reply into
// out. Code fences are stripped before decoding since not every provider
// honors the structured output hint.
func (s *GenerateService) completeJSON(ctx context.Context, promptText string, out any) error {
	resp, err := s.llmClient.Complete(ctx, &llm.CompletionRequest{
		Messages: []llm.ChatMessage{
			{Role: "user", Content: promptText},
		},
		MaxTokens: 4096,
		JSONMode:  true,
	})
	if err != nil {
		return fmt.Errorf("completion failed: %w", err)
	}

	content := stripFences(resp.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		s.logger.Warn("structured completion returned invalid JSON",
			zap.String("model", resp.Model),
			zap.Error(err),
		)
		return fmt.Errorf("failed to decode completion: %w", err)
	}

	return nil
}

var (
	openFence  = regexp.MustCompile("(?i)^\\s*```(?:json)?\\s*")
	closeFence = regexp.MustCompile("\\s*```\\s*$")
)

func stripFences(content string) string {
	content = openFence.ReplaceAllString(content, "")
	return closeFence.ReplaceAllString(content, "")
}

var placeholderPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// mockDeckPayload builds a deck from the industry template, substituting
// the first word of the business description as the company name.
func mockDeckPayload(businessDescription, industry string) *model.DeckPayload {
	if industry == "" {
		industry = "saas"
	}
	tpl := prompt.GetIndustryTemplate(industry)

	companyName := "Demo"
	if fields := strings.Fields(businessDescription); len(fields) > 0 {
		companyName = fields[0]
	}

	stockImages := []string{
		"Chart showing market growth",
		"Product screenshot",
		"Team photo",
		"Financial projections graph",
	}

	slides := make([]model.PayloadSlide, len(tpl.Slides))
	for i, st := range tpl.Slides {
		content := strings.ReplaceAll(st.Content, "[Company Name]", companyName)
		content = placeholderPattern.ReplaceAllString(content, "$1")

		slides[i] = model.PayloadSlide{
			Title:           st.Title,
			Content:         content,
			SuggestedImages: []string{stockImages[i%len(stockImages)]},
			SpeakerNotes:    "Key talking points for " + st.Title + ": " + strings.Join(st.Tips, ". "),
		}
	}

	return &model.DeckPayload{
		Title:       fmt.Sprintf("%s - %s Investor Pitch", companyName, tpl.Name),
		Description: fmt.Sprintf("%s investor presentation generated from the %s template", companyName, tpl.Name),
		Industry:    strings.ToLower(industry),
		Slides:      slides,
	}
}
