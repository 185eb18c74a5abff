package prompt

import (
	"fmt"
	"strings"

	"github.com/pitchdeck-ai/platform/internal/model"
)

// ChatSystem is the system prompt for the deck-building conversation.
// The assistant is instructed to emit the GENERATE_DECK sentinel followed
// by a structured payload when the user is ready.
const ChatSystem = `You are a pitch deck assistant specializing in creating industry-specific investor presentations.

CONVERSATION FLOW:
1. Identify the user's industry (SaaS, Fintech, Healthcare, E-commerce, AI/ML, etc.)
2. Ask targeted questions based on their industry
3. When ready to generate, use the GENERATE_DECK command with industry-specific content

AVAILABLE INDUSTRIES & KEY FOCUS AREAS:
- SaaS: MRR/ARR, churn, CAC/LTV, product-market fit, scalability
- Fintech: Transaction volume, regulatory compliance, security, partnerships
- Healthcare: Clinical outcomes, regulatory pathway, patient impact, safety
- E-commerce: GMV, conversion rates, supply chain, customer experience
- AI/ML: Model performance, data advantage, technical differentiation

WHEN USER ASKS TO GENERATE THE DECK:
Respond with: "I'll create your [INDUSTRY] pitch deck now! 🚀" followed by:
GENERATE_DECK:
{
  "industry": "[detected_industry]",
  "title": "Company Name - [Industry] Investor Pitch",
  "description": "Brief description tailored to industry",
  "slides": [
    {
      "title": "Industry-specific slide title",
      "content": "Detailed content with industry-specific metrics and language"
    }
  ]
}

TONE:
- Professional and industry-aware
- Ask industry-specific questions
- Use relevant terminology and metrics
- Focus on what investors in that industry care about

Tailor your questions and advice to the specific industry context.`

// formatRules keep generated content free of markdown so it renders as
// plain slide text.
const formatRules = `IMPORTANT FORMATTING RULES:
- DO NOT use markdown formatting like **bold** or *italic*
- DO NOT use asterisks (*) or underscores (_) for emphasis
- Use plain text with bullet points (•) for structure
- Use UPPERCASE for emphasis when needed
- Use numbers and percentages to highlight key metrics`

// Deck builds the prompt for a full deck generation request.
func Deck(req *model.GenerateDeckRequest) string {
	tpl := GetIndustryTemplate(req.Industry)

	var outline strings.Builder
	for i, slide := range tpl.Slides {
		fmt.Fprintf(&outline, "%d. %s: %s\n", i+1, slide.Title, strings.Join(slide.Tips, "; "))
	}

	return fmt.Sprintf(`Create a comprehensive, investor-ready %s pitch deck for a %s stage company with detailed content, metrics, and visual suggestions.

Business Description: %s
Industry: %s
Funding Type: %s
Conversation Context: %s

INDUSTRY-SPECIFIC REQUIREMENTS:
Key Metrics to Include: %s
Focus Areas: %s

Use this industry template structure but customize content based on the business description:
%s
Generate 10-12 slides with compelling, data-driven content that tells a cohesive investment story.

CONTENT REQUIREMENTS:
- Use specific metrics, percentages, and quantifiable data points
- Include industry benchmarks and market comparisons
- Address potential investor concerns proactively
- Highlight sustainable competitive advantages
- Focus on the metrics that matter most in %s
- Use bullet points for clarity and readability
- Include realistic but ambitious projections

For each slide, provide:
1. Compelling, specific title
2. Detailed content with bullet points and metrics
3. 2-3 specific image suggestions (charts, screenshots, photos, etc.)
4. 2-3 key metrics relevant to this slide type
5. Speaker notes with talking points and potential Q&A preparation

Respond with a single JSON object: {"title", "description", "industry", "slides": [{"title", "content", "suggestedImages", "keyMetrics", "speakerNotes"}]}.`,
		tpl.Name, req.Stage, req.BusinessDescription, tpl.Name, req.FundingType,
		req.ConversationContext, strings.Join(tpl.KeyMetrics, ", "),
		strings.Join(tpl.FocusAreas, ", "), outline.String(), tpl.Name)
}

// Outline builds the prompt for a deck outline request.
func Outline(req *model.GenerateOutlineRequest) string {
	tpl := GetIndustryTemplate(req.Industry)

	var outline strings.Builder
	for i, slide := range tpl.Slides {
		fmt.Fprintf(&outline, "%d. %s\n", i+1, slide.Title)
	}

	return fmt.Sprintf(`Create a pitch deck outline for a %s stage %s company.

Business Description: %s

Follow this industry slide structure:
%s
For each slide provide a title, concise content, 2-3 suggested images, and speaker notes.

Respond with a single JSON object: {"title", "description", "industry", "slides": [{"title", "content", "suggestedImages", "speakerNotes"}]}.`,
		req.Stage, tpl.Name, req.BusinessDescription, outline.String())
}

// SlideContent builds the prompt to enhance a single slide.
func SlideContent(req *model.GenerateSlideContentRequest) string {
	return fmt.Sprintf(`Enhance this pitch deck slide with compelling, investor-focused content.

%s

Slide Type: %s
Current Title: %s
Current Content: %s

Deck Context: %s

Requirements:
- Create compelling, investor-focused content with specific metrics and data points
- Keep the slide's role within the overall deck narrative
- Provide 2-3 specific image suggestions
- Provide detailed speaker notes with talking points

Respond with a single JSON object: {"title", "content", "suggestedImages", "keyPoints", "speakerNotes"}.`,
		formatRules, req.SlideType, req.CurrentTitle, req.CurrentContent, joinContext(req.DeckContext))
}

// Script builds the prompt for a full presentation script.
func Script(req *model.GenerateScriptRequest) string {
	var slides strings.Builder
	for i, slide := range req.Slides {
		fmt.Fprintf(&slides, "%d. %s (%s): %s\n", i+1, slide.Title, slide.Type, slide.Content)
	}

	return fmt.Sprintf(`Create a compelling %d-minute presentation script for "%s".

Style: %s
Target Length: %d minutes (~%d words)

Slides:
%s
Requirements:
- Create a natural, flowing narrative that connects all slides
- Include smooth transitions between slides
- Add timing cues and speaking notes
- Match the specified presentation style
- Include pauses, emphasis points, and audience engagement moments
- Make it sound conversational and confident
- Address potential investor questions proactively
- End with a strong call to action

Respond with a single JSON object: {"script", "slideScripts"} where slideScripts maps slide indices ("slide_0", "slide_1", ...) to individual slide scripts.`,
		req.Length, req.DeckTitle, req.Style, req.Length, req.Length*150, slides.String())
}

// SlideScript builds the prompt for a single slide's speaking script.
func SlideScript(req *model.GenerateSlideScriptRequest) string {
	return fmt.Sprintf(`Create a presentation script for this specific slide.

Slide Title: %s
Slide Type: %s
Slide Content: %s
Presentation Style: %s

Deck Context: %s

Requirements:
- Create a natural speaking script for this slide
- Include transitions from the previous slide concept
- Add emphasis points and pauses
- Make it engaging and conversational
- Include timing cues
- Address the key points from the slide content
- Keep it concise but impactful (1-2 minutes of speaking)

Respond with a single JSON object: {"script"}.`,
		req.Slide.Title, req.Slide.Type, req.Slide.Content, req.Style, joinContext(req.Context))
}

// SlideAssist builds the prompt for the slide improvement assistant.
func SlideAssist(req *model.SlideAssistRequest) string {
	history := req.Messages
	if len(history) > 5 {
		history = history[len(history)-5:]
	}
	var conversation strings.Builder
	for _, msg := range history {
		fmt.Fprintf(&conversation, "%s: %s\n", msg.Role, msg.Content)
	}

	return fmt.Sprintf(`You are an expert pitch deck consultant helping to improve a specific slide.

CURRENT SLIDE DETAILS:
Title: %s
Type: %s
Current Content: %s
Current Images: %s
Current Speaker Notes: %s

DECK CONTEXT:
Other slides in deck: %s

CONVERSATION HISTORY:
%s
USER REQUEST: %s

%s

Based on the user's request, provide:
1. A helpful response explaining what you can do or what you've improved
2. If the user wants content improvements, provide updatedSlide with:
   - Enhanced title (if needed)
   - Improved content with specific metrics, data points, and detailed explanations (300+ words)
   - 2-3 specific image suggestions
   - Detailed speaker notes with talking points and Q&A preparation

Respond with a single JSON object: {"response", "updatedSlide": {"title", "content", "suggestedImages", "speakerNotes"}} where updatedSlide is omitted when no changes are needed.`,
		req.CurrentSlide.Title, req.CurrentSlide.Type, req.CurrentSlide.Content,
		orNone(strings.Join(req.CurrentSlide.SuggestedImages, ", ")),
		orNone(req.CurrentSlide.SpeakerNotes),
		joinContext(req.DeckContext), conversation.String(), req.UserRequest, formatRules)
}

// SearchImages builds the prompt for slide image suggestions.
func SearchImages(req *model.SearchImagesRequest) string {
	return fmt.Sprintf(`Find 3-5 relevant images for a pitch deck slide based on this information:

Query: %s
Slide Type: %s
Slide Title: %s
Slide Content: %s

For each image, provide:
1. A detailed description of what the image should show
2. 3-5 search terms for finding this image on stock photo sites
3. The type of visual (chart, diagram, photo, icon, infographic, screenshot)
4. A suggested stock photo URL when applicable
5. A suggested icon when applicable

Focus on:
- Professional, investor-ready visuals
- Charts and data visualizations for metrics
- Clean, modern design aesthetic
- Relevant industry imagery
- Icons that enhance understanding

Respond with a single JSON object: {"images": [{"description", "searchTerms", "type", "stockPhotoUrl", "iconSuggestion"}]}.`,
		req.Query, req.SlideType, req.SlideTitle, req.SlideContent)
}

func joinContext(refs []model.SlideRef) string {
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		parts = append(parts, fmt.Sprintf("%s (%s)", ref.Title, ref.Type))
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}
