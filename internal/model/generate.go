package model

// GenerateDeckRequest asks for a full deck from a business description.
type GenerateDeckRequest struct {
	BusinessDescription string `json:"businessDescription"`
	Stage               string `json:"stage"`
	Industry            string `json:"industry"`
	FundingType         string `json:"fundingType"`
	ConversationContext string `json:"conversationContext,omitempty"`
}

// GenerateOutlineRequest asks for a deck outline.
type GenerateOutlineRequest struct {
	BusinessDescription string `json:"businessDescription"`
	Industry            string `json:"industry"`
	Stage               string `json:"stage"`
}

// SlideRef is the minimal slide context passed alongside generation
// requests so prompts can reference the rest of the deck.
type SlideRef struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

// GenerateSlideContentRequest asks for enhanced content for one slide.
type GenerateSlideContentRequest struct {
	SlideType      string     `json:"slideType"`
	CurrentTitle   string     `json:"currentTitle"`
	CurrentContent string     `json:"currentContent"`
	DeckContext    []SlideRef `json:"deckContext"`
}

// GenerateSlideContentResponse carries the enhanced slide fields.
type GenerateSlideContentResponse struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	SuggestedImages []string `json:"suggestedImages,omitempty"`
	KeyPoints       []string `json:"keyPoints,omitempty"`
	SpeakerNotes    string   `json:"speakerNotes,omitempty"`
}

// GenerateScriptRequest asks for a full presentation script.
type GenerateScriptRequest struct {
	Slides    []Slide `json:"slides"`
	Style     string  `json:"style"`
	Length    int     `json:"length"`
	DeckTitle string  `json:"deckTitle"`
}

// GenerateScriptResponse carries the narrative script plus per-slide
// scripts keyed by slide index.
type GenerateScriptResponse struct {
	Script       string            `json:"script"`
	SlideScripts map[string]string `json:"slideScripts"`
}

// GenerateSlideScriptRequest asks for a speaking script for one slide.
type GenerateSlideScriptRequest struct {
	Slide   Slide      `json:"slide"`
	Style   string     `json:"style"`
	Context []SlideRef `json:"context"`
}

// GenerateSlideScriptResponse carries a single slide's speaking script.
type GenerateSlideScriptResponse struct {
	Script string `json:"script"`
}

// SlideAssistRequest asks the slide assistant to improve a slide based on
// the conversation so far.
type SlideAssistRequest struct {
	Messages     []ChatMessage `json:"messages"`
	CurrentSlide Slide         `json:"currentSlide"`
	DeckContext  []SlideRef    `json:"deckContext"`
	UserRequest  string        `json:"userRequest"`
}

// SlideAssistResponse carries the assistant reply and optional slide
// updates for the caller to merge.
type SlideAssistResponse struct {
	Response     string        `json:"response"`
	UpdatedSlide *SlideUpdates `json:"updatedSlide,omitempty"`
}

// SlideUpdates holds the subset of slide fields the assistant changed.
type SlideUpdates struct {
	Title           string   `json:"title,omitempty"`
	Content         string   `json:"content,omitempty"`
	SuggestedImages []string `json:"suggestedImages,omitempty"`
	SpeakerNotes    string   `json:"speakerNotes,omitempty"`
}

// SearchImagesRequest asks for image suggestions for a slide.
type SearchImagesRequest struct {
	Query        string `json:"query"`
	SlideType    string `json:"slideType"`
	SlideTitle   string `json:"slideTitle"`
	SlideContent string `json:"slideContent"`
}

// ImageSuggestion describes one suggested visual.
type ImageSuggestion struct {
	Description    string   `json:"description"`
	SearchTerms    []string `json:"searchTerms"`
	Type           string   `json:"type"`
	StockPhotoURL  string   `json:"stockPhotoUrl,omitempty"`
	IconSuggestion string   `json:"iconSuggestion,omitempty"`
}

// SearchImagesResponse carries the suggested visuals.
type SearchImagesResponse struct {
	Images []ImageSuggestion `json:"images"`
}

// ExportRequest asks for a rendered document.
type ExportRequest struct {
	Format          string  `json:"format"`
	Slides          []Slide `json:"slides"`
	DeckTitle       string  `json:"deckTitle"`
	DeckDescription string  `json:"deckDescription,omitempty"`
}
