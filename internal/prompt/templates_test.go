package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIndustryTemplate(t *testing.T) {
	tpl := GetIndustryTemplate("fintech")
	assert.Equal(t, "Fintech & Financial Services", tpl.Name)
	assert.NotEmpty(t, tpl.KeyMetrics)
	assert.NotEmpty(t, tpl.Slides)

	// Case insensitive
	assert.Equal(t, tpl.Name, GetIndustryTemplate("FinTech").Name)
}

func TestGetIndustryTemplateFallsBackToSaaS(t *testing.T) {
	tpl := GetIndustryTemplate("underwater-basket-weaving")
	assert.Equal(t, "SaaS & Software", tpl.Name)
}

func TestIndustryListIsSortedAndComplete(t *testing.T) {
	list := IndustryList()
	require.Len(t, list, 5)

	keys := make([]string, len(list))
	for i, info := range list {
		keys[i] = info.Key
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
	}
	assert.Equal(t, []string{"ai", "ecommerce", "fintech", "healthcare", "saas"}, keys)
}

func TestTemplatesHaveCompleteSlides(t *testing.T) {
	for _, info := range IndustryList() {
		tpl := GetIndustryTemplate(info.Key)
		for _, slide := range tpl.Slides {
			assert.NotEmpty(t, slide.Title, "template %s", info.Key)
			assert.NotEmpty(t, slide.Content, "template %s slide %s", info.Key, slide.Title)
			assert.NotEmpty(t, slide.Tips, "template %s slide %s", info.Key, slide.Title)
		}
	}
}
