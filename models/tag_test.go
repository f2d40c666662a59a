package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"news-cms/models"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase and hyphenate", in: "Machine Learning", want: "machine-learning"},
		{name: "collapse whitespace", in: "  Large   Language  Models ", want: "large-language-models"},
		{name: "chinese name kept verbatim", in: "人工智能", want: "人工智能"},
		{name: "mixed", in: "GPT 模型", want: "gpt-模型"},
		{name: "empty", in: "", want: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, models.Slugify(testCase.in))
		})
	}
}

func TestSlugFromNamePrefersEnglish(t *testing.T) {
	assert.Equal(t, "deep-learning", models.SlugFromName(models.LocalizedText{Zh: "深度学习", En: "Deep Learning"}))
	assert.Equal(t, "深度学习", models.SlugFromName(models.LocalizedText{Zh: "深度学习"}))
	assert.Equal(t, "", models.SlugFromName(models.LocalizedText{}))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, models.ValidStatus(models.StatusDraft))
	assert.True(t, models.ValidStatus(models.StatusPublished))
	assert.True(t, models.ValidStatus(models.StatusArchived))
	assert.False(t, models.ValidStatus("pending"))
	assert.False(t, models.ValidStatus(""))
}
