package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"news-cms/models"
)

func TestLocalizedTextJSONObjectShape(t *testing.T) {
	var v struct {
		Title models.LocalizedText `json:"title"`
	}
	err := json.Unmarshal([]byte(`{"title": {"zh": "人工智能", "en": "AI"}}`), &v)
	assert.NoError(t, err)
	assert.Equal(t, "人工智能", v.Title.Zh)
	assert.Equal(t, "AI", v.Title.En)
}

func TestLocalizedTextJSONBareString(t *testing.T) {
	var v struct {
		Title models.LocalizedText `json:"title"`
	}
	err := json.Unmarshal([]byte(`{"title": "plain headline"}`), &v)
	assert.NoError(t, err)
	assert.Equal(t, "plain headline", v.Title.Zh)
	assert.Equal(t, "plain headline", v.Title.En)
}

func TestLocalizedTextJSONEncodedStringShape(t *testing.T) {
	var v struct {
		Title models.LocalizedText `json:"title"`
	}
	// legacy dump rows stored the object a second time, JSON-encoded
	err := json.Unmarshal([]byte(`{"title": "{\"zh\": \"新闻\", \"en\": \"news\"}"}`), &v)
	assert.NoError(t, err)
	assert.Equal(t, "新闻", v.Title.Zh)
	assert.Equal(t, "news", v.Title.En)
}

func TestLocalizedTextJSONNull(t *testing.T) {
	var v struct {
		Title models.LocalizedText `json:"title"`
	}
	err := json.Unmarshal([]byte(`{"title": null}`), &v)
	assert.NoError(t, err)
	assert.True(t, v.Title.IsEmpty())
}

func TestLocalizedTextBSONShapes(t *testing.T) {
	type doc struct {
		Title models.LocalizedText `bson:"title"`
	}

	testCases := []struct {
		name string
		in   bson.M
		want models.LocalizedText
	}{
		{
			name: "embedded document",
			in:   bson.M{"title": bson.M{"zh": "中文", "en": "english"}},
			want: models.LocalizedText{Zh: "中文", En: "english"},
		},
		{
			name: "bare string",
			in:   bson.M{"title": "legacy headline"},
			want: models.LocalizedText{Zh: "legacy headline", En: "legacy headline"},
		},
		{
			name: "json encoded string",
			in:   bson.M{"title": `{"zh": "双语", "en": "bilingual"}`},
			want: models.LocalizedText{Zh: "双语", En: "bilingual"},
		},
		{
			name: "null",
			in:   bson.M{"title": nil},
			want: models.LocalizedText{},
		},
		{
			name: "wrong type decays to empty",
			in:   bson.M{"title": 42},
			want: models.LocalizedText{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			raw, err := bson.Marshal(testCase.in)
			assert.NoError(t, err)

			var d doc
			err = bson.Unmarshal(raw, &d)
			assert.NoError(t, err)
			assert.Equal(t, testCase.want, d.Title)
		})
	}
}

func TestLocalizeIsIdempotent(t *testing.T) {
	inputs := []interface{}{
		"plain",
		`{"zh": "你好", "en": "hello"}`,
		bson.M{"zh": "你好", "en": "hello"},
		models.LocalizedText{Zh: "你好", En: "hello"},
		nil,
	}
	for _, in := range inputs {
		once := models.Localize(in)
		twice := models.Localize(once)
		assert.Equal(t, once, twice)
	}
}

func TestLocalizedTextIn(t *testing.T) {
	full := models.LocalizedText{Zh: "中文", En: "english"}
	assert.Equal(t, "english", full.In("en"))
	assert.Equal(t, "中文", full.In("zh"))

	// fallback to the other language when the requested one is blank
	zhOnly := models.LocalizedText{Zh: "只有中文"}
	assert.Equal(t, "只有中文", zhOnly.In("en"))

	enOnly := models.LocalizedText{En: "english only"}
	assert.Equal(t, "english only", enOnly.In("zh"))
}
