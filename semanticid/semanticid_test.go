package semanticid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"news-cms/semanticid"
)

func TestGenerateMatchesCompanyAndProduct(t *testing.T) {
	id := semanticid.Generate("OpenAI Releases GPT-5 Model", "2025-08-27", 1, "", "")
	assert.Equal(t, "openai-gpt5-20250827001", id)
}

func TestGenerateChineseKeywords(t *testing.T) {
	// 昇腾 appears before 芯片 in the product table and must win
	id := semanticid.Generate("华为发布昇腾芯片", "2025-08-27", 1, "", "")
	assert.Equal(t, "huawei-ascend-20250827001", id)
}

func TestGenerateFallbackCompanyAndTitleProduct(t *testing.T) {
	id := semanticid.Generate("Quantum breakthrough in research labs", "2025-08-27", 1, "", "")
	assert.Equal(t, "ai-quantum-breakthrough-20250827001", id)
}

func TestGenerateChineseOnlyTitleFallsBackToNews(t *testing.T) {
	id := semanticid.Generate("新研究发布", "2025-08-27", 1, "", "")
	assert.Equal(t, "ai-news-20250827001", id)
}

func TestGenerateCustomOverrides(t *testing.T) {
	id := semanticid.Generate("whatever title", "2025-08-27", 3, "acme", "widget")
	assert.Equal(t, "acme-widget-20250827003", id)
}

func TestGenerateSequencePadding(t *testing.T) {
	id := semanticid.Generate("OpenAI update", "2025-08-27", 12, "", "")
	assert.Contains(t, id, "20250827012")

	// sequences below 1 clamp to 1
	id = semanticid.Generate("OpenAI update", "2025-08-27", 0, "", "")
	assert.Contains(t, id, "20250827001")
}

func TestGenerateAcceptsCompactDates(t *testing.T) {
	dashed := semanticid.Generate("OpenAI update", "2025-08-27", 1, "", "")
	compact := semanticid.Generate("OpenAI update", "20250827", 1, "", "")
	assert.Equal(t, dashed, compact)
}

func TestGenerateBatchKeepsPerDateSequences(t *testing.T) {
	items := []semanticid.Item{
		{Title: "OpenAI news one", Date: "2025-08-27"},
		{Title: "OpenAI news two", Date: "2025-08-27"},
		{Title: "OpenAI news three", Date: "2025-08-28"},
	}
	ids := semanticid.GenerateBatch(items, nil)
	assert.Len(t, ids, 3)
	assert.Contains(t, ids[0], "20250827001")
	assert.Contains(t, ids[1], "20250827002")
	assert.Contains(t, ids[2], "20250828001")
}

func TestGenerateBatchOverrides(t *testing.T) {
	items := []semanticid.Item{
		{Title: "mystery launch", Date: "2025-08-27"},
	}
	ids := semanticid.GenerateBatch(items, map[string]semanticid.Override{
		"mystery launch": {Company: "acme", Product: "rocket"},
	})
	assert.Equal(t, []string{"acme-rocket-20250827001"}, ids)
}
