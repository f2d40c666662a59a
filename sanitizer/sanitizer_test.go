package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"news-cms/models"
	"news-cms/sanitizer"
)

func TestSanitizeHTMLDropsScriptAndHandlers(t *testing.T) {
	in := `<p onclick="x()">hi</p><script>bad()</script>`
	assert.Equal(t, "<p>hi</p>", sanitizer.SanitizeHTML(in))
}

func TestSanitizeHTMLKeepsAllowedMarkup(t *testing.T) {
	in := `<h2>Title</h2><p>Some <strong>bold</strong> text with a <a href="https://example.com" target="_blank">link</a>.</p>`
	assert.Equal(t, in, sanitizer.SanitizeHTML(in))
}

func TestSanitizeHTMLUnwrapsUnknownTags(t *testing.T) {
	out := sanitizer.SanitizeHTML(`<article><p>kept</p></article>`)
	assert.Equal(t, "<p>kept</p>", out)
}

func TestSanitizeHTMLDropsForbiddenSubtree(t *testing.T) {
	out := sanitizer.SanitizeHTML(`<div>before<iframe src="https://evil"><p>inside</p></iframe>after</div>`)
	assert.NotContains(t, out, "iframe")
	assert.NotContains(t, out, "inside")
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "after")
}

func TestSanitizeHTMLStripsStyleAndDataAttrs(t *testing.T) {
	out := sanitizer.SanitizeHTML(`<p style="color:red" data-track="1" class="lead">text</p>`)
	assert.Equal(t, `<p class="lead">text</p>`, out)
}

func TestSanitizeHTMLRejectsUnsafeURLs(t *testing.T) {
	out := sanitizer.SanitizeHTML(`<a href="javascript:alert(1)">x</a><img src="data:text/html;base64,xx">`)
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "data:")
}

func TestSanitizeHTMLEmptyInput(t *testing.T) {
	assert.Equal(t, "", sanitizer.SanitizeHTML(""))
}

func TestValidateHTML(t *testing.T) {
	assert.True(t, sanitizer.ValidateHTML("<p>fine</p>"))
	assert.True(t, sanitizer.ValidateHTML(""))
	assert.False(t, sanitizer.ValidateHTML("<script>x()</script>"))
	assert.False(t, sanitizer.ValidateHTML(`<img src="x" onerror="p0wn()">`))
	assert.False(t, sanitizer.ValidateHTML(`<form action="/steal"><input name="pw"></form>`))
}

func TestExtractText(t *testing.T) {
	out := sanitizer.ExtractText("<h1>Title</h1><p>First paragraph.</p><p>Second.</p>")
	assert.Equal(t, "Title First paragraph. Second.", out)
	assert.Equal(t, "", sanitizer.ExtractText(""))
}

func TestCalculateReadTimeMinimumIsOne(t *testing.T) {
	assert.Equal(t, 1, sanitizer.CalculateReadTime("", 500))
	assert.Equal(t, 1, sanitizer.CalculateReadTime("<p>two words</p>", 500))
}

func TestCalculateReadTimeRoundsUp(t *testing.T) {
	// 600 words at 500 wpm is 1.2 minutes, read time rounds up to 2
	words := strings.Repeat("word ", 600)
	assert.Equal(t, 2, sanitizer.CalculateReadTime("<p>"+words+"</p>", 500))
	// 0 falls back to the default speed
	assert.Equal(t, 2, sanitizer.CalculateReadTime("<p>"+words+"</p>", 0))
}

func TestSanitizeLocalizedCleansBothLanguages(t *testing.T) {
	out := sanitizer.SanitizeLocalized(models.LocalizedText{
		Zh: `<p onclick="x()">你好</p>`,
		En: `<p>hello</p><script>bad()</script>`,
	})
	assert.Equal(t, "<p>你好</p>", out.Zh)
	assert.Equal(t, "<p>hello</p>", out.En)
}

func TestValidateLocalized(t *testing.T) {
	warnings := sanitizer.ValidateLocalized(models.LocalizedText{
		Zh: "<p>安全</p>",
		En: "<script>bad()</script>",
	})
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "en content")

	assert.Empty(t, sanitizer.ValidateLocalized(models.LocalizedText{Zh: "<p>ok</p>", En: "<p>ok</p>"}))
}

func TestLocalizedReadTimeTakesSlowerVariant(t *testing.T) {
	long := "<p>" + strings.Repeat("word ", 600) + "</p>"
	rt := sanitizer.LocalizedReadTime(models.LocalizedText{Zh: "<p>短</p>", En: long}, 500)
	assert.Equal(t, 2, rt)
}
