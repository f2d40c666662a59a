// Package sanitizer restricts rich-text HTML to an explicit allow-list of
// tags and attributes before it is persisted. It also derives plain text
// and read time estimates from content fields.
package sanitizer

import (
	"math"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"news-cms/models"
)

// DefaultReadingSpeed is the assumed words-per-minute for read time.
const DefaultReadingSpeed = 500

var allowedTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "br": true, "div": true, "span": true,
	"strong": true, "em": true, "b": true, "i": true, "u": true, "s": true,
	"ul": true, "ol": true, "li": true,
	"table": true, "thead": true, "tbody": true, "tr": true, "th": true, "td": true,
	"a": true, "img": true,
	"blockquote": true, "code": true, "pre": true,
	"hr": true,
}

// Forbidden tags are dropped with their entire subtree, even though some
// never appear in allowedTags anyway.
var forbiddenTags = map[string]bool{
	"script": true, "style": true, "iframe": true,
	"form": true, "input": true, "button": true,
}

var allowedAttrs = map[string]bool{
	"href": true, "src": true, "alt": true, "title": true, "target": true, "rel": true,
	"class": true, "id": true, "name": true,
	"colspan": true, "rowspan": true, "align": true, "valign": true,
	"border": true, "cellpadding": true, "cellspacing": true,
	"width": true, "height": true,
}

var voidTags = map[string]bool{"br": true, "hr": true, "img": true}

// SanitizeHTML returns raw restricted to the allow-list. Forbidden elements
// disappear along with their contents; unknown-but-harmless elements are
// unwrapped so their text survives; event handler attributes and inline
// style are always stripped. Unparseable input yields "".
func SanitizeHTML(raw string) string {
	if raw == "" {
		return ""
	}
	nodes, err := parseFragment(raw)
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, n := range nodes {
		renderSanitized(&b, n)
	}
	return b.String()
}

func parseFragment(raw string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	return html.ParseFragment(strings.NewReader(raw), ctx)
}

func renderSanitized(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(html.EscapeString(n.Data))
		return
	case html.ElementNode:
		name := strings.ToLower(n.Data)
		if forbiddenTags[name] {
			return
		}
		if !allowedTags[name] {
			// unwrap: keep children, drop the element itself
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				renderSanitized(b, c)
			}
			return
		}
		b.WriteByte('<')
		b.WriteString(name)
		for _, attr := range n.Attr {
			if !attrAllowed(name, attr) {
				continue
			}
			b.WriteByte(' ')
			b.WriteString(strings.ToLower(attr.Key))
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(attr.Val))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		if voidTags[name] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderSanitized(b, c)
		}
		b.WriteString("</")
		b.WriteString(name)
		b.WriteByte('>')
	default:
		// comments, doctypes etc. are dropped
	}
}

func attrAllowed(tag string, attr html.Attribute) bool {
	key := strings.ToLower(attr.Key)
	if strings.HasPrefix(key, "on") {
		return false
	}
	if key == "style" || strings.HasPrefix(key, "data-") {
		return false
	}
	if !allowedAttrs[key] {
		return false
	}
	if key == "href" || key == "src" {
		return safeURL(attr.Val)
	}
	return true
}

func safeURL(raw string) bool {
	v := strings.TrimSpace(strings.ToLower(raw))
	for _, bad := range []string{"javascript:", "vbscript:", "data:"} {
		if strings.HasPrefix(v, bad) {
			return false
		}
	}
	return true
}

// ValidateHTML reports whether content is free of forbidden constructs.
// It never blocks a write; callers surface the result as a warning.
func ValidateHTML(raw string) bool {
	if raw == "" {
		return true
	}
	nodes, err := parseFragment(raw)
	if err != nil {
		return false
	}
	for _, n := range nodes {
		if hasForbidden(n) {
			return false
		}
	}
	return true
}

func hasForbidden(n *html.Node) bool {
	if n.Type == html.ElementNode {
		name := strings.ToLower(n.Data)
		if name == "script" || name == "style" || name == "iframe" || name == "form" {
			return true
		}
		for _, attr := range n.Attr {
			switch strings.ToLower(attr.Key) {
			case "onerror", "onload", "onclick":
				return true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasForbidden(c) {
			return true
		}
	}
	return false
}

// ExtractText strips all markup, joining text runs with single spaces.
// Used for search indexing and read time estimation.
func ExtractText(raw string) string {
	if raw == "" {
		return ""
	}
	nodes, err := parseFragment(raw)
	if err != nil {
		return ""
	}
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// CalculateReadTime estimates minutes to read the content at the given
// words-per-minute speed. Minimum is always 1.
func CalculateReadTime(raw string, readingSpeed int) int {
	if readingSpeed <= 0 {
		readingSpeed = DefaultReadingSpeed
	}
	words := len(strings.Fields(ExtractText(raw)))
	minutes := int(math.Ceil(float64(words) / float64(readingSpeed)))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// SanitizeLocalized cleans both language variants of a content field.
func SanitizeLocalized(content models.LocalizedText) models.LocalizedText {
	return models.LocalizedText{
		Zh: SanitizeHTML(content.Zh),
		En: SanitizeHTML(content.En),
	}
}

// ValidateLocalized reports per-language warnings about unsafe content.
func ValidateLocalized(content models.LocalizedText) []string {
	var warnings []string
	if content.Zh != "" && !ValidateHTML(content.Zh) {
		warnings = append(warnings, "zh content contains unsafe elements")
	}
	if content.En != "" && !ValidateHTML(content.En) {
		warnings = append(warnings, "en content contains unsafe elements")
	}
	return warnings
}

// LocalizedReadTime takes the slower of the two language variants.
func LocalizedReadTime(content models.LocalizedText, readingSpeed int) int {
	zh := CalculateReadTime(content.Zh, readingSpeed)
	en := CalculateReadTime(content.En, readingSpeed)
	if zh > en {
		return zh
	}
	return en
}
