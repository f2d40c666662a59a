// Package semanticid derives human-readable news identifiers of the form
// {company}-{product}-{YYYYMMDD}{NNN} from article titles via keyword
// matching, e.g. "openai-gpt5-20250827001".
package semanticid

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

type keyword struct {
	name string
	slug string
}

// companyNames maps Chinese and canonical vendor names to their slug form.
// Order matters: the first entry found in the title wins.
var companyNames = []keyword{
	{"百度", "baidu"},
	{"阿里巴巴", "alibaba"},
	{"阿里", "alibaba"},
	{"哔哩哔哩", "bilibili"},
	{"华为", "huawei"},
	{"小米", "xiaomi"},
	{"深度求索", "deepseek"},
	{"腾讯", "tencent"},
	{"清华大学", "tsinghua"},
	{"openai", "openai"},
	{"google", "google"},
	{"microsoft", "microsoft"},
	{"meta", "meta"},
	{"tesla", "tesla"},
	{"deepseek", "deepseek"},
	{"anthropic", "anthropic"},
	{"nvidia", "nvidia"},
	{"apple", "apple"},
	{"amazon", "amazon"},
	{"baidu", "baidu"},
	{"alibaba", "alibaba"},
	{"tencent", "tencent"},
	{"huawei", "huawei"},
	{"samsung", "samsung"},
	{"intel", "intel"},
	{"amd", "amd"},
	{"ibm", "ibm"},
	{"oracle", "oracle"},
	{"xiaomi", "xiaomi"},
}

var productNames = []keyword{
	{"文心一言", "yiyan"},
	{"昇腾", "ascend"},
	{"芯片", "chip"},
	{"chatgpt", "chatgpt"},
	{"gpt-5", "gpt5"},
	{"gpt5", "gpt5"},
	{"gemini", "gemini"},
	{"copilot", "copilot"},
	{"llama", "llama"},
	{"claude", "claude"},
	{"optimus", "optimus"},
	{"mistral", "mistral"},
	{"ernie", "ernie"},
	{"gpt", "gpt"},
}

var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "with": true, "by": true,
	"of": true, "a": true, "an": true,
}

var (
	nonSlugChars = regexp.MustCompile(`[^\w-]`)
	asciiSlug    = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	titleSplit   = regexp.MustCompile(`[\s\-]+`)
)

// Generate builds a semantic ID for a title published on date (YYYY-MM-DD)
// with a per-date sequence number. customCompany/customProduct override the
// keyword matching; pass "" to use it.
//
// Titles that match no known company fall back to company "ai" and a
// product derived from the leading significant title words, so every title
// yields an ID even outside the mapping tables.
func Generate(title, date string, sequence int, customCompany, customProduct string) string {
	lowerTitle := strings.ToLower(title)

	company := customCompany
	if company == "" {
		for _, kw := range companyNames {
			if strings.Contains(lowerTitle, strings.ToLower(kw.name)) {
				company = kw.slug
				break
			}
		}
	}

	product := customProduct
	if product == "" {
		for _, kw := range productNames {
			// skip slugs already covered by the company match
			if strings.Contains(lowerTitle, strings.ToLower(kw.name)) && !strings.Contains(company, kw.slug) {
				product = kw.slug
				break
			}
		}
	}

	if company == "" {
		company = "ai"
	}
	if product == "" {
		product = productFromTitle(title)
	}

	company = cleanSlug(company)
	product = cleanSlug(product)
	if !asciiSlug.MatchString(company) {
		company = "ai"
	}
	if !asciiSlug.MatchString(product) {
		product = "news"
	}

	formattedDate := strings.ReplaceAll(date, "-", "")
	if sequence < 1 {
		sequence = 1
	}
	rawID := fmt.Sprintf("%s-%s-%s%03d", company, product, formattedDate, sequence)
	return url.QueryEscape(rawID)
}

// productFromTitle picks up to three significant words from the title,
// capped at 20 characters to keep URLs short.
func productFromTitle(title string) string {
	words := titleSplit.Split(strings.ToLower(title), -1)
	var main []string
	for _, w := range words {
		if len(w) > 2 && !stopWords[w] {
			main = append(main, w)
			if len(main) == 3 {
				break
			}
		}
	}
	product := strings.Join(main, "-")
	if product == "" {
		return "news"
	}
	if len(product) > 20 {
		product = strings.TrimRight(product[:20], "-")
	}
	return product
}

func cleanSlug(s string) string {
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return s
}

// Item is a title/date pair for batch generation.
type Item struct {
	Title string
	Date  string
}

// Override carries per-title custom company/product names.
type Override struct {
	Company string
	Product string
}

// GenerateBatch assigns IDs to a slice of items, keeping a per-date
// sequence counter so same-day items never collide.
func GenerateBatch(items []Item, overrides map[string]Override) []string {
	dateCounts := make(map[string]int, len(items))
	ids := make([]string, 0, len(items))

	for _, item := range items {
		dateCounts[item.Date]++
		ov := overrides[item.Title]
		ids = append(ids, Generate(item.Title, item.Date, dateCounts[item.Date], ov.Company, ov.Product))
	}
	return ids
}
