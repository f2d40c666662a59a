package feeder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"news-cms/feeder"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example AI News</title>
    <item>
      <title>First story</title>
      <link>https://example.com/1</link>
      <description>summary one</description>
      <pubDate>Wed, 27 Aug 2025 09:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second story</title>
      <link>https://example.com/2</link>
      <description>summary two</description>
      <pubDate>Wed, 27 Aug 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Third story</title>
      <link>https://example.com/3</link>
      <description>summary three</description>
    </item>
  </channel>
</rss>`

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeed))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchRssFeeds(t *testing.T) {
	server := newFeedServer(t)

	items, err := feeder.FetchRssFeeds(server.URL, 0)
	assert.NoError(t, err)
	assert.Len(t, items, 3)

	assert.Equal(t, "First story", items[0].Title)
	assert.Equal(t, "https://example.com/1", items[0].Link)
	assert.Equal(t, "summary one", items[0].Description)
	assert.False(t, items[0].PublishedAt.IsZero())

	// item without pubDate keeps a zero time
	assert.True(t, items[2].PublishedAt.IsZero())
}

func TestFetchRssFeedsAppliesLimit(t *testing.T) {
	server := newFeedServer(t)

	items, err := feeder.FetchRssFeeds(server.URL, 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Second story", items[1].Title)
}

func TestFetchRssFeedsBadURL(t *testing.T) {
	_, err := feeder.FetchRssFeeds("http://127.0.0.1:0/feed", 0)
	assert.Error(t, err)
}
