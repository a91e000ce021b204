package famstock

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed/rss"
)

// DefaultNewsQuery is the query the dashboard uses when none is given.
const DefaultNewsQuery = "台股 財經"

const googleNewsURL = "https://news.google.com/rss/search"

// newsLimit caps how many headlines a fetch returns.
const newsLimit = 5

const newsWindow = 30 * time.Minute

// GoogleNews implements NewsGateway over the Google News RSS feed.
// The rss parser is used directly rather than gofeed's universal one
// because the universal item drops the <source> element the feed
// carries for every headline.
type GoogleNews struct {
	BaseURL string
	Client  *http.Client
}

func NewGoogleNews() *GoogleNews {
	return &GoogleNews{BaseURL: googleNewsURL, Client: cachedClient(newsWindow)}
}

// Headlines returns up to five news items for a query, newest first as
// the feed orders them. Failures surface as an error; the caller
// renders an empty section instead.
func (g *GoogleNews) Headlines(query string) ([]NewsItem, error) {
	addr := fmt.Sprintf("%s?q=%s&hl=zh-TW&gl=TW&ceid=TW:zh-Hant", g.BaseURL, url.QueryEscape(query))
	resp, err := g.Client.Get(addr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot fetch news feed: %v", resp.Status)
	}

	feed, err := (&rss.Parser{}).Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot parse news feed: %w", err)
	}

	items := make([]NewsItem, 0, newsLimit)
	for _, it := range feed.Items {
		if len(items) == newsLimit {
			break
		}
		item := NewsItem{Title: it.Title, Link: it.Link, Published: it.PubDate}
		if it.Source != nil {
			item.Source = it.Source.Title
		}
		items = append(items, item)
	}
	return items, nil
}
