// Package crawler fetches legal-news listings from configured sources.
// Items are stored as scraped; no content analysis happens here.
package crawler

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"luatvn-backend/models"
)

// Source describes one news site to crawl: its listing URL and the
// CSS selectors locating items on the page.
type Source struct {
	Name            string
	URL             string
	ItemSelector    string
	TitleSelector   string
	LinkSelector    string
	SummarySelector string
}

// Config holds crawler configuration.
type Config struct {
	Delay     time.Duration
	UserAgent string
	Timeout   time.Duration
}

// Crawler fetches news listings and returns their items.
type Crawler struct {
	config Config
}

// New creates a new Crawler with the given configuration.
func New(config Config) *Crawler {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "luatvn-crawler/1.0"
	}
	return &Crawler{config: config}
}

// Crawl fetches a source's listing page and extracts its news items.
// The context cancels in-flight requests between pages.
func (c *Crawler) Crawl(ctx context.Context, source Source) ([]models.NewsArticle, error) {
	var articles []models.NewsArticle
	var mu sync.Mutex

	slog.Debug("starting crawl", "source", source.Name, "url", source.URL)

	parsedURL, err := url.Parse(source.URL)
	if err != nil {
		slog.Error("failed to parse source URL", "url", source.URL, "error", err)
		return nil, err
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(parsedURL.Hostname()),
		colly.UserAgent(c.config.UserAgent),
	)

	collector.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Delay:       c.config.Delay,
		Parallelism: 2,
	})

	collector.SetRequestTimeout(c.config.Timeout)

	collector.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			slog.Debug("crawl cancelled", "url", r.URL.String())
			r.Abort()
		}
	})

	collector.OnHTML(source.ItemSelector, func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildText(source.TitleSelector))
		link := e.Request.AbsoluteURL(e.ChildAttr(source.LinkSelector, "href"))
		if title == "" || link == "" {
			return
		}

		article := models.NewsArticle{
			Title:   title,
			URL:     link,
			Summary: strings.TrimSpace(e.ChildText(source.SummarySelector)),
			Source:  source.Name,
		}

		mu.Lock()
		articles = append(articles, article)
		mu.Unlock()
	})

	collector.OnError(func(r *colly.Response, err error) {
		slog.Warn("crawl request failed", "url", r.Request.URL.String(), "error", err)
	})

	if err := collector.Visit(source.URL); err != nil {
		return nil, err
	}
	collector.Wait()

	slog.Info("crawl finished", "source", source.Name, "items", len(articles))
	return articles, nil
}
