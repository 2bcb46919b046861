package fetcher

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

// ErrUnreachable indicates that every candidate address failed
var ErrUnreachable = errors.New("no candidate address reachable")

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a new CollyFetcher with the given per-attempt timeout
func NewCollyFetcher(timeout time.Duration) *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
	)
	if timeout > 0 {
		c.SetRequestTimeout(timeout)
	}

	return &CollyFetcher{
		collector: c,
	}
}

// Fetch implements the Fetcher interface. Each address is tried once with
// no retries; the first 200 response wins.
func (cf *CollyFetcher) Fetch(urls []string) (string, error) {
	var html string

	cf.collector.OnResponse(func(r *colly.Response) {
		if r.StatusCode == http.StatusOK && html == "" {
			html = string(r.Body)
		}
	})

	cf.collector.OnError(func(r *colly.Response, err error) {
		log.Printf("Error fetching %s: %v\n", r.Request.URL, err)
	})

	for _, url := range urls {
		log.Printf("Trying %s\n", url)
		if err := cf.collector.Visit(url); err != nil {
			log.Printf("Error visiting %s: %v\n", url, err)
			continue
		}
		cf.collector.Wait()

		if html != "" {
			log.Printf("Connected to %s\n", url)
			return html, nil
		}
	}

	return "", ErrUnreachable
}
