package fetcher

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch tries each candidate address once, in order, and returns the
	// HTML body of the first successful response
	Fetch(urls []string) (string, error)
}
