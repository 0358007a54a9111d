package config

// Config represents the feed source configuration file
type Config struct {
	Feeds []Feed `json:"feeds" yaml:"feeds"`
}

// Feed describes one configured feed source
type Feed struct {
	URL  string `json:"url" yaml:"url"`
	Name string `json:"name" yaml:"name"`

	// Timeout for fetching this feed, in seconds
	Timeout int `json:"timeout" yaml:"timeout"`
}
