package unveil

import "time"

// Dataset kinds select the extractor used for a dataset's sources.
const (
	DatasetOryx = "oryx"
	DatasetYale = "yale"
)

// Config holds the settings of a harvest.
type Config struct {
	DataDir  string      `yaml:"data_dir"`
	Database string      `yaml:"database"`
	Fetch    FetchConfig `yaml:"fetch"`
	Log      LogConfig   `yaml:"log"`
	Datasets []Dataset   `yaml:"datasets"`
}

// FetchConfig configures document retrieval.
type FetchConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	Retries           int           `yaml:"retries"`
	RetryDelay        time.Duration `yaml:"retry_delay"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	Concurrency       int           `yaml:"concurrency"`
}

// RetryDelays returns one delay per retry attempt.
func (c FetchConfig) RetryDelays() []time.Duration {
	delays := make([]time.Duration, c.Retries)
	for i := range delays {
		delays[i] = c.RetryDelay
	}
	return delays
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Dataset is a set of sources parsed by the same extractor and published
// as a single batch.
type Dataset struct {
	Name    string   `yaml:"name"`
	Kind    string   `yaml:"kind"`
	Sources []Source `yaml:"sources"`
}

// Source is one document of a dataset.
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Selector string `yaml:"selector"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  "data",
		Database: "data/unveil.db",
		Fetch: FetchConfig{
			Timeout:           30 * time.Second,
			Retries:           5,
			RetryDelay:        60 * time.Second,
			RequestsPerSecond: 1.0,
			Burst:             1,
			Concurrency:       2,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Datasets: []Dataset{
			{
				Name: "oryx-equipment-loss",
				Kind: DatasetOryx,
				Sources: []Source{
					{
						Name:     "russia",
						URL:      "https://www.oryxspioenkop.com/2022/02/attack-on-europe-documenting-equipment.html",
						Selector: "russia",
					},
					{
						Name:     "ukraine",
						URL:      "https://www.oryxspioenkop.com/2022/02/attack-on-europe-documenting-ukrainian.html",
						Selector: "ukraine",
					},
				},
			},
			{
				Name: "yale-company-operations",
				Kind: DatasetYale,
				Sources: []Source{
					{
						Name:     "companies",
						URL:      "https://som.yale.edu/story/2022/over-1000-companies-have-curtailed-operations-russia-some-remain",
						Selector: "all",
					},
				},
			},
		},
	}
}

// Dataset returns the dataset with the given name.
func (c *Config) Dataset(name string) (*Dataset, bool) {
	for i := range c.Datasets {
		if c.Datasets[i].Name == name {
			return &c.Datasets[i], true
		}
	}
	return nil, false
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return Errorf(EINVALID, "data_dir required")
	}
	if c.Fetch.Retries < 0 {
		return Errorf(EINVALID, "fetch.retries must be non-negative")
	}
	if c.Fetch.RetryDelay < 0 {
		return Errorf(EINVALID, "fetch.retry_delay must be non-negative")
	}
	if c.Fetch.Burst < 0 {
		return Errorf(EINVALID, "fetch.burst must be non-negative")
	}
	if c.Fetch.RequestsPerSecond <= 0 {
		return Errorf(EINVALID, "fetch.requests_per_second must be positive")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return Errorf(EINVALID, "log.format must be one of: text, json")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return Errorf(EINVALID, "log.level must be one of: debug, info, warn, error")
	}

	seen := make(map[string]bool)
	for _, ds := range c.Datasets {
		if ds.Name == "" {
			return Errorf(EINVALID, "dataset name required")
		}
		if seen[ds.Name] {
			return Errorf(EINVALID, "duplicate dataset %q", ds.Name)
		}
		seen[ds.Name] = true

		switch ds.Kind {
		case DatasetOryx, DatasetYale:
		default:
			return Errorf(EINVALID, "dataset %q: unknown kind %q", ds.Name, ds.Kind)
		}
		if len(ds.Sources) == 0 {
			return Errorf(EINVALID, "dataset %q: at least one source required", ds.Name)
		}
		for _, src := range ds.Sources {
			if src.Name == "" || src.URL == "" {
				return Errorf(EINVALID, "dataset %q: source name and url required", ds.Name)
			}
		}
	}
	return nil
}
