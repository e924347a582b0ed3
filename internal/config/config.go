package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Rule struct {
	Tag string   `yaml:"tag"`
	Any []string `yaml:"any"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Scrape struct {
		Region            string  `yaml:"region"`
		WindowSeconds     int     `yaml:"window_seconds"`
		MaxPages          int     `yaml:"max_pages"`
		PageSize          int     `yaml:"page_size"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		RecencyMaxHours   int     `yaml:"recency_max_hours"`
	} `yaml:"scrape"`

	Companies []string `yaml:"companies"`

	Filters struct {
		TitleRules []Rule `yaml:"title_rules"`
		TechRules  []Rule `yaml:"tech_rules"`
		Experience struct {
			Min float64 `yaml:"min"`
			Max float64 `yaml:"max"`
		} `yaml:"experience"`
	} `yaml:"filters"`

	// Telegram credentials come from the environment only, never from yaml.
	Telegram struct {
		Token  string `yaml:"-"`
		ChatID string `yaml:"-"`
	} `yaml:"-"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	OverlayEnv(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = "."
	}
	if cfg.Scrape.Region == "" {
		cfg.Scrape.Region = "India"
	}
	if cfg.Scrape.WindowSeconds == 0 {
		cfg.Scrape.WindowSeconds = 10800 // last 3 hours, server-side
	}
	if cfg.Scrape.MaxPages == 0 {
		cfg.Scrape.MaxPages = 10
	}
	if cfg.Scrape.PageSize == 0 {
		cfg.Scrape.PageSize = 25
	}
	if cfg.Scrape.RequestsPerSecond == 0 {
		cfg.Scrape.RequestsPerSecond = 1.0
	}
	if cfg.Scrape.RecencyMaxHours == 0 {
		cfg.Scrape.RecencyMaxHours = 12
	}
	if cfg.Filters.Experience.Min == 0 && cfg.Filters.Experience.Max == 0 {
		cfg.Filters.Experience.Min = 2
		cfg.Filters.Experience.Max = 4
	}
}
