package config

import (
	"errors"
	"fmt"
	"strings"
)

func Validate(cfg Config) error {
	var errs []string

	if len(cfg.Companies) == 0 {
		errs = append(errs, "companies must have at least 1 entry")
	}
	for i, c := range cfg.Companies {
		if strings.TrimSpace(c) == "" {
			errs = append(errs, fmt.Sprintf("companies[%d] cannot be empty", i))
		}
	}

	if cfg.Scrape.MaxPages <= 0 {
		errs = append(errs, "scrape.max_pages must be > 0")
	}
	if cfg.Scrape.PageSize <= 0 {
		errs = append(errs, "scrape.page_size must be > 0")
	}
	if cfg.Scrape.WindowSeconds <= 0 {
		errs = append(errs, "scrape.window_seconds must be > 0")
	}
	if cfg.Scrape.RequestsPerSecond <= 0 {
		errs = append(errs, "scrape.requests_per_second must be > 0")
	}
	if cfg.Scrape.RecencyMaxHours <= 0 {
		errs = append(errs, "scrape.recency_max_hours must be > 0")
	}

	exp := cfg.Filters.Experience
	if exp.Min < 0 {
		errs = append(errs, "filters.experience.min must be >= 0")
	}
	if exp.Max <= exp.Min {
		errs = append(errs, "filters.experience.max must be > filters.experience.min")
	}

	checkRules := func(name string, rules []Rule) {
		if len(rules) == 0 {
			errs = append(errs, name+" must have at least 1 rule")
		}
		for i, r := range rules {
			if r.Tag == "" {
				errs = append(errs, fmt.Sprintf("%s[%d].tag is required", name, i))
			}
			if len(r.Any) == 0 {
				errs = append(errs, fmt.Sprintf("%s[%d].any must have at least 1 term", name, i))
			}
			for j, term := range r.Any {
				if term == "" {
					errs = append(errs, fmt.Sprintf("%s[%d].any[%d] cannot be empty", name, i, j))
				}
			}
		}
	}
	checkRules("filters.title_rules", cfg.Filters.TitleRules)
	checkRules("filters.tech_rules", cfg.Filters.TechRules)

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
