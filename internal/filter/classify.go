package filter

import (
	"fmt"
	"strings"

	"jobwatch/internal/config"
	"jobwatch/internal/domain"
)

// Classify turns a fetched job into an accept/reject decision. The recency
// and dedup checks happen upstream; by the time a job reaches here it is
// fresh and unseen.
func Classify(cfg config.Config, job domain.JobSummary, detail domain.JobDetail) domain.Decision {
	// 1) Title gate: the posting has to look like an engineering role at all,
	// and a card whose detail page gave us nothing is unusable.
	if !hitAnyRule(cfg.Filters.TitleRules, strings.ToLower(job.Title)) || detail.Description == "" {
		return domain.Reject(job, domain.RejectFilter, "title/description filter")
	}

	nums := ExtractExperience(detail.QualText)

	// 2) Experience gate: at least one mention inside the band, and no mention
	// at or above the ceiling anywhere. A single senior-leaning number
	// disqualifies the posting even if another sentence fits the band.
	okExp := len(nums) > 0 && anyInBand(nums, cfg.Filters.Experience.Min, cfg.Filters.Experience.Max) &&
		allBelow(nums, cfg.Filters.Experience.Max)

	// 3) Technology gate: the description mentions at least one known term.
	okTech := hitAnyRule(cfg.Filters.TechRules, detail.Description)

	if okExp && okTech {
		return domain.Accept(job)
	}
	return domain.Reject(job, domain.RejectExperience,
		fmt.Sprintf("skills/experience mismatch (nums=%v tech=%v)", nums, okTech))
}

func hitAnyRule(rules []config.Rule, text string) bool {
	for _, r := range rules {
		for _, needle := range r.Any {
			n := strings.ToLower(strings.TrimSpace(needle))
			if n == "" {
				continue
			}
			if strings.Contains(text, n) {
				return true
			}
		}
	}
	return false
}

func anyInBand(nums []float64, lo, hi float64) bool {
	for _, n := range nums {
		if n >= lo && n < hi {
			return true
		}
	}
	return false
}

func allBelow(nums []float64, hi float64) bool {
	for _, n := range nums {
		if n >= hi {
			return false
		}
	}
	return true
}
