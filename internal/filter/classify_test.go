package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobwatch/internal/config"
	"jobwatch/internal/domain"
)

func testCfg() config.Config {
	var cfg config.Config
	cfg.Filters.TitleRules = []config.Rule{
		{Tag: "eng", Any: []string{"engineer", "developer", "sde", "software"}},
	}
	cfg.Filters.TechRules = []config.Rule{
		{Tag: "backend", Any: []string{"java", "aws", "microservices"}},
		{Tag: "frontend", Any: []string{"react", "typescript"}},
	}
	cfg.Filters.Experience.Min = 2
	cfg.Filters.Experience.Max = 4
	return cfg
}

func job(title string) domain.JobSummary {
	return domain.JobSummary{
		Title:       title,
		CompanyName: "Acme",
		Link:        "https://example.com/jobs/view/1",
		PostedText:  "5 hours ago",
	}
}

func TestClassifyAccepts(t *testing.T) {
	dec := Classify(testCfg(), job("Backend Software Engineer"), domain.JobDetail{
		Description: "we ship java services on aws",
		QualText:    "2 to 3 years experience",
	})
	assert.True(t, dec.Accepted)
	assert.Empty(t, dec.Reason)
}

func TestClassifyTitleGate(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		detail domain.JobDetail
	}{
		{"title without keyword", "Account Manager", domain.JobDetail{
			Description: "java", QualText: "2-3 years"}},
		{"empty description", "Software Engineer", domain.JobDetail{
			QualText: "2-3 years"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := Classify(testCfg(), job(tt.title), tt.detail)
			assert.False(t, dec.Accepted)
			assert.Equal(t, domain.RejectFilter, dec.Reason)
		})
	}
}

func TestClassifyExperienceGate(t *testing.T) {
	tests := []struct {
		name string
		qual string
	}{
		// boundary: 4 fails "all < 4" even though 2 is in band
		{"range touching ceiling", "2-4 years"},
		{"senior signal elsewhere", "2-3 years backend\n5+ years with kubernetes"},
		{"below band only", "1 year of experience"},
		{"no numbers at all", "a passion for engineering"},
		{"empty qualification text", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := Classify(testCfg(), job("Software Engineer"), domain.JobDetail{
				Description: "java everywhere",
				QualText:    tt.qual,
			})
			assert.False(t, dec.Accepted)
			assert.Equal(t, domain.RejectExperience, dec.Reason)
		})
	}
}

func TestClassifyTechGate(t *testing.T) {
	dec := Classify(testCfg(), job("Software Engineer"), domain.JobDetail{
		Description: "we use cobol and fortran",
		QualText:    "2-3 years",
	})
	assert.False(t, dec.Accepted)
	assert.Equal(t, domain.RejectExperience, dec.Reason)
}
