package filter

import (
	"regexp"
	"strconv"
)

// Matches tenure mentions like "2-3 years", "minimum 3 years", "5+ years",
// "2 to 4.5 years". A bare "3 years" yields the pair (3,3).
var experienceRe = regexp.MustCompile(
	`(?i)\b(?:(?:minimum|min\.?|at least)\s*)?` +
		`(\d+(?:\.\d+)?)` +
		`(?:\s*(?:-|to|–)\s*(\d+(?:\.\d+)?))?` +
		`(?:\s*(?:\+|plus))?` +
		`\s*years?\b`)

// ExtractExperience pulls every year-range mention out of qualification text
// and flattens the (min, max) pairs in match order. No dedup; the classifier
// wants every number the text commits to.
func ExtractExperience(qualText string) []float64 {
	var nums []float64
	for _, m := range experienceRe.FindAllStringSubmatch(qualText, -1) {
		lo, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		hi := lo
		if m[2] != "" {
			if v, err := strconv.ParseFloat(m[2], 64); err == nil {
				hi = v
			}
		}
		nums = append(nums, lo, hi)
	}
	return nums
}
