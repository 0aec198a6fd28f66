package matching

import (
	"sort"
	"strings"

	"github.com/empowerher/empowerher/internal/models"
)

// Additive score weights. Education level dominates, then interest overlap,
// then country eligibility; each matching skill adds a small unbounded bonus.
const (
	scoreEducationMatch  = 30
	scoreEducationOpen   = 15
	scoreInterestOverlap = 25
	scoreCountryEligible = 15
	scorePerSkill        = 5
)

// countryAny is the catalog sentinel for "open to every country".
const countryAny = "All"

type scoredScholarship struct {
	scholarship models.Scholarship
	score       int
}

// ScoreAndRank orders the catalog by descending match score against the
// profile. The sort is stable, so equal scores keep catalog order. Scores are
// ephemeral and never leave this function.
func (e *Engine) ScoreAndRank(profile models.Profile, catalog []models.Scholarship) []models.Scholarship {
	scored := make([]scoredScholarship, len(catalog))
	for i, scholarship := range catalog {
		scored[i] = scoredScholarship{
			scholarship: scholarship,
			score:       matchScore(profile, scholarship),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]models.Scholarship, len(scored))
	for i, entry := range scored {
		ranked[i] = entry.scholarship
	}
	return ranked
}

func matchScore(profile models.Profile, scholarship models.Scholarship) int {
	score := 0

	levels := eligibleLevels(scholarship)
	switch {
	case containsFold(levels, profile.EducationLevel):
		score += scoreEducationMatch
	case len(levels) == 0:
		score += scoreEducationOpen
	}

	for _, interest := range profile.Interests {
		if fuzzyIncludes(scholarship.Category, interest) || fuzzyIncludes(scholarship.Title, interest) {
			score += scoreInterestOverlap
			break
		}
	}

	if countryEligible(profile, scholarship) {
		score += scoreCountryEligible
	}

	for _, skill := range profile.Skills {
		for _, keyword := range scholarship.Keywords {
			if fuzzyIncludes(keyword, skill) {
				score += scorePerSkill
				break
			}
		}
	}

	return score
}

func countryEligible(profile models.Profile, scholarship models.Scholarship) bool {
	if scholarship.Eligibility == nil || len(scholarship.Eligibility.Countries) == 0 {
		return true
	}
	if profile.Country == "" {
		return true
	}
	countries := scholarship.Eligibility.Countries
	return containsFold(countries, profile.Country) || containsFold(countries, countryAny)
}

func eligibleLevels(scholarship models.Scholarship) []string {
	if scholarship.Eligibility == nil {
		return nil
	}
	return scholarship.Eligibility.EducationLevels
}

// fuzzyIncludes reports whether needle occurs in haystack, ignoring case.
// Substring matching is the deliberate fuzzy-match contract for interest and
// skill overlap, not an approximation of something stricter.
func fuzzyIncludes(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}
