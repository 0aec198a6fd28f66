package matching

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/pkg/metrics"
)

type providerOption struct {
	provider string
	category string
}

// interestProviders maps a profile interest to plausible providers and focus
// areas. Unknown interests fall back to the Computer Science bucket.
var interestProviders = map[string][]providerOption{
	"Computer Science": {
		{"Google Women in Tech", "Technology"},
		{"Microsoft Diversity in Computing", "Technology"},
		{"IBM Future Leaders", "Technology"},
	},
	"Mathematics": {
		{"Mathematical Association Scholarship", "STEM"},
		{"Numerical Sciences Foundation", "STEM"},
		{"Quantitative Excellence Award", "STEM"},
	},
	"Entrepreneurship": {
		{"Young Entrepreneurs Fund", "Business"},
		{"Innovation Startup Grant", "Business"},
		{"Women in Business Initiative", "Business"},
	},
	"Engineering": {
		{"Women in Engineering Society", "STEM"},
		{"Engineering Future Leaders", "STEM"},
		{"Technical Innovation Scholarship", "STEM"},
	},
	"Arts": {
		{"Creative Expression Foundation", "Arts"},
		{"Visual Arts Excellence Award", "Arts"},
		{"Performing Arts Scholarship", "Arts"},
	},
	"Healthcare": {
		{"Future Medical Professionals", "Healthcare"},
		{"Health Sciences Scholarship", "Healthcare"},
		{"Nursing Excellence Award", "Healthcare"},
	},
}

// fallbackInterest seeds synthesis for profiles with no interests recorded.
const fallbackInterest = "Computer Science"

// educationTitlePrefix maps an education level to the noun phrase used in
// synthetic titles. Unmapped levels become plain merit scholarships.
var educationTitlePrefix = map[string]string{
	"Secondary School": "High School Excellence",
	"Undergraduate":    "Undergraduate Merit",
	"Graduate":         "Graduate Research",
	"Postgraduate":     "Postgraduate Fellowship",
}

// Synthesize fabricates count scholarship records tailored to the profile.
// It has no persistence side effect; callers cache the result so the output
// is not regenerated nondeterministically on every call.
func (e *Engine) Synthesize(profile models.Profile, count int) []models.Scholarship {
	if count <= 0 {
		return nil
	}

	interests := profile.Interests
	if len(interests) == 0 {
		interests = []string{fallbackInterest}
	}

	scholarships := make([]models.Scholarship, 0, count)
	for i := 0; i < count; i++ {
		interest := interests[e.intn(len(interests))]

		options, ok := interestProviders[interest]
		if !ok {
			options = interestProviders[fallbackInterest]
		}
		option := options[e.intn(len(options))]

		prefix, ok := educationTitlePrefix[profile.EducationLevel]
		if !ok {
			prefix = "Merit"
		}

		// Deadline lands 3-6 months out; amount is a whole number of
		// thousands between $1,000 and $19,000.
		deadline := e.now().AddDate(0, 3+e.intn(4), 0)
		amount := (e.intn(19) + 1) * 1000

		keywords := make([]string, 0, 2+len(profile.Skills))
		keywords = append(keywords, interest, profile.EducationLevel)
		keywords = append(keywords, profile.Skills...)

		scholarships = append(scholarships, models.Scholarship{
			ID:       syntheticIDBase + i,
			Title:    fmt.Sprintf("%s %s Scholarship", interest, prefix),
			Provider: option.provider,
			Amount:   fmt.Sprintf("$%d", amount),
			Deadline: deadline.Format("January 2, 2006"),
			Category: option.category,
			Description: fmt.Sprintf(
				"A scholarship opportunity for %s students with an interest in %s.",
				strings.ToLower(profile.EducationLevel), strings.ToLower(interest),
			),
			Eligibility: &models.Eligibility{
				EducationLevels: []string{profile.EducationLevel},
				Countries:       []string{countryAny},
			},
			Keywords:      keywords,
			IsAIGenerated: true,
			SourceRef:     uuid.NewString(),
		})
	}

	metrics.SyntheticScholarships.Add(float64(len(scholarships)))
	return scholarships
}
