package matching

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/empowerher/empowerher/internal/models"
)

func fixedEngine(seed int64) *Engine {
	return NewEngine(
		WithRandSource(rand.NewSource(seed)),
		WithNow(func() time.Time {
			return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
		}),
	)
}

func bigCatalog(n int) []models.Scholarship {
	catalog := make([]models.Scholarship, n)
	for i := range catalog {
		catalog[i] = models.Scholarship{
			ID:       i + 1,
			Title:    fmt.Sprintf("Catalog Scholarship %d", i+1),
			Category: "General",
		}
	}
	return catalog
}

func TestRecommendReturnsTopFiveFromLargeCatalog(t *testing.T) {
	engine := fixedEngine(1)
	profile := models.Profile{EducationLevel: "Undergraduate", Interests: []string{"Computer Science"}}

	out := engine.Recommend(profile, bigCatalog(8))
	require.Len(t, out, RecommendationCount)
	for _, scholarship := range out {
		require.False(t, scholarship.IsAIGenerated)
	}
}

func TestRecommendFillsShortfallWithSyntheticEntries(t *testing.T) {
	engine := fixedEngine(1)
	profile := models.Profile{
		EducationLevel: "Undergraduate",
		Interests:      []string{"Computer Science"},
		Skills:         []string{"Programming"},
	}

	out := engine.Recommend(profile, bigCatalog(2))
	require.Len(t, out, RecommendationCount)
	require.False(t, out[0].IsAIGenerated)
	require.False(t, out[1].IsAIGenerated)
	for _, scholarship := range out[2:] {
		require.True(t, scholarship.IsAIGenerated)
		require.GreaterOrEqual(t, scholarship.ID, 1000)
	}
}

func TestRecommendEmptyCatalogIsAllSynthetic(t *testing.T) {
	engine := fixedEngine(7)
	profile := models.Profile{EducationLevel: "Graduate", Interests: []string{"Healthcare"}}

	out := engine.Recommend(profile, nil)
	require.Len(t, out, RecommendationCount)
	for i, scholarship := range out {
		require.True(t, scholarship.IsAIGenerated)
		require.Equal(t, 1000+i, scholarship.ID)
	}
}

func TestSynthesizeShapesRecordsFromProfile(t *testing.T) {
	engine := fixedEngine(42)
	profile := models.Profile{
		EducationLevel: "Undergraduate",
		Country:        "Nigeria",
		Interests:      []string{"Engineering"},
		Skills:         []string{"CAD", "Public Speaking"},
	}

	out := engine.Synthesize(profile, 3)
	require.Len(t, out, 3)

	for _, scholarship := range out {
		require.Equal(t, "Engineering Undergraduate Merit Scholarship", scholarship.Title)
		require.Equal(t, "STEM", scholarship.Category)
		require.Contains(t, []string{
			"Women in Engineering Society",
			"Engineering Future Leaders",
			"Technical Innovation Scholarship",
		}, scholarship.Provider)
		require.Regexp(t, `^\$(?:[1-9]|1[0-9])000$`, scholarship.Amount)
		require.NotNil(t, scholarship.Eligibility)
		require.Equal(t, []string{"Undergraduate"}, scholarship.Eligibility.EducationLevels)
		require.Equal(t, []string{"All"}, scholarship.Eligibility.Countries)
		require.Equal(t, []string{"Engineering", "Undergraduate", "CAD", "Public Speaking"}, scholarship.Keywords)
		require.True(t, scholarship.IsAIGenerated)
		require.NotEmpty(t, scholarship.SourceRef)

		deadline, err := time.Parse("January 2, 2006", scholarship.Deadline)
		require.NoError(t, err)
		base := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
		require.True(t, deadline.After(base.AddDate(0, 2, 0)))
		require.True(t, deadline.Before(base.AddDate(0, 7, 0)))
	}
}

func TestSynthesizeDeterministicWithFixedSeed(t *testing.T) {
	profile := models.Profile{EducationLevel: "Postgraduate", Interests: []string{"Arts", "Mathematics"}}

	first := fixedEngine(99).Synthesize(profile, 5)
	second := fixedEngine(99).Synthesize(profile, 5)

	require.Len(t, first, 5)
	for i := range first {
		require.Equal(t, first[i].Title, second[i].Title)
		require.Equal(t, first[i].Provider, second[i].Provider)
		require.Equal(t, first[i].Amount, second[i].Amount)
		require.Equal(t, first[i].Deadline, second[i].Deadline)
	}
}

func TestSynthesizeEmptyInterestsFallsBackDeterministically(t *testing.T) {
	engine := fixedEngine(5)
	profile := models.Profile{EducationLevel: "Secondary School"}

	out := engine.Synthesize(profile, 2)
	require.Len(t, out, 2)
	for _, scholarship := range out {
		require.Equal(t, "Computer Science High School Excellence Scholarship", scholarship.Title)
		require.Equal(t, "Technology", scholarship.Category)
	}
}

func TestSynthesizeUnknownEducationLevelUsesMeritPrefix(t *testing.T) {
	engine := fixedEngine(5)
	profile := models.Profile{EducationLevel: "Vocational", Interests: []string{"Arts"}}

	out := engine.Synthesize(profile, 1)
	require.Equal(t, "Arts Merit Scholarship", out[0].Title)
}

func TestSynthesizeZeroCountIsNil(t *testing.T) {
	require.Nil(t, fixedEngine(1).Synthesize(models.Profile{}, 0))
}
