// Package catalog serves the curated scholarship and mentor listings. The
// data is compiled in; a listings database is deliberately out of scope and
// the matching engine fabricates additional records when the curated set runs
// short.
package catalog

import "github.com/empowerher/empowerher/internal/models"

// Scholarships returns a copy of the curated scholarship catalog.
func Scholarships() []models.Scholarship {
	out := make([]models.Scholarship, len(scholarships))
	copy(out, scholarships)
	return out
}

// ScholarshipByID looks up a curated scholarship.
func ScholarshipByID(id int) (models.Scholarship, bool) {
	for _, s := range scholarships {
		if s.ID == id {
			return s, true
		}
	}
	return models.Scholarship{}, false
}

// Mentors returns a copy of the mentor directory.
func Mentors() []models.Mentor {
	out := make([]models.Mentor, len(mentors))
	copy(out, mentors)
	return out
}

// MentorByID looks up a mentor.
func MentorByID(id int) (models.Mentor, bool) {
	for _, m := range mentors {
		if m.ID == id {
			return m, true
		}
	}
	return models.Mentor{}, false
}

var scholarships = []models.Scholarship{
	{
		ID:       1,
		Title:    "Women in Technology Scholarship",
		Provider: "Google Women in Tech",
		Amount:   "$10000",
		Deadline: "June 15, 2026",
		Category: "Technology",
		Keywords: []string{"Technology", "Computer Science", "Programming", "Engineering"},
		Eligibility: &models.Eligibility{
			EducationLevels: []string{"Secondary School", "Undergraduate"},
			Countries:       []string{"All"},
		},
	},
	{
		ID:       2,
		Title:    "African STEM Leaders Grant",
		Provider: "Microsoft STEM Fund",
		Amount:   "$7500",
		Deadline: "May 30, 2026",
		Category: "Technology",
		Keywords: []string{"STEM", "Leadership", "Science", "Mathematics"},
		Eligibility: &models.Eligibility{
			EducationLevels: []string{"Undergraduate", "Graduate"},
			Countries:       []string{"Nigeria", "Ghana", "Kenya", "South Africa"},
		},
	},
	{
		ID:       3,
		Title:    "Future Business Leaders Scholarship",
		Provider: "Goldman Sachs Foundation",
		Amount:   "$5000",
		Deadline: "July 1, 2026",
		Category: "Business",
		Keywords: []string{"Business", "Entrepreneurship", "Finance", "Leadership"},
		Eligibility: &models.Eligibility{
			EducationLevels: []string{"Undergraduate"},
			Countries:       []string{"All"},
		},
	},
	{
		ID:       4,
		Title:    "Global Health Sciences Award",
		Provider: "Johnson & Johnson Foundation",
		Amount:   "$8000",
		Deadline: "August 15, 2026",
		Category: "Medicine",
		Keywords: []string{"Medicine", "Health", "Biology", "Nursing"},
		Eligibility: &models.Eligibility{
			EducationLevels: []string{"Undergraduate", "Graduate"},
			Countries:       []string{"All"},
		},
	},
	{
		ID:       5,
		Title:    "Creative Arts Excellence Fund",
		Provider: "Adobe Creativity Fund",
		Amount:   "$4000",
		Deadline: "April 20, 2026",
		Category: "Arts",
		Keywords: []string{"Art", "Design", "Music", "Creative Writing"},
		Eligibility: &models.Eligibility{
			EducationLevels: []string{"Secondary School", "Undergraduate", "Graduate"},
		},
	},
	{
		ID:       6,
		Title:    "Engineering the Future Scholarship",
		Provider: "Siemens Education Fund",
		Amount:   "$12000",
		Deadline: "September 1, 2026",
		Category: "Engineering",
		Keywords: []string{"Engineering", "Robotics", "Technology", "Innovation"},
		Eligibility: &models.Eligibility{
			EducationLevels: []string{"Undergraduate"},
			Countries:       []string{"Nigeria", "Egypt", "Morocco", "Rwanda"},
		},
	},
	{
		ID:       7,
		Title:    "Graduate Research Fellowship",
		Provider: "Mastercard Foundation",
		Amount:   "$15000",
		Deadline: "October 10, 2026",
		Category: "Science",
		Keywords: []string{"Research", "Science", "Graduate Studies"},
		Eligibility: &models.Eligibility{
			EducationLevels: []string{"Graduate", "Postgraduate"},
			Countries:       []string{"All"},
		},
	},
	{
		ID:        8,
		Title:     "Young Women Entrepreneurs Grant",
		Provider:  "Tony Elumelu Foundation",
		Amount:    "$6000",
		Deadline:  "May 5, 2026",
		Category:  "Business",
		Keywords:  []string{"Entrepreneurship", "Business", "Startups", "Leadership"},
		IsPremium: true,
		Eligibility: &models.Eligibility{
			Countries: []string{"Nigeria", "Ghana", "Senegal"},
		},
	},
	{
		ID:       9,
		Title:    "Secondary School Achievers Award",
		Provider: "UNICEF Education Initiative",
		Amount:   "$2000",
		Deadline: "March 30, 2026",
		Category: "Education",
		Keywords: []string{"Education", "Academic Excellence", "Community Service"},
		Eligibility: &models.Eligibility{
			EducationLevels: []string{"Secondary School"},
			Countries:       []string{"All"},
		},
	},
	{
		ID:        10,
		Title:     "Data Science Pathways Scholarship",
		Provider:  "IBM SkillsBuild",
		Amount:    "$9000",
		Deadline:  "July 22, 2026",
		Category:  "Technology",
		Keywords:  []string{"Data Science", "Programming", "Mathematics", "Statistics"},
		IsPremium: true,
		Eligibility: &models.Eligibility{
			EducationLevels: []string{"Undergraduate", "Graduate"},
			Countries:       []string{"All"},
		},
	},
}

var mentors = []models.Mentor{
	{
		ID:           1,
		Name:         "Dr. Amina Diallo",
		Title:        "Senior Software Engineer",
		Institution:  "Google",
		Field:        "Technology",
		Image:        "/mentors/amina-diallo.jpg",
		Availability: "Weekends",
	},
	{
		ID:           2,
		Name:         "Prof. Grace Okafor",
		Title:        "Professor of Biomedical Engineering",
		Institution:  "University of Lagos",
		Field:        "Engineering",
		Image:        "/mentors/grace-okafor.jpg",
		Availability: "Tuesday & Thursday evenings",
	},
	{
		ID:           3,
		Name:         "Fatima Hassan",
		Title:        "Investment Analyst",
		Institution:  "African Development Bank",
		Field:        "Business",
		Image:        "/mentors/fatima-hassan.jpg",
		Availability: "Weekday mornings",
		IsPremium:    true,
	},
	{
		ID:           4,
		Name:         "Dr. Chidinma Eze",
		Title:        "Pediatric Surgeon",
		Institution:  "Lagos University Teaching Hospital",
		Field:        "Medicine",
		Image:        "/mentors/chidinma-eze.jpg",
		Availability: "Monthly sessions",
		IsPremium:    true,
	},
	{
		ID:           5,
		Name:         "Zainab Bello",
		Title:        "Product Designer",
		Institution:  "Flutterwave",
		Field:        "Arts",
		Image:        "/mentors/zainab-bello.jpg",
		Availability: "Flexible",
	},
	{
		ID:           6,
		Name:         "Dr. Wanjiru Kamau",
		Title:        "Research Scientist",
		Institution:  "Kenya Medical Research Institute",
		Field:        "Science",
		Image:        "/mentors/wanjiru-kamau.jpg",
		Availability: "Weekends",
	},
}
