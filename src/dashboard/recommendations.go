package dashboard

import "fmt"

// Expert is a recommended health expert.
type Expert struct {
	Name           string
	Specialization string
	Hospital       string
	Location       string
	Rating         float64
	Experience     int
}

// Publication is a recommended research publication.
type Publication struct {
	Title    string
	Authors  string
	Abstract string
	Date     string
	Journal  string
}

// RecommendedExperts returns the curated experts list for a condition.
// Served locally until the backend grows an experts endpoint.
func RecommendedExperts(condition, city string) []Expert {
	if city == "" {
		city = "New York"
	}
	return []Expert{
		{
			Name:           "Dr. Smith",
			Specialization: fmt.Sprintf("%s Specialist", condition),
			Hospital:       "City General Hospital",
			Location:       city,
			Rating:         4.8,
			Experience:     15,
		},
		{
			Name:           "Dr. Johnson",
			Specialization: "Oncology Expert",
			Hospital:       "Medical Center",
			Location:       "Chicago",
			Rating:         4.9,
			Experience:     20,
		},
	}
}

// RecommendedPublications returns the curated publications list for a
// condition. Served locally until the backend grows a publications
// endpoint.
func RecommendedPublications(condition string) []Publication {
	return []Publication{
		{
			Title:    fmt.Sprintf("Recent Advances in %s Treatment", condition),
			Authors:  "Smith J, Johnson A, Williams R",
			Abstract: fmt.Sprintf("This study explores new treatment methodologies for %s and their clinical implications.", condition),
			Date:     "2024-01-15",
			Journal:  "Journal of Medical Research",
		},
		{
			Title:    fmt.Sprintf("Understanding %s: A Comprehensive Review", condition),
			Authors:  "Brown K, Davis M",
			Abstract: fmt.Sprintf("A systematic review of current research and future directions in %s management.", condition),
			Date:     "2024-02-20",
			Journal:  "Clinical Medicine Today",
		},
	}
}
