// Package catalog holds the internship catalog and the filter engine that
// serves catalog searches. The catalog is a static in-process fixture;
// posting management belongs to an external system.
package catalog

// Internship is one posting in the catalog.
type Internship struct {
	ID                    int      `json:"id"`
	Title                 string   `json:"title"`
	Company               string   `json:"company"`
	Location              string   `json:"location"`
	Duration              string   `json:"duration"`
	EducationRequirements string   `json:"educationRequirements"`
	SkillsRequired        []string `json:"skillsRequired"`
	Description           string   `json:"description"`
	Stipend               string   `json:"stipend"`
	Sector                string   `json:"sector"`
}

// Default returns the built-in catalog. Slice order is the canonical catalog
// order; the filter engine preserves it.
func Default() []Internship {
	return []Internship{
		{
			ID:                    1,
			Title:                 "Software Development Intern",
			Company:               "TechCorp Solutions",
			Location:              "Mumbai, Maharashtra",
			Duration:              "3 months",
			EducationRequirements: "Bachelor's Degree",
			SkillsRequired:        []string{"React", "JavaScript", "Node.js"},
			Description:           "Join our team to work on cutting-edge web applications using modern technologies.",
			Stipend:               "₹15,000/month",
			Sector:                "Information Technology",
		},
		{
			ID:                    2,
			Title:                 "Digital Marketing Intern",
			Company:               "MarketPro Agency",
			Location:              "Bangalore, Karnataka",
			Duration:              "4 months",
			EducationRequirements: "12th Pass",
			SkillsRequired:        []string{"Social Media", "Content Writing", "Analytics"},
			Description:           "Help create and execute digital marketing campaigns for various clients.",
			Stipend:               "₹12,000/month",
			Sector:                "Marketing",
		},
		{
			ID:                    3,
			Title:                 "Data Analyst Intern",
			Company:               "DataInsights Ltd",
			Location:              "Pune, Maharashtra",
			Duration:              "6 months",
			EducationRequirements: "Bachelor's Degree",
			SkillsRequired:        []string{"Python", "SQL", "Excel"},
			Description:           "Analyze business data and create insights to drive decision making.",
			Stipend:               "₹18,000/month",
			Sector:                "Information Technology",
		},
		{
			ID:                    4,
			Title:                 "Graphic Design Intern",
			Company:               "PixelHouse Studio",
			Location:              "Delhi, NCR",
			Duration:              "3 months",
			EducationRequirements: "Diploma",
			SkillsRequired:        []string{"Photoshop", "Illustrator", "Figma"},
			Description:           "Design social creatives and brand assets under a senior designer.",
			Stipend:               "₹10,000/month",
			Sector:                "Design",
		},
		{
			ID:                    5,
			Title:                 "Finance Intern",
			Company:               "Crestline Capital",
			Location:              "Mumbai, Maharashtra",
			Duration:              "6 months",
			EducationRequirements: "Master's Degree",
			SkillsRequired:        []string{"Excel", "Financial Modelling", "PowerPoint"},
			Description:           "Support the investment team with research and portfolio reporting.",
			Stipend:               "₹20,000/month",
			Sector:                "Finance",
		},
		{
			ID:                    6,
			Title:                 "Content Writing Intern",
			Company:               "WordWeave Media",
			Location:              "Remote",
			Duration:              "2 months",
			EducationRequirements: "12th Pass",
			SkillsRequired:        []string{"Content Writing", "SEO", "Research"},
			Description:           "Write long-form articles and landing-page copy for client campaigns.",
			Stipend:               "₹8,000/month",
			Sector:                "Marketing",
		},
		{
			ID:                    7,
			Title:                 "Machine Learning Intern",
			Company:               "DataInsights Ltd",
			Location:              "Pune, Maharashtra",
			Duration:              "6 months",
			EducationRequirements: "Master's Degree",
			SkillsRequired:        []string{"Python", "TensorFlow", "SQL"},
			Description:           "Prototype recommendation models on anonymized preference data.",
			Stipend:               "₹25,000/month",
			Sector:                "Information Technology",
		},
		{
			ID:                    8,
			Title:                 "HR Operations Intern",
			Company:               "PeopleFirst Consulting",
			Location:              "Hyderabad, Telangana",
			Duration:              "4 months",
			EducationRequirements: "Bachelor's Degree",
			SkillsRequired:        []string{"Communication", "Excel", "Scheduling"},
			Description:           "Coordinate campus hiring drives and maintain candidate trackers.",
			Stipend:               "₹9,000/month",
			Sector:                "Human Resources",
		},
	}
}

// FindByID returns the posting with the given id, or nil when absent.
func FindByID(items []Internship, id int) *Internship {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
