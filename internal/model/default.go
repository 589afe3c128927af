package model

// Default returns the built-in sample document used on first start and
// whenever the stored snapshot cannot be read.
func Default() Resume {
	return Resume{
		Profile: Profile{
			FullName: "ALEX JORDAN",
			Email:    "alex.jordan@gmail.com",
			Phone:    "123-456-7890",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/alexjordan",
			Website:  "alexjordan.com",
		},
		Experience: []Experience{
			{
				ID:          "1",
				Company:     "Tech Corp",
				Position:    "Senior Software Engineer",
				Location:    "San Francisco, CA",
				StartDate:   "2020-01",
				EndDate:     "Present",
				Current:     true,
				Description: "• Led a team of 5 developers to build a scalable microservices architecture.\n• Improved system performance by 30% through optimizing database queries and caching strategies.",
			},
			{
				ID:          "2",
				Company:     "Startup Inc",
				Position:    "Software Engineer",
				Location:    "New York, NY",
				StartDate:   "2018-05",
				EndDate:     "2019-12",
				Description: "• Developed full-stack features using React and Node.js.\n• Collaborated with product managers to define requirements and deliver high-quality software.",
			},
		},
		Education: []Education{
			{
				ID:             "1",
				School:         "University of Technology",
				Degree:         "Bachelor of Science",
				Field:          "Computer Science",
				Location:       "San Francisco, CA",
				GraduationDate: "2018-05",
			},
		},
		Skills: []Skill{
			{ID: "1", Name: "JavaScript", Level: Expert, Category: "Languages"},
			{ID: "2", Name: "TypeScript", Level: Expert, Category: "Languages"},
			{ID: "3", Name: "React", Level: Expert, Category: "Frontend"},
			{ID: "4", Name: "Node.js", Level: Intermediate, Category: "Backend"},
		},
		Projects: []Project{
			{
				ID:          "1",
				Title:       "E-commerce Platform",
				Description: "Built a scalable e-commerce platform handling 10k+ concurrent users.",
				Link:        "github.com/alexjordan/ecommerce",
			},
		},
		Mentorship: []Mentorship{
			{
				ID:          "1",
				Title:       "Junior Developer Mentor",
				Description: "Mentored 3 junior developers, guiding them through code reviews and career growth.",
			},
		},
		Others: []OtherItem{
			{
				ID:          "1",
				Title:       "Open Source Contributor",
				Description: "Contributed to major React ecosystem libraries.",
			},
		},
	}
}
