package model

// Go models for the editable resume document. JSON names match the stored
// snapshot format and resume.schema.json.

type Profile struct {
	FullName string `json:"fullName" yaml:"fullName"`
	Title    string `json:"title" yaml:"title"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	GitHub   string `json:"github,omitempty" yaml:"github,omitempty"`
	Website  string `json:"website" yaml:"website"`
	Summary  string `json:"summary" yaml:"summary"`
}

// Experience is one position. When Current is set EndDate is never displayed.
type Experience struct {
	ID          string `json:"id" yaml:"id"`
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	Location    string `json:"location" yaml:"location"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Current     bool   `json:"current" yaml:"current"`
	Description string `json:"description" yaml:"description"`
}

type Education struct {
	ID             string `json:"id" yaml:"id"`
	School         string `json:"school" yaml:"school"`
	Degree         string `json:"degree" yaml:"degree"`
	Field          string `json:"field" yaml:"field"`
	Location       string `json:"location" yaml:"location"`
	GraduationDate string `json:"graduationDate" yaml:"graduationDate"`
}

type SkillLevel string

const (
	Beginner     SkillLevel = "Beginner"
	Intermediate SkillLevel = "Intermediate"
	Expert       SkillLevel = "Expert"
)

// ParseSkillLevel accepts the three known levels, matched exactly.
func ParseSkillLevel(s string) (SkillLevel, bool) {
	switch SkillLevel(s) {
	case Beginner, Intermediate, Expert:
		return SkillLevel(s), true
	}
	return "", false
}

type Skill struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Level    SkillLevel `json:"level" yaml:"level"`
	Category string     `json:"category" yaml:"category"`
}

// Item is the shared shape of projects, mentorship entries and other items.
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
}

type (
	Project    = Item
	Mentorship = Item
	OtherItem  = Item
)

// Resume is the whole document. Values are treated as immutable snapshots:
// edits build a new Resume and only the touched collection is reallocated.
type Resume struct {
	Profile    Profile      `json:"profile" yaml:"profile"`
	Experience []Experience `json:"experience" yaml:"experience"`
	Education  []Education  `json:"education" yaml:"education"`
	Skills     []Skill      `json:"skills" yaml:"skills"`
	Projects   []Project    `json:"projects" yaml:"projects"`
	Mentorship []Mentorship `json:"mentorship" yaml:"mentorship"`
	Others     []OtherItem  `json:"others" yaml:"others"`
}

func (e Experience) RecordID() string { return e.ID }

func (e Experience) WithID(id string) Experience {
	e.ID = id
	return e
}

func (e Education) RecordID() string { return e.ID }

func (e Education) WithID(id string) Education {
	e.ID = id
	return e
}

func (s Skill) RecordID() string { return s.ID }

func (s Skill) WithID(id string) Skill {
	s.ID = id
	return s
}

func (i Item) RecordID() string { return i.ID }

func (i Item) WithID(id string) Item {
	i.ID = id
	return i
}

// Normalize replaces nil collections with empty ones so the document always
// serializes as arrays.
func (r Resume) Normalize() Resume {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Mentorship == nil {
		r.Mentorship = []Mentorship{}
	}
	if r.Others == nil {
		r.Others = []OtherItem{}
	}
	return r
}
