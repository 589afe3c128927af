// Package render turns a resume snapshot into the preview document and its
// printable HTML form.
package render

import (
	"strings"

	"resume-builder/internal/model"
	"resume-builder/pkg/formatters"
)

const (
	languagesCategory = "Languages"
	otherCategory     = "Other"
	presentToken      = "Present"
	contactDivider    = " | "
)

type ContactKind string

const (
	ContactLinkedIn ContactKind = "linkedin"
	ContactPhone    ContactKind = "phone"
	ContactWebsite  ContactKind = "website"
	ContactEmail    ContactKind = "email"
	ContactGitHub   ContactKind = "github"
)

type Contact struct {
	Kind  ContactKind `json:"kind"`
	Label string      `json:"label"`
	Href  string      `json:"href"`
}

// SkillGroup is one line of the skills section. Label is empty for the
// uncategorized bucket.
type SkillGroup struct {
	Label  string   `json:"label,omitempty"`
	Skills []string `json:"skills"`
}

type Link struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Entry is one experience or education block.
type Entry struct {
	Title     string              `json:"title"`
	Org       string              `json:"org"`
	Location  string              `json:"location,omitempty"`
	DateRange string              `json:"dateRange,omitempty"`
	Bullets   [][]formatters.Span `json:"bullets,omitempty"`
}

// ItemEntry is one project, mentorship or other line.
type ItemEntry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        *Link  `json:"link,omitempty"`
}

type Document struct {
	Name       string       `json:"name"`
	Title      string       `json:"title,omitempty"`
	Location   string       `json:"location,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Contacts   []Contact    `json:"contacts"`
	Skills     []SkillGroup `json:"skills,omitempty"`
	Languages  []string     `json:"languages,omitempty"`
	Experience []Entry      `json:"experience,omitempty"`
	Education  []Entry      `json:"education,omitempty"`
	Projects   []ItemEntry  `json:"projects,omitempty"`
	Mentorship []ItemEntry  `json:"mentorship,omitempty"`
	Others     []ItemEntry  `json:"others,omitempty"`
}

// ContactLine joins the present contact labels with the divider.
func (d Document) ContactLine() string {
	labels := make([]string, len(d.Contacts))
	for i, c := range d.Contacts {
		labels[i] = c.Label
	}
	return strings.Join(labels, contactDivider)
}

// HasSkills reports whether the skills section has anything to show.
func (d Document) HasSkills() bool {
	return len(d.Skills) > 0 || len(d.Languages) > 0
}

type options struct {
	dateStyle formatters.DateStyle
}

type Option func(*options)

func WithDateStyle(s formatters.DateStyle) Option {
	return func(o *options) { o.dateStyle = s }
}

// Build produces the preview document. It is pure: the same resume always
// yields the same document.
func Build(r model.Resume, opts ...Option) Document {
	o := options{dateStyle: formatters.Numeric}
	for _, fn := range opts {
		fn(&o)
	}

	p := r.Profile
	doc := Document{
		Name:     p.FullName,
		Title:    strings.TrimSpace(p.Title),
		Location: strings.TrimSpace(p.Location),
		Summary:  strings.TrimSpace(p.Summary),
		Contacts: contacts(p),
	}
	doc.Skills, doc.Languages = groupSkills(r.Skills)

	for _, e := range r.Experience {
		doc.Experience = append(doc.Experience, Entry{
			Title:     e.Position,
			Org:       e.Company,
			Location:  e.Location,
			DateRange: experienceRange(e, o.dateStyle),
			Bullets:   bullets(e.Description),
		})
	}
	for _, e := range r.Education {
		entry := Entry{
			Title:     e.Degree,
			Org:       e.School,
			Location:  e.Location,
			DateRange: formatters.FormatMonthStyle(e.GraduationDate, o.dateStyle),
		}
		if e.Field != "" {
			entry.Bullets = [][]formatters.Span{{{Text: "Major in " + e.Field}}}
		}
		doc.Education = append(doc.Education, entry)
	}
	doc.Projects = items(r.Projects)
	doc.Mentorship = items(r.Mentorship)
	doc.Others = items(r.Others)
	return doc
}

func contacts(p model.Profile) []Contact {
	out := []Contact{}
	if p.LinkedIn != "" {
		out = append(out, Contact{Kind: ContactLinkedIn, Label: "LinkedIn", Href: externalHref(p.LinkedIn)})
	}
	if p.Phone != "" {
		out = append(out, Contact{Kind: ContactPhone, Label: p.Phone, Href: "tel:" + p.Phone})
	}
	if p.Website != "" {
		out = append(out, Contact{Kind: ContactWebsite, Label: stripScheme(p.Website), Href: externalHref(p.Website)})
	}
	if p.Email != "" {
		out = append(out, Contact{Kind: ContactEmail, Label: p.Email, Href: "mailto:" + p.Email})
	}
	if p.GitHub != "" {
		out = append(out, Contact{Kind: ContactGitHub, Label: "GitHub", Href: externalHref(p.GitHub)})
	}
	return out
}

// groupSkills buckets skill names by category in order of first appearance.
// Languages are returned separately for the trailing line.
func groupSkills(skills []model.Skill) ([]SkillGroup, []string) {
	var groups []SkillGroup
	var languages []string
	index := map[string]int{}
	for _, s := range skills {
		key := s.Category
		if key == "" {
			key = otherCategory
		}
		if key == languagesCategory {
			languages = append(languages, s.Name)
			continue
		}
		i, ok := index[key]
		if !ok {
			label := key
			if key == otherCategory {
				label = ""
			}
			i = len(groups)
			index[key] = i
			groups = append(groups, SkillGroup{Label: label})
		}
		groups[i].Skills = append(groups[i].Skills, s.Name)
	}
	return groups, languages
}

func experienceRange(e model.Experience, style formatters.DateStyle) string {
	start := formatters.FormatMonthStyle(e.StartDate, style)
	end := presentToken
	if !e.Current {
		end = formatters.FormatMonthStyle(e.EndDate, style)
	}
	switch {
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return start
	}
	return end
}

func bullets(text string) [][]formatters.Span {
	var out [][]formatters.Span
	for line := range formatters.Lines(text) {
		out = append(out, formatters.Emphasize(line))
	}
	return out
}

func items(in []model.Item) []ItemEntry {
	var out []ItemEntry
	for _, it := range in {
		e := ItemEntry{Title: it.Title, Description: strings.TrimSpace(it.Description)}
		if it.Link != "" {
			e.Link = &Link{Href: externalHref(it.Link), Label: domainLabel(it.Link)}
		}
		out = append(out, e)
	}
	return out
}
