package model

import (
	"fmt"
	"regexp"
	"sort"

	"resume-builder/internal/collection"
)

// Collection names one of the six record lists of a Resume.
type Collection string

const (
	CollectionExperience Collection = "experience"
	CollectionEducation  Collection = "education"
	CollectionSkills     Collection = "skills"
	CollectionProjects   Collection = "projects"
	CollectionMentorship Collection = "mentorship"
	CollectionOthers     Collection = "others"
)

// Collections lists every collection in document order.
var Collections = []Collection{
	CollectionExperience,
	CollectionEducation,
	CollectionSkills,
	CollectionProjects,
	CollectionMentorship,
	CollectionOthers,
}

func ParseCollection(s string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownCollection)
}

// InsertPosition is the fixed insertion policy of each collection: newest
// first for experience and the item lists, oldest first for education and
// skills.
func (c Collection) InsertPosition() collection.Position {
	switch c {
	case CollectionEducation, CollectionSkills:
		return collection.Append
	default:
		return collection.Prepend
	}
}

func (r Resume) WithProfileField(f ProfileField, v string) Resume {
	r.Profile = r.Profile.Set(f, v)
	return r
}

func (r Resume) WithProfile(p Profile) Resume {
	r.Profile = p
	return r
}

func (r Resume) WithExperience(c []Experience) Resume {
	r.Experience = c
	return r
}

func (r Resume) WithEducation(c []Education) Resume {
	r.Education = c
	return r
}

func (r Resume) WithSkills(c []Skill) Resume {
	r.Skills = c
	return r
}

func (r Resume) WithProjects(c []Project) Resume {
	r.Projects = c
	return r
}

func (r Resume) WithMentorship(c []Mentorship) Resume {
	r.Mentorship = c
	return r
}

func (r Resume) WithOthers(c []OtherItem) Resume {
	r.Others = c
	return r
}

// Len reports the number of records held by c.
func (r Resume) Len(c Collection) int {
	switch c {
	case CollectionExperience:
		return len(r.Experience)
	case CollectionEducation:
		return len(r.Education)
	case CollectionSkills:
		return len(r.Skills)
	case CollectionProjects:
		return len(r.Projects)
	case CollectionMentorship:
		return len(r.Mentorship)
	case CollectionOthers:
		return len(r.Others)
	}
	return 0
}

// AddRecord inserts a blank record into c, applies the optional initial
// field values and returns the new document with the generated id. New
// skills start at Intermediate.
func (r Resume) AddRecord(c Collection, gen collection.IDGenerator, fields map[string]string) (Resume, string, error) {
	pos := c.InsertPosition()
	switch c {
	case CollectionExperience:
		out, id, err := addTo(r.Experience, Experience{}, pos, gen, fields, ParseExperienceField, Experience.Set)
		return r.WithExperience(out), id, err
	case CollectionEducation:
		out, id, err := addTo(r.Education, Education{}, pos, gen, fields, ParseEducationField, Education.Set)
		return r.WithEducation(out), id, err
	case CollectionSkills:
		out, id, err := addTo(r.Skills, Skill{Level: Intermediate}, pos, gen, fields, ParseSkillField, Skill.Set)
		return r.WithSkills(out), id, err
	case CollectionProjects:
		out, id, err := addTo(r.Projects, Item{}, pos, gen, fields, ParseItemField, Item.Set)
		return r.WithProjects(out), id, err
	case CollectionMentorship:
		out, id, err := addTo(r.Mentorship, Item{}, pos, gen, fields, ParseItemField, Item.Set)
		return r.WithMentorship(out), id, err
	case CollectionOthers:
		out, id, err := addTo(r.Others, Item{}, pos, gen, fields, ParseItemField, Item.Set)
		return r.WithOthers(out), id, err
	}
	return r, "", fmt.Errorf("%q: %w", c, ErrUnknownCollection)
}

// UpdateRecord replaces one field of the record id in c. A missing id leaves
// the document as it was; only unknown collection or field names fail.
func (r Resume) UpdateRecord(c Collection, id, field, value string) (Resume, error) {
	switch c {
	case CollectionExperience:
		out, err := updateIn(r.Experience, id, field, value, ParseExperienceField, Experience.Set)
		if err != nil {
			return r, err
		}
		return r.WithExperience(out), nil
	case CollectionEducation:
		out, err := updateIn(r.Education, id, field, value, ParseEducationField, Education.Set)
		if err != nil {
			return r, err
		}
		return r.WithEducation(out), nil
	case CollectionSkills:
		out, err := updateIn(r.Skills, id, field, value, ParseSkillField, Skill.Set)
		if err != nil {
			return r, err
		}
		return r.WithSkills(out), nil
	case CollectionProjects:
		out, err := updateIn(r.Projects, id, field, value, ParseItemField, Item.Set)
		if err != nil {
			return r, err
		}
		return r.WithProjects(out), nil
	case CollectionMentorship:
		out, err := updateIn(r.Mentorship, id, field, value, ParseItemField, Item.Set)
		if err != nil {
			return r, err
		}
		return r.WithMentorship(out), nil
	case CollectionOthers:
		out, err := updateIn(r.Others, id, field, value, ParseItemField, Item.Set)
		if err != nil {
			return r, err
		}
		return r.WithOthers(out), nil
	}
	return r, fmt.Errorf("%q: %w", c, ErrUnknownCollection)
}

// RemoveRecord drops the record id from c. A missing id is not an error.
func (r Resume) RemoveRecord(c Collection, id string) (Resume, error) {
	switch c {
	case CollectionExperience:
		return r.WithExperience(collection.Remove(r.Experience, id)), nil
	case CollectionEducation:
		return r.WithEducation(collection.Remove(r.Education, id)), nil
	case CollectionSkills:
		return r.WithSkills(collection.Remove(r.Skills, id)), nil
	case CollectionProjects:
		return r.WithProjects(collection.Remove(r.Projects, id)), nil
	case CollectionMentorship:
		return r.WithMentorship(collection.Remove(r.Mentorship, id)), nil
	case CollectionOthers:
		return r.WithOthers(collection.Remove(r.Others, id)), nil
	}
	return r, fmt.Errorf("%q: %w", c, ErrUnknownCollection)
}

func addTo[T collection.Record[T], F ~string](
	c []T, blank T, pos collection.Position, gen collection.IDGenerator,
	fields map[string]string, parse func(string) (F, error), set func(T, F, string) T,
) ([]T, string, error) {
	rec, err := applyFields(blank, fields, parse, set)
	if err != nil {
		return c, "", err
	}
	out, id := collection.Add(c, rec, pos, gen)
	return out, id, nil
}

func updateIn[T collection.Record[T], F ~string](
	c []T, id, field, value string,
	parse func(string) (F, error), set func(T, F, string) T,
) ([]T, error) {
	f, err := parse(field)
	if err != nil {
		return c, err
	}
	return collection.Update(c, id, func(rec T) T { return set(rec, f, value) }), nil
}

func applyFields[T any, F ~string](rec T, fields map[string]string, parse func(string) (F, error), set func(T, F, string) T) (T, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f, err := parse(k)
		if err != nil {
			return rec, err
		}
		rec = set(rec, f, fields[k])
	}
	return rec, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExportFileName derives the export file name from a full name: every run of
// whitespace becomes "_" and "_Resume.pdf" is appended.
func ExportFileName(fullName string) string {
	return whitespaceRun.ReplaceAllString(fullName, "_") + "_Resume.pdf"
}
