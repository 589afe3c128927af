package model

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnknownField      = errors.New("unknown field")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Field enums. Their values are the wire names used by the form surface.

type ProfileField string

const (
	ProfileFullName ProfileField = "fullName"
	ProfileTitle    ProfileField = "title"
	ProfileEmail    ProfileField = "email"
	ProfilePhone    ProfileField = "phone"
	ProfileLocation ProfileField = "location"
	ProfileLinkedIn ProfileField = "linkedin"
	ProfileGitHub   ProfileField = "github"
	ProfileWebsite  ProfileField = "website"
	ProfileSummary  ProfileField = "summary"
)

type ExperienceField string

const (
	ExperienceCompany     ExperienceField = "company"
	ExperiencePosition    ExperienceField = "position"
	ExperienceLocation    ExperienceField = "location"
	ExperienceStartDate   ExperienceField = "startDate"
	ExperienceEndDate     ExperienceField = "endDate"
	ExperienceCurrent     ExperienceField = "current"
	ExperienceDescription ExperienceField = "description"
)

type EducationField string

const (
	EducationSchool         EducationField = "school"
	EducationDegree         EducationField = "degree"
	EducationFieldOfStudy   EducationField = "field"
	EducationLocation       EducationField = "location"
	EducationGraduationDate EducationField = "graduationDate"
)

type SkillField string

const (
	SkillName       SkillField = "name"
	SkillLevelField SkillField = "level"
	SkillCategory   SkillField = "category"
)

type ItemField string

const (
	ItemTitle       ItemField = "title"
	ItemDescription ItemField = "description"
	ItemLink        ItemField = "link"
)

func ParseProfileField(s string) (ProfileField, error) {
	switch f := ProfileField(s); f {
	case ProfileFullName, ProfileTitle, ProfileEmail, ProfilePhone, ProfileLocation,
		ProfileLinkedIn, ProfileGitHub, ProfileWebsite, ProfileSummary:
		return f, nil
	}
	return "", fmt.Errorf("profile %q: %w", s, ErrUnknownField)
}

func ParseExperienceField(s string) (ExperienceField, error) {
	switch f := ExperienceField(s); f {
	case ExperienceCompany, ExperiencePosition, ExperienceLocation, ExperienceStartDate,
		ExperienceEndDate, ExperienceCurrent, ExperienceDescription:
		return f, nil
	}
	return "", fmt.Errorf("experience %q: %w", s, ErrUnknownField)
}

func ParseEducationField(s string) (EducationField, error) {
	switch f := EducationField(s); f {
	case EducationSchool, EducationDegree, EducationFieldOfStudy, EducationLocation, EducationGraduationDate:
		return f, nil
	}
	return "", fmt.Errorf("education %q: %w", s, ErrUnknownField)
}

func ParseSkillField(s string) (SkillField, error) {
	switch f := SkillField(s); f {
	case SkillName, SkillLevelField, SkillCategory:
		return f, nil
	}
	return "", fmt.Errorf("skill %q: %w", s, ErrUnknownField)
}

func ParseItemField(s string) (ItemField, error) {
	switch f := ItemField(s); f {
	case ItemTitle, ItemDescription, ItemLink:
		return f, nil
	}
	return "", fmt.Errorf("item %q: %w", s, ErrUnknownField)
}

// Set returns a copy of p with field f replaced.
func (p Profile) Set(f ProfileField, v string) Profile {
	switch f {
	case ProfileFullName:
		p.FullName = v
	case ProfileTitle:
		p.Title = v
	case ProfileEmail:
		p.Email = v
	case ProfilePhone:
		p.Phone = v
	case ProfileLocation:
		p.Location = v
	case ProfileLinkedIn:
		p.LinkedIn = v
	case ProfileGitHub:
		p.GitHub = v
	case ProfileWebsite:
		p.Website = v
	case ProfileSummary:
		p.Summary = v
	}
	return p
}

// Set returns a copy of e with field f replaced. ExperienceCurrent takes a
// strconv.ParseBool value; anything else leaves the flag untouched.
func (e Experience) Set(f ExperienceField, v string) Experience {
	switch f {
	case ExperienceCompany:
		e.Company = v
	case ExperiencePosition:
		e.Position = v
	case ExperienceLocation:
		e.Location = v
	case ExperienceStartDate:
		e.StartDate = v
	case ExperienceEndDate:
		e.EndDate = v
	case ExperienceCurrent:
		if b, err := strconv.ParseBool(v); err == nil {
			e.Current = b
		}
	case ExperienceDescription:
		e.Description = v
	}
	return e
}

func (e Education) Set(f EducationField, v string) Education {
	switch f {
	case EducationSchool:
		e.School = v
	case EducationDegree:
		e.Degree = v
	case EducationFieldOfStudy:
		e.Field = v
	case EducationLocation:
		e.Location = v
	case EducationGraduationDate:
		e.GraduationDate = v
	}
	return e
}

// Set returns a copy of s with field f replaced. An unknown level is ignored.
func (s Skill) Set(f SkillField, v string) Skill {
	switch f {
	case SkillName:
		s.Name = v
	case SkillLevelField:
		if l, ok := ParseSkillLevel(v); ok {
			s.Level = l
		}
	case SkillCategory:
		s.Category = v
	}
	return s
}

func (i Item) Set(f ItemField, v string) Item {
	switch f {
	case ItemTitle:
		i.Title = v
	case ItemDescription:
		i.Description = v
	case ItemLink:
		i.Link = v
	}
	return i
}
