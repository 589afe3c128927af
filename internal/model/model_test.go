package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/collection"
)

func TestWithProfileField_ReplacesOnlyThatField(t *testing.T) {
	base := Default()
	next := base.WithProfileField(ProfileFullName, "Jane Roe")

	assert.Equal(t, "Jane Roe", next.Profile.FullName)
	assert.Equal(t, "ALEX JORDAN", base.Profile.FullName, "original snapshot must not change")
	assert.Equal(t, base.Profile.Email, next.Profile.Email)
	assert.Equal(t, base.Experience, next.Experience)
}

func TestWithCollection_SharesSiblings(t *testing.T) {
	base := Default()
	next := base.WithSkills([]Skill{{ID: "x", Name: "Go"}})

	require.Len(t, next.Skills, 1)
	assert.Len(t, base.Skills, 4)
	// untouched collections are the same backing arrays, not copies
	assert.Same(t, &base.Experience[0], &next.Experience[0])
	assert.Same(t, &base.Others[0], &next.Others[0])
}

func TestInsertPosition(t *testing.T) {
	tests := []struct {
		coll Collection
		want collection.Position
	}{
		{CollectionExperience, collection.Prepend},
		{CollectionEducation, collection.Append},
		{CollectionSkills, collection.Append},
		{CollectionProjects, collection.Prepend},
		{CollectionMentorship, collection.Prepend},
		{CollectionOthers, collection.Prepend},
	}
	for _, tt := range tests {
		t.Run(string(tt.coll), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coll.InsertPosition())
		})
	}
}

func TestAddRecord_PolicyAndDefaults(t *testing.T) {
	gen := &collection.SequenceGenerator{Prefix: "new-"}
	base := Default()

	r, id, err := base.AddRecord(CollectionExperience, gen, map[string]string{"company": "Acme", "current": "true"})
	require.NoError(t, err)
	assert.Equal(t, "new-1", id)
	require.Len(t, r.Experience, 3)
	assert.Equal(t, Experience{ID: "new-1", Company: "Acme", Current: true}, r.Experience[0])

	r, id, err = r.AddRecord(CollectionSkills, gen, nil)
	require.NoError(t, err)
	last := r.Skills[len(r.Skills)-1]
	assert.Equal(t, id, last.ID)
	assert.Equal(t, Intermediate, last.Level)

	r, id, err = r.AddRecord(CollectionEducation, gen, map[string]string{"school": "MIT"})
	require.NoError(t, err)
	assert.Equal(t, Education{ID: id, School: "MIT"}, r.Education[len(r.Education)-1])

	r, id, err = r.AddRecord(CollectionOthers, gen, map[string]string{"title": "Speaker"})
	require.NoError(t, err)
	assert.Equal(t, Item{ID: id, Title: "Speaker"}, r.Others[0])

	assert.Len(t, base.Experience, 2, "base must not change")
}

func TestAddRecord_UnknownNames(t *testing.T) {
	gen := &collection.SequenceGenerator{Prefix: "new-"}
	base := Default()

	_, _, err := base.AddRecord("hobbies", gen, nil)
	assert.True(t, errors.Is(err, ErrUnknownCollection))

	r, _, err := base.AddRecord(CollectionProjects, gen, map[string]string{"bogus": "x"})
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Equal(t, base.Projects, r.Projects)
}

func TestAddRemove_RoundTrip(t *testing.T) {
	gen := &collection.SequenceGenerator{Prefix: "new-"}
	for _, c := range Collections {
		t.Run(string(c), func(t *testing.T) {
			base := Default()
			added, id, err := base.AddRecord(c, gen, nil)
			require.NoError(t, err)
			require.Equal(t, base.Len(c)+1, added.Len(c))

			removed, err := added.RemoveRecord(c, id)
			require.NoError(t, err)
			assert.Equal(t, base, removed)
		})
	}
}

func TestAddRecord_IDsStayUniqueOnDefault(t *testing.T) {
	gen := &collection.SequenceGenerator{}
	for _, c := range Collections {
		t.Run(string(c), func(t *testing.T) {
			base := Default()
			added, id, err := base.AddRecord(c, gen, nil)
			require.NoError(t, err)
			require.Equal(t, base.Len(c)+1, added.Len(c))

			removed, err := added.RemoveRecord(c, id)
			require.NoError(t, err)
			assert.Equal(t, base, removed, "removing %q must only drop the new record", id)
		})
	}
}

func TestUpdateRecord_FieldLocality(t *testing.T) {
	base := Default()

	r, err := base.UpdateRecord(CollectionExperience, "2", "company", "Other Inc")
	require.NoError(t, err)

	want := base.Experience[1]
	want.Company = "Other Inc"
	assert.Equal(t, want, r.Experience[1])
	assert.Equal(t, base.Experience[0], r.Experience[0])
	assert.Equal(t, "Startup Inc", base.Experience[1].Company)
	assert.Equal(t, base.Education, r.Education)
}

func TestUpdateRecord_TypedValues(t *testing.T) {
	base := Default()

	r, err := base.UpdateRecord(CollectionExperience, "2", "current", "true")
	require.NoError(t, err)
	assert.True(t, r.Experience[1].Current)

	r, err = r.UpdateRecord(CollectionExperience, "2", "current", "maybe")
	require.NoError(t, err)
	assert.True(t, r.Experience[1].Current, "unparseable flag leaves value untouched")

	r, err = r.UpdateRecord(CollectionSkills, "4", "level", "Expert")
	require.NoError(t, err)
	assert.Equal(t, Expert, r.Skills[3].Level)

	r, err = r.UpdateRecord(CollectionSkills, "4", "level", "Guru")
	require.NoError(t, err)
	assert.Equal(t, Expert, r.Skills[3].Level)
}

func TestUpdateRecord_MissingIDIsNoop(t *testing.T) {
	base := Default()
	r, err := base.UpdateRecord(CollectionMentorship, "nope", "title", "x")
	require.NoError(t, err)
	assert.Equal(t, base, r)

	r, err = base.RemoveRecord(CollectionEducation, "nope")
	require.NoError(t, err)
	assert.Equal(t, base, r)
}

func TestUpdateRecord_UnknownField(t *testing.T) {
	_, err := Default().UpdateRecord(CollectionEducation, "1", "gpa", "4.0")
	assert.True(t, errors.Is(err, ErrUnknownField))

	_, err = Default().UpdateRecord("pets", "1", "name", "Rex")
	assert.True(t, errors.Is(err, ErrUnknownCollection))
}

func TestParseFields(t *testing.T) {
	f, err := ParseProfileField("github")
	require.NoError(t, err)
	assert.Equal(t, ProfileGitHub, f)

	_, err = ParseProfileField("FullName")
	assert.ErrorIs(t, err, ErrUnknownField)

	ef, err := ParseEducationField("field")
	require.NoError(t, err)
	assert.Equal(t, EducationFieldOfStudy, ef)

	c, err := ParseCollection("others")
	require.NoError(t, err)
	assert.Equal(t, CollectionOthers, c)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "ALEX_JORDAN_Resume.pdf", ExportFileName("ALEX JORDAN"))
	assert.Equal(t, "Mary_Ann_Lee_Resume.pdf", ExportFileName("Mary  Ann\tLee"))
	assert.Equal(t, "_Resume.pdf", ExportFileName(""))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			in := Default().WithProfileField(ProfileGitHub, "github.com/alex")
			b, err := EncodeAs(in, f)
			require.NoError(t, err)

			out, err := DecodeAs(b, f)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestEncode_NilCollectionsBecomeArrays(t *testing.T) {
	b, err := Encode(Resume{Profile: Profile{FullName: "x"}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"experience":[]`)

	out, err := Decode(b)
	require.NoError(t, err)
	assert.NotNil(t, out.Others)
}

func TestDecode_RejectsBadShape(t *testing.T) {
	tests := map[string]string{
		"not json":          `{"profile":`,
		"missing profile":   `{"experience":[]}`,
		"wrong type":        `{"profile":{},"skills":"go"}`,
		"record without id": `{"profile":{},"education":[{"school":"x"}]}`,
		"bad level":         `{"profile":{},"skills":[{"id":"1","level":"Guru"}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(doc))
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	assert.Error(t, err)

	assert.Equal(t, FormatYAML, FormatFromPath("resume.yaml"))
	assert.Equal(t, FormatJSON, FormatFromPath("resume.json"))
}
