package impl

import (
	"testing"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructuredEdit_Scalar(t *testing.T) {
	value, err := parseStructuredEdit(usecase.FieldAbout, "  hello world \n")
	require.NoError(t, err)
	assert.Equal(t, "hello world", value)
}

func TestParseStructuredEdit_Achievements(t *testing.T) {
	value, err := parseStructuredEdit(usecase.FieldAchievements, "Dean's list\n\n  CTF finalist \n")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dean's list", "CTF finalist"}, value)
}

func TestParseStructuredEdit_Projects(t *testing.T) {
	raw := `[{"name":"A","description":"d","category":"AI","techUsed":["Go"]}]`

	value, err := parseStructuredEdit(usecase.FieldProjects, raw)
	require.NoError(t, err)

	projects, ok := value.([]entity.Project)
	require.True(t, ok)
	require.Len(t, projects, 1)
	assert.Equal(t, "A", projects[0].Name)
	assert.Equal(t, "AI", projects[0].Category)
}

func TestParseStructuredEdit_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":       `[{"name":`,
		"not a sequence": `{"name":"A"}`,
		"scalar":         `42`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseStructuredEdit(usecase.FieldProjects, raw)
			assert.ErrorIs(t, err, domainerrors.ErrMalformedStructure)
		})
	}
}

func TestParseStructuredEdit_MalformedCarriesDecodeMessage(t *testing.T) {
	_, err := parseStructuredEdit(usecase.FieldCourses, `{"oops":true}`)
	require.ErrorIs(t, err, domainerrors.ErrMalformedStructure)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.NotEmpty(t, appErr.Details())
}

func TestParseStructuredEdit_Contact(t *testing.T) {
	value, err := parseStructuredEdit(usecase.FieldContact, `{"email":"me@example.com","github":"gh"}`)
	require.NoError(t, err)

	contact, ok := value.(entity.ContactInfo)
	require.True(t, ok)
	assert.Equal(t, "me@example.com", contact.Email)
}

func TestParseStructuredEdit_Skills(t *testing.T) {
	value, err := parseStructuredEdit(usecase.FieldSkills, `{"Backend":[{"name":"Go","level":90},"SQL"]}`)
	require.NoError(t, err)

	skills, ok := value.(map[string][]entity.Skill)
	require.True(t, ok)
	require.Len(t, skills["Backend"], 2)
	assert.Equal(t, entity.Skill{Name: "Go", Level: 90}, skills["Backend"][0])
	// The legacy flat-string form decodes with the default level.
	assert.Equal(t, entity.Skill{Name: "SQL", Level: defaultSkillLevel}, skills["Backend"][1])
}

func TestParseStructuredEdit_UnknownField(t *testing.T) {
	_, err := parseStructuredEdit("favouriteColor", "blue")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownField)
}

func TestParseSkillList(t *testing.T) {
	skills, err := parseSkillList("Go:90, SQL , Terraform:70,")
	require.NoError(t, err)
	assert.Equal(t, []entity.Skill{
		{Name: "Go", Level: 90},
		{Name: "SQL", Level: defaultSkillLevel},
		{Name: "Terraform", Level: 70},
	}, skills)
}

func TestParseSkillList_InvalidLevel(t *testing.T) {
	_, err := parseSkillList("Go:ninety")
	assert.ErrorIs(t, err, domainerrors.ErrMalformedStructure)
}

func TestParseSkillList_Empty(t *testing.T) {
	skills, err := parseSkillList("  ")
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestValidateNewItem(t *testing.T) {
	tests := []struct {
		name         string
		kind         string
		fields       map[string]string
		wantErr      error
		missingField string
	}{
		{
			name:   "complete project",
			kind:   usecase.KindProject,
			fields: map[string]string{"name": "X", "description": "Y", "category": "AI"},
		},
		{
			name:         "project missing description",
			kind:         usecase.KindProject,
			fields:       map[string]string{"name": "X"},
			wantErr:      domainerrors.ErrMissingField,
			missingField: "description",
		},
		{
			name:         "project blank category",
			kind:         usecase.KindProject,
			fields:       map[string]string{"name": "X", "description": "Y", "category": "  "},
			wantErr:      domainerrors.ErrMissingField,
			missingField: "category",
		},
		{
			name:   "complete course",
			kind:   usecase.KindCourse,
			fields: map[string]string{"name": "N", "certificate": "C"},
		},
		{
			name:         "course missing certificate",
			kind:         usecase.KindCourse,
			fields:       map[string]string{"name": "N"},
			wantErr:      domainerrors.ErrMissingField,
			missingField: "certificate",
		},
		{
			name:         "experience reports first missing field",
			kind:         usecase.KindExperience,
			fields:       map[string]string{"description": "D"},
			wantErr:      domainerrors.ErrMissingField,
			missingField: "title",
		},
		{
			name:    "unknown kind",
			kind:    "gadget",
			fields:  map[string]string{"name": "X"},
			wantErr: domainerrors.ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNewItem(tt.kind, tt.fields)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			if tt.missingField != "" {
				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.missingField, appErr.Details())
			}
		})
	}
}
