package impl

import (
	"encoding/json"
	"strconv"
	"strings"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"
)

// defaultSkillLevel is assigned to skills typed without an explicit level.
const defaultSkillLevel = 50

// parseStructuredEdit converts operator-typed text into the replacement
// value for one document field. The returned value replaces the field
// wholesale on the next save.
func parseStructuredEdit(field, rawText string) (any, error) {
	switch field {
	case usecase.FieldAbout, usecase.FieldProfileImage:
		return strings.TrimSpace(rawText), nil
	case usecase.FieldAchievements:
		return splitList(rawText, "\n"), nil
	case usecase.FieldContact:
		var contact entity.ContactInfo
		if err := json.Unmarshal([]byte(rawText), &contact); err != nil {
			return nil, domainerrors.ErrMalformedStructure.WithDetails(err.Error())
		}

		return contact, nil
	case usecase.FieldExperience:
		return decodeSequence[entity.Experience](rawText)
	case usecase.FieldProjects:
		return decodeSequence[entity.Project](rawText)
	case usecase.FieldCourses:
		return decodeSequence[entity.Course](rawText)
	case usecase.FieldTrackedInterests:
		return decodeSequence[entity.TrackedInterest](rawText)
	case usecase.FieldBlogPosts:
		return decodeSequence[entity.BlogPost](rawText)
	case usecase.FieldSkills:
		skills := map[string][]entity.Skill{}
		if err := json.Unmarshal([]byte(rawText), &skills); err != nil {
			return nil, domainerrors.ErrMalformedStructure.WithDetails(err.Error())
		}

		return skills, nil
	default:
		return nil, domainerrors.ErrUnknownField.WithDetails(field)
	}
}

// decodeSequence decodes structured-record text into a typed sequence,
// carrying the original decode error message for display on failure.
func decodeSequence[T any](rawText string) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(rawText), &items); err != nil {
		return nil, domainerrors.ErrMalformedStructure.WithDetails(err.Error())
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// splitList splits on the delimiter, trims each element and drops empties.
func splitList(rawText, delimiter string) []string {
	parts := strings.Split(rawText, delimiter)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	return items
}

// parseSkillList decodes a comma-joined list of skill names, each with an
// optional ":level" suffix, e.g. "Go:90, SQL, Terraform:70".
func parseSkillList(rawText string) ([]entity.Skill, error) {
	parts := splitList(rawText, ",")
	skills := make([]entity.Skill, 0, len(parts))
	for _, part := range parts {
		name, levelText, hasLevel := strings.Cut(part, ":")
		skill := entity.Skill{Name: strings.TrimSpace(name), Level: defaultSkillLevel}
		if hasLevel {
			level, err := strconv.Atoi(strings.TrimSpace(levelText))
			if err != nil {
				return nil, domainerrors.ErrMalformedStructure.WithDetails("invalid skill level in " + strconv.Quote(part))
			}
			skill.Level = level
		}
		skills = append(skills, skill)
	}

	return skills, nil
}

// requiredFields lists the non-empty fields each item kind must carry, in
// the order they are reported when missing.
var requiredFields = map[string][]string{
	usecase.KindProject:         {"name", "description", "category"},
	usecase.KindCourse:          {"name", "certificate"},
	usecase.KindExperience:      {"title", "company", "years", "description"},
	usecase.KindSkill:           {"category", "name"},
	usecase.KindTrackedInterest: {"name", "image", "link"},
	usecase.KindBlogPost:        {"title", "content"},
}

// validateNewItem checks that the fields for an add-item request carry every
// required field for the kind, naming the first missing one. No further
// validation is performed.
func validateNewItem(kind string, fields map[string]string) error {
	required, ok := requiredFields[kind]
	if !ok {
		return domainerrors.ErrUnknownField.WithDetails(kind)
	}

	for _, name := range required {
		if strings.TrimSpace(fields[name]) == "" {
			return domainerrors.ErrMissingField.WithDetails(name)
		}
	}

	return nil
}
