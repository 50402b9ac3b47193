// Package excelloader reads a checklist-authoring workbook into the
// domain model (internal/model), using github.com/xuri/excelize/v2 to
// walk its three fixed sheets: Checklist, Sections, Questions.
package excelloader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
)

// Loader reads a checklist-authoring workbook at Path.
//
// The workbook carries three sheets:
//
//   - "Checklist": one data row, columns id, name.
//   - "Sections": one row per section, in authoring order, columns
//     id, title, standard, instructions, na_option, required.
//   - "Questions": one row per question (top-level or sub-question), in
//     authoring order, columns id, section_id, parent_id, label, kind,
//     answer_type, options, scoring_rule, na_option, ordinal. A
//     top-level question leaves parent_id empty and names its owning
//     section_id; a sub-question (a PERC's NUM/DEN, a MULTI's items)
//     leaves section_id empty and names its parent_id instead. options
//     is a "|"-separated list, required only for SELECT questions.
type Loader struct {
	Path string
}

// Load opens Path and builds the checklist tree it describes.
func (l Loader) Load() (*model.Checklist, error) {
	return Load(l.Path)
}

// LoadChecklist satisfies loader.ChecklistLoader.
func (l Loader) LoadChecklist() (*model.Checklist, error) {
	return l.Load()
}

// Load opens path and builds the checklist tree it describes.
func Load(path string) (*model.Checklist, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	id, name, err := readChecklistSheet(f)
	if err != nil {
		return nil, err
	}

	sections, sectionOrder, err := readSectionsSheet(f)
	if err != nil {
		return nil, err
	}

	if err := readQuestionsSheet(f, sections); err != nil {
		return nil, err
	}

	orderedSections := model.NewOrderedMap[*model.Section]()
	for _, sid := range sectionOrder {
		orderedSections.Set(sid, sections[sid])
	}

	checklist := &model.Checklist{ID: id, Name: name, Sections: orderedSections}
	if err := checklist.Validate(); err != nil {
		return nil, err
	}
	return checklist, nil
}

func readChecklistSheet(f *excelize.File) (id, name string, err error) {
	rows, err := f.GetRows("Checklist")
	if err != nil {
		return "", "", fmt.Errorf("reading Checklist sheet: %w", err)
	}
	if len(rows) < 2 {
		return "", "", fmt.Errorf("Checklist sheet must have a header row and one data row")
	}
	row := rows[1]
	return cell(row, 0), cell(row, 1), nil
}

func readSectionsSheet(f *excelize.File) (map[string]*model.Section, []string, error) {
	rows, err := f.GetRows("Sections")
	if err != nil {
		return nil, nil, fmt.Errorf("reading Sections sheet: %w", err)
	}

	sections := make(map[string]*model.Section)
	var order []string
	for _, row := range rows[1:] {
		id := cell(row, 0)
		if id == "" {
			continue
		}
		sections[id] = &model.Section{
			ID:           id,
			Title:        cell(row, 1),
			Standard:     cell(row, 2),
			Instructions: cell(row, 3),
			NAOption:     parseBool(cell(row, 4)),
			Required:     parseBool(cell(row, 5)),
			Questions:    model.NewOrderedMap[*model.Question](),
		}
		order = append(order, id)
	}
	return sections, order, nil
}

func readQuestionsSheet(f *excelize.File, sections map[string]*model.Section) error {
	rows, err := f.GetRows("Questions")
	if err != nil {
		return fmt.Errorf("reading Questions sheet: %w", err)
	}

	questions := make(map[string]*model.Question)
	type link struct {
		question  *model.Question
		sectionID string
		parentID  string
	}
	var links []link

	for _, row := range rows[1:] {
		id := cell(row, 0)
		if id == "" {
			continue
		}
		q := &model.Question{
			ID:          id,
			Label:       cell(row, 3),
			Kind:        model.QuestionKind(cell(row, 4)),
			AnswerType:  model.AnswerType(cell(row, 5)),
			Options:     parseOptions(cell(row, 6)),
			ScoringRule: cell(row, 7),
			NAOption:    parseBool(cell(row, 8)),
			Ordinal:     parseOrdinal(cell(row, 9)),
		}
		questions[id] = q
		links = append(links, link{question: q, sectionID: cell(row, 1), parentID: cell(row, 2)})
	}

	for _, l := range links {
		switch {
		case l.parentID != "":
			parent, ok := questions[l.parentID]
			if !ok {
				return fmt.Errorf("question %q names unknown parent_id %q", l.question.ID, l.parentID)
			}
			if parent.SubQuestions == nil {
				parent.SubQuestions = model.NewOrderedMap[*model.Question]()
			}
			parent.SubQuestions.Set(l.question.ID, l.question)
		case l.sectionID != "":
			section, ok := sections[l.sectionID]
			if !ok {
				return fmt.Errorf("question %q names unknown section_id %q", l.question.ID, l.sectionID)
			}
			section.Questions.Set(l.question.ID, l.question)
		default:
			return fmt.Errorf("question %q names neither a section_id nor a parent_id", l.question.ID)
		}
	}
	return nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "TRUE") || s == "1"
}

func parseOptions(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseOrdinal(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
