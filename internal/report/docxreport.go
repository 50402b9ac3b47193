// Package report emits a narrative compilation summary alongside the
// compiled XLSForm: section and question counts and the colour-band
// legend a reviewer needs to read the workbook's `_SCORE` columns.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nguyenthenguyen/docx"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
	"github.com/savannahghi/mentorship-xls-form/internal/xlsform"
)

// Write renders a .docx narrative summary of checklist (as compiled into
// form) to path.
func Write(checklist *model.Checklist, form *xlsform.XLSForm, path string) error {
	templateBytes, err := buildTemplate()
	if err != nil {
		return fmt.Errorf("building report template: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "mentorship-xlsform-report-*.docx")
	if err != nil {
		return fmt.Errorf("creating temp template: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		return fmt.Errorf("writing temp template: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp template: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("reading report template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()
	doc.Replace(placeholderChecklist, checklist.Name, -1)
	doc.Replace(placeholderDate, time.Now().Format("2006-01-02 15:04"), -1)
	doc.Replace(placeholderContent, buildSummary(checklist, form), -1)

	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func buildSummary(checklist *model.Checklist, form *xlsform.XLSForm) string {
	var sb strings.Builder

	sb.WriteString("COMPILATION SUMMARY\n\n")
	sb.WriteString(fmt.Sprintf("Checklist: %s (%s)\n", checklist.Name, checklist.ID))
	sb.WriteString(fmt.Sprintf("Sections: %d\n", checklist.Sections.Len()))

	kindCounts := make(map[model.QuestionKind]int)
	totalQuestions := 0
	for _, sectionKey := range checklist.Sections.Keys() {
		section, _ := checklist.Sections.Get(sectionKey)
		countQuestions(section.Questions, kindCounts, &totalQuestions)
	}
	sb.WriteString(fmt.Sprintf("Questions: %d\n\n", totalQuestions))

	sb.WriteString("Questions by kind:\n")
	for _, kind := range []model.QuestionKind{
		model.BOOL, model.COUNT, model.MULTI, model.PERC, model.RATE, model.SELECT, model.TEXT,
	} {
		if n := kindCounts[kind]; n > 0 {
			sb.WriteString(fmt.Sprintf("  %-8s %d\n", kind, n))
		}
	}

	sb.WriteString("\nColour-band legend:\n")
	sb.WriteString("  green  - section percentage score at or above 95\n")
	sb.WriteString("  yellow - section percentage score at or above 90 and below 95\n")
	sb.WriteString("  red    - section percentage score below 90\n")
	sb.WriteString("  gray   - section marked not applicable\n")

	sb.WriteString(fmt.Sprintf("\nSurvey rows: %d\n", len(form.Survey)))
	sb.WriteString(fmt.Sprintf("Choice rows: %d\n", len(form.Choices)))

	return sb.String()
}

func countQuestions(questions *model.OrderedMap[*model.Question], counts map[model.QuestionKind]int, total *int) {
	if questions == nil {
		return
	}
	for _, key := range questions.Keys() {
		q, _ := questions.Get(key)
		counts[q.Kind]++
		*total++
		if q.HasSubQuestions() {
			countQuestions(q.SubQuestions, counts, total)
		}
	}
}
