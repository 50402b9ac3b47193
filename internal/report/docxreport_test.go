package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
	"github.com/savannahghi/mentorship-xls-form/internal/xlsform"
)

func sampleChecklist() *model.Checklist {
	questions := model.NewOrderedMap[*model.Question]()
	questions.Set("CL1_S1_Q1", &model.Question{ID: "CL1_S1_Q1", Kind: model.BOOL, AnswerType: model.BOOLEAN})
	questions.Set("CL1_S1_Q2", &model.Question{ID: "CL1_S1_Q2", Kind: model.TEXT, AnswerType: model.STRING})

	sections := model.NewOrderedMap[*model.Section]()
	sections.Set("CL1_S1", &model.Section{ID: "CL1_S1", Title: "Section one", Questions: questions})

	return &model.Checklist{ID: "CL1", Name: "Sample checklist", Sections: sections}
}

func TestWriteProducesDocxFile(t *testing.T) {
	checklist := sampleChecklist()
	form := &xlsform.XLSForm{
		Survey:  []xlsform.Record{{Type: xlsform.TypeText, Name: "Q1"}},
		Choices: []xlsform.Choice{{Label: "Yes", ListName: "yes_no", Name: "yes"}},
	}

	path := filepath.Join(t.TempDir(), "report.docx")
	if err := Write(checklist, form, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatal("report file is empty")
	}
}

func TestBuildSummaryCountsQuestionsByKind(t *testing.T) {
	checklist := sampleChecklist()
	form := &xlsform.XLSForm{}

	summary := buildSummary(checklist, form)
	for _, want := range []string{"Sections: 1", "Questions: 2", "BOOL", "TEXT"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q: %s", want, summary)
		}
	}
}
