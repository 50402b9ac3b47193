package lowering

import (
	"testing"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
)

func TestLowerSectionAggregateWithNAOption(t *testing.T) {
	questions := model.NewOrderedMap[*model.Question]()
	questions.Set("S5_Q1", &model.Question{ID: "S5_Q1", Label: "x", Kind: model.BOOL, ScoringRule: "If Y = Red"})
	s := &model.Section{ID: "S5", Title: "Waste disposal", Questions: questions, NAOption: true}

	item, err := LowerSection(s)
	if err != nil {
		t.Fatalf("LowerSection: %v", err)
	}

	score := findRecord(t, item.Records, "S5_SCORE")
	want := "if(${S5_NA} = 'OK', 'gray', " +
		"if(number(${S5_PERCENTAGE_SCORE}) < 90, 'red', " +
		"if(number(${S5_PERCENTAGE_SCORE}) < 95, 'yellow', 'green')))"
	if score.Calculation != want {
		t.Errorf("got %q, want %q", score.Calculation, want)
	}
}

func TestLowerSectionFixedRecordShape(t *testing.T) {
	questions := model.NewOrderedMap[*model.Question]()
	questions.Set("S1_Q1", &model.Question{ID: "S1_Q1", Label: "x", Kind: model.TEXT})
	s := &model.Section{ID: "S1", Title: "Hand hygiene", Standard: "WHO guideline 4", Questions: questions}

	item, err := LowerSection(s)
	if err != nil {
		t.Fatalf("LowerSection: %v", err)
	}

	wantNames := []string{
		"S1",            // begin_group
		"S1_STANDARD",   // standard note
		"S1_Q1_RELEVANCE", "S1_Q1", "S1_Q1_SCORE", "S1_Q1_INT_SCORE", "S1_Q1_MAX_SCORE",
		"S1_COMMENTS",
		"S1_INT_SCORE", "S1_MAX_SCORE", "S1_PERCENTAGE_SCORE", "S1_SCORE",
		"", // end_group has no name
	}
	if len(item.Records) != len(wantNames) {
		t.Fatalf("got %d records, want %d", len(item.Records), len(wantNames))
	}
	for i, name := range wantNames {
		if i == len(wantNames)-1 {
			continue
		}
		if got := item.Records[i].Name; got != name {
			t.Errorf("record %d: got name %q, want %q", i, got, name)
		}
	}
}

func TestLowerSectionIntAndMaxScoreSumMultipleQuestions(t *testing.T) {
	questions := model.NewOrderedMap[*model.Question]()
	questions.Set("S1_Q1", &model.Question{ID: "S1_Q1", Label: "x", Kind: model.TEXT})
	questions.Set("S1_Q2", &model.Question{ID: "S1_Q2", Label: "y", Kind: model.TEXT})
	s := &model.Section{ID: "S1", Title: "t", Questions: questions}

	item, err := LowerSection(s)
	if err != nil {
		t.Fatalf("LowerSection: %v", err)
	}

	intScore := findRecord(t, item.Records, "S1_INT_SCORE")
	want := "number(${S1_Q1_INT_SCORE}) + number(${S1_Q2_INT_SCORE}) + 0"
	if intScore.Calculation != want {
		t.Errorf("got %q, want %q", intScore.Calculation, want)
	}

	pct := findRecord(t, item.Records, "S1_PERCENTAGE_SCORE")
	wantPct := "round((number(${S1_INT_SCORE}) div number(${S1_MAX_SCORE})) * 100, 2)"
	if pct.Calculation != wantPct {
		t.Errorf("got %q, want %q", pct.Calculation, wantPct)
	}
}
