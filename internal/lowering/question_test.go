package lowering

import (
	"testing"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
	"github.com/savannahghi/mentorship-xls-form/internal/xlsform"
)

func findRecord(t *testing.T, records []xlsform.Record, name string) xlsform.Record {
	t.Helper()
	for _, r := range records {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no record named %q among %d records", name, len(records))
	return xlsform.Record{}
}

func TestLowerQuestionBoolFixedRecordOrder(t *testing.T) {
	q := &model.Question{ID: "S1_Q1", Label: "Has handwashing station?", Kind: model.BOOL, ScoringRule: "If Y = Red"}
	item, err := LowerQuestion(q)
	if err != nil {
		t.Fatalf("LowerQuestion: %v", err)
	}

	wantNames := []string{"S1_Q1_RELEVANCE", "S1_Q1", "S1_Q1_SCORE", "S1_Q1_INT_SCORE", "S1_Q1_MAX_SCORE"}
	if len(item.Records) != len(wantNames) {
		t.Fatalf("got %d records, want %d", len(item.Records), len(wantNames))
	}
	for i, name := range wantNames {
		if got := item.Records[i].Name; got != name {
			t.Errorf("record %d: got name %q, want %q", i, got, name)
		}
	}

	score := findRecord(t, item.Records, "S1_Q1_SCORE")
	want := "if(not(selected(${S1_Q1}, 'yes')), 'red', 'gray')"
	if score.Calculation != want {
		t.Errorf("score calc = %q, want %q", score.Calculation, want)
	}
}

func TestLowerQuestionRelevanceShortCircuit(t *testing.T) {
	q := &model.Question{ID: "Q1", Label: "x", Kind: model.TEXT}
	item, err := LowerQuestion(q)
	if err != nil {
		t.Fatalf("LowerQuestion: %v", err)
	}
	body := findRecord(t, item.Records, "Q1")
	want := "if(true(), true(), ${Q1_RELEVANCE} = 'yes')"
	if body.Relevant != want {
		t.Errorf("relevant = %q, want %q", body.Relevant, want)
	}
}

func TestLowerQuestionMultiChoiceCount(t *testing.T) {
	subs := model.NewOrderedMap[*model.Question]()
	subs.Set("S3_Q1_A", &model.Question{ID: "S3_Q1_A", Label: "Soap", Kind: model.CHOICE})
	subs.Set("S3_Q1_B", &model.Question{ID: "S3_Q1_B", Label: "Water", Kind: model.CHOICE})
	subs.Set("S3_Q1_C", &model.Question{ID: "S3_Q1_C", Label: "Towel", Kind: model.CHOICE})
	q := &model.Question{ID: "S3_Q1", Label: "Supplies present", Kind: model.MULTI, SubQuestions: subs,
		ScoringRule: "If 3-5 = Yellow ; If >5 = Green"}

	item, err := LowerQuestion(q)
	if err != nil {
		t.Fatalf("LowerQuestion: %v", err)
	}
	if len(item.Choices) != subs.Len() {
		t.Fatalf("got %d choices, want %d", len(item.Choices), subs.Len())
	}
	for _, c := range item.Choices {
		if c.ListName != "S3_Q1" {
			t.Errorf("choice %q has list_name %q, want S3_Q1", c.Name, c.ListName)
		}
	}
}

func TestLowerQuestionSelectOptionNames(t *testing.T) {
	q := &model.Question{ID: "S4_Q1", Label: "Pick one", Kind: model.SELECT, Options: []string{"A", "B", "C"}}
	item, err := LowerQuestion(q)
	if err != nil {
		t.Fatalf("LowerQuestion: %v", err)
	}
	wantNames := []string{"S4_Q1_1", "S4_Q1_2", "S4_Q1_3"}
	if len(item.Choices) != len(wantNames) {
		t.Fatalf("got %d choices, want %d", len(item.Choices), len(wantNames))
	}
	for i, name := range wantNames {
		if got := item.Choices[i].Name; got != name {
			t.Errorf("choice %d: got %q, want %q", i, got, name)
		}
	}
}

func TestLowerQuestionPercGroupStructure(t *testing.T) {
	subs := model.NewOrderedMap[*model.Question]()
	subs.Set("S2_Q1_NUM", &model.Question{ID: "S2_Q1_NUM", Label: "Numerator", Kind: model.NUM})
	subs.Set("S2_Q1_DEN", &model.Question{ID: "S2_Q1_DEN", Label: "Denominator", Kind: model.DEN})
	q := &model.Question{
		ID: "S2_Q1", Label: "Compliance rate", Kind: model.PERC, SubQuestions: subs,
		ScoringRule: "If >10% = Red ; If >5% and =<10% = Yellow ; If <5% = Green",
	}

	item, err := LowerQuestion(q)
	if err != nil {
		t.Fatalf("LowerQuestion: %v", err)
	}

	wantTypes := []string{
		xlsform.SelectOne("yes_no"), // relevance gate
		xlsform.TypeBeginGroup,
		xlsform.TypeInteger, // num
		xlsform.TypeInteger, // den
		xlsform.TypeCalculate,
		xlsform.TypeNote,
		xlsform.TypeCalculate, // score
		xlsform.TypeCalculate, // int score
		xlsform.TypeCalculate, // max score
		xlsform.TypeEndGroup,
	}
	if len(item.Records) != len(wantTypes) {
		t.Fatalf("got %d records, want %d", len(item.Records), len(wantTypes))
	}
	for i, want := range wantTypes {
		if got := item.Records[i].Type; got != want {
			t.Errorf("record %d: type %q, want %q", i, got, want)
		}
	}

	score := findRecord(t, item.Records, "S2_Q1_SCORE")
	want := "if(number(${S2_Q1}) > 10, 'red', if((number(${S2_Q1}) > 5) and (number(${S2_Q1}) <= 10), 'yellow', 'green'))"
	if score.Calculation != want {
		t.Errorf("score calc = %q, want %q", score.Calculation, want)
	}
}

func TestLowerQuestionNAOptionGatesMaxScore(t *testing.T) {
	q := &model.Question{ID: "Q1", Label: "x", Kind: model.BOOL, ScoringRule: "If Y = Red", NAOption: true}
	item, err := LowerQuestion(q)
	if err != nil {
		t.Fatalf("LowerQuestion: %v", err)
	}
	maxScore := findRecord(t, item.Records, "Q1_MAX_SCORE")
	want := "if(${Q1_RELEVANCE} = 'yes', 3, 0)"
	if maxScore.Calculation != want {
		t.Errorf("max score calc = %q, want %q", maxScore.Calculation, want)
	}
}

func TestLowerQuestionUnscoredHasGrayScoreAndZeroMaxScore(t *testing.T) {
	q := &model.Question{ID: "Q1", Label: "x", Kind: model.TEXT}
	item, err := LowerQuestion(q)
	if err != nil {
		t.Fatalf("LowerQuestion: %v", err)
	}
	score := findRecord(t, item.Records, "Q1_SCORE")
	if score.Calculation != "gray" || score.Default != "gray" {
		t.Errorf("got calc=%q default=%q, want both %q", score.Calculation, score.Default, "gray")
	}
	maxScore := findRecord(t, item.Records, "Q1_MAX_SCORE")
	if maxScore.Calculation != "0" {
		t.Errorf("max score calc = %q, want 0", maxScore.Calculation)
	}
}
