package scoring

import (
	"testing"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
	"github.com/savannahghi/mentorship-xls-form/internal/xpath"
)

func q(id string, kind model.QuestionKind, rule string) *model.Question {
	return &model.Question{ID: id, Kind: kind, ScoringRule: rule}
}

func TestBoolSingleRuleUsesGrayDefault(t *testing.T) {
	question := q("S1_Q1", model.BOOL, "If Y = Red")
	expr, err := CompileQuestion(question, nil)
	if err != nil {
		t.Fatalf("CompileQuestion: %v", err)
	}
	want := "if(not(selected(${S1_Q1}, 'yes')), 'red', 'gray')"
	if got := expr.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPercThreeRulesDropsLastCondition(t *testing.T) {
	question := q("S2_Q1", model.PERC, "If >10% = Red ; If >5% and =<10% = Yellow ; If <5% = Green")
	expr, err := CompileQuestion(question, nil)
	if err != nil {
		t.Fatalf("CompileQuestion: %v", err)
	}
	want := "if(number(${S2_Q1}) > 10, 'red', if((number(${S2_Q1}) > 5) and (number(${S2_Q1}) <= 10), 'yellow', 'green'))"
	if got := expr.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMultiTwoRulesKeepsGrayDefault(t *testing.T) {
	question := q("S3_Q1", model.MULTI, "If 3-5 = Yellow ; If >5 = Green")
	expr, err := CompileQuestion(question, nil)
	if err != nil {
		t.Fatalf("CompileQuestion: %v", err)
	}
	want := "if((count-selected(${S3_Q1}) >= 3) and (count-selected(${S3_Q1}) <= 5), 'yellow', if(count-selected(${S3_Q1}) > 5, 'green', 'gray'))"
	if got := expr.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSelectWithOuterElse(t *testing.T) {
	question := q("S4_Q1", model.SELECT, "If select 1 or 3 = Green")
	expr, err := CompileQuestion(question, xpath.Str_("red"))
	if err != nil {
		t.Fatalf("CompileQuestion: %v", err)
	}
	want := "if(selected(${S4_Q1}, 'S4_Q1_1') or selected(${S4_Q1}, 'S4_Q1_3'), 'green', 'red')"
	if got := expr.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCountRuleForCountQuestion(t *testing.T) {
	question := q("S5_Q1", model.COUNT, "If 2 = Green ; If 0 = Red")
	expr, err := CompileQuestion(question, nil)
	if err != nil {
		t.Fatalf("CompileQuestion: %v", err)
	}
	want := "if(number(coalesce(${S5_Q1}, 0)) = 2, 'green', if(number(coalesce(${S5_Q1}, 0)) = 0, 'red', 'gray'))"
	if got := expr.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSingleNonBoolRuleWithoutOuterElseIsInvalid(t *testing.T) {
	question := q("S6_Q1", model.PERC, "If >10% = Red")
	_, err := CompileQuestion(question, nil)
	if _, ok := err.(*InvalidRuleSetError); !ok {
		t.Fatalf("got %v (%T), want *InvalidRuleSetError", err, err)
	}
}

func TestBoolRuleOnNonBoolQuestionIsSyntaxError(t *testing.T) {
	question := q("S7_Q1", model.PERC, "If Y = Red")
	_, err := CompileQuestion(question, nil)
	if _, ok := err.(*ExpressionSyntaxError); !ok {
		t.Fatalf("got %v (%T), want *ExpressionSyntaxError", err, err)
	}
}

func TestPercRuleWithoutPercentSuffixIsSyntaxError(t *testing.T) {
	question := q("S8_Q1", model.PERC, "If >10 = Red ; If <10 = Green")
	_, err := CompileQuestion(question, nil)
	if _, ok := err.(*ExpressionSyntaxError); !ok {
		t.Fatalf("got %v (%T), want *ExpressionSyntaxError", err, err)
	}
}

func TestCmpRuleWithPercentSuffixOnNonPercIsSyntaxError(t *testing.T) {
	question := q("S9_Q1", model.MULTI, "If >5% = Red ; If <5% = Green")
	_, err := CompileQuestion(question, nil)
	if _, ok := err.(*ExpressionSyntaxError); !ok {
		t.Fatalf("got %v (%T), want *ExpressionSyntaxError", err, err)
	}
}

func TestNoScoringRuleCompilesToNil(t *testing.T) {
	question := q("S10_Q1", model.TEXT, "")
	expr, err := CompileQuestion(question, nil)
	if err != nil {
		t.Fatalf("CompileQuestion: %v", err)
	}
	if expr != nil {
		t.Fatalf("got %v, want nil", expr)
	}
}

func TestChainQuestionScoresFoldsRightToLeft(t *testing.T) {
	q1 := q("Q1", model.PERC, "If >10% = Red")
	q2 := q("Q2", model.PERC, "If >10% = Green ; If =<10% = Yellow")
	expr, err := ChainQuestionScores([]*model.Question{q1, q2})
	if err != nil {
		t.Fatalf("ChainQuestionScores: %v", err)
	}
	want := "if(number(${Q1}) > 10, 'red', if(number(${Q2}) > 10, 'green', if(number(${Q2}) <= 10, 'yellow', 'gray')))"
	if got := expr.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
