// Package lowering compiles the domain model (internal/model) into the
// XLSForm value model (internal/xlsform), driving internal/scoring to
// produce each question's compiled scoring expression.
package lowering

import (
	"fmt"
	"strconv"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
	"github.com/savannahghi/mentorship-xls-form/internal/scoring"
	"github.com/savannahghi/mentorship-xls-form/internal/xlsform"
	"github.com/savannahghi/mentorship-xls-form/internal/xpath"
)

const defaultScoreLiteral = "gray"

// LowerQuestion produces one question's XLSFormItem: the five fixed
// records (relevance gate, body, textual/int/max score) plus any choice
// rows the body contributes.
func LowerQuestion(q *model.Question) (xlsform.Item, error) {
	if err := q.Validate(); err != nil {
		return xlsform.Item{}, err
	}

	var item xlsform.Item
	item.AddRecord(relevanceGateRecord(q))

	// PERC and compound-with-subquestions bodies are wrapped in a
	// begin_group/end_group pair, with their own three score records
	// nested before the closing end_group; they assemble the full
	// remaining four records themselves. Every other kind yields a bare
	// body record, and the three score records are appended here.
	switch {
	case q.Kind == model.PERC:
		body, err := lowerPerc(q)
		if err != nil {
			return xlsform.Item{}, err
		}
		item.Append(body)
	case q.HasSubQuestions() && q.Kind != model.MULTI:
		body, err := lowerGenericCompound(q)
		if err != nil {
			return xlsform.Item{}, err
		}
		item.Append(body)
	default:
		body, err := questionBody(q)
		if err != nil {
			return xlsform.Item{}, err
		}
		item.Append(body)

		scoreExpr, err := scoring.CompileQuestion(q, nil)
		if err != nil {
			return xlsform.Item{}, err
		}
		item.AddRecord(textualScoreRecord(q, scoreExpr))
		item.AddRecord(intScoreRecord(q))
		item.AddRecord(maxScoreRecord(q))
	}

	return item, nil
}

func relevanceGateRecord(q *model.Question) xlsform.Record {
	relevant := "no"
	if q.NAOption {
		relevant = "yes"
	}
	label := "Is the question below applicable?"
	if q.Ordinal != nil {
		label = fmt.Sprintf("%d. %s", *q.Ordinal, label)
	}
	return xlsform.Record{
		Type:       xlsform.SelectOne("yes_no"),
		Appearance: "columns-pack",
		Default:    "yes",
		Label:      label,
		Name:       q.ID + "_RELEVANCE",
		Relevant:   relevant,
	}
}

// bodyRelevant renders the short-circuited relevant expression shared by
// every non-relevance-gate body row: if(<short circuit>, true(), the
// relevance gate having been answered yes).
func bodyRelevant(q *model.Question) string {
	shortCircuit := xpath.True
	if q.NAOption {
		shortCircuit = xpath.False
	}
	gateAnswered := xpath.MustEq(xpath.Var(q.ID+"_RELEVANCE"), xpath.Str_("yes"))
	return xpath.MustIf(shortCircuit, xpath.True, gateAnswered).Render()
}

func positiveConstraint(q *model.Question) string {
	if q.AnswerType == model.INTEGER_ZERO_OR_POSITIVE {
		return ".>=0"
	}
	return ""
}

// questionBody renders the bare body record(s) for kinds whose score
// records are appended by the caller (LowerQuestion), i.e. every kind
// except PERC and compound-with-subquestions, which lowerPerc and
// lowerGenericCompound handle in full themselves.
func questionBody(q *model.Question) (xlsform.Item, error) {
	switch {
	case q.Kind == model.MULTI:
		return lowerMulti(q)
	case q.Kind == model.BOOL:
		return singleRecordItem(xlsform.Record{
			Type:       xlsform.SelectOne("yes_no"),
			Appearance: "columns-pack",
			Label:      q.Label,
			Name:       q.ID,
			Relevant:   bodyRelevant(q),
		}), nil
	case q.Kind == model.COUNT:
		return singleRecordItem(xlsform.Record{
			Type:       xlsform.TypeInteger,
			Label:      q.Label,
			Name:       q.ID,
			Constraint: positiveConstraint(q),
			Relevant:   bodyRelevant(q),
		}), nil
	case q.Kind == model.RATE:
		return singleRecordItem(xlsform.Record{
			Type:       xlsform.TypeDecimal,
			Label:      q.Label,
			Name:       q.ID,
			Constraint: positiveConstraint(q),
			Relevant:   bodyRelevant(q),
		}), nil
	case q.Kind == model.TEXT:
		return singleRecordItem(xlsform.Record{
			Type:       xlsform.TypeText,
			Label:      q.Label,
			Name:       q.ID,
			Constraint: positiveConstraint(q),
			Relevant:   bodyRelevant(q),
		}), nil
	case q.Kind == model.SELECT:
		return lowerSelect(q)
	default:
		return singleRecordItem(xlsform.Record{
			Type:     xlsform.TypeText,
			Label:    q.Label,
			Name:     q.ID,
			Relevant: bodyRelevant(q),
		}), nil
	}
}

func singleRecordItem(r xlsform.Record) xlsform.Item {
	var item xlsform.Item
	item.AddRecord(r)
	return item
}

func lowerMulti(q *model.Question) (xlsform.Item, error) {
	var item xlsform.Item
	item.AddRecord(xlsform.Record{
		Type:     xlsform.SelectMultiple(q.ID),
		Label:    q.Label,
		Name:     q.ID,
		Relevant: bodyRelevant(q),
	})
	for _, key := range q.SubQuestions.Keys() {
		sub, _ := q.SubQuestions.Get(key)
		item.AddChoice(xlsform.Choice{Label: sub.Label, ListName: q.ID, Name: sub.ID})
	}
	return item, nil
}

func lowerSelect(q *model.Question) (xlsform.Item, error) {
	var item xlsform.Item
	item.AddRecord(xlsform.Record{
		Type:     xlsform.SelectOne(q.ID),
		Label:    q.Label,
		Name:     q.ID,
		Relevant: bodyRelevant(q),
	})
	for k, opt := range q.Options {
		item.AddChoice(xlsform.Choice{
			Label:    opt,
			ListName: q.ID,
			Name:     q.ID + "_" + strconv.Itoa(k+1),
		})
	}
	return item, nil
}

func lowerPerc(q *model.Question) (xlsform.Item, error) {
	var num, den *model.Question
	for _, key := range q.SubQuestions.Keys() {
		sub, _ := q.SubQuestions.Get(key)
		switch sub.Kind {
		case model.NUM:
			num = sub
		case model.DEN:
			den = sub
		}
	}

	var item xlsform.Item
	item.AddRecord(xlsform.Record{
		Type:       xlsform.TypeBeginGroup,
		Appearance: "table-list",
		Label:      q.Label,
		Name:       q.ID + "_PERC_GRP",
		Relevant:   bodyRelevant(q),
	})
	item.AddRecord(xlsform.Record{
		Type:       xlsform.TypeInteger,
		Label:      num.Label,
		Name:       num.ID,
		Constraint: ".>=0",
	})
	item.AddRecord(xlsform.Record{
		Type:       xlsform.TypeInteger,
		Label:      den.Label,
		Name:       den.ID,
		Constraint: ".>=0",
	})

	percentCalc := percCalculation(num.ID, den.ID)
	item.AddRecord(xlsform.Record{
		Type:        xlsform.TypeCalculate,
		Name:        q.ID,
		Calculation: percentCalc.Render(),
	})
	item.AddRecord(xlsform.Record{
		Type: xlsform.TypeNote,
		Name: q.ID + "_PERC_CALC_DISPLAY",
		Hint: "${" + q.ID + "}%",
	})

	scoreExpr, err := scoring.CompileQuestion(q, nil)
	if err != nil {
		return xlsform.Item{}, err
	}
	item.AddRecord(textualScoreRecord(q, scoreExpr))
	item.AddRecord(intScoreRecord(q))
	item.AddRecord(maxScoreRecord(q))
	item.AddRecord(xlsform.Record{Type: xlsform.TypeEndGroup})

	return item, nil
}

// percCalculation renders round((number(coalesce(${num}, 0)) div
// number(coalesce(${den}, 1))) * 100, 2).
func percCalculation(numID, denID string) xpath.Expr {
	numerator := xpath.MustNumber(xpath.MustCoalesce(xpath.Var(numID), xpath.Zero))
	denominator := xpath.MustNumber(xpath.MustCoalesce(xpath.Var(denID), xpath.One))
	ratio := xpath.MustBrkt(xpath.MustDiv(numerator, denominator))
	scaled := xpath.MustMul(ratio, xpath.Num(100))
	return xpath.MustRound(scaled, xpath.Num(2))
}

func lowerGenericCompound(q *model.Question) (xlsform.Item, error) {
	var item xlsform.Item
	item.AddRecord(xlsform.Record{
		Type:     xlsform.TypeBeginGroup,
		Label:    q.Label,
		Name:     q.ID + "_GRP",
		Relevant: bodyRelevant(q),
	})
	for _, key := range q.SubQuestions.Keys() {
		sub, _ := q.SubQuestions.Get(key)
		subItem, err := LowerQuestion(sub)
		if err != nil {
			return xlsform.Item{}, err
		}
		item.Append(subItem)
	}

	scoreExpr, err := scoring.CompileQuestion(q, nil)
	if err != nil {
		return xlsform.Item{}, err
	}
	item.AddRecord(textualScoreRecord(q, scoreExpr))
	item.AddRecord(intScoreRecord(q))
	item.AddRecord(maxScoreRecord(q))
	item.AddRecord(xlsform.Record{Type: xlsform.TypeEndGroup})

	return item, nil
}

func textualScoreRecord(q *model.Question, compiled xpath.Expr) xlsform.Record {
	calc := defaultScoreLiteral
	if compiled != nil {
		calc = compiled.Render()
	}
	return xlsform.Record{
		Type:        xlsform.TypeCalculate,
		Name:        q.ID + "_SCORE",
		Calculation: calc,
		Default:     defaultScoreLiteral,
	}
}

func intScoreRecord(q *model.Question) xlsform.Record {
	scoreVar := xpath.Var(q.ID + "_SCORE")
	calc := xpath.MustIf(xpath.MustEq(scoreVar, xpath.Str_("green")), xpath.Int_(3),
		xpath.MustIf(xpath.MustEq(scoreVar, xpath.Str_("yellow")), xpath.Int_(2),
			xpath.MustIf(xpath.MustEq(scoreVar, xpath.Str_("red")), xpath.Int_(1), xpath.Int_(0))))
	return xlsform.Record{
		Type:        xlsform.TypeCalculate,
		Name:        q.ID + "_INT_SCORE",
		Calculation: calc.Render(),
		Default:     "0",
	}
}

func maxScoreRecord(q *model.Question) xlsform.Record {
	calc := "0"
	if q.HasScoringRule() {
		if q.NAOption {
			relevanceAnswered := xpath.MustEq(xpath.Var(q.ID+"_RELEVANCE"), xpath.Str_("yes"))
			calc = xpath.MustIf(relevanceAnswered, xpath.Int_(3), xpath.Int_(0)).Render()
		} else {
			calc = "3"
		}
	}
	return xlsform.Record{
		Type:        xlsform.TypeCalculate,
		Name:        q.ID + "_MAX_SCORE",
		Calculation: calc,
		Default:     "0",
	}
}
