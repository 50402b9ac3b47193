package lowering

import (
	"fmt"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
	"github.com/savannahghi/mentorship-xls-form/internal/xlsform"
	"github.com/savannahghi/mentorship-xls-form/internal/xpath"
)

// LowerSection produces one section's XLSFormItem: a begin_field_list
// group wrapping the section's fixed records and every question it owns,
// in a fixed, deterministic order. Callers are expected to have already
// run Checklist.Validate, which recurses into every section and question.
func LowerSection(s *model.Section) (xlsform.Item, error) {
	var item xlsform.Item
	item.AddRecord(xlsform.Record{
		Type:       xlsform.TypeBeginGroup,
		Appearance: "field-list",
		Label:      fmt.Sprintf("SEC #: %s %s", s.ID, s.Title),
		Name:       s.ID,
	})

	if s.HasStandard() {
		item.AddRecord(xlsform.Record{
			Type:  xlsform.TypeNote,
			Name:  s.ID + "_STANDARD",
			Label: "**STANDARD:** " + s.Standard,
		})
	}
	if s.HasInstructions() {
		item.AddRecord(xlsform.Record{
			Type:  xlsform.TypeNote,
			Name:  s.ID + "_INSTRUCTIONS",
			Label: s.Instructions,
		})
	}
	if s.NAOption {
		item.AddRecord(xlsform.Record{
			Type:  xlsform.TypeTrigger,
			Label: "Mark this section not applicable",
			Name:  s.ID + "_NA",
		})
	}

	for _, key := range s.Questions.Keys() {
		q, _ := s.Questions.Get(key)
		qItem, err := LowerQuestion(q)
		if err != nil {
			return xlsform.Item{}, err
		}
		item.Append(qItem)
	}

	item.AddRecord(xlsform.Record{
		Type:       xlsform.TypeText,
		Appearance: "multiline",
		Label:      "Comments",
		Name:       s.ID + "_COMMENTS",
	})

	item.AddRecord(intScoreSumRecord(s))
	item.AddRecord(maxScoreSumRecord(s))
	item.AddRecord(percentageScoreRecord(s))
	item.AddRecord(sectionScoreRecord(s))

	item.AddRecord(xlsform.Record{Type: xlsform.TypeEndGroup})

	return item, nil
}

// intScoreSumRecord renders {sid}_INT_SCORE: the right-to-left fold of
// number(${q}_INT_SCORE) over every top-level question, starting from 0.
func intScoreSumRecord(s *model.Section) xlsform.Record {
	return xlsform.Record{
		Type:        xlsform.TypeCalculate,
		Name:        s.ID + "_INT_SCORE",
		Calculation: sumFold(s, "_INT_SCORE", xpath.Zero).Render(),
		Default:     "0",
	}
}

// maxScoreSumRecord renders {sid}_MAX_SCORE the same way, defaulting to 1
// so the percentage calculation's divisor is never zero before a
// respondent has answered anything.
func maxScoreSumRecord(s *model.Section) xlsform.Record {
	return xlsform.Record{
		Type:        xlsform.TypeCalculate,
		Name:        s.ID + "_MAX_SCORE",
		Calculation: sumFold(s, "_MAX_SCORE", xpath.Zero).Render(),
		Default:     "1",
	}
}

func sumFold(s *model.Section, suffix string, base xpath.Expr) xpath.Expr {
	keys := s.Questions.Keys()
	acc := base
	for i := len(keys) - 1; i >= 0; i-- {
		q, _ := s.Questions.Get(keys[i])
		term := xpath.MustNumber(xpath.Var(q.ID + suffix))
		acc = xpath.MustAdd(term, acc)
	}
	return acc
}

func percentageScoreRecord(s *model.Section) xlsform.Record {
	ratio := xpath.MustBrkt(xpath.MustDiv(
		xpath.MustNumber(xpath.Var(s.ID+"_INT_SCORE")),
		xpath.MustNumber(xpath.Var(s.ID+"_MAX_SCORE")),
	))
	calc := xpath.MustRound(xpath.MustMul(ratio, xpath.Num(100)), xpath.Two)
	return xlsform.Record{
		Type:        xlsform.TypeCalculate,
		Name:        s.ID + "_PERCENTAGE_SCORE",
		Calculation: calc.Render(),
	}
}

// sectionScoreRecord renders {sid}_SCORE: a read-only select_one cee_score
// row thresholding the percentage score, wrapped in the section's
// not-applicable gate when na_option is set.
func sectionScoreRecord(s *model.Section) xlsform.Record {
	p := xpath.MustNumber(xpath.Var(s.ID + "_PERCENTAGE_SCORE"))
	thresholded := xpath.MustIf(xpath.MustLt(p, xpath.Num(90)), xpath.Str_("red"),
		xpath.MustIf(xpath.MustLt(p, xpath.Num(95)), xpath.Str_("yellow"), xpath.Str_("green")))

	calc := thresholded
	if s.NAOption {
		naOK := xpath.MustEq(xpath.Var(s.ID+"_NA"), xpath.Str_("OK"))
		calc = xpath.MustIf(naOK, xpath.Str_("gray"), thresholded)
	}

	return xlsform.Record{
		Type:        xlsform.SelectOne("cee_score"),
		Appearance:  "minimal",
		Default:     "red",
		Name:        s.ID + "_SCORE",
		ReadOnly:    "yes",
		Calculation: calc.Render(),
	}
}
