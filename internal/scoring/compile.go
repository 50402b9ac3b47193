package scoring

import (
	"strconv"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
	"github.com/savannahghi/mentorship-xls-form/internal/xpath"
)

// pair is one rule lowered to its (condition, outcome) shape.
type pair struct {
	cond xpath.Expr
	then xpath.Expr
}

func scoreExpr(s Score) xpath.Expr { return xpath.Str_(string(s)) }

// CompileQuestion parses and lowers q's scoring-rule source into a single
// xpath.Expr, given the outer else supplied by the caller (nil when none).
// It returns (nil, nil) when q carries no scoring rule.
func CompileQuestion(q *model.Question, outerElse xpath.Expr) (xpath.Expr, error) {
	if !q.HasScoringRule() {
		return nil, nil
	}
	rules, err := parseRules(q.ID, normalizeWhitespace(q.ScoringRule))
	if err != nil {
		return nil, err
	}

	pairs := make([]pair, 0, len(rules))
	allBool := true
	for _, r := range rules {
		if r.kind != ifBool {
			allBool = false
		}
		p, err := lowerRule(q, r)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	return assemble(q.ID, pairs, outerElse, allBool)
}

// lowerRule validates r against q's kind and answer type, then renders its
// (cond, then) pair per the algebra in the xpath package.
func lowerRule(q *model.Question, r rule) (pair, error) {
	switch r.kind {
	case ifBool:
		return lowerBool(q, r)
	case ifCount:
		return lowerCount(q, r)
	case ifCmp:
		return lowerCmp(q, r)
	case ifRange:
		return lowerRange(q, r)
	case ifSelect:
		return lowerSelect(q, r)
	}
	return pair{}, syntaxErr(q.ID, "unreachable rule kind")
}

func lowerBool(q *model.Question, r rule) (pair, error) {
	if q.Kind != model.BOOL {
		return pair{}, syntaxErr(q.ID, "a Y/N rule requires a BOOL question, got %s", q.Kind)
	}
	literal := "yes"
	if !r.boolValue {
		literal = "no"
	}
	cond := xpath.MustNot(xpath.MustSelected(xpath.Var(q.ID), xpath.Str_(literal)))
	return pair{cond: cond, then: scoreExpr(r.score)}, nil
}

func lowerCount(q *model.Question, r rule) (pair, error) {
	switch q.Kind {
	case model.MULTI:
		cond := xpath.MustEq(xpath.MustCountSelected(xpath.Var(q.ID)), xpath.Int_(int64(r.count)))
		return pair{cond: cond, then: scoreExpr(r.score)}, nil
	case model.COUNT:
		coalesced := xpath.MustCoalesce(xpath.Var(q.ID), xpath.Zero)
		cond := xpath.MustEq(xpath.MustNumber(coalesced), xpath.Int_(int64(r.count)))
		return pair{cond: cond, then: scoreExpr(r.score)}, nil
	default:
		return pair{}, syntaxErr(q.ID, "a count rule requires a MULTI or COUNT question, got %s", q.Kind)
	}
}

func lowerCmp(q *model.Question, r rule) (pair, error) {
	if !acceptsCmp(q) {
		return pair{}, syntaxErr(q.ID, "a comparison rule does not apply to a %s question", q.Kind)
	}
	for _, t := range r.terms {
		wantPercent := q.Kind == model.PERC
		if t.percent != wantPercent {
			if wantPercent {
				return pair{}, syntaxErr(q.ID, "a comparison term for a PERC question must carry a %% suffix")
			}
			return pair{}, syntaxErr(q.ID, "a comparison term for a %s question must not carry a %% suffix", q.Kind)
		}
	}

	cond, err := buildTerm(q, r.terms[0])
	if err != nil {
		return pair{}, err
	}
	for i, join := range r.joins {
		next, err := buildTerm(q, r.terms[i+1])
		if err != nil {
			return pair{}, err
		}
		var combined xpath.Expr
		if join == "and" {
			combined = xpath.MustAnd(xpath.MustBrkt(cond), xpath.MustBrkt(next))
		} else {
			combined = xpath.MustOr(xpath.MustBrkt(cond), xpath.MustBrkt(next))
		}
		cond = combined
	}
	return pair{cond: cond, then: scoreExpr(r.score)}, nil
}

func acceptsCmp(q *model.Question) bool {
	switch q.Kind {
	case model.PERC, model.MULTI, model.COUNT, model.NUM, model.RATE:
		return true
	}
	return q.AnswerType == model.FLOAT
}

// buildTerm renders one comparison term, choosing the left operand and
// literal kind by q's question kind: count-selected for MULTI, int(number())
// for COUNT, plain number() otherwise.
func buildTerm(q *model.Question, t cmpTerm) (xpath.Expr, error) {
	var left, right xpath.Expr
	switch q.Kind {
	case model.MULTI:
		left = xpath.MustCountSelected(xpath.Var(q.ID))
		right = xpath.Int_(int64(t.n))
	case model.COUNT:
		left = xpath.MustIntF(xpath.MustNumber(xpath.Var(q.ID)))
		right = xpath.Int_(int64(t.n))
	default:
		left = xpath.MustNumber(xpath.Var(q.ID))
		right = xpath.Num(float64(t.n))
	}

	switch t.op {
	case ">":
		return xpath.Gt(left, right)
	case ">=":
		return xpath.Ge(left, right)
	case "<":
		return xpath.Lt(left, right)
	case "<=":
		return xpath.Le(left, right)
	}
	return nil, syntaxErr(q.ID, "unrecognised comparison operator %q", t.op)
}

func lowerRange(q *model.Question, r rule) (pair, error) {
	if q.Kind != model.MULTI {
		return pair{}, syntaxErr(q.ID, "a range rule requires a MULTI question, got %s", q.Kind)
	}
	lo := xpath.MustGe(xpath.MustCountSelected(xpath.Var(q.ID)), xpath.Int_(int64(r.rangeLo)))
	hi := xpath.MustLe(xpath.MustCountSelected(xpath.Var(q.ID)), xpath.Int_(int64(r.rangeHi)))
	cond := xpath.MustAnd(xpath.MustBrkt(lo), xpath.MustBrkt(hi))
	return pair{cond: cond, then: scoreExpr(r.score)}, nil
}

func lowerSelect(q *model.Question, r rule) (pair, error) {
	if q.Kind != model.SELECT {
		return pair{}, syntaxErr(q.ID, "a select rule requires a SELECT question, got %s", q.Kind)
	}
	var cond xpath.Expr
	for i, idx := range r.selectIndices {
		option := q.ID + "_" + strconv.Itoa(idx)
		sel := xpath.MustSelected(xpath.Var(q.ID), xpath.Str_(option))
		if i == 0 {
			cond = sel
			continue
		}
		cond = xpath.MustOr(cond, sel)
	}
	return pair{cond: cond, then: scoreExpr(r.score)}, nil
}

// assemble folds pairs right-to-left into a nested if expression.
//
// With a caller-supplied outer else, every pair contributes a full if,
// terminating in that else. Without one: a single pair is only allowed when
// allowSingle holds (a lone Y/N rule, whose negated condition already
// partitions the question's two-value domain); one or two pairs both wrap
// fully with the neutral default as their shared base, since discarding
// either pair's condition would leave fewer than two real tests; three or
// more pairs drop the rightmost pair's condition and use its outcome as the
// open-ended catch-all, matching how such rule lists are normally authored
// with a final unconditional bucket.
func assemble(qid string, pairs []pair, outerElse xpath.Expr, allowSingle bool) (xpath.Expr, error) {
	n := len(pairs)
	if n == 0 {
		return nil, &InvalidRuleSetError{QuestionID: qid}
	}
	if outerElse != nil {
		return wrapAll(pairs, outerElse), nil
	}
	if n == 1 && !allowSingle {
		return nil, &InvalidRuleSetError{QuestionID: qid}
	}
	if n <= 2 {
		return wrapAll(pairs, scoreExpr(ScoreGray)), nil
	}
	return wrapAll(pairs[:n-1], pairs[n-1].then), nil
}

func wrapAll(pairs []pair, base xpath.Expr) xpath.Expr {
	acc := base
	for i := len(pairs) - 1; i >= 0; i-- {
		acc = xpath.MustIf(pairs[i].cond, pairs[i].then, acc)
	}
	return acc
}

// ChainQuestionScores folds a section's already-compiled per-question score
// expressions right-to-left, each one supplying the outer else of its
// predecessor: CompileQuestion(q[i], ChainQuestionScores(q[i+1:])). It is
// the section-level analogue of assemble's per-rule fold, one level up.
// Checklist lowering does not call it: each question's own _SCORE cell is
// self-contained per its own rule list, and nothing in the compiled
// workbook needs a single expression spanning multiple questions.
func ChainQuestionScores(questions []*model.Question) (xpath.Expr, error) {
	var acc xpath.Expr
	for i := len(questions) - 1; i >= 0; i-- {
		q := questions[i]
		if !q.HasScoringRule() {
			continue
		}
		expr, err := CompileQuestion(q, acc)
		if err != nil {
			return nil, err
		}
		acc = expr
	}
	return acc, nil
}
