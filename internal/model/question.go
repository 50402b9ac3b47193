package model

import "strings"

// QuestionKind is the closed set of question kinds.
type QuestionKind string

const (
	BOOL   QuestionKind = "BOOL"
	CHOICE QuestionKind = "CHOICE"
	COUNT  QuestionKind = "COUNT"
	DEN    QuestionKind = "DEN"
	MULTI  QuestionKind = "MULTI"
	NUM    QuestionKind = "NUM"
	PERC   QuestionKind = "PERC"
	RATE   QuestionKind = "RATE"
	SELECT QuestionKind = "SELECT"
	TEXT   QuestionKind = "TEXT"
)

// AnswerType is the closed set of answer types.
type AnswerType string

const (
	BOOLEAN                AnswerType = "BOOLEAN"
	FLOAT                  AnswerType = "FLOAT"
	INTEGER_ZERO_OR_POSITIVE AnswerType = "INTEGER_ZERO_OR_POSITIVE"
	STRING                 AnswerType = "STRING"
)

// parentKinds is the set of kinds that may head a section's top-level
// questions. NUM and DEN only ever appear as PERC sub-questions; CHOICE is
// an answer-option label carrier and never a top-level item.
var parentKinds = map[QuestionKind]bool{
	BOOL:   true,
	COUNT:  true,
	MULTI:  true,
	PERC:   true,
	RATE:   true,
	SELECT: true,
	TEXT:   true,
}

// IsParentKind reports whether k may be a section's top-level question kind.
func IsParentKind(k QuestionKind) bool {
	return parentKinds[k]
}

// Question is a single checklist item.
type Question struct {
	ID          string
	Label       string
	Kind        QuestionKind
	AnswerType  AnswerType
	Options     []string // ordered; populated for SELECT questions
	Prompt      string
	ScoringRule string // raw scoring-rule DSL source; empty if unscored
	SubQuestions *OrderedMap[*Question]
	NAOption    bool
	Ordinal     *int
}

// HasScoringRule reports whether q carries a scoring-rule source string.
func (q *Question) HasScoringRule() bool {
	return strings.TrimSpace(q.ScoringRule) != ""
}

// HasSubQuestions reports whether q has any sub-questions.
func (q *Question) HasSubQuestions() bool {
	return q.SubQuestions != nil && q.SubQuestions.Len() > 0
}

// Validate re-asserts the cross-entity invariants that the loader is
// responsible for establishing in the first place.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return invalidMetadata(q.ID, "question id must not be empty")
	}

	switch q.Kind {
	case PERC:
		if q.SubQuestions == nil || q.SubQuestions.Len() != 2 {
			return invalidMetadata(q.ID, "PERC question must have exactly two sub-questions")
		}
		var sawNum, sawDen bool
		for _, sub := range q.SubQuestions.Values() {
			switch sub.Kind {
			case NUM:
				sawNum = true
			case DEN:
				sawDen = true
			default:
				return invalidMetadata(q.ID, "PERC sub-question %q has kind %s, want NUM or DEN", sub.ID, sub.Kind)
			}
		}
		if !sawNum || !sawDen {
			return invalidMetadata(q.ID, "PERC question must have one NUM and one DEN sub-question")
		}
	case MULTI:
		if q.SubQuestions == nil || q.SubQuestions.Len() < 1 {
			return invalidMetadata(q.ID, "MULTI question must have at least one sub-question")
		}
	case SELECT:
		if len(q.Options) == 0 {
			return invalidMetadata(q.ID, "SELECT question must have a non-empty options set")
		}
	}

	if q.SubQuestions != nil {
		for _, key := range q.SubQuestions.Keys() {
			sub, _ := q.SubQuestions.Get(key)
			if sub.ID != key {
				return invalidMetadata(q.ID, "sub_question key %q does not match child id %q", key, sub.ID)
			}
			if err := sub.Validate(); err != nil {
				return err
			}
		}
	}

	return nil
}
