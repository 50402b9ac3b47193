// Package scoring implements the checklist scoring-rule DSL: a hand-written
// lexer and LL(1) recursive-descent parser over the grammar of rule strings
// such as `If >10% = Red ; If >5% and =<10% = Yellow`, a question-kind
// validating walk, and an assembler that folds the parsed rules into a
// single xpath.Expr.
package scoring

import "fmt"

// ExpressionSyntaxError reports that a rule string failed to tokenise or
// parse, or that a parsed rule violates its question's kind precondition.
type ExpressionSyntaxError struct {
	QuestionID string
	Reason     string
}

func (e *ExpressionSyntaxError) Error() string {
	return fmt.Sprintf("scoring rule for %q: %s", e.QuestionID, e.Reason)
}

func syntaxErr(qid, reason string, args ...any) error {
	return &ExpressionSyntaxError{QuestionID: qid, Reason: fmt.Sprintf(reason, args...)}
}

// InvalidRuleSetError reports a question with fewer than two rules and no
// caller-supplied outer else.
type InvalidRuleSetError struct {
	QuestionID string
}

func (e *InvalidRuleSetError) Error() string {
	return fmt.Sprintf("scoring rule set for %q has fewer than two rules and no outer else", e.QuestionID)
}
