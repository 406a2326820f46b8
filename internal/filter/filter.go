package filter

import (
	"regexp"
	"strings"

	"github.com/Knetic/govaluate"

	"jseq/internal/model"
)

// Criteria describes a display filter over entries. Query is a plain
// substring (or regex when wrapped in slashes); Expr is a govaluate
// expression over the entry's fields. Filtering only affects highlighting
// in the diagram; it never changes sequencing or grouping input.
type Criteria struct {
	Query    string
	UseRegex bool
	Expr     string
}

func (c Criteria) Empty() bool {
	return strings.TrimSpace(c.Query) == "" && strings.TrimSpace(c.Expr) == ""
}

type Evaluator struct {
	re   *regexp.Regexp
	expr *govaluate.EvaluableExpression
}

func NewEvaluator(c Criteria) (*Evaluator, error) {
	var re *regexp.Regexp
	var expr *govaluate.EvaluableExpression
	var err error
	if c.UseRegex && c.Query != "" {
		re, err = regexp.Compile(c.Query)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(c.Expr) != "" {
		expr, err = govaluate.NewEvaluableExpression(c.Expr)
		if err != nil {
			return nil, err
		}
	}
	return &Evaluator{re: re, expr: expr}, nil
}

func (ev *Evaluator) Match(e model.LogEntry, c Criteria) bool {
	if c.Query != "" {
		if ev.re != nil {
			if !ev.re.MatchString(e.Raw) {
				return false
			}
		} else if !strings.Contains(strings.ToLower(e.Raw), strings.ToLower(c.Query)) {
			return false
		}
	}
	if ev.expr != nil {
		params := map[string]any{
			"label":           e.FirstColumn,
			"has_request":     e.HasRequest,
			"has_response":    e.HasResponse,
			"request_number":  e.RequestNumber,
			"response_number": e.ResponseNumber,
		}
		if e.RequestTS != nil {
			params["request_ts"] = e.RequestTS.Format("2006-01-02T15:04:05.000")
		} else {
			params["request_ts"] = ""
		}
		if e.ResponseTS != nil {
			params["response_ts"] = e.ResponseTS.Format("2006-01-02T15:04:05.000")
		} else {
			params["response_ts"] = ""
		}
		result, err := ev.expr.Evaluate(params)
		if err != nil {
			return false
		}
		b, ok := result.(bool)
		if !ok || !b {
			return false
		}
	}
	return true
}
