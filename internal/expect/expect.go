// Package expect checks puzzle answers against expr rules from the config.
// Package expect 使用配置中的 expr 规则校验谜题答案。
package expect

import (
	"fmt"
	"sync/atomic"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/livp123/advent/internal/config"
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
)

// Env is the environment a rule is evaluated in.
// Env 是规则执行时的环境。
type Env struct {
	Year      int     `expr:"year"`
	Day       int     `expr:"day"`
	Part1     int64   `expr:"part1"`
	Part2     int64   `expr:"part2"`
	ElapsedMS float64 `expr:"elapsed_ms"`
}

// Rule is a compiled expectation.
type Rule struct {
	ID      puzzles.ID
	Source  string
	Program *vm.Program
}

// Result is the outcome of one rule.
type Result struct {
	Rule   Rule
	Passed bool
	Err    error
}

// Engine holds the compiled rules, keyed by puzzle.
type Engine struct {
	rules atomic.Pointer[map[puzzles.ID][]Rule]
}

// NewEngine compiles every expectation; the first bad expression fails the whole set.
// NewEngine 编译所有期望规则；任一表达式无效则整体失败。
func NewEngine(expectations []config.Expectation) (*Engine, error) {
	e := &Engine{}
	if err := e.UpdateRules(expectations); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateRules swaps in a new rule set atomically.
func (e *Engine) UpdateRules(expectations []config.Expectation) error {
	rules := make(map[puzzles.ID][]Rule, len(expectations))
	for _, cfg := range expectations {
		id := puzzles.ID{Year: cfg.Year, Day: cfg.Day}
		program, err := expr.Compile(cfg.Expr, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return errors.NewConfigError("expectations."+id.String(), fmt.Sprintf("%s (%v)", cfg.Expr, err))
		}
		rules[id] = append(rules[id], Rule{ID: id, Source: cfg.Expr, Program: program})
	}
	e.rules.Store(&rules)
	return nil
}

// Has reports whether any rule targets id.
func (e *Engine) Has(id puzzles.ID) bool {
	rules := e.rules.Load()
	return rules != nil && len((*rules)[id]) > 0
}

// Evaluate runs every rule registered for env's puzzle.
// Evaluate 执行该谜题的所有规则。
func (e *Engine) Evaluate(env Env) []Result {
	rules := e.rules.Load()
	if rules == nil {
		return nil
	}
	id := puzzles.ID{Year: env.Year, Day: env.Day}

	var results []Result
	for _, rule := range (*rules)[id] {
		output, err := expr.Run(rule.Program, env)
		if err != nil {
			results = append(results, Result{Rule: rule, Err: err})
			continue
		}
		passed, _ := output.(bool)
		res := Result{Rule: rule, Passed: passed}
		if !passed {
			res.Err = errors.NewExpectationError(id.String(), rule.Source)
		}
		results = append(results, res)
	}
	return results
}

// Failed joins the errors of every failed result, or returns nil.
func Failed(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
