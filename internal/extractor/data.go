package extractor

import "strings"

// ResultKind tags the variant a Result carries.
type ResultKind int

const (
	KindNone ResultKind = iota
	KindSingle
	KindMultiple
)

// Result is the explicit tagged variant every extractor returns.
// Callers must branch on Kind(), never infer the variant from value shape.
type Result struct {
	kind     ResultKind
	single   string
	multiple []string
}

// None reports that nothing was found.
func None() Result {
	return Result{kind: KindNone}
}

// Single wraps one selected value, e.g. the winning logo locator.
func Single(value string) Result {
	return Result{kind: KindSingle, single: value}
}

// Multiple wraps an ordered set of values, e.g. the deduplicated phone list.
func Multiple(values []string) Result {
	return Result{kind: KindMultiple, multiple: values}
}

func (r Result) Kind() ResultKind {
	return r.kind
}

func (r Result) Value() string {
	return r.single
}

func (r Result) Values() []string {
	return r.multiple
}

// Render produces the output-line form of the result:
// None renders literally as "None", Multiple as a comma-and-space-joined
// list, Single as-is.
func (r Result) Render() string {
	switch r.kind {
	case KindSingle:
		return r.single
	case KindMultiple:
		return strings.Join(r.multiple, ", ")
	default:
		return "None"
	}
}
