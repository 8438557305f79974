// Package validate composes ordered validator chains over record fields and
// repeating-group rows. Validators are pure functions of the value and a
// read-only lookup context; failures come back as data, never as errors.
package validate

// Context exposes sibling values for cross-field rules. A record.Record
// serves field chains and a record.Row serves column chains.
type Context interface {
	Lookup(key string) (any, bool)
}

// Result is the outcome of one validator.
type Result struct {
	OK      bool
	Message string
}

// Pass is the successful Result.
func Pass() Result { return Result{OK: true} }

// Fail returns a failed Result carrying msg.
func Fail(msg string) Result { return Result{Message: msg} }

// Validator checks a single value.
type Validator func(value any, ctx Context) Result

// Chain is an ordered list of validators evaluated fail-fast.
type Chain []Validator

// Run evaluates validators in order and returns the first failure.
func (c Chain) Run(value any, ctx Context) Result {
	for _, v := range c {
		if res := v(value, ctx); !res.OK {
			return res
		}
	}
	return Pass()
}

// Issue locates one failure: a field key, "group[n].column" or a group name
// for table-level failures.
type Issue struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

type emptyContext struct{}

func (emptyContext) Lookup(string) (any, bool) { return nil, false }

// NoContext is a Context with no siblings.
var NoContext Context = emptyContext{}
