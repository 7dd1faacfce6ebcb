// Copyright 2025 The flow-control Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package flowcontrol expands conditional-jump shorthands in Go source.
//
// Three shorthand forms are recognized, written as ordinary call statements:
//
//	break_if(predicate)
//	break_if(predicate, label)
//	continue_if(predicate)
//	continue_if(predicate, label)
//	return_if(predicate)
//	return_if(predicate, value)
//
// Each expands to the equivalent guarded jump:
//
//	if predicate { break }
//	if predicate { break label }
//	if predicate { continue }
//	if predicate { continue label }
//	if predicate { return }
//	if predicate { return value }
//
// Expansion is a purely syntactic source transformation that runs before
// the Go compiler. The predicate becomes the condition of the generated
// if statement, so it is evaluated exactly once each time control reaches
// the invocation site, in the caller's lexical context. No new identifier
// is introduced by an expansion.
//
// The expander does not type check: whether the predicate is a boolean,
// whether a label names an enclosing loop, or whether the jump is legal
// where it appears is reported by the Go compiler on the expanded output,
// exactly as for hand-written code.
package flowcontrol

import (
	"go/ast"
	"go/token"

	"github.com/nordzilla/flow-control/fmterr"
)

// Names of the shorthand forms as they appear in source.
const (
	BreakIfName    = "break_if"
	ContinueIfName = "continue_if"
	ReturnIfName   = "return_if"
)

// Kind is the jump produced by a shorthand invocation.
type Kind int

const (
	// Break terminates an enclosing loop.
	Break Kind = iota
	// Continue proceeds to the next iteration of an enclosing loop.
	Continue
	// Return exits the enclosing function.
	Return
)

// Name returns the shorthand name for the kind.
func (k Kind) Name() string {
	switch k {
	case Break:
		return BreakIfName
	case Continue:
		return ContinueIfName
	case Return:
		return ReturnIfName
	}
	return "<invalid>"
}

// String representation of the kind.
func (k Kind) String() string {
	return k.Name()
}

// IsShorthand reports if name is one of the shorthand names.
func IsShorthand(name string) bool {
	return name == BreakIfName || name == ContinueIfName || name == ReturnIfName
}

// Invocation is a single shorthand call site.
//
// Predicate is always set. Extra is nil for the one-argument forms, the
// loop label identifier for break_if and continue_if, or the return value
// expression for return_if. Both are the expressions parsed at the call
// site, spliced unmodified into the expansion.
type Invocation struct {
	// Kind of jump the invocation expands to.
	Kind Kind
	// Call is the source call expression.
	Call *ast.CallExpr
	// Predicate guards the jump.
	Predicate ast.Expr
	// Extra is the optional second argument.
	Extra ast.Expr
}

func kindOf(fun ast.Expr) (Kind, bool) {
	ident, ok := fun.(*ast.Ident)
	if !ok {
		return 0, false
	}
	switch ident.Name {
	case BreakIfName:
		return Break, true
	case ContinueIfName:
		return Continue, true
	case ReturnIfName:
		return Return, true
	}
	return 0, false
}

// FromCall matches a call expression against the shorthand forms.
//
// A call to anything other than the three shorthand names returns
// (nil, nil). A shorthand call with an unsupported shape returns an error
// carrying the call position: zero arguments, three or more arguments, a
// variadic ellipsis, or a second break_if/continue_if argument that is not
// a plain identifier. An unsupported shape is never expanded to anything.
func FromCall(fset *token.FileSet, call *ast.CallExpr) (*Invocation, error) {
	kind, ok := kindOf(call.Fun)
	if !ok {
		return nil, nil
	}
	if call.Ellipsis.IsValid() {
		return nil, fmterr.Errorf(fset, call, "%s does not accept a variadic argument", kind.Name())
	}
	switch len(call.Args) {
	case 1:
		return &Invocation{Kind: kind, Call: call, Predicate: call.Args[0]}, nil
	case 2:
		extra := call.Args[1]
		if kind != Return {
			if _, ok := extra.(*ast.Ident); !ok {
				return nil, fmterr.Errorf(fset, extra, "second argument to %s must be a loop label", kind.Name())
			}
		}
		return &Invocation{Kind: kind, Call: call, Predicate: call.Args[0], Extra: extra}, nil
	}
	return nil, fmterr.Errorf(fset, call, "%s takes one or two arguments, got %d", kind.Name(), len(call.Args))
}
