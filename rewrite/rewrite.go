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

// Package rewrite expands conditional-jump shorthands in whole Go files.
//
// The shorthand names break_if, continue_if, and return_if are reserved:
// any occurrence that is not a well-formed shorthand statement is an error,
// never silently left in place or expanded to something else.
package rewrite

import (
	"go/ast"
	"go/token"

	flowcontrol "github.com/nordzilla/flow-control"
	"github.com/nordzilla/flow-control/fmterr"
)

type rewriter struct {
	fset *token.FileSet
	errs fmterr.Errors
	app  *fmterr.Appender

	// seen records shorthand identifiers already handled at statement
	// position, so leftover detection does not report them twice.
	seen  map[*ast.Ident]bool
	fixed bool
}

// File expands every shorthand invocation in f, mutating it in place.
//
// It reports whether any expansion took place. On error the file may hold
// a mix of expanded and unexpanded statements and must be discarded: every
// malformed invocation in the file is reported, not just the first.
func File(fset *token.FileSet, f *ast.File) (fixed bool, err error) {
	rw := &rewriter{fset: fset, seen: map[*ast.Ident]bool{}}
	rw.app = rw.errs.NewAppender(fset)
	ast.Inspect(f, rw.expand)
	ast.Inspect(f, rw.checkLeftover)
	return rw.fixed, rw.errs.ToError()
}

// expand rewrites shorthand statements in every statement list. Walking
// the replacement statement visits the spliced predicate, so invocations
// nested in function literals are expanded as well.
func (rw *rewriter) expand(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.BlockStmt:
		rw.expandList(n.List)
	case *ast.CaseClause:
		rw.expandList(n.Body)
	case *ast.CommClause:
		rw.expandList(n.Body)
	}
	return true
}

func (rw *rewriter) expandList(list []ast.Stmt) {
	for i, stmt := range list {
		if repl := rw.expandStmt(stmt); repl != nil {
			list[i] = repl
		}
	}
}

func (rw *rewriter) expandStmt(stmt ast.Stmt) ast.Stmt {
	switch s := stmt.(type) {
	case *ast.LabeledStmt:
		if repl := rw.expandStmt(s.Stmt); repl != nil {
			s.Stmt = repl
		}
		return nil
	case *ast.ExprStmt:
		call, ok := s.X.(*ast.CallExpr)
		if !ok {
			return nil
		}
		inv, err := flowcontrol.FromCall(rw.fset, call)
		if inv == nil && err == nil {
			return nil
		}
		rw.seen[call.Fun.(*ast.Ident)] = true
		if err != nil {
			rw.errs.Append(err)
			return nil
		}
		rw.fixed = true
		return inv.Stmt()
	}
	return nil
}

// checkLeftover reports any shorthand name surviving the expansion pass.
// Such a name sits in a position where the guarded jump cannot be spliced,
// for example as a function argument or in a for-loop post statement.
func (rw *rewriter) checkLeftover(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.SelectorExpr:
		// A shorthand invocation is a bare identifier call. A selector
		// field may carry the same name; only its operand is checked.
		ast.Inspect(n.X, rw.checkLeftover)
		return false
	case *ast.Ident:
		if !flowcontrol.IsShorthand(n.Name) || rw.seen[n] {
			return true
		}
		rw.app.Appendf(n, "%s can only be used as a statement", n.Name)
	}
	return true
}
