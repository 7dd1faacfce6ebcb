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

package flowcontrol

import (
	"go/ast"
	"go/token"
)

// Stmt expands the invocation into its guarded jump statement.
//
// The predicate and the optional extra argument are spliced verbatim. All
// synthetic tokens are positioned at the call site so the statement prints
// where the shorthand was written.
func (inv *Invocation) Stmt() ast.Stmt {
	pos := inv.Call.Pos()
	return &ast.IfStmt{
		If:   pos,
		Cond: inv.Predicate,
		Body: &ast.BlockStmt{
			Lbrace: pos,
			List:   []ast.Stmt{inv.jump()},
			Rbrace: pos,
		},
	}
}

func (inv *Invocation) jump() ast.Stmt {
	pos := inv.Call.Pos()
	if inv.Kind == Return {
		ret := &ast.ReturnStmt{Return: pos}
		if inv.Extra != nil {
			ret.Results = []ast.Expr{inv.Extra}
		}
		return ret
	}
	tok := token.BREAK
	if inv.Kind == Continue {
		tok = token.CONTINUE
	}
	branch := &ast.BranchStmt{TokPos: pos, Tok: tok}
	if inv.Extra != nil {
		// FromCall only accepts an identifier here.
		branch.Label = inv.Extra.(*ast.Ident)
	}
	return branch
}
