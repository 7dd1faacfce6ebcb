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

package rewrite

import (
	"go/format"
	"go/parser"
	"go/token"
	"strings"

	"github.com/pkg/errors"
)

// Source expands every shorthand invocation in src.
//
// filename is used for error positions only. When no invocation is found,
// src is returned unmodified and fixed is false. On error no output is
// produced at all.
func Source(filename string, src []byte) (out []byte, fixed bool, err error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, false, err
	}
	fixed, err = File(fset, f)
	if err != nil {
		return nil, false, err
	}
	if !fixed {
		return src, false, nil
	}
	expanded := strings.Builder{}
	if err := format.Node(&expanded, fset, f); err != nil {
		return nil, false, errors.Errorf("cannot write expanded code for %s: %v", filename, err)
	}
	return []byte(expanded.String()), true, nil
}
