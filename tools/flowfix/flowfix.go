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

// Command flowfix expands conditional-jump shorthands in a Go source tree.
//
// It walks a folder, expands every break_if, continue_if, and return_if
// invocation found in Go files, and writes the expanded files back in
// place. By default it runs dry and prints the expanded files on the
// standard output instead of writing them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

var (
	folder = flag.String("folder", "", "folder where the Go code to expand resides")
	dryRun = flag.Bool("dry_run", true, "output on the standard output if true")
)

func run(folder string, dryRun bool) error {
	if folder == "" {
		return errors.New("no folder specified: please use --folder to specify a target folder")
	}
	var fw FileWriter = osFileWriter{}
	if dryRun {
		fw = stdoutFileWriter{}
	}
	return NewWalker(fw, folder).Run()
}

func main() {
	flag.Parse()
	if err := run(*folder, *dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
