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

package main

import (
	"fmt"
	"io/fs"
	"os"
	gopath "path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/exp/maps"

	"github.com/nordzilla/flow-control/rewrite"
)

// numWorkers is the number of simultaneous workers expanding files.
const numWorkers = 16

type (
	// FileWriter writes a file given its content.
	FileWriter interface {
		Write(path string, content string) error
		Close() error
	}

	stdoutFileWriter struct{}

	osFileWriter struct{}
)

func (stdoutFileWriter) Write(path string, content string) error {
	fmt.Println(path + ":")
	fmt.Println(content)
	fmt.Println()
	return nil
}

func (stdoutFileWriter) Close() error {
	return nil
}

func (osFileWriter) Write(path string, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func (osFileWriter) Close() error {
	return nil
}

type asyncErrors struct {
	locker sync.Mutex
	errs   error
}

func (ae *asyncErrors) add(err error) {
	ae.locker.Lock()
	defer ae.locker.Unlock()

	ae.errs = multierr.Append(ae.errs, err)
}

func (ae *asyncErrors) errors() error {
	ae.locker.Lock()
	defer ae.locker.Unlock()

	errs := ae.errs
	ae.errs = nil
	return errs
}

// Walker walks across a file system to expand Go files.
type Walker struct {
	fw   FileWriter
	root string

	modRoot string
	modPath string

	wg       sync.WaitGroup
	errs     asyncErrors
	toWorker chan string

	locker  sync.Mutex
	results map[string]string
}

// NewWalker returns a new walker expanding every Go file under folder.
func NewWalker(fw FileWriter, folder string) *Walker {
	w := &Walker{
		fw:       fw,
		root:     filepath.Clean(folder),
		toWorker: make(chan string),
		results:  make(map[string]string),
	}
	w.modRoot, w.modPath = moduleInfo(w.root)
	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.expandWorker()
	}
	return w
}

// Run expands all the files then writes the results in path order, so the
// output is deterministic whatever order the workers finished in.
func (w *Walker) Run() error {
	walkErr := filepath.Walk(w.root, w.visit)
	close(w.toWorker)
	w.wg.Wait()
	if walkErr != nil {
		return walkErr
	}
	if err := w.errs.errors(); err != nil {
		return err
	}
	paths := maps.Keys(w.results)
	sort.Strings(paths)
	for _, path := range paths {
		if err := w.fw.Write(path, w.results[path]); err != nil {
			return err
		}
	}
	return w.fw.Close()
}

func skipDir(name string) bool {
	return name == "testdata" ||
		strings.HasPrefix(name, ".") ||
		strings.HasPrefix(name, "_")
}

type fileInfo interface {
	IsDir() bool
	Name() string
}

func isGoFile(fi fileInfo) bool {
	return !fi.IsDir() && strings.HasSuffix(fi.Name(), ".go")
}

func (w *Walker) visit(path string, info fs.FileInfo, err error) error {
	if err != nil {
		return err
	}
	if info.IsDir() {
		if path != w.root && skipDir(info.Name()) {
			return filepath.SkipDir
		}
		return nil
	}
	if !isGoFile(info) {
		return nil
	}
	w.toWorker <- path
	return nil
}

func (w *Walker) expandWorker() {
	defer w.wg.Done()
	for path := range w.toWorker {
		if err := w.expandFile(path); err != nil {
			w.errs.add(err)
		}
	}
}

func (w *Walker) expandFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, fixed, err := rewrite.Source(w.displayPath(path), data)
	if err != nil {
		return err
	}
	if !fixed || string(out) == string(data) {
		return nil
	}
	w.locker.Lock()
	defer w.locker.Unlock()
	w.results[path] = string(out)
	return nil
}

// displayPath names a file module-relative in diagnostics when the folder
// belongs to a Go module.
func (w *Walker) displayPath(path string) string {
	if w.modRoot == "" || w.modPath == "" {
		return path
	}
	rel, err := filepath.Rel(w.modRoot, path)
	if err != nil {
		return path
	}
	return gopath.Join(w.modPath, filepath.ToSlash(rel))
}
