/*
 * Copyright 2023 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// graphSpec is a parsed graph description: vertex count, root, and the
// edge list in file order.
type graphSpec struct {
	Vertices int     `toml:"vertices"`
	Root     int     `toml:"root"`
	Edges    [][]int `toml:"edges"`
}

// readGraph parses path as TOML when it has a .toml extension, and as a
// plain edge list otherwise.
//
// The plain format is line oriented: the first data line is
// "<vertices> <root>", every following line one "<u> <v>" edge. Blank
// lines and lines starting with '#' are skipped.
func readGraph(path string) (*graphSpec, error) {
	if filepath.Ext(path) == ".toml" {
		return readTOML(path)
	}
	return readEdgeList(path)
}

func readTOML(path string) (*graphSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec graphSpec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return validate(path, &spec)
}

func readEdgeList(path string) (*graphSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var spec graphSpec
	header := false
	ln := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: want two fields, got %q", path, ln, line)
		}
		a, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, ln, err)
		}
		b, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, ln, err)
		}
		if !header {
			spec.Vertices, spec.Root = a, b
			header = true
			continue
		}
		spec.Edges = append(spec.Edges, []int{a, b})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !header {
		return nil, fmt.Errorf("%s: missing \"<vertices> <root>\" header line", path)
	}
	return validate(path, &spec)
}

func validate(path string, spec *graphSpec) (*graphSpec, error) {
	if spec.Vertices <= 0 {
		return nil, fmt.Errorf("%s: vertex count must be positive, got %d", path, spec.Vertices)
	}
	for i, e := range spec.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%s: edge %d: want [u, v], got %v", path, i, e)
		}
	}
	return spec, nil
}
