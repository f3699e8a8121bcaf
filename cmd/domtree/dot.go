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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cloudwego/domtree"
	"github.com/spf13/cobra"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Render the graph and its dominator edges as graphviz",
	RunE:  runDot,
}

func init() {
	dotCmd.Flags().StringP("output", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(dotCmd)
}

func runDot(cmd *cobra.Command, args []string) error {
	spec, err := loadTree(cmd)
	if err != nil {
		return err
	}
	tree, err := buildSpec(spec)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if fn, _ := cmd.Flags().GetString("output"); fn != "-" {
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	writeDot(out, spec, tree)
	return nil
}

// writeDot emits the graph with its edges solid and the dominator tree
// overlaid dashed. Unreachable vertices are greyed out, multi-edges
// collapse to one line.
func writeDot(w io.Writer, spec *graphSpec, tree *domtree.DominatorTree) {
	buf := []string{
		"digraph G {",
		`    graph [ fontname = "Fira Code" ]`,
		`    node [ fontname = "Fira Code" shape = "circle" ]`,
		`    edge [ fontname = "Fira Code" ]`,
		fmt.Sprintf(`    v_%d [ penwidth = 2 ]`, tree.Root()),
	}
	for v := 0; v < spec.Vertices; v++ {
		if !tree.Reachable(v) {
			buf = append(buf, fmt.Sprintf(`    v_%d [ color = "grey" fontcolor = "grey" ]`, v))
		}
	}
	seen := make(map[[2]int]bool)
	for _, e := range spec.Edges {
		k := [2]int{e[0], e[1]}
		if !seen[k] {
			seen[k] = true
			buf = append(buf, fmt.Sprintf(`    v_%d -> v_%d`, e[0], e[1]))
		}
	}
	for v := 0; v < spec.Vertices; v++ {
		if d, ok := tree.Idom(v); ok && v != tree.Root() {
			buf = append(buf, fmt.Sprintf(`    v_%d -> v_%d [ style = "dashed" color = "red" constraint = false ]`, d, v))
		}
	}
	buf = append(buf, "}")
	fmt.Fprintln(w, strings.Join(buf, "\n"))
}
