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
	"strings"

	"github.com/cloudwego/domtree"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Build the dominator tree and print it",
	RunE:  runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	spec, err := loadTree(cmd)
	if err != nil {
		return err
	}
	tree, err := buildSpec(spec)
	if err != nil {
		return err
	}
	printTree(cmd.OutOrStdout(), tree)
	return nil
}

func buildSpec(spec *graphSpec) (*domtree.DominatorTree, error) {
	g := domtree.NewGraph(spec.Vertices)
	for _, e := range spec.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g.Build(spec.Root)
}

func printTree(w io.Writer, tree *domtree.DominatorTree) {
	depth := make([]int, tree.NumVertex())
	tree.Preorder().ForEach(func(v int) {
		if v != tree.Root() {
			d, _ := tree.Idom(v)
			depth[v] = depth[d] + 1
		}
		fmt.Fprintf(w, "%s%d\n", strings.Repeat("  ", depth[v]), v)
	})

	var dead []string
	for v := 0; v < tree.NumVertex(); v++ {
		if !tree.Reachable(v) {
			dead = append(dead, fmt.Sprint(v))
		}
	}
	if len(dead) != 0 {
		fmt.Fprintf(w, "unreachable: %s\n", strings.Join(dead, ", "))
	}
}
