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

// Package domtree builds dominator trees of directed graphs with the
// Lengauer-Tarjan algorithm. A vertex d dominates a vertex v when every
// path from the designated root to v passes through d; the tree of closest
// such vertices underlies control-flow analyses such as dead code
// elimination, loop detection and SSA construction, and any dependency
// system that needs must-happen-before answers over a cyclic graph.
//
// Construction is batch and one-shot: collect edges into a Graph, call
// Build once, query the resulting DominatorTree from as many goroutines
// as needed.
package domtree

// Build is a convenience one-shot: it creates a graph with n vertices,
// inserts every edge of edges, and builds the dominator tree from root.
func Build(n int, edges [][2]int, root int) (*DominatorTree, error) {
    g := NewGraph(n)
    for _, e := range edges {
        if err := g.AddEdge(e[0], e[1]); err != nil {
            return nil, err
        }
    }
    return g.Build(root)
}
