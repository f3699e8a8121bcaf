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

package domtree

import (
    `fmt`

    `github.com/cloudwego/domtree/internal/ltdom`
)

// Graph is a directed graph over vertices 0 .. n-1, collected edge by edge
// and then frozen by a single Build call. Multi-edges are accepted and have
// no effect on dominance; self-loops are accepted and ignored by the
// algorithm.
//
// A Graph is not safe for concurrent use while it is still accepting edges
// or building. The DominatorTree a Build produces is.
type Graph struct {
    succ [][]int
    pred [][]int
    tree *DominatorTree
}

// NewGraph creates an empty graph with n vertices and no edges.
// It panics if n is negative.
func NewGraph(n int) *Graph {
    if n < 0 {
        panic(fmt.Sprintf("domtree: negative vertex count %d", n))
    }
    return &Graph {
        succ: make([][]int, n),
        pred: make([][]int, n),
    }
}

// NumVertex returns the number of vertices the graph was created with.
func (self *Graph) NumVertex() int {
    return len(self.succ)
}

// AddEdge inserts the directed edge u -> v. Inserting after Build fails
// with ErrAlreadyBuilt, out-of-range endpoints fail with ErrInvalidVertex,
// and a failed insertion leaves the graph untouched.
func (self *Graph) AddEdge(u int, v int) error {
    if self.tree != nil {
        return AlreadyBuiltError { Op: "AddEdge" }
    }
    if u < 0 || u >= len(self.succ) {
        return InvalidVertexError { Vertex: u, NumVertex: len(self.succ) }
    }
    if v < 0 || v >= len(self.succ) {
        return InvalidVertexError { Vertex: v, NumVertex: len(self.succ) }
    }
    self.succ[u] = append(self.succ[u], v)
    self.pred[v] = append(self.pred[v], u)
    return nil
}

// Build runs the Lengauer-Tarjan passes from root and freezes the graph.
// It either returns the finished dominator tree or fails without changing
// any observable state. Calling Build concurrently with itself or with
// AddEdge on the same graph is a precondition violation.
func (self *Graph) Build(root int) (*DominatorTree, error) {
    if self.tree != nil {
        return nil, AlreadyBuiltError { Op: "Build" }
    }
    if root < 0 || root >= len(self.succ) {
        return nil, InvalidVertexError { Vertex: root, NumVertex: len(self.succ) }
    }
    self.tree = newDominatorTree(root, ltdom.Build(self.succ, self.pred, root))
    return self.tree, nil
}

// Tree returns the dominator tree of a built graph, and fails with
// ErrNotBuilt before Build has run.
func (self *Graph) Tree() (*DominatorTree, error) {
    if self.tree == nil {
        return nil, NotBuiltError { Op: "Tree" }
    }
    return self.tree, nil
}
