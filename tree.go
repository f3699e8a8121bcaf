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
    `github.com/cloudwego/domtree/internal/ltdom`
)

// None is the value Idoms uses for a vertex unreachable from the root. It
// is a distinct sentinel on purpose: vertex 0 is a perfectly valid vertex
// and must never double as "no dominator".
const None = ltdom.Unset

// DominatorTree is the published result of a Build: the immediate
// dominator of every reachable vertex and the tree those edges form. It is
// immutable, and safe for unsynchronized concurrent reads.
//
// Query methods panic on vertex indices outside [0, n); an out-of-range
// index is a caller bug, not a graph property, so it is never clamped or
// folded into a false answer.
type DominatorTree struct {
    root int
    idom []int
    dom  [][]int
}

func newDominatorTree(root int, idom []int) *DominatorTree {
    t := &DominatorTree {
        root : root,
        idom : idom,
        dom  : make([][]int, len(idom)),
    }

    /* invert the idom edges into children lists */
    for v, d := range idom {
        if d != None && v != root {
            t.dom[d] = append(t.dom[d], v)
        }
    }
    return t
}

func (self *DominatorTree) checkVertex(v int) {
    if v < 0 || v >= len(self.idom) {
        panic(InvalidVertexError { Vertex: v, NumVertex: len(self.idom) }.Error())
    }
}

// Root returns the vertex the tree was built from.
func (self *DominatorTree) Root() int {
    return self.root
}

// NumVertex returns the number of vertices of the underlying graph.
func (self *DominatorTree) NumVertex() int {
    return len(self.idom)
}

// Idom returns the immediate dominator of v. The second result is false
// when v is unreachable from the root. Idom(root) is root itself.
func (self *DominatorTree) Idom(v int) (int, bool) {
    self.checkVertex(v)
    if d := self.idom[v]; d != None {
        return d, true
    }
    return None, false
}

// Idoms returns a copy of the immediate dominator array, indexed by
// vertex, with None for every unreachable vertex.
func (self *DominatorTree) Idoms() []int {
    r := make([]int, len(self.idom))
    copy(r, self.idom)
    return r
}

// Reachable reports whether the root-rooted traversal reached v.
func (self *DominatorTree) Reachable(v int) bool {
    self.checkVertex(v)
    return self.idom[v] != None
}

// Dominates reports whether every path from the root to v passes through
// u. It holds reflexively for every reachable v, and never holds when v is
// unreachable, the root included.
func (self *DominatorTree) Dominates(u int, v int) bool {
    self.checkVertex(u)
    self.checkVertex(v)

    /* nothing dominates a vertex no path reaches */
    if self.idom[v] == None {
        return false
    }

    /* walk the dominator chain from v up to the root */
    for p := v; ; p = self.idom[p] {
        if p == u {
            return true
        } else if p == self.root {
            return false
        }
    }
}

// DominatorOf returns the vertices v immediately dominates, its children
// in the dominator tree. The returned slice is shared, treat it as
// read-only.
func (self *DominatorTree) DominatorOf(v int) []int {
    self.checkVertex(v)
    return self.dom[v]
}
