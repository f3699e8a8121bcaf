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

package ltdom

// _LinkEval is the union-find forest of the semidominator pass. Unlike a
// general-purpose disjoint set it performs plain unbalanced links (the
// pass's strict processing order is what correctness rests on, not union
// by rank), and path compression must drag the minimal-semi label along
// the paths it shortens.
type _LinkEval struct {
    ancestor []int   // union-find parent, NOT the DFS tree parent
    label    []int   // vertex with minimal semi on the compressed path
    path     []int   // scratch space for iterative compression
}

func newLinkEval(n int) _LinkEval {
    p := _LinkEval {
        ancestor : make([]int, n),
        label    : make([]int, n),
    }

    /* every vertex starts as a singleton tree labelled by itself */
    for i := 0; i < n; i++ {
        p.ancestor[i] = Unset
        p.label[i] = i
    }
    return p
}

// link hangs w under p. The link is deliberately unbalanced, see the
// type comment.
func (self *_LinkEval) link(p int, w int) {
    self.ancestor[w] = p
}

// eval returns the vertex with minimal semi on the path from v up to
// (but excluding) the root of v's tree, compressing the path as it goes.
// A vertex not yet linked evaluates to itself.
func (self *_LinkEval) eval(v int, semi []int) int {
    if self.ancestor[v] == Unset {
        return v
    }
    self.compress(v, semi)
    return self.label[v]
}

func (self *_LinkEval) compress(v int, semi []int) {
    /* collect the path from v up to the child of the tree root */
    self.path = self.path[:0]
    for p := v; self.ancestor[self.ancestor[p]] != Unset; p = self.ancestor[p] {
        self.path = append(self.path, p)
    }

    /* fold top-down: each hop inherits its ancestor's label if that one
     * has a smaller semi, then shortcuts to the ancestor's ancestor */
    for i := len(self.path) - 1; i >= 0; i-- {
        p := self.path[i]
        a := self.ancestor[p]
        if semi[self.label[a]] < semi[self.label[p]] {
            self.label[p] = self.label[a]
        }
        self.ancestor[p] = self.ancestor[a]
    }
}
