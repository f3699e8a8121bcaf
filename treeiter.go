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
    `github.com/oleiade/lane`
)

// TreeIter walks the dominator tree depth-first in preorder, parents
// before the vertices they dominate. Unreachable vertices never appear.
type TreeIter struct {
    t *DominatorTree
    v int
    s *lane.Stack
}

// Preorder returns an iterator positioned before the root.
func (self *DominatorTree) Preorder() *TreeIter {
    s := lane.NewStack()
    s.Push(self.root)
    return &TreeIter { t: self, v: None, s: s }
}

func (self *TreeIter) Next() bool {
    /* scan until the stack is empty */
    if self.s.Empty() {
        self.v = None
        return false
    }

    /* pop the next vertex, then queue its children in reverse so the
     * first child is visited first */
    v := self.s.Pop().(int)
    cs := self.t.dom[v]
    for i := len(cs) - 1; i >= 0; i-- {
        self.s.Push(cs[i])
    }
    self.v = v
    return true
}

// Vertex returns the vertex the last Next call advanced to, or None when
// the walk is exhausted.
func (self *TreeIter) Vertex() int {
    return self.v
}

func (self *TreeIter) ForEach(action func(v int)) {
    for self.Next() {
        action(self.v)
    }
}
