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

import (
    `github.com/oleiade/lane`
)

// dfs numbers every vertex reachable from root in preorder and records the
// spanning tree parent of each. The traversal keeps its own stack rather
// than recursing, so graph depth never translates into call stack depth.
func (self *_LtState) dfs(root int) {
    st := lane.NewStack()
    st.Push(root)

    /* scan until the stack is empty */
    for !st.Empty() {
        v := st.Pop().(int)

        /* a vertex may be pushed more than once before its first visit,
         * only the first pop counts */
        if self.dfn[v] != Unset {
            continue
        }

        /* assign the preorder number */
        self.dfn[v] = len(self.vertex)
        self.semi[v] = self.dfn[v]
        self.vertex = append(self.vertex, v)

        /* queue the unvisited successors, claiming v as their tree parent;
         * a later push overrides an earlier one, which matches whichever
         * occurrence gets popped first */
        for _, w := range self.succ[v] {
            if self.dfn[w] == Unset {
                self.parent[w] = v
                st.Push(w)
            }
        }
    }
}
