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

/** This is an implementation of the Lengauer-Tarjan algorithm described in
 *  https://doi.org/10.1145%2F357062.357071
 */

package ltdom

// Unset marks a vertex that was never assigned a value, such as a vertex
// the depth-first traversal never reached.
const Unset = -1

type _LtState struct {
    succ   [][]int
    pred   [][]int
    dfn    []int       // vertex -> preorder number
    vertex []int       // preorder number -> vertex
    parent []int       // vertex -> DFS spanning tree parent
    semi   []int       // vertex -> semidominator, as a preorder number
    idom   []int       // vertex -> immediate dominator
    forest _LinkEval   // transient link-eval forest
    bucket [][]int     // vertex -> vertices it semidominates
}

func newLtState(succ [][]int, pred [][]int) *_LtState {
    n := len(succ)
    p := &_LtState {
        succ   : succ,
        pred   : pred,
        dfn    : make([]int, n),
        vertex : make([]int, 0, n),
        parent : make([]int, n),
        semi   : make([]int, n),
        idom   : make([]int, n),
        forest : newLinkEval(n),
        bucket : make([][]int, n),
    }

    /* every per-vertex slot starts unset */
    for i := 0; i < n; i++ {
        p.dfn[i] = Unset
        p.parent[i] = Unset
        p.semi[i] = Unset
        p.idom[i] = Unset
    }

    /* all done */
    return p
}

// Build computes the immediate dominator of every vertex reachable from
// root, over the graph given as parallel forward and reverse adjacency
// lists. The result is indexed by vertex: idom[root] == root, and every
// vertex the traversal never reaches holds Unset.
func Build(succ [][]int, pred [][]int, root int) []int {
    lt := newLtState(succ, pred)

    /* Step 1: Carry out a depth-first search of the problem graph. Number the vertices
     * from 1 to n as they are reached during the search. Initialize the variables used
     * in succeeding steps. */
    lt.dfs(root)

    /* perform Step 2 and Step 3 simultaneously */
    for i := len(lt.vertex) - 1; i > 0; i-- {
        w := lt.vertex[i]
        p := lt.parent[w]

        /* Step 2: Compute the semidominators of all vertices by applying Theorem 4.
         * Carry out the computation vertex by vertex in decreasing order by number. */
        for _, v := range lt.pred[w] {
            if lt.dfn[v] != Unset {
                if u := lt.forest.eval(v, lt.semi); lt.semi[u] < lt.semi[w] {
                    lt.semi[w] = lt.semi[u]
                }
            }
        }

        /* defer w to its semidominator's bucket, then link it under its parent */
        sv := lt.vertex[lt.semi[w]]
        lt.bucket[sv] = append(lt.bucket[sv], w)
        lt.forest.link(p, w)

        /* Step 3: Implicitly define the immediate dominator of each vertex by applying Corollary 1 */
        for _, u := range lt.bucket[p] {
            if y := lt.forest.eval(u, lt.semi); lt.semi[y] < lt.semi[u] {
                lt.idom[u] = y
            } else {
                lt.idom[u] = p
            }
        }

        /* clear the bucket */
        lt.bucket[p] = lt.bucket[p][:0]
    }

    /* Step 4: Explicitly define the immediate dominator of each vertex, carrying out the
     * computation vertex by vertex in increasing order by number. */
    for i := 1; i < len(lt.vertex); i++ {
        w := lt.vertex[i]
        if lt.idom[w] != lt.vertex[lt.semi[w]] {
            lt.idom[w] = lt.idom[lt.idom[w]]
        }
    }

    /* the root is its own dominator by convention */
    lt.idom[root] = root
    return lt.idom
}
