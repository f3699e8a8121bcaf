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
    `math`
    `testing`

    `github.com/brianvoe/gofakeit/v6`
    `github.com/bytedance/gopkg/lang/fastrand`
    `github.com/davecgh/go-spew/spew`
    `github.com/oleiade/lane`
    `github.com/stretchr/testify/require`
)

type _RandGraph struct {
    n     int
    root  int
    edges [][2]int
}

// randgraph draws a graph with up to maxn vertices. Multi-edges and
// self-loops are drawn on purpose, both must be inert.
func randgraph(f *gofakeit.Faker, maxn int) _RandGraph {
    n := f.Number(1, maxn)
    m := f.Number(0, 3 * n)
    g := _RandGraph { n: n, root: f.Number(0, n - 1) }
    for i := 0; i < m; i++ {
        g.edges = append(g.edges, [2]int {
            f.Number(0, n - 1),
            f.Number(0, n - 1),
        })
    }
    return g
}

// deeprandgraph draws a graph with a spanning chain plus random forward
// and backward shortcuts; the chain forces deep spanning paths, which is
// what flushes out label propagation mistakes that shallow graphs never
// notice.
func deeprandgraph(f *gofakeit.Faker, maxn int) _RandGraph {
    n := f.Number(maxn / 2, maxn)
    g := _RandGraph { n: n, root: 0 }
    for i := 1; i < n; i++ {
        g.edges = append(g.edges, [2]int { i - 1, i })
    }
    for i := 0; i < 2 * n; i++ {
        g.edges = append(g.edges, [2]int {
            f.Number(0, n - 1),
            f.Number(0, n - 1),
        })
    }
    return g
}

func succof(g _RandGraph) [][]int {
    succ := make([][]int, g.n)
    for _, e := range g.edges {
        succ[e[0]] = append(succ[e[0]], e[1])
    }
    return succ
}

// reachset runs a BFS from root over succ, treating skip as deleted.
// Passing skip == root deletes the root itself, nothing is reachable.
func reachset(succ [][]int, root int, skip int) []bool {
    seen := make([]bool, len(succ))
    if root == skip {
        return seen
    }
    q := lane.NewQueue()
    q.Enqueue(root)
    seen[root] = true
    for !q.Empty() {
        v := q.Dequeue().(int)
        for _, w := range succ[v] {
            if w != skip && !seen[w] {
                seen[w] = true
                q.Enqueue(w)
            }
        }
    }
    return seen
}

// oracleidoms derives every immediate dominator from first principles: d
// strictly dominates v exactly when deleting d cuts v off from the root,
// and the immediate dominator is the strict dominator that all the others
// dominate in turn.
func oracleidoms(g _RandGraph) []int {
    succ := succof(g)
    base := reachset(succ, g.root, -1)

    /* strict dominator sets of every reachable vertex */
    sdoms := make([][]int, g.n)
    for v := 0; v < g.n; v++ {
        if !base[v] || v == g.root {
            continue
        }
        for d := 0; d < g.n; d++ {
            if d != v && base[d] && !reachset(succ, g.root, d)[v] {
                sdoms[v] = append(sdoms[v], d)
            }
        }
    }

    /* dominators of a vertex form a chain, so the immediate one is the
     * strict dominator with the most strict dominators of its own */
    idom := make([]int, g.n)
    for v := 0; v < g.n; v++ {
        idom[v] = None
        if !base[v] {
            continue
        }
        if v == g.root {
            idom[v] = v
            continue
        }
        best := -1
        for _, d := range sdoms[v] {
            if best == -1 || len(sdoms[d]) > len(sdoms[best]) {
                best = d
            }
        }
        idom[v] = best
    }
    return idom
}

func TestProperty_OracleSmall(t *testing.T) {
    f := gofakeit.New(20230501)
    for i := 0; i < 500; i++ {
        g := randgraph(f, 12)
        tree := mustBuild(t, g.n, g.edges, g.root)
        require.Equal(t, oracleidoms(g), tree.Idoms(),
            "case %d: n = %d root = %d\nedges:\n%s", i, g.n, g.root, spew.Sdump(g.edges))
    }
}

func TestProperty_OracleDeep(t *testing.T) {
    f := gofakeit.New(20230502)
    for i := 0; i < 60; i++ {
        g := deeprandgraph(f, 48)
        tree := mustBuild(t, g.n, g.edges, g.root)
        require.Equal(t, oracleidoms(g), tree.Idoms(),
            "case %d: n = %d\nedges:\n%s", i, g.n, spew.Sdump(g.edges))
    }
}

func TestProperty_InsertionOrderInvariance(t *testing.T) {
    f := gofakeit.New(20230503)
    for i := 0; i < 100; i++ {
        g := randgraph(f, 12)
        want := mustBuild(t, g.n, g.edges, g.root).Idoms()

        /* the same edge set in any insertion order publishes the same
         * answers, even though the intermediate DFS numbers differ */
        for j := 0; j < 5; j++ {
            fastrand.Shuffle(len(g.edges), func(a int, b int) {
                g.edges[a], g.edges[b] = g.edges[b], g.edges[a]
            })
            require.Equal(t, want, mustBuild(t, g.n, g.edges, g.root).Idoms(),
                "case %d shuffle %d:\n%s", i, j, spew.Sdump(g.edges))
        }
    }
}

func TestProperty_DominatesAlgebra(t *testing.T) {
    f := gofakeit.New(20230504)
    for i := 0; i < 50; i++ {
        g := randgraph(f, 10)
        tree := mustBuild(t, g.n, g.edges, g.root)
        reach := reachset(succof(g), g.root, -1)

        for v := 0; v < g.n; v++ {
            /* reflexivity for reachable, nothing for unreachable */
            require.Equal(t, reach[v], tree.Dominates(v, v))
            require.Equal(t, reach[v], tree.Dominates(g.root, v))
            require.Equal(t, reach[v], tree.Reachable(v))
        }

        /* transitivity, checked exhaustively */
        for a := 0; a < g.n; a++ {
            for b := 0; b < g.n; b++ {
                if !tree.Dominates(a, b) {
                    continue
                }
                for c := 0; c < g.n; c++ {
                    if tree.Dominates(b, c) {
                        require.True(t, tree.Dominates(a, c), "a = %d b = %d c = %d", a, b, c)
                    }
                }
            }
        }
    }
}

func TestProperty_IdomDominatesStrictly(t *testing.T) {
    f := gofakeit.New(20230505)
    for i := 0; i < 100; i++ {
        g := randgraph(f, 12)
        tree := mustBuild(t, g.n, g.edges, g.root)
        for v := 0; v < g.n; v++ {
            d, ok := tree.Idom(v)
            if !ok || v == g.root {
                continue
            }
            require.NotEqual(t, v, d)
            require.True(t, tree.Dominates(d, v))
        }
    }
}

// _ReachMatrix is an independent cross-check for the reachability answers
// baked into the tree: an all-pairs distance matrix closed with
// Floyd-Warshall.
type _ReachMatrix struct {
    dist [][]uint64
}

func matrixof(g _RandGraph) _ReachMatrix {
    m := _ReachMatrix { dist: make([][]uint64, g.n) }

    /* initialize each row */
    for i := range m.dist {
        m.dist[i] = make([]uint64, g.n)
        for j := range m.dist[i] {
            m.dist[i][j] = math.MaxInt64
        }
        m.dist[i][i] = 0
    }

    /* add each edge */
    for _, e := range g.edges {
        if e[0] != e[1] {
            m.dist[e[0]][e[1]] = 1
        }
    }

    /* Floyd-Warshall algorithm */
    for k := 0; k < g.n; k++ {
        for i := 0; i < g.n; i++ {
            for j := 0; j < g.n; j++ {
                if d := m.dist[i][k] + m.dist[k][j]; d < m.dist[i][j] {
                    m.dist[i][j] = d
                }
            }
        }
    }
    return m
}

func TestProperty_ReachabilityMatrix(t *testing.T) {
    f := gofakeit.New(20230506)
    for i := 0; i < 100; i++ {
        g := randgraph(f, 12)
        tree := mustBuild(t, g.n, g.edges, g.root)
        m := matrixof(g)
        for v := 0; v < g.n; v++ {
            require.Equal(t, m.dist[g.root][v] < math.MaxInt64, tree.Reachable(v),
                "case %d: v = %d", i, v)
        }
    }
}
