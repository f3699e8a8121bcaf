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
    `errors`
    `fmt`
)

// Sentinels for errors.Is matching. Every error returned by this package
// unwraps to exactly one of these.
var (
    ErrInvalidVertex = errors.New("domtree: invalid vertex")
    ErrAlreadyBuilt  = errors.New("domtree: graph already built")
    ErrNotBuilt      = errors.New("domtree: dominator tree not built")
)

// InvalidVertexError occures when a vertex index outside [0, n) is passed
// to an edge insertion, a build, or a query.
type InvalidVertexError struct {
    Vertex    int
    NumVertex int
}

func (self InvalidVertexError) Error() string {
    return fmt.Sprintf("InvalidVertex(%d): out of range [0, %d)", self.Vertex, self.NumVertex)
}

func (self InvalidVertexError) Unwrap() error {
    return ErrInvalidVertex
}

// AlreadyBuiltError occures when a graph is mutated or rebuilt after its
// one Build call.
type AlreadyBuiltError struct {
    Op string
}

func (self AlreadyBuiltError) Error() string {
    return fmt.Sprintf("AlreadyBuilt: %s is not permitted once the graph is built", self.Op)
}

func (self AlreadyBuiltError) Unwrap() error {
    return ErrAlreadyBuilt
}

// NotBuiltError occures when dominance is queried before Build.
type NotBuiltError struct {
    Op string
}

func (self NotBuiltError) Error() string {
    return fmt.Sprintf("NotBuilt: %s requires a prior Build", self.Op)
}

func (self NotBuiltError) Unwrap() error {
    return ErrNotBuilt
}
