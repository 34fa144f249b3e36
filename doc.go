// Package sparseblas is a GraphBLAS-style masked sparse matrix engine: a
// CSC/hypersparse matrix store (package sparsemat) with lazy zombies and
// pending tuples, a catalog of semirings (package semiring) realized via
// generic monomorphization (package dispatch) rather than literal
// generated kernels, three multiply kernels (package kernel: Gustavson,
// dot-product, heap-merge), a mask & accumulator layer (package mask), a
// shape/sparsity-driven planner (package planner), and a column-parallel
// concurrency harness (package gbctx).
//
// The root package ties these together behind the Mxm* entry points,
// mirroring the mxm_gustavson/mxm_dot/mxm_heap call shape of GraphBLAS
// engines while using Go idioms throughout: explicit error returns, a
// context-free but cancellation-friendly concurrency harness, and
// compile-time generics in place of a generated-kernel table.
package sparseblas
