// Package algebra implements the relational operators: select, project,
// rename, cross product, theta join, natural join, union, difference and
// intersection. Every operator is a pure function from input tables to a
// freshly allocated, deduplicated output table; inputs are never mutated.
package algebra

import (
	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// Predicate tests whether a single row matches certain criteria.
// Predicates are caller-owned logic and are assumed pure; a panicking
// predicate propagates to the caller unchanged.
type Predicate func(relation.Row) bool

// JoinCondition tests a pair of rows, one from the left table and one
// from the right, before any column prefixing is applied.
type JoinCondition func(left, right relation.Row) bool
