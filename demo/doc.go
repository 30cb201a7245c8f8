// Package demo contains the worked ownership-graph examples.
//
// Two relationships are demonstrated:
//
//   - A Container exclusively owns a sequence of Items. Items enter
//     the container by ownership transfer and are yielded by reference
//     during iteration, never copied out.
//
//   - A Publication owns its Annotations through shared handles, while
//     each Annotation holds only an observer reference back to its
//     Publication. An owning back-reference would form a cycle where
//     neither count could reach zero; the observer breaks it.
//
// The scenario functions write human-readable report lines and are
// composed into a fixed sequence by RunAll, which cmd/demo executes.
package demo
