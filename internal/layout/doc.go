// Package layout places content in 3D space.
//
// Two independent generators are provided:
//
//   - [Graph]: weighted, categorised items on a Fibonacci sphere with edges
//     between related categories
//   - [Carousel]: an ordered list of cards on one ring, or on a staggered
//     multi-ring spiral once the list outgrows a single ring
//
// Both regenerate their output wholesale and never mutate a previous result.
// Empty or single-item input yields an empty or singleton result rather than
// an error.
package layout
