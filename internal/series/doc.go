// Package series defines the one-dimensional sample sequence shared by the
// generator, the smoother and the renderer.
//
// A [Series] is never mutated once produced. Transforms build and return a
// new Series.
package series
