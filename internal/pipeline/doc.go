// Package pipeline wires the generator, the smoother and the renderer into a
// single synchronous run.
//
//	walk.Generate -> smoothing.Exponential(alpha = 2/(N+1)) -> chart.RenderFile
//
// Each stage returns a new series; nothing is shared or mutated between
// stages. The first error from any stage ends the run and is returned to the
// caller unchanged or wrapped with the stage name.
//
// # Example
//
//	p := pipeline.New(pipeline.DefaultConfig())
//	res, err := p.Run()
package pipeline
