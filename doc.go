// Package imgkit decides, per incoming request, what transformation
// parameters a hosted image-transformation engine should use, based on the
// requesting client's detected capabilities.
//
// The heavy lifting lives in the capability subpackage: a multi-strategy
// detector that infers format support, network quality, and device class
// from request headers and converts the result into a performance budget.
// This package is the thin facade in front of it: it merges that budget into
// the caller's base transform options, filling only the fields the caller
// left open.
//
//	engine := capability.NewEngine(capability.DefaultConfig())
//	optimizer := imgkit.NewOptimizer(engine)
//
//	opts, caps := optimizer.OptimizedOptions(r, imgkit.TransformOptions{
//		Width:  800,               // explicit: never overridden
//		Format: imgkit.FormatAuto, // open: filled from detection
//	})
//	_ = caps.DetectionTimeMs // observability side channel
//
// The enriched options go to the external transform-option builder; origin
// fetching, request signing, and the engine invocation itself are out of
// this module's scope.
package imgkit
