// Package orchestrator sequences the three agents of one analysis.
//
// A single backend is resolved per analysis and shared by all agents. The
// Builder and Reviewer run concurrently on an errgroup.Group without a
// derived context, so one agent failing does not cancel its sibling's
// in-flight call. After both finish, the Explainer runs with the original
// code and the Builder's improved code.
package orchestrator
