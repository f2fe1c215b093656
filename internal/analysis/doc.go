// Package analysis defines the data model shared by the agents, the
// orchestrator and the request boundary.
//
// A [Request] carries a code snippet and its [Language]. The three agent
// results ([BuilderResult], [ReviewerResult], [ExplainerResult]) are merged
// into one [Result]. Sequences in results are never nil so they serialize as
// empty JSON arrays.
package analysis
