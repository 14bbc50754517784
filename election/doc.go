// Package election defines the domain model produced by parsing an
// election-results export: document metadata, the table of contents, the
// per-region registration table, and one result table per contest.
//
// The whole model is built in a single pass by the scytl package and is not
// mutated afterwards.
package election
