// Package model holds the input and output records of the shipping order
// pipeline: the caller-supplied order description, the requests sent to the
// remote collaborators, and the records those collaborators return.
//
// The package is deliberately dependency-free so that collaborator
// implementations can import it without pulling in the pipeline itself.
package model
