// Package environment propagates the deployment environment through
// request contexts and structured logs.
package environment
