// Package services contains stateless domain services that operate on more than
// one model: pricing a cart against the catalog and validating an order
// submission before anything is written.
package services
