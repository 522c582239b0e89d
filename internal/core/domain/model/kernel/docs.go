// Package kernel holds value objects shared by the catalog and order models.
//
// Money is the only one so far: every price, fee and total in the service is an
// integer amount of minor currency units, so sums reconcile exactly.
package kernel
