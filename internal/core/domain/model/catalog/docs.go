// Package catalog contains the read-only restaurant catalog as seen by ordering:
// categories, restaurants and their products. Restaurant-side tooling owns these
// records; the order service only reads them.
package catalog
