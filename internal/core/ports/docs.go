// Package ports defines the contracts between the order core and its adapters:
// transactional repositories, the read model behind order listings, catalog
// readers and the event publisher.
package ports
