// Package driving defines interfaces that external actors (CLI) use
// to interact with the dataset pipeline. These are the "driving" ports
// in hexagonal architecture terminology - they drive the application.
//
// The catalog-backed implementation lives in internal/catalog.
package driving
