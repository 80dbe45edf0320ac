// Package memory provides in-process implementations of the storage
// interfaces defined in the internal/store package. Data lives for the
// lifetime of the process only.
package memory
