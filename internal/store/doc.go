// Package store defines interfaces for game state storage.
// These interfaces keep the services independent of where sessions live;
// the only implementation is the in-process store in platform/memory.
package store
