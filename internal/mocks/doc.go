// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, the services and
// HTTP handlers share these implementations. Each mock exposes function fields
// for custom behavior, default return values, and call tracking.
//
// Usage:
//
//	gen := mocks.NewMockGeneratorWithDefaultRound()
//	svc, err := service.NewGameService(store, gen, nil, logger)
//	// ...
//	assert.Equal(t, 1, gen.CallCount())
package mocks
