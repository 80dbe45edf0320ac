// Package service contains the application use cases: running picture-guessing
// game sessions and pronouncing alphabet letters.
//
// Services receive their dependencies through constructor injection (the
// session store, the round generator port and the speech capability) and never
// depend on concrete infrastructure. Errors are translated into the sentinels
// declared in errors.go so the API layer can map them to status codes.
package service
