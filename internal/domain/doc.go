// Package domain contains the core game entities of the application: categories,
// quiz rounds, round status, player sessions and the Vietnamese alphabet. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
