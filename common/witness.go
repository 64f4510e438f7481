package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrOwnerWitnessFailed appears when the method must be
	// called by the contract owner but was not.
	ErrOwnerWitnessFailed = "permission denied: owner witness check failed"
	// ErrClientWitnessFailed appears when the method must be called
	// by the client account it operates on but was not.
	ErrClientWitnessFailed = "permission denied: client witness check failed"
)

// CheckOwnerWitness checks witness of the passed owner.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(owner []byte) {
	checkWitnessWithPanic(owner, ErrOwnerWitnessFailed)
}

// CheckClientWitness checks witness of the passed client.
// It panics with ErrClientWitnessFailed message on fail.
func CheckClientWitness(client []byte) {
	checkWitnessWithPanic(client, ErrClientWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
