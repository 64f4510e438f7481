/*
Package verifier implements Verifier contract, a stateless utility checking
detached secp256r1 signatures over arbitrary messages.

The contract has no storage and produces no notifications.
*/
package verifier
