// Package orchestrate evaluates the cross product of many alphabets and
// many keys against one ciphertext.
//
// For each alphabet in order, for each key in order, the key is validated
// against that alphabet and — when valid — the ciphertext is decrypted
// under the pair. Keys arrive as raw strings because a key that is valid
// under one alphabet may be invalid under another; validation is a
// per-pair concern, not an input precondition.
//
// Failure isolation: a pair whose key fails validation produces a result
// record with Success=false and the specific error, and the run continues.
// One bad pair never aborts the sweep; only cancellation and an exceeded
// precondition are run-level failures.
//
// Ordering: results are alphabet-major, key-minor — pair (i, j) occupies
// slot i·len(keys)+j — and the order is stable regardless of how trials
// are scheduled across workers (each result is written to its pre-assigned
// slot). "One alphabet, many keys" and "many alphabets, one key" are just
// the len(...)==1 cases of the general cross product.
//
// Cancellation mirrors package bruteforce: checked between pairs, partial
// results returned with Incomplete=true.
package orchestrate
