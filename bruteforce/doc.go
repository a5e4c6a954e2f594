// Package bruteforce enumerates every key of a fixed length over an
// alphabet and decrypts one ciphertext under each candidate.
//
// Key-space model:
//
//	Candidate i is the base-N digit expansion of i (N = alphabet size),
//	most-significant digit first, mapped through the alphabet. Enumeration
//	is therefore lexicographic over alphabet-index tuples — counting in
//	base N — which makes results deterministic and reproducible across
//	runs and machines. The Keyspace type exposes this index→key mapping
//	directly: it is restartable, finite, and indexable, so candidates are
//	materialized one at a time (memory stays O(text) per in-flight trial)
//	and index ranges partition trivially across workers.
//
// Policy:
//
//	Run refuses search spaces whose candidate count exceeds the configured
//	ceiling (WithMaxCandidates, default DefaultMaxCandidates) with
//	ErrSpaceExceeded — before any work starts.
//
// Scheduling:
//
//	Trials are independent; WithWorkers(n) spreads them over a pool by
//	striding the index range. Each result is written to its pre-assigned
//	slot, so the emitted order always matches enumeration order no matter
//	how the scheduler interleaves completion. Cancellation is checked
//	between trials; on cancellation the partial set is returned, marked
//	Incomplete, together with the context's error.
//
// A trial's Success flag reflects only that the transform executed without
// a validation error. No linguistic or statistical plausibility scoring
// happens here; ranking candidate plaintexts is the caller's concern.
package bruteforce
