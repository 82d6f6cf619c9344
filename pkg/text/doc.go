// Package text turns a raw document into the token stream the layout engine
// consumes and keeps the per-word frequency bookkeeping.
//
// # Tokens and Keys
//
// [Tokenize] splits a document into whitespace-delimited tokens in reading
// order. [Normalize] maps a token to its WordKey: lowercased, with every
// character outside [0-9a-z] removed. Tokens sharing a key are the same word
// for counting, coloring and highlighting. A token made only of punctuation
// normalizes to the empty key, which is counted like any other key:
//
//	text.Normalize("Well,")  // "well"
//	text.Normalize("?!")     // ""
//
// # Frequencies
//
// A [FrequencyTracker] observes keys in stream order and reports the
// occurrence rank of each observation. After a full pass,
// [FrequencyTracker.CompletionIndex] identifies the token that introduced the
// last new key, which is where the running distinct count first reaches its
// final value.
package text
