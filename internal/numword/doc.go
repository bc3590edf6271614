// Package numword converts Russian number words into integers.
//
// Parsing runs in two passes. Tokenize classifies every word into a digit
// level and checks that neighbouring levels may follow each other.
// Accumulate then folds the tokens into a single value, multiplying the
// current segment at every тысяча/миллион. Parse puts both together and
// lets plain numeric literals ("42", "-3.5") through unchanged.
//
// The vocabulary is built once and never modified, so every function in
// this package is safe for concurrent use.
package numword
