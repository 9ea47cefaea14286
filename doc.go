/*
Package parsec builds parsers out of small composable functions.

A Parser[T] takes an Input and returns a Result[T], which either
accepts with a value and the input left after it, or rejects with an
*Error carrying a kind, a message and the location of the failure.
Inputs are immutable, so backtracking is just a matter of trying
another parser on the same Input value.

Grammars are assembled from the primitives (OneChar, Lit, LitString,
Range, Digit, Space, ...) and the combinators that compose them:

	Seq, Seq2, Seq3, Left, Right, NthOf   sequencing
	FirstOf, Optional                     ordered choice
	Many, Many1, Any, Any1, Iterate       repetition
	Foldl, Foldl1, Foldlp                 left folds
	EntireInput                           anchoring at the end of input

For example, a sum of integers with optional spaces around the plus
sign:

	plus := Token(Lit('+'))
	sum := Foldlp(Right(plus, Token(Int)), Token(Int), func(acc, v int) int {
		return acc + v
	})
	v, err := Build(sum)("1 + 2 + 3")

Repetitions require the repeated parser to consume input on each
success, and grammars must not be left recursive.  The semantic values
computed by the actions attached to a grammar can be anything,
including values of the monad package, which is how errors that
aren't syntactic (like a division by zero) flow out of a parse.
*/
package parsec
