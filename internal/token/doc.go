// Package token defines the token data model shared by the lexer and its
// consumers: the closed set of token categories, the Token value type, and
// the immutable keyword set of the hybrid C/Python language.
package token
