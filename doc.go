// Package textcalc evaluates arithmetic expressions by rewriting their text.
//
// Evaluation strips whitespace, replaces each sqrt(n) with its value, then
// repeatedly replaces the innermost bracketed chain like (9*2-5) with its
// value until no bracket can be reduced. What is left must be a number or an
// unbracketed chain like 2+3.
//
// Chains are not evaluated with the usual precedence. A chain is split in two
// at the first occurrence of the first operator it contains from the list
// + - / *, and each half is evaluated the same way. So 2-1*5 is 2-(1*5), but
// 8/2*2 is 8/(2*2) and 1-2-3 is 1-(2-3).
//
package textcalc
