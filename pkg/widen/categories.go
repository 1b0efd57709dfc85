// Package widen computes the types produced by widening operations for the
// Tarn static type checker.
//
// To determine the resulting type of an expression such as a = exp1 + exp2
// the checker tests IsIntCategory, IsLongCategory, IsBigIntCategory,
// IsDoubleCategory and IsBigDecCategory in that order; the first category
// covering both operands defines the result type. For x = 1 + 2L the int
// category rejects the long operand, and the long category accepts both,
// so the expression is a long.
//
// When no category (or no single nominal type) covers both operands the
// package falls back to the lowest upper bound computation, possibly
// synthesizing a VirtualType.
package widen

import "github.com/tarn-lang/tarn/pkg/ast"

// numberTypesPrecedence orders the primitive numeric types; a smaller
// value is a wider type. Operands outside this table (boolean, char,
// BigInteger, BigDecimal) take the slow path.
var numberTypesPrecedence = map[string]int{
	"double": 0,
	"float":  1,
	"long":   2,
	"int":    3,
	"short":  4,
	"byte":   5,
}

// precedenceOf resolves a type to its numeric precedence, unwrapping
// wrapper types first. The second result is false for non-numeric types.
func precedenceOf(t ast.Type) (int, bool) {
	p, ok := numberTypesPrecedence[ast.GetUnwrapper(t).Name()]
	return p, ok
}

// IsInt checks for the primitive int type.
func IsInt(t ast.Type) bool { return ast.IsPrimitiveInt(t) }

// IsFloat checks for the primitive float type.
func IsFloat(t ast.Type) bool { return ast.IsPrimitiveFloat(t) }

// IsDouble checks for the primitive double type.
func IsDouble(t ast.Type) bool { return ast.IsPrimitiveDouble(t) }

// IsIntCategory is true for byte, char, short and int.
func IsIntCategory(t ast.Type) bool {
	return ast.IsPrimitiveByte(t) || ast.IsPrimitiveChar(t) || ast.IsPrimitiveInt(t) || ast.IsPrimitiveShort(t)
}

// IsLongCategory is true for long and the int category.
func IsLongCategory(t ast.Type) bool {
	return ast.IsPrimitiveLong(t) || IsIntCategory(t)
}

// IsBigIntCategory is true for BigInteger and the long category.
func IsBigIntCategory(t ast.Type) bool {
	return ast.IsBigIntegerType(t) || IsLongCategory(t)
}

// IsBigDecCategory is true for BigDecimal and the BigInteger category.
func IsBigDecCategory(t ast.Type) bool {
	return ast.IsBigDecimalType(t) || IsBigIntCategory(t)
}

// IsDoubleCategory is true for float, double and the BigDecimal category.
func IsDoubleCategory(t ast.Type) bool {
	return ast.IsPrimitiveFloat(t) || ast.IsPrimitiveDouble(t) || IsBigDecCategory(t)
}

// IsFloatingCategory is true for float and double only.
func IsFloatingCategory(t ast.Type) bool {
	return ast.IsPrimitiveFloat(t) || ast.IsPrimitiveDouble(t)
}

// IsNumberCategory is true for any type the arithmetic widening rules
// apply to, including Number subclasses.
func IsNumberCategory(t ast.Type) bool {
	return IsBigDecCategory(t) || (t != nil && t.IsDerivedFrom(ast.NumberType))
}
