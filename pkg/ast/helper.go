package ast

// Well-known types of the JVM universe. The hierarchy among them is wired
// in init to keep the declarations cycle-free: several of the wrappers
// mention themselves through Comparable.
var (
	ObjectType = &ClassNode{name: "java.lang.Object", modifiers: Public}
	VoidType   = newPrimitive("void")

	BooleanType = newPrimitive("boolean")
	CharType    = newPrimitive("char")
	ByteType    = newPrimitive("byte")
	ShortType   = newPrimitive("short")
	IntType     = newPrimitive("int")
	LongType    = newPrimitive("long")
	FloatType   = newPrimitive("float")
	DoubleType  = newPrimitive("double")

	SerializableType = NewInterface("java.io.Serializable")
	ComparableType   = NewInterface("java.lang.Comparable")
	CharSequenceType = NewInterface("java.lang.CharSequence")

	NumberType = NewClass("java.lang.Number")

	BooleanWrapperType = NewClass("java.lang.Boolean")
	CharacterType      = NewClass("java.lang.Character")
	ByteWrapperType    = NewClass("java.lang.Byte")
	ShortWrapperType   = NewClass("java.lang.Short")
	IntegerType        = NewClass("java.lang.Integer")
	LongWrapperType    = NewClass("java.lang.Long")
	FloatWrapperType   = NewClass("java.lang.Float")
	DoubleWrapperType  = NewClass("java.lang.Double")

	BigIntegerType = NewClass("java.math.BigInteger")
	BigDecimalType = NewClass("java.math.BigDecimal")

	StringType = NewClass("java.lang.String")
)

var (
	wrappers   = map[string]*ClassNode{}
	unwrappers = map[string]*ClassNode{}

	// The numeric wrapper set checked by IsNumberType; BigInteger and
	// BigDecimal are classified separately.
	numberWrapperNames = map[string]bool{}
)

func init() {
	ComparableType.SetGenericsTypes([]*GenericsType{NewPlaceholderGenerics("T")})

	NumberType.AddInterface(SerializableType)

	wire := func(wrapper *ClassNode, primitive *ClassNode, numeric bool) {
		if numeric {
			wrapper.SetSuperClass(NumberType)
			numberWrapperNames[wrapper.name] = true
		} else {
			wrapper.AddInterface(SerializableType)
		}
		wrapper.AddInterface(ComparableType.Parameterized(NewGenericsType(wrapper)))
		wrappers[primitive.name] = wrapper
		unwrappers[wrapper.name] = primitive
	}
	wire(BooleanWrapperType, BooleanType, false)
	wire(CharacterType, CharType, false)
	wire(ByteWrapperType, ByteType, true)
	wire(ShortWrapperType, ShortType, true)
	wire(IntegerType, IntType, true)
	wire(LongWrapperType, LongType, true)
	wire(FloatWrapperType, FloatType, true)
	wire(DoubleWrapperType, DoubleType, true)

	BigIntegerType.SetSuperClass(NumberType)
	BigIntegerType.AddInterface(ComparableType.Parameterized(NewGenericsType(BigIntegerType)))
	BigDecimalType.SetSuperClass(NumberType)
	BigDecimalType.AddInterface(ComparableType.Parameterized(NewGenericsType(BigDecimalType)))

	StringType.AddInterface(SerializableType)
	StringType.AddInterface(CharSequenceType)
	StringType.AddInterface(ComparableType.Parameterized(NewGenericsType(StringType)))
}

// GetWrapper returns the boxed counterpart of a primitive type, or the
// type itself when it is not a primitive. void has no wrapper.
func GetWrapper(t Type) Type {
	if t == nil || !t.IsPrimitive() {
		return t
	}
	if w, ok := wrappers[t.Name()]; ok {
		return w
	}
	return t
}

// GetUnwrapper returns the primitive counterpart of a wrapper type, or the
// type itself when it is not a wrapper.
func GetUnwrapper(t Type) Type {
	if t == nil || t.IsPrimitive() {
		return t
	}
	if p, ok := unwrappers[t.Name()]; ok {
		return p
	}
	return t
}

func IsObjectType(t Type) bool {
	return t != nil && !t.IsArray() && !t.IsPrimitive() && t.Name() == ObjectType.name
}

func isPrimitiveNamed(t Type, name string) bool {
	return t != nil && t.IsPrimitive() && t.Name() == name
}

func IsPrimitiveVoid(t Type) bool    { return isPrimitiveNamed(t, "void") }
func IsPrimitiveBoolean(t Type) bool { return isPrimitiveNamed(t, "boolean") }
func IsPrimitiveChar(t Type) bool    { return isPrimitiveNamed(t, "char") }
func IsPrimitiveByte(t Type) bool    { return isPrimitiveNamed(t, "byte") }
func IsPrimitiveShort(t Type) bool   { return isPrimitiveNamed(t, "short") }
func IsPrimitiveInt(t Type) bool     { return isPrimitiveNamed(t, "int") }
func IsPrimitiveLong(t Type) bool    { return isPrimitiveNamed(t, "long") }
func IsPrimitiveFloat(t Type) bool   { return isPrimitiveNamed(t, "float") }
func IsPrimitiveDouble(t Type) bool  { return isPrimitiveNamed(t, "double") }

// IsNumberType reports whether t is a numeric primitive or one of the
// java.lang numeric wrappers.
func IsNumberType(t Type) bool {
	if t == nil || t.IsArray() {
		return false
	}
	if t.IsPrimitive() {
		_, numeric := wrappers[t.Name()]
		return numeric && !IsPrimitiveBoolean(t) && !IsPrimitiveChar(t)
	}
	return numberWrapperNames[t.Name()]
}

func IsBigIntegerType(t Type) bool {
	return t != nil && !t.IsArray() && t.Name() == BigIntegerType.name
}

func IsBigDecimalType(t Type) bool {
	return t != nil && !t.IsArray() && t.Name() == BigDecimalType.name
}
