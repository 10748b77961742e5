package bus

// Type is a runtime type identifier.
// Fundamental types are predeclared; object types are added with RegisterType.
type Type uint32

const (
	TypeInvalid Type = iota
	TypeNone
	TypeBool
	TypeInt64
	TypeUint64
	TypeFloat64
	TypeString
	TypePointer
	TypeObject

	firstDynamicType
)

var fundamentalNames = [...]string{
	TypeInvalid: "invalid",
	TypeNone:    "none",
	TypeBool:    "bool",
	TypeInt64:   "int64",
	TypeUint64:  "uint64",
	TypeFloat64: "float64",
	TypeString:  "string",
	TypePointer: "pointer",
	TypeObject:  "Object",
}

// TypeInfo describes an object type to register.
type TypeInfo struct {
	// Name must be unique across the process.
	Name string

	// Parent is TypeObject or another registered object type.
	Parent Type

	// Signals are registered on the new type in order.
	Signals []SignalSpec
}

// Name returns the registered name of the type.
func (t Type) Name() string {
	if t < firstDynamicType {
		return fundamentalNames[t]
	}
	if n := reg().typeNode(t); n != nil {
		return n.name
	}
	return "invalid"
}

// String implements fmt.Stringer.
func (t Type) String() string { return t.Name() }

// Parent returns the parent type, or TypeInvalid for fundamentals.
func (t Type) Parent() Type {
	if t < firstDynamicType {
		return TypeInvalid
	}
	if n := reg().typeNode(t); n != nil {
		return n.parent
	}
	return TypeInvalid
}

// IsObject reports whether t is TypeObject or derives from it.
func (t Type) IsObject() bool {
	return t.IsA(TypeObject)
}

// IsA reports whether t equals ancestor or derives from it.
func (t Type) IsA(ancestor Type) bool {
	if t == TypeInvalid || ancestor == TypeInvalid {
		return false
	}
	for cur := t; cur != TypeInvalid; cur = cur.Parent() {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// TypeFromName resolves a registered or fundamental type by name.
func TypeFromName(name string) (Type, bool) {
	for t, n := range fundamentalNames {
		if t != int(TypeInvalid) && n == name {
			return Type(t), true
		}
	}
	return reg().typeByName(name)
}
