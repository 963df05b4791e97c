package primitive

import (
	"errors"
	"go/types"
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindDuration

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var (
	// ErrUnknown reports a primitive type without a zero-value mapping
	// (complex numbers, uintptr, unsafe pointers).
	ErrUnknown = errors.New("unknown primitive type")
	// ErrUnsupported reports a composite type that cannot carry a single
	// scalar option value.
	ErrUnsupported = errors.New("unsupported value type")
)

var durationType = reflect.TypeOf(time.Duration(0))

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// JSONType returns the JSON Schema type and format describing values of k.
func (k KindEnum) JSONType() (typ, format string) {
	switch {
	case k == KindBool:
		return "boolean", ""
	case k == KindDuration:
		return "string", "duration"
	case k.IsInteger():
		return "integer", ""
	case k.IsFloat():
		return "number", ""
	default:
		return "string", ""
	}
}

// FromReflectType maps rtype to its kind. Named types map by their
// underlying kind, except time.Duration which has a kind of its own.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	if rtype == durationType {
		return KindDuration
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}

// Classify maps an accessor result type to a kind. A pointer to a kind is
// nullable. Pointers to pointers are unsupported.
func Classify(rtype reflect.Type) (kind KindEnum, nullable bool, err error) {
	if rtype == nil {
		return 0, false, ErrUnsupported
	}

	if rtype.Kind() == reflect.Pointer {
		nullable = true
		rtype = rtype.Elem()
	}

	if kind = FromReflectType(rtype); kind.IsValid() {
		return kind, nullable, nil
	}

	switch rtype.Kind() {
	case reflect.Complex64, reflect.Complex128, reflect.Uintptr, reflect.UnsafePointer:
		return 0, nullable, ErrUnknown
	default:
		return 0, nullable, ErrUnsupported
	}
}

// FromTypesType is the go/types counterpart of FromReflectType.
func FromTypesType(t types.Type) KindEnum {
	if t == nil {
		return 0
	}

	if named, ok := types.Unalias(t).(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Duration" {
			return KindDuration
		}
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0
	}

	switch basic.Kind() {
	default:
		return 0
	case types.Int:
		return KindInt
	case types.Int8:
		return KindInt8
	case types.Int16:
		return KindInt16
	case types.Int32:
		return KindInt32
	case types.Int64:
		return KindInt64
	case types.Uint:
		return KindUint
	case types.Uint8:
		return KindUint8
	case types.Uint16:
		return KindUint16
	case types.Uint32:
		return KindUint32
	case types.Uint64:
		return KindUint64
	case types.Float32:
		return KindFloat32
	case types.Float64:
		return KindFloat64
	case types.Bool:
		return KindBool
	case types.String:
		return KindString
	}
}

// ClassifyType is the go/types counterpart of Classify.
func ClassifyType(t types.Type) (kind KindEnum, nullable bool, err error) {
	if t == nil {
		return 0, false, ErrUnsupported
	}

	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		nullable = true
		t = ptr.Elem()
	}

	if kind = FromTypesType(t); kind.IsValid() {
		return kind, nullable, nil
	}

	if basic, ok := t.Underlying().(*types.Basic); ok {
		switch basic.Kind() {
		case types.Complex64, types.Complex128, types.Uintptr, types.UnsafePointer:
			return 0, nullable, ErrUnknown
		}
	}

	return 0, nullable, ErrUnsupported
}
