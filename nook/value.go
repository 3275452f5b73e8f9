package nook

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindFormString
	KindChar
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindFormString:
		return "FormString"
	case KindChar:
		return "Char"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is the literal payload carried by a LiteralExpr. The zero Value
// is Nil.
type Value struct {
	kind ValueKind
	data any
}

func NewNil() Value                { return Value{kind: KindNil} }
func NewBool(b bool) Value         { return Value{kind: KindBool, data: b} }
func NewInteger(i int64) Value     { return Value{kind: KindInteger, data: i} }
func NewFloat(f float64) Value     { return Value{kind: KindFloat, data: f} }
func NewString(s string) Value     { return Value{kind: KindString, data: s} }
func NewFormString(s string) Value { return Value{kind: KindFormString, data: s} }
func NewChar(r rune) Value         { return Value{kind: KindChar, data: r} }
func (v Value) Kind() ValueKind    { return v.kind }
func (v Value) IsNil() bool        { return v.kind == KindNil }

func (v Value) Bool() bool {
	b, _ := v.data.(bool)
	return b
}

func (v Value) Integer() int64 {
	i, _ := v.data.(int64)
	return i
}

func (v Value) Float() float64 {
	f, _ := v.data.(float64)
	return f
}

// Text returns the payload of a String or FormString value.
func (v Value) Text() string {
	s, _ := v.data.(string)
	return s
}

func (v Value) Char() rune {
	r, _ := v.data.(rune)
	return r
}

// Equal compares kind and payload. Float NaN never equals itself.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindFloat:
		return v.Float() == other.Float()
	default:
		return v.data == other.data
	}
}

// String renders the debug form, e.g. Integer(1) or String("hi").
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "Nil"
	case KindBool:
		return fmt.Sprintf("Bool(%t)", v.Bool())
	case KindInteger:
		return fmt.Sprintf("Integer(%d)", v.Integer())
	case KindFloat:
		return "Float(" + formatFloat(v.Float()) + ")"
	case KindString:
		return "String(" + strconv.Quote(v.Text()) + ")"
	case KindFormString:
		return "FormString(" + strconv.Quote(v.Text()) + ")"
	case KindChar:
		return "Char(" + strconv.QuoteRune(v.Char()) + ")"
	default:
		return v.kind.String()
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
