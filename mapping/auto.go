package mapping

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/oarkflow/jsondom/value"
)

var ErrUnsupported = errors.New("mapping: unsupported type")

// ----------------------
// Caching of Struct Field Metadata
// ----------------------

type fieldInfo struct {
	index    []int  // field index chain, embedded structs included
	name     string // JSON key
	required bool
}

var structCache sync.Map // map[reflect.Type][]fieldInfo

var (
	timeType     = reflect.TypeOf(time.Time{})
	valueType    = reflect.TypeOf((*value.Value)(nil)).Elem()
	mappableType = reflect.TypeOf((*Mappable)(nil)).Elem()
)

func getStructFields(t reflect.Type) ([]fieldInfo, error) {
	if cached, ok := structCache.Load(t); ok {
		return cached.([]fieldInfo), nil
	}
	fields, err := collectFields(t, nil)
	if err != nil {
		return nil, err
	}
	structCache.Store(t, fields)
	return fields, nil
}

func collectFields(t reflect.Type, parent []int) ([]fieldInfo, error) {
	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		index := append(append([]int(nil), parent...), i)

		// untagged embedded structs are flattened into the parent
		if field.Anonymous && tag == "" && field.Type.Kind() == reflect.Struct {
			inner, err := collectFields(field.Type, index)
			if err != nil {
				return nil, err
			}
			fields = append(fields, inner...)
			continue
		}
		if !field.IsExported() {
			continue
		}
		if !supported(field.Type, map[reflect.Type]bool{}) {
			return nil, fmt.Errorf("%w: field %s.%s has type %s", ErrUnsupported, t, field.Name, field.Type)
		}

		info := fieldInfo{index: index, name: field.Name}
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			info.name = parts[0]
		}
		for _, opt := range parts[1:] {
			if opt == "required" {
				info.required = true
			}
		}
		fields = append(fields, info)
	}
	return fields, nil
}

// supported reports whether values of t can be mapped. seen holds the
// struct types already under inspection, so recursive types terminate.
func supported(t reflect.Type, seen map[reflect.Type]bool) bool {
	if t == timeType || t.Implements(valueType) || reflect.PointerTo(t).Implements(mappableType) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Interface:
		return true
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return supported(t.Elem(), seen)
	case reflect.Map:
		return t.Key().Kind() == reflect.String && supported(t.Elem(), seen)
	case reflect.Struct:
		if seen[t] {
			return true
		}
		seen[t] = true
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.IsExported() && f.Tag.Get("json") != "-" && !supported(f.Type, seen) {
				return false
			}
		}
		return true
	}
	return false
}

// Auto derives a Mapper for a struct from its `json:"name,required"` tags.
// Untagged exported fields map under their Go name; "-" skips a field.
func Auto[C any](instance *C) (*Mapper[C], error) {
	ms, err := structMappings(reflect.ValueOf(instance).Elem())
	if err != nil {
		return nil, err
	}
	return New(instance).Add(ms...), nil
}

// Reflect is Auto for a struct pointer whose type is only known at run
// time.
func Reflect(ptr any) (*Mapper[any], error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a non-nil pointer", ErrUnsupported, ptr)
	}
	ms, err := structMappings(rv.Elem())
	if err != nil {
		return nil, err
	}
	return New(&ptr).Add(ms...), nil
}

func structMappings(rv reflect.Value) ([]Mapping, error) {
	if rv.Kind() != reflect.Struct || rv.Type() == timeType {
		return nil, fmt.Errorf("%w: %s is not a mappable struct", ErrUnsupported, rv.Type())
	}
	fields, err := getStructFields(rv.Type())
	if err != nil {
		return nil, err
	}
	ms := make([]Mapping, 0, len(fields))
	for _, info := range fields {
		ms = append(ms, &reflectMapping{
			base:  base{name: info.name, required: info.required},
			field: rv.FieldByIndex(info.index),
		})
	}
	return ms, nil
}

type reflectMapping struct {
	base
	field reflect.Value
}

func (r *reflectMapping) Get() (value.Value, error) { return toValue(r.field) }

func (r *reflectMapping) Set(v value.Value) error { return assignValue(r.name, r.field, v) }

// toValue converts a Go value to a Value.
func toValue(rv reflect.Value) (value.Value, error) {
	t := rv.Type()
	switch {
	case t == timeType:
		return value.NewString(rv.Interface().(time.Time).Format(time.RFC3339Nano)), nil
	case t.Implements(valueType):
		if isNil(rv) {
			return value.NewNull(), nil
		}
		return rv.Interface().(value.Value), nil
	case rv.CanAddr() && rv.Addr().Type().Implements(mappableType):
		obj, err := To(rv.Addr().Interface().(Mappable))
		if err != nil {
			return nil, err
		}
		return obj, nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return value.NewBoolean(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.NewNumber(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return value.NewNumber(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return value.NewNumber(rv.Float()), nil
	case reflect.String:
		return value.NewString(rv.String()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return value.NewNull(), nil
		}
		return toValue(rv.Elem())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return value.NewNull(), nil
		}
		a := value.NewArray()
		for i := 0; i < rv.Len(); i++ {
			v, err := toValue(rv.Index(i))
			if err != nil {
				return nil, err
			}
			a.Append(v)
		}
		return a, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return value.NewNull(), nil
		}
		o := value.NewObject()
		iter := rv.MapRange()
		for iter.Next() {
			v, err := toValue(iter.Value())
			if err != nil {
				return nil, err
			}
			o.Put(iter.Key().String(), v)
		}
		return o, nil
	case reflect.Struct:
		fields, err := getStructFields(t)
		if err != nil {
			return nil, err
		}
		o := value.NewObject()
		for _, info := range fields {
			v, err := toValue(rv.FieldByIndex(info.index))
			if err != nil {
				return nil, err
			}
			o.Put(info.name, v)
		}
		return o, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func typeMismatch(name string, v value.Value, want reflect.Type) error {
	return &value.TypeError{
		Key:     name,
		Message: fmt.Sprintf("Can't save value of type %s to the %q field mapping of type %s.", value.TypeOf(v), name, want),
	}
}

// assignValue converts v and stores it in fv.
func assignValue(name string, fv reflect.Value, v value.Value) error {
	t := fv.Type()
	switch {
	case t == timeType:
		tm, err := parseTime(name, v)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(tm))
		return nil
	case t.Implements(valueType):
		if v == nil || !reflect.TypeOf(v).AssignableTo(t) {
			if value.TypeOf(v) == value.TypeNone && t.Kind() == reflect.Pointer {
				fv.Set(reflect.Zero(t))
				return nil
			}
			return typeMismatch(name, v, t)
		}
		fv.Set(reflect.ValueOf(v))
		return nil
	case fv.CanAddr() && fv.Addr().Type().Implements(mappableType):
		obj, ok := v.(*value.Object)
		if !ok {
			return typeMismatch(name, v, t)
		}
		return Into(fv.Addr().Interface().(Mappable), obj)
	}

	if value.TypeOf(v) == value.TypeNone {
		switch fv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
			fv.Set(reflect.Zero(t))
			return nil
		}
		return typeMismatch(name, v, t)
	}

	switch fv.Kind() {
	case reflect.Bool:
		b, err := value.Get[bool](v)
		if err != nil {
			return typeMismatch(name, v, t)
		}
		fv.SetBool(b)
	case reflect.String:
		s, err := value.Get[string](v)
		if err != nil {
			return typeMismatch(name, v, t)
		}
		fv.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, err := value.Get[float64](v)
		if err != nil {
			return typeMismatch(name, v, t)
		}
		if limit := math.Ldexp(1, t.Bits()-1); f < -limit || f >= limit {
			return &value.TypeError{Key: name, Message: fmt.Sprintf("%v overflows %s", f, t)}
		}
		fv.SetInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, err := value.Get[float64](v)
		if err != nil {
			return typeMismatch(name, v, t)
		}
		if f < 0 || f >= math.Ldexp(1, t.Bits()) {
			return &value.TypeError{Key: name, Message: fmt.Sprintf("%v overflows %s", f, t)}
		}
		fv.SetUint(uint64(f))
	case reflect.Float32, reflect.Float64:
		f, err := value.Get[float64](v)
		if err != nil {
			return typeMismatch(name, v, t)
		}
		fv.SetFloat(f)
	case reflect.Interface:
		x := value.Interface(v)
		if x == nil || !reflect.TypeOf(x).AssignableTo(t) {
			return typeMismatch(name, v, t)
		}
		fv.Set(reflect.ValueOf(x))
	case reflect.Pointer:
		ptr := reflect.New(t.Elem())
		if err := assignValue(name, ptr.Elem(), v); err != nil {
			return err
		}
		fv.Set(ptr)
	case reflect.Slice:
		arr, ok := v.(*value.Array)
		if !ok {
			return typeMismatch(name, v, t)
		}
		slice := reflect.MakeSlice(t, arr.Len(), arr.Len())
		for i, c := range arr.All() {
			if err := assignValue(fmt.Sprintf("%s[%d]", name, i), slice.Index(i), c); err != nil {
				return err
			}
		}
		fv.Set(slice)
	case reflect.Array:
		arr, ok := v.(*value.Array)
		if !ok {
			return typeMismatch(name, v, t)
		}
		for i, c := range arr.All() {
			if i >= fv.Len() {
				break
			}
			if err := assignValue(fmt.Sprintf("%s[%d]", name, i), fv.Index(i), c); err != nil {
				return err
			}
		}
	case reflect.Map:
		obj, ok := v.(*value.Object)
		if !ok || t.Key().Kind() != reflect.String {
			return typeMismatch(name, v, t)
		}
		m := reflect.MakeMapWithSize(t, obj.Len())
		for k, c := range obj.All() {
			elem := reflect.New(t.Elem()).Elem()
			if err := assignValue(name+"."+k, elem, c); err != nil {
				return err
			}
			m.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), elem)
		}
		fv.Set(m)
	case reflect.Struct:
		obj, ok := v.(*value.Object)
		if !ok {
			return typeMismatch(name, v, t)
		}
		return decodeStruct(name, fv, obj)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
	return nil
}

func decodeStruct(name string, fv reflect.Value, obj *value.Object) error {
	fields, err := getStructFields(fv.Type())
	if err != nil {
		return err
	}
	for _, info := range fields {
		c, ok := obj.Lookup(info.name)
		if !ok {
			if info.required {
				return missing(name + "." + info.name)
			}
			continue
		}
		if err := assignValue(name+"."+info.name, fv.FieldByIndex(info.index), c); err != nil {
			return err
		}
	}
	return nil
}
