package reflect

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// 针对Go原生值的一些工具函数, 供装箱逻辑使用

// IsFuncValue 判断val是否是一个非nil的函数值
func IsFuncValue(val interface{}) bool {
	if val == nil {
		return false
	}
	rv := reflect.ValueOf(val)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// FuncName 通过运行时符号表取出函数的声明名字
// 会剥掉包路径/receiver和方法值的-fm后缀
func FuncName(fn interface{}) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return ""
	}
	rtFn := runtime.FuncForPC(rv.Pointer())
	if rtFn == nil {
		return ""
	}
	name := rtFn.Name()
	if index := strings.LastIndexByte(name, '/'); index >= 0 {
		name = name[index+1:]
	}
	if index := strings.LastIndexByte(name, '.'); index >= 0 {
		name = name[index+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	return name
}

// FuncArity 返回函数声明的入参个数
func FuncArity(fn interface{}) int {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return 0
	}
	return rv.Type().NumIn()
}

// CallFunc 以松散的参数匹配规则调用一个原生函数
// 参数可转换时自动转换, 函数内部的panic会被捕获并转为error
func CallFunc(fn interface{}, args ...interface{}) (results []interface{}, err error) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return nil, errors.New("call target is not a func")
	}
	typ := rv.Type()
	if !typ.IsVariadic() && len(args) != typ.NumIn() {
		return nil, fmt.Errorf("argument count mismatch : want %d have %d",
			typ.NumIn(), len(args))
	}
	if typ.IsVariadic() && len(args) < typ.NumIn()-1 {
		return nil, fmt.Errorf("argument count mismatch : want at least %d have %d",
			typ.NumIn()-1, len(args))
	}
	in := make([]reflect.Value, 0, len(args))
	for index, arg := range args {
		var paramTyp reflect.Type
		if typ.IsVariadic() && index >= typ.NumIn()-1 {
			paramTyp = typ.In(typ.NumIn() - 1).Elem()
		} else {
			paramTyp = typ.In(index)
		}
		value, cErr := convertArg(paramTyp, arg)
		if cErr != nil {
			return nil, fmt.Errorf("argument %d : %v", index, cErr)
		}
		in = append(in, value)
	}
	defer func() {
		if p := recover(); p != nil {
			results = nil
			err = fmt.Errorf("call panic : %v", p)
		}
	}()
	out := rv.Call(in)
	results = make([]interface{}, 0, len(out))
	for _, value := range out {
		results = append(results, value.Interface())
	}
	return results, nil
}

func convertArg(paramTyp reflect.Type, arg interface{}) (reflect.Value, error) {
	if arg == nil {
		switch paramTyp.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map,
			reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(paramTyp), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil can not be %s", paramTyp)
		}
	}
	value := reflect.ValueOf(arg)
	if value.Type().AssignableTo(paramTyp) {
		return value, nil
	}
	if value.Type().ConvertibleTo(paramTyp) {
		return value.Convert(paramTyp), nil
	}
	return reflect.Value{}, fmt.Errorf("%s can not be %s", value.Type(), paramTyp)
}

// EmbeddedParent 返回结构体类型委托链上的下一个类型
// 取第一个匿名结构体字段, 指针形式的匿名字段会被解引用
func EmbeddedParent(typ reflect.Type) (reflect.Type, bool) {
	if typ.Kind() != reflect.Struct {
		return nil, false
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.Anonymous {
			continue
		}
		fieldTyp := field.Type
		if fieldTyp.Kind() == reflect.Ptr {
			fieldTyp = fieldTyp.Elem()
		}
		if fieldTyp.Kind() == reflect.Struct {
			return fieldTyp, true
		}
	}
	return nil, false
}

// OwnFieldNames 返回结构体自身声明的可导出字段名, 匿名字段不算
func OwnFieldNames(typ reflect.Type) []string {
	if typ.Kind() != reflect.Struct {
		return nil
	}
	names := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous || field.PkgPath != "" {
			continue
		}
		names = append(names, field.Name)
	}
	return names
}

// OwnMethodNames 返回typ相对parent新增的方法名
// Go的方法提升无法区分声明与提升, 所以用方法集差值来划分归属
func OwnMethodNames(typ reflect.Type, parent reflect.Type) []string {
	methodSet := func(t reflect.Type) map[string]struct{} {
		if t == nil {
			return nil
		}
		ptrTyp := reflect.PtrTo(t)
		set := make(map[string]struct{}, ptrTyp.NumMethod())
		for i := 0; i < ptrTyp.NumMethod(); i++ {
			set[ptrTyp.Method(i).Name] = struct{}{}
		}
		return set
	}
	parentSet := methodSet(parent)
	ptrTyp := reflect.PtrTo(typ)
	names := make([]string, 0, ptrTyp.NumMethod())
	for i := 0; i < ptrTyp.NumMethod(); i++ {
		name := ptrTyp.Method(i).Name
		if _, ok := parentSet[name]; ok {
			continue
		}
		names = append(names, name)
	}
	return names
}
