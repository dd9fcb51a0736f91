package object

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"sync"

	ireflect "github.com/nyan233/littlereflect/internal/reflect"
)

// Go原生值的装箱, map/slice/struct都会被翻译成模型内的对象
// 结构体的匿名字段链会被翻译成委托链

var (
	nativeMu      sync.RWMutex
	nativeClasses = make(map[reflect.Type]*Class, 16)
)

// BoxValue 把一个Go原生值装箱为模型内的对象
// 数字/字符串/布尔这类纯标量不在可装箱的范围内
func BoxValue(target interface{}) (*Object, error) {
	if target == nil {
		return nil, fmt.Errorf("box target is nil")
	}
	value := reflect.ValueOf(target)
	switch value.Kind() {
	case reflect.Map:
		return boxMap(value), nil
	case reflect.Slice, reflect.Array:
		return boxSequence(value), nil
	case reflect.Struct:
		return boxStruct(value), nil
	case reflect.Ptr:
		if value.IsNil() {
			return nil, fmt.Errorf("box target is a nil pointer")
		}
		if value.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("box target %s is not structured", value.Type())
		}
		return boxStruct(value.Elem()), nil
	default:
		return nil, fmt.Errorf("box target %s is not structured", value.Type())
	}
}

// boxMap Go的map枚举顺序不稳定, 装箱时按键的字面序排序
// 以保证枚举结果可复现
func boxMap(value reflect.Value) *Object {
	obj := NewObject()
	keys := value.MapKeys()
	names := make([]string, 0, len(keys))
	mapping := make(map[string]reflect.Value, len(keys))
	for _, key := range keys {
		name := fmt.Sprint(key.Interface())
		names = append(names, name)
		mapping[name] = key
	}
	sort.Strings(names)
	for _, name := range names {
		obj.Set(name, value.MapIndex(mapping[name]).Interface())
	}
	return obj
}

// boxSequence 序列的自身属性是下标键加上length, 与通常的数组对象一致
func boxSequence(value reflect.Value) *Object {
	obj := newRawObject(ArrayClass.proto, ArrayClass)
	for i := 0; i < value.Len(); i++ {
		obj.Set(strconv.Itoa(i), value.Index(i).Interface())
	}
	obj.Set("length", value.Len())
	return obj
}

// boxStruct 实例自身字段按祖先在前/自身在后的顺序赋值,
// 与构造器先走父类的赋值顺序一致
func boxStruct(value reflect.Value) *Object {
	typ := value.Type()
	class := classOfType(typ)
	obj := newRawObject(class.proto, class)
	chain := structChain(typ)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, name := range ireflect.OwnFieldNames(chain[i]) {
			field := value.FieldByName(name)
			if !field.IsValid() {
				continue
			}
			obj.Set(name, field.Interface())
		}
	}
	return obj
}

// structChain 沿第一个匿名结构体字段展开委托链, 自身在最前
func structChain(typ reflect.Type) []reflect.Type {
	chain := []reflect.Type{typ}
	for cur := typ; ; {
		parent, ok := ireflect.EmbeddedParent(cur)
		if !ok {
			break
		}
		chain = append(chain, parent)
		cur = parent
	}
	return chain
}

// classOfType 为原生结构体类型合成一个类, 同一类型只合成一次
func classOfType(typ reflect.Type) *Class {
	nativeMu.RLock()
	class, ok := nativeClasses[typ]
	nativeMu.RUnlock()
	if ok {
		return class
	}
	nativeMu.Lock()
	defer nativeMu.Unlock()
	if class, ok = nativeClasses[typ]; ok {
		return class
	}
	class = buildNativeClass(typ)
	nativeClasses[typ] = class
	return class
}

func buildNativeClass(typ reflect.Type) *Class {
	var parentTyp reflect.Type
	var parent *Class
	if p, ok := ireflect.EmbeddedParent(typ); ok {
		parentTyp = p
		// 父类不加锁地递归合成, 调用方已经持有写锁
		if cached, ok := nativeClasses[p]; ok {
			parent = cached
		} else {
			parent = buildNativeClass(p)
			nativeClasses[p] = parent
		}
	}
	opts := []ClassOption{WithArity(0)}
	if parent != nil {
		opts = append(opts, WithParent(parent))
	}
	opts = append(opts, WithConstructor(func(self *Object, args ...interface{}) error {
		boxed := boxStruct(reflect.New(typ).Elem())
		for _, name := range boxed.OwnNames() {
			value, _ := boxed.TryGet(name)
			self.Set(name, value)
		}
		return nil
	}))
	class := NewClass(typ.Name(), opts...)
	for _, name := range ireflect.OwnMethodNames(typ, parentTyp) {
		class.proto.Set(name, nativeMethod(typ, name))
	}
	return class
}

// nativeMethod 原生方法以未绑定形式挂在合成类的原型上
// 第一个参数是接收者
func nativeMethod(typ reflect.Type, name string) *Func {
	ptrTyp := reflect.PtrTo(typ)
	method, _ := ptrTyp.MethodByName(name)
	arity := 0
	if method.Func.IsValid() {
		arity = method.Type.NumIn() - 1
	}
	return NewFunc(name, arity, func(args ...interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("method %s : missing receiver", name)
		}
		receiver := reflect.ValueOf(args[0])
		if receiver.Kind() != reflect.Ptr {
			ptr := reflect.New(receiver.Type())
			ptr.Elem().Set(receiver)
			receiver = ptr
		}
		fnValue := receiver.MethodByName(name)
		if !fnValue.IsValid() {
			return nil, fmt.Errorf("method %s : receiver mismatch", name)
		}
		results, err := ireflect.CallFunc(fnValue.Interface(), args[1:]...)
		if err != nil {
			return nil, err
		}
		return firstResult(results), nil
	})
}
