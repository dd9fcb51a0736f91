package object

import (
	ireflect "github.com/nyan233/littlereflect/internal/reflect"
)

// Callable 可以被调用的实体
type Callable interface {
	Name() string
	Call(args ...interface{}) (interface{}, error)
}

// Constructible 可以用来构造新实例的实体
// Class实现了它, 普通的Func没有
type Constructible interface {
	Callable
	New(args ...interface{}) (*Object, error)
	Prototype() *Object
}

// IsCallableValue 判断一个属性的当前值是否可被调用
// 模型内的可调用实体和Go原生的函数值都算
func IsCallableValue(value interface{}) bool {
	if _, ok := value.(Callable); ok {
		return true
	}
	return ireflect.IsFuncValue(value)
}
