package object

import (
	"github.com/nyan233/littlereflect/pkg/container"
)

// 委托链的两个根哨兵和对应的内建构造器
// 聚合遍历到根哨兵就停止, 根上的成员不会进入任何聚合结果
var (
	ObjectProto   *Object
	FunctionProto *Object
	ObjectClass   *Class
	FunctionClass *Class
	ArrayClass    *Class
)

// 根对象原型和内建构造器互相引用, 只能手工接线
func init() {
	ObjectProto = &Object{
		props: container.NewSliceMap[string, *Property](2),
	}
	FunctionProto = &Object{
		proto: ObjectProto,
		props: container.NewSliceMap[string, *Property](2),
	}
	ObjectClass = &Class{
		name:  "Object",
		proto: ObjectProto,
		props: container.NewSliceMap[string, *Property](4),
	}
	ObjectClass.props.Store("name", valueProperty("Object"))
	ObjectClass.props.Store("length", valueProperty(0))
	ObjectClass.props.Store("prototype", valueProperty(ObjectProto))
	ObjectProto.class = ObjectClass
	ObjectProto.Set("constructor", ObjectClass)

	FunctionClass = &Class{
		name:  "Function",
		proto: FunctionProto,
		props: container.NewSliceMap[string, *Property](4),
	}
	FunctionClass.props.Store("name", valueProperty("Function"))
	FunctionClass.props.Store("length", valueProperty(0))
	FunctionClass.props.Store("prototype", valueProperty(FunctionProto))
	FunctionProto.class = FunctionClass
	FunctionProto.Set("constructor", FunctionClass)

	ArrayClass = NewClass("Array", WithArity(0))
}
