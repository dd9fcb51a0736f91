package object

import (
	"fmt"

	ireflect "github.com/nyan233/littlereflect/internal/reflect"
	"github.com/nyan233/littlereflect/pkg/container"
)

// Object 委托链上的一个普通实体, 自身属性表保证插入顺序
// proto指向上一层, class记录构造它的构造器
type Object struct {
	proto *Object
	class *Class
	props *container.SliceMap[string, *Property]
}

// NewObject 创建一个没有显式构造器的对象字面量
// 它的委托链直接挂在根对象原型上
func NewObject() *Object {
	return newRawObject(ObjectProto, ObjectClass)
}

func newRawObject(proto *Object, class *Class) *Object {
	return &Object{
		proto: proto,
		class: class,
		props: container.NewSliceMap[string, *Property](4),
	}
}

func (o *Object) Proto() *Object {
	return o.proto
}

func (o *Object) Class() *Class {
	return o.class
}

func (o *Object) Set(name string, value interface{}) {
	o.props.Store(name, valueProperty(value))
}

// SetAccessor 注册一个计算属性, getter返回error时该属性按缺失处理
func (o *Object) SetAccessor(name string, getter Getter) {
	o.props.Store(name, accessorProperty(getter))
}

func (o *Object) Delete(name string) {
	o.props.Delete(name)
}

// OwnNames 按插入顺序枚举自身属性名, 不触发计算属性
func (o *Object) OwnNames() []string {
	return o.props.Keys()
}

func (o *Object) HasOwn(name string) bool {
	_, ok := o.props.LoadOk(name)
	return ok
}

// TryGet 读取自身属性的当前值, 计算属性读取失败按缺失处理
func (o *Object) TryGet(name string) (interface{}, bool) {
	prop, ok := o.props.LoadOk(name)
	if !ok {
		return nil, false
	}
	return prop.TryGet()
}

// Get 沿委托链查找属性值, 包括根原型
func (o *Object) Get(name string) (interface{}, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if value, ok := cur.TryGet(name); ok {
			return value, true
		}
	}
	return nil, false
}

// Has 等价于in语义的成员测试, 沿完整委托链查找, 不触发计算属性
func (o *Object) Has(name string) bool {
	for cur := o; cur != nil; cur = cur.proto {
		if cur.HasOwn(name) {
			return true
		}
	}
	return false
}

// Invoke 查找并调用一个方法, self会作为第一个参数传入
func (o *Object) Invoke(name string, args ...interface{}) (interface{}, error) {
	value, ok := o.Get(name)
	if !ok {
		return nil, fmt.Errorf("method not found : %s", name)
	}
	callArgs := append([]interface{}{o}, args...)
	switch fn := value.(type) {
	case Callable:
		return fn.Call(callArgs...)
	default:
		if !ireflect.IsFuncValue(value) {
			return nil, fmt.Errorf("property is not callable : %s", name)
		}
		results, err := ireflect.CallFunc(value, callArgs...)
		if err != nil {
			return nil, err
		}
		return firstResult(results), nil
	}
}

func firstResult(results []interface{}) interface{} {
	if len(results) == 0 {
		return nil
	}
	return results[0]
}

// Layer接口实现

func (o *Object) NextLayer() Layer {
	if o.proto == nil {
		return nil
	}
	return o.proto
}

// Root 根哨兵不会被聚合遍历走入
func (o *Object) Root() bool {
	return o == ObjectProto || o == FunctionProto
}
