package object

import (
	ireflect "github.com/nyan233/littlereflect/internal/reflect"
	"github.com/nyan233/littlereflect/pkg/container"
)

// Func 不可构造的可调用实体, 对应没有原型的普通函数值
// 自身属性表只有内建的name/length两个元数据
type Func struct {
	name  string
	arity int
	call  func(args ...interface{}) (interface{}, error)
	props *container.SliceMap[string, *Property]
}

func NewFunc(name string, arity int, call func(args ...interface{}) (interface{}, error)) *Func {
	fn := &Func{
		name:  name,
		arity: arity,
		call:  call,
		props: container.NewSliceMap[string, *Property](2),
	}
	fn.props.Store("name", valueProperty(name))
	fn.props.Store("length", valueProperty(arity))
	return fn
}

// FuncOf 把Go原生函数值装箱为模型内的可调用实体
// 名字和形参个数都从运行时的函数信息里取
func FuncOf(goFn interface{}) *Func {
	return NewFunc(ireflect.FuncName(goFn), ireflect.FuncArity(goFn),
		func(args ...interface{}) (interface{}, error) {
			results, err := ireflect.CallFunc(goFn, args...)
			if err != nil {
				return nil, err
			}
			return firstResult(results), nil
		})
}

func (f *Func) Name() string {
	return f.name
}

func (f *Func) Arity() int {
	return f.arity
}

func (f *Func) Call(args ...interface{}) (interface{}, error) {
	return f.call(args...)
}

// Layer接口实现

func (f *Func) OwnNames() []string {
	return f.props.Keys()
}

func (f *Func) HasOwn(name string) bool {
	_, ok := f.props.LoadOk(name)
	return ok
}

func (f *Func) TryGet(name string) (interface{}, bool) {
	prop, ok := f.props.LoadOk(name)
	if !ok {
		return nil, false
	}
	return prop.TryGet()
}

func (f *Func) NextLayer() Layer {
	return FunctionProto
}

func (f *Func) Root() bool {
	return false
}
