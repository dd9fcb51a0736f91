package object

import (
	"fmt"

	"github.com/nyan233/littlereflect/pkg/container"
)

// Class 可构造的可调用实体
// 自身属性表以内建的可调用元数据(name/length/prototype)打头,
// 之后是注册顺序排列的静态成员; 静态委托链挂在父类上,
// 没有父类时挂在根函数原型上
type Class struct {
	name   string
	arity  int
	ctor   CtorFunc
	parent *Class
	proto  *Object
	props  *container.SliceMap[string, *Property]
}

func NewClass(name string, opts ...ClassOption) *Class {
	config := &classConfig{}
	for _, opt := range opts {
		opt.apply(config)
	}
	class := &Class{
		name:   name,
		arity:  config.arity,
		ctor:   config.ctor,
		parent: config.parent,
	}
	protoParent := ObjectProto
	if class.parent != nil {
		protoParent = class.parent.proto
	}
	class.proto = newRawObject(protoParent, class)
	class.proto.Set("constructor", class)
	for _, method := range config.methods {
		class.proto.Set(method.name, bindMethod(method.name, method.fn))
	}
	for _, accessor := range config.accessors {
		class.proto.SetAccessor(accessor.name, accessor.getter)
	}
	class.props = container.NewSliceMap[string, *Property](8)
	class.props.Store("name", valueProperty(name))
	class.props.Store("length", valueProperty(class.arity))
	class.props.Store("prototype", valueProperty(class.proto))
	for _, static := range config.statics {
		class.props.Store(static.name, valueProperty(static.value))
	}
	return class
}

// bindMethod 把MethodFunc包装成原型上的未绑定函数
// 调用时第一个参数必须是实例自身
func bindMethod(name string, fn MethodFunc) *Func {
	return NewFunc(name, 1, func(args ...interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("method %s : missing self", name)
		}
		self, ok := args[0].(*Object)
		if !ok {
			return nil, fmt.Errorf("method %s : self is not an object", name)
		}
		return fn(self, args[1:]...)
	})
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) Arity() int {
	return c.arity
}

func (c *Class) Parent() *Class {
	return c.parent
}

func (c *Class) Prototype() *Object {
	return c.proto
}

// Call 对类的直接调用等价于构造调用
func (c *Class) Call(args ...interface{}) (interface{}, error) {
	return c.New(args...)
}

// New 构造一个新实例, 不会影响类自身的任何状态
func (c *Class) New(args ...interface{}) (*Object, error) {
	obj := newRawObject(c.proto, c)
	if err := c.construct(obj, args...); err != nil {
		return nil, err
	}
	return obj, nil
}

// construct 沿父类链找到最近的构造器函数体并执行
func (c *Class) construct(obj *Object, args ...interface{}) error {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.ctor != nil {
			return cur.ctor(obj, args...)
		}
	}
	return nil
}

// Layer接口实现, 类的委托链是静态成员的继承链

func (c *Class) OwnNames() []string {
	return c.props.Keys()
}

func (c *Class) HasOwn(name string) bool {
	_, ok := c.props.LoadOk(name)
	return ok
}

func (c *Class) TryGet(name string) (interface{}, bool) {
	prop, ok := c.props.LoadOk(name)
	if !ok {
		return nil, false
	}
	return prop.TryGet()
}

func (c *Class) NextLayer() Layer {
	if c.parent != nil {
		return c.parent
	}
	return FunctionProto
}

func (c *Class) Root() bool {
	return false
}
