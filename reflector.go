package littlereflect

import (
	"fmt"
	"sort"

	"github.com/nyan233/littlereflect/object"
	"github.com/nyan233/littlereflect/pkg/container"
	"github.com/nyan233/littlereflect/rerror"
)

type mode uint8

const (
	classMode mode = iota + 1
	instanceMode
)

// UnnamedLabel 目标没有声明名字时getName的兜底标签
const UnnamedLabel = "unnamed"

// Reflector 包装单个目标并对它的结构提供只读视图
// 处于构造器模式还是实例模式在构造时一次性决定, 之后不再改变;
// 除NewInstance会创建全新的独立实例外, 所有操作都是纯读
type Reflector struct {
	mode      mode
	ctor      object.Callable
	ctorLayer object.Layer
	obj       *object.Object
}

// New 从目标构造Reflector
// 目标必须是可调用实体或非空的结构化值, 其余一律返回TargetInvalid
func New(target interface{}) (*Reflector, error) {
	return checkTarget(target)
}

// Name 构造器模式下返回目标声明的名字,
// 实例模式下返回其构造器的名字, 没有名字时返回兜底标签
func (r *Reflector) Name() string {
	name := r.ctor.Name()
	if name == "" {
		return UnnamedLabel
	}
	return name
}

func (r *Reflector) Constructor() object.Callable {
	return r.ctor
}

// Prototype 构造器模式下是目标自身的prototype属性,
// 实例模式下是实例的直接原型; 没有原型时ok为false
func (r *Reflector) Prototype() (*object.Object, bool) {
	if r.mode == classMode {
		if ctor, ok := r.ctor.(object.Constructible); ok {
			return ctor.Prototype(), true
		}
		return nil, false
	}
	if proto := r.obj.Proto(); proto != nil {
		return proto, true
	}
	return nil, false
}

// ParentClass 原型上一层所关联的构造器
// 原型缺失或已到链顶时ok为false
func (r *Reflector) ParentClass() (object.Callable, bool) {
	proto, ok := r.Prototype()
	if !ok {
		return nil, false
	}
	up := proto.Proto()
	if up == nil {
		return nil, false
	}
	if class := up.Class(); class != nil {
		return class, true
	}
	return nil, false
}

func (r *Reflector) ParentClassName() (string, bool) {
	parent, ok := r.ParentClass()
	if !ok {
		return "", false
	}
	name := parent.Name()
	if name == "" {
		name = UnnamedLabel
	}
	return name, true
}

func (r *Reflector) IsClass() bool {
	return r.mode == classMode
}

func (r *Reflector) IsInstance() bool {
	return r.mode == instanceMode
}

// targetLayer 字面目标自身所在的层
func (r *Reflector) targetLayer() object.Layer {
	if r.mode == classMode {
		return r.ctorLayer
	}
	return r.obj
}

// ownMethodLayer 方法归属的层
// 构造器模式是构造器自身(静态方法), 实例模式是实例的直接原型
func (r *Reflector) ownMethodLayer() object.Layer {
	if r.mode == classMode {
		return r.ctorLayer
	}
	if proto := r.obj.Proto(); proto != nil {
		return proto
	}
	return nil
}

// OwnProperties 字面目标自身声明的属性名, 单层不需要去重
// 顺序是底层结构的枚举顺序
func (r *Reflector) OwnProperties() []string {
	return r.targetLayer().OwnNames()
}

// Properties 目标和所有祖先的自身属性名的并集
// 按首次发现的顺序去重, 遍历不会走入两个根原型
func (r *Reflector) Properties() []string {
	var out container.Slice[string]
	iter := object.ChainIterator(object.Chain(r.targetLayer()))
	for iter.Next() {
		out.Append(iter.Take().OwnNames())
	}
	out.Unique()
	return out
}

// OwnMethods 方法归属层上自身属性值可调用的名字
// constructor本身不算, 读取失败的属性按"不是方法"处理
func (r *Reflector) OwnMethods() []string {
	layer := r.ownMethodLayer()
	if layer == nil {
		return nil
	}
	return callableNames(layer)
}

// Methods 沿方法归属层的祖先链收集的可调用名并集,
// 实例模式下再并上实例自身的函数值字段; 去重后按字典序返回
func (r *Reflector) Methods() []string {
	var out container.Slice[string]
	iter := object.ChainIterator(object.ChainBeforeRoots(r.ownMethodLayer()))
	for iter.Next() {
		out.Append(callableNames(iter.Take()))
	}
	if r.mode == instanceMode {
		out.Append(callableNames(r.obj))
	}
	out.Unique()
	sort.Strings(out)
	return out
}

// HasOwnProperty 字面目标自身是否声明了该属性
func (r *Reflector) HasOwnProperty(name string) bool {
	return r.targetLayer().HasOwn(name)
}

// HasProperty in语义的成员测试, 沿完整委托链查找(包括根原型)
func (r *Reflector) HasProperty(name string) bool {
	for _, layer := range object.ChainAll(r.targetLayer()) {
		if layer.HasOwn(name) {
			return true
		}
	}
	return false
}

// HasOwnMethod 方法归属层自身是否有名为name的可调用属性
func (r *Reflector) HasOwnMethod(name string) bool {
	layer := r.ownMethodLayer()
	if layer == nil || name == "constructor" {
		return false
	}
	if !layer.HasOwn(name) {
		return false
	}
	value, ok := layer.TryGet(name)
	return ok && object.IsCallableValue(value)
}

// HasMethod 沿方法归属层的祖先链查找可调用属性,
// 实例模式下也接受实例自身的函数值字段
func (r *Reflector) HasMethod(name string) bool {
	if name == "constructor" {
		return false
	}
	for _, layer := range object.ChainBeforeRoots(r.ownMethodLayer()) {
		if !layer.HasOwn(name) {
			continue
		}
		if value, ok := layer.TryGet(name); ok && object.IsCallableValue(value) {
			return true
		}
	}
	if r.mode == instanceMode {
		if value, ok := r.obj.TryGet(name); ok && object.IsCallableValue(value) {
			return true
		}
	}
	return false
}

// IsInstantiable 只看目标是否可调用
// 不可构造的可调用目标也会通过, 它们在NewInstance时才失败
func (r *Reflector) IsInstantiable() bool {
	return r.mode == classMode
}

// NewInstance 以目标为构造器创建一个全新的独立实例
// 不可实例化的目标返回(nil, nil)的缺失标记而不是错误;
// 目标可调用但不可构造, 或构造器本身失败时, 返回包装后的
// ConstructionFailed错误
func (r *Reflector) NewInstance(args ...interface{}) (interface{}, error) {
	if r.mode != classMode {
		return nil, nil
	}
	ctor, ok := r.ctor.(object.Constructible)
	if !ok {
		return nil, rerror.LWarpStdError(rerror.ErrConstructionFailed,
			fmt.Sprintf("%s is not a constructor", r.Name()))
	}
	obj, err := ctor.New(args...)
	if err != nil {
		return nil, rerror.LWarpStdError(rerror.ErrConstructionFailed, err.Error())
	}
	return obj, nil
}

// InstanceOf 按宿主的instance-of语义判断obj是否是所包装构造器的实例
// 不处于构造器模式或构造器不可构造时返回TargetNotClass错误
func (r *Reflector) InstanceOf(obj interface{}) (bool, error) {
	ctor, ok := r.ctor.(object.Constructible)
	if r.mode != classMode || !ok {
		return false, rerror.LWarpStdError(rerror.ErrTargetNotClass,
			fmt.Sprintf("%s is not a class constructor", r.Name()))
	}
	proto := ctor.Prototype()
	var target *object.Object
	switch v := obj.(type) {
	case *object.Object:
		target = v
	default:
		boxed, err := object.BoxValue(obj)
		if err != nil {
			return false, nil
		}
		target = boxed
	}
	for cur := target.Proto(); cur != nil; cur = cur.Proto() {
		if cur == proto {
			return true, nil
		}
	}
	return false, nil
}

func (r *Reflector) String() string {
	kind := "Object"
	if r.mode == classMode {
		kind = "Class"
	}
	return fmt.Sprintf("Reflector for [%s: %s]", kind, r.Name())
}

// callableNames 单层内值可调用的自身属性名, constructor除外
func callableNames(layer object.Layer) []string {
	names := layer.OwnNames()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "constructor" {
			continue
		}
		value, ok := layer.TryGet(name)
		if !ok {
			continue
		}
		if object.IsCallableValue(value) {
			out = append(out, name)
		}
	}
	return out
}
