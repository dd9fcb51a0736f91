package littlereflect

import (
	"fmt"
	"reflect"

	"github.com/nyan233/littlereflect/object"
	"github.com/nyan233/littlereflect/rerror"
)

// checkTarget 在构造时一次性判定反射目标的模式并完成装箱
// 既不可调用也不是结构化值的目标直接失败
func checkTarget(target interface{}) (*Reflector, error) {
	if target == nil {
		return nil, rerror.LWarpStdError(rerror.ErrTargetInvalid, "target is nil")
	}
	switch v := target.(type) {
	case object.Callable:
		// 接口值本身非nil但动态值是空指针时同样视为空目标
		if value := reflect.ValueOf(v); (value.Kind() == reflect.Ptr || value.Kind() == reflect.Func) && value.IsNil() {
			return nil, rerror.LWarpStdError(rerror.ErrTargetInvalid, "target is a nil callable")
		}
		return newClassReflector(v), nil
	case *object.Object:
		if v == nil {
			return nil, rerror.LWarpStdError(rerror.ErrTargetInvalid, "target is a nil object")
		}
		return newInstanceReflector(v), nil
	}
	value := reflect.ValueOf(target)
	switch value.Kind() {
	case reflect.Func:
		if value.IsNil() {
			return nil, rerror.LWarpStdError(rerror.ErrTargetInvalid, "target is a nil func")
		}
		fn := object.FuncOf(target)
		return newClassReflector(fn), nil
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Ptr:
		obj, err := object.BoxValue(target)
		if err != nil {
			return nil, rerror.LWarpStdError(rerror.ErrTargetInvalid, err.Error())
		}
		return newInstanceReflector(obj), nil
	default:
		return nil, rerror.LWarpStdError(rerror.ErrTargetInvalid,
			fmt.Sprintf("target type %T", target))
	}
}

func newClassReflector(ctor object.Callable) *Reflector {
	r := &Reflector{
		mode: classMode,
		ctor: ctor,
	}
	if layer, ok := ctor.(object.Layer); ok {
		r.ctorLayer = layer
	} else {
		// 自定义的Callable实现没有自己的属性表,
		// 用一个只带内建元数据的壳做它的层
		r.ctorLayer = object.NewFunc(ctor.Name(), 0, ctor.Call)
	}
	return r
}

func newInstanceReflector(obj *object.Object) *Reflector {
	return &Reflector{
		mode: instanceMode,
		ctor: obj.Class(),
		obj:  obj,
	}
}
