package object

// MethodFunc 注册在原型上的方法体, self是被调用的实例
type MethodFunc func(self *Object, args ...interface{}) (interface{}, error)

// CtorFunc 构造器函数体, 负责初始化self上的自身字段
type CtorFunc func(self *Object, args ...interface{}) error

type classConfig struct {
	parent    *Class
	ctor      CtorFunc
	arity     int
	methods   []namedMethod
	statics   []namedValue
	accessors []namedAccessor
}

type namedMethod struct {
	name string
	fn   MethodFunc
}

type namedValue struct {
	name  string
	value interface{}
}

type namedAccessor struct {
	name   string
	getter Getter
}

type ClassOption func(config *classConfig)

func (opt ClassOption) apply(config *classConfig) {
	opt(config)
}

// WithParent 指定父类, 实例原型和静态成员都会挂到父类的链上
func WithParent(parent *Class) ClassOption {
	return func(config *classConfig) {
		config.parent = parent
	}
}

func WithConstructor(ctor CtorFunc) ClassOption {
	return func(config *classConfig) {
		config.ctor = ctor
	}
}

// WithArity 声明构造器的形参个数, 体现在内建的length属性上
func WithArity(arity int) ClassOption {
	return func(config *classConfig) {
		config.arity = arity
	}
}

// WithMethod 在实例原型上注册一个方法, 注册顺序就是枚举顺序
func WithMethod(name string, fn MethodFunc) ClassOption {
	return func(config *classConfig) {
		config.methods = append(config.methods, namedMethod{name: name, fn: fn})
	}
}

// WithStatic 在类自身注册一个静态成员, 值为函数时会被识别为静态方法
func WithStatic(name string, value interface{}) ClassOption {
	return func(config *classConfig) {
		config.statics = append(config.statics, namedValue{name: name, value: value})
	}
}

// WithAccessor 在实例原型上注册一个计算属性
func WithAccessor(name string, getter Getter) ClassOption {
	return func(config *classConfig) {
		config.accessors = append(config.accessors, namedAccessor{name: name, getter: getter})
	}
}
