package rerror

// 定义littlereflect内部会使用到的错误码

type Code int

func (c Code) String() string {
	return mappingStr[c]
}

const (
	Success            = 200  // 成功返回
	Unknown            = 300  // 反射目标返回了错误,但不是littlereflect可以识别的错误
	TargetInvalid      = 1400 // 反射的目标不是可调用对象也不是结构化的值
	TargetNotClass     = 1404 // 操作要求构造器模式,但反射的目标不是一个类构造器
	ConstructionFailed = 1500 // 目标不可以被构造,或者构造器本身返回了错误
)

var mappingStr = map[Code]string{
	Success:            "Success",
	Unknown:            "Unknown",
	TargetInvalid:      "TargetInvalid",
	TargetNotClass:     "TargetNotClass",
	ConstructionFailed: "ConstructionFailed",
}
