package rerror

// LErrorDesc 描述littlereflect内部产生的标准错误
type LErrorDesc interface {
	Code() int
	Message() string
	AppendMore(more interface{})
	Mores() []interface{}
	MarshalMores() ([]byte, error)
	UnmarshalMores([]byte) error
	error
}

// LNewErrorDesc 用于生产littlereflect中的标准错误
type LNewErrorDesc func(code int, message string, mores ...interface{}) LErrorDesc

// LWarpErrorDesc 用于包装littlereflect中的标准错误
type LWarpErrorDesc func(desc LErrorDesc, mores ...interface{}) LErrorDesc
