package rerror

var (
	ErrTargetInvalid = LNewStdError(TargetInvalid,
		"reflect target must be callable or a non-null structured value")
	ErrTargetNotClass = LNewStdError(TargetNotClass,
		"reflect target is not a class constructor")
	ErrConstructionFailed = LNewStdError(ConstructionFailed,
		"TypeError: target can not be constructed")
)
