package object

// Getter 计算属性的读取器, 读取失败时返回error
type Getter func() (interface{}, error)

// Property 属性表中的一个槽位, 普通值和计算属性二选一
type Property struct {
	value  interface{}
	getter Getter
}

func valueProperty(value interface{}) *Property {
	return &Property{value: value}
}

func accessorProperty(getter Getter) *Property {
	return &Property{getter: getter}
}

// TryGet 读取属性的当前值
// 计算属性读取失败时按"值不存在"处理, 错误不向上传播,
// 这保证聚合遍历对任何目标都是全函数
func (p *Property) TryGet() (interface{}, bool) {
	if p.getter != nil {
		value, err := p.getter()
		if err != nil {
			return nil, false
		}
		return value, true
	}
	return p.value, true
}
