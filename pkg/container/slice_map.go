package container

type mapNode[K comparable, V any] struct {
	Key     K
	Value   V
	StoreOk bool
}

// SliceMap 保证遍历顺序等于插入顺序的Map, 适合Key数量不多
// 且需要稳定枚举顺序的场景, 比如对象的属性表
type SliceMap[K comparable, V any] struct {
	nodes  []mapNode[K, V]
	length int
}

func NewSliceMap[K comparable, V any](size int) *SliceMap[K, V] {
	return &SliceMap[K, V]{
		nodes: make([]mapNode[K, V], 0, size),
	}
}

func (m *SliceMap[K, V]) Reset() {
	m.length = 0
	m.nodes = m.nodes[:0]
}

func (m *SliceMap[K, V]) Store(key K, value V) {
	// 先整表找存活的同Key原地更新, 否则同一个Key会在
	// 被复用的空槽和后面的活槽里出现两次
	freeIndex := -1
	for index, node := range m.nodes {
		if node.StoreOk && node.Key == key {
			node.Value = value
			m.nodes[index] = node
			return
		}
		if !node.StoreOk && freeIndex == -1 {
			freeIndex = index
		}
	}
	if freeIndex >= 0 {
		m.nodes[freeIndex] = mapNode[K, V]{
			Key:     key,
			Value:   value,
			StoreOk: true,
		}
		m.length++
		return
	}
	m.nodes = append(m.nodes, mapNode[K, V]{
		Key:     key,
		Value:   value,
		StoreOk: true,
	})
	m.length++
}

func (m *SliceMap[K, V]) Load(key K) V {
	v, _ := m.LoadOk(key)
	return v
}

func (m *SliceMap[K, V]) LoadOk(key K) (V, bool) {
	for _, node := range m.nodes {
		if node.StoreOk && node.Key == key {
			return node.Value, true
		}
	}
	return *new(V), false
}

func (m *SliceMap[K, V]) Delete(key K) {
	for index, node := range m.nodes {
		if node.StoreOk && node.Key == key {
			node.StoreOk = false
			node.Key = *new(K)
			node.Value = *new(V)
			m.nodes[index] = node
			m.length--
			return
		}
	}
}

// Keys 按插入顺序返回所有Key
func (m *SliceMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.length)
	for _, node := range m.nodes {
		if node.StoreOk {
			keys = append(keys, node.Key)
		}
	}
	return keys
}

func (m *SliceMap[K, V]) Range(fn func(K, V) (next bool)) {
	for _, node := range m.nodes {
		if node.StoreOk {
			if !fn(node.Key, node.Value) {
				return
			}
		}
	}
}

func (m *SliceMap[K, V]) Len() int {
	return m.length
}

func (m *SliceMap[K, V]) Cap() int {
	return cap(m.nodes)
}
