package object

import (
	"github.com/nyan233/littlereflect/pkg/container"
)

// Layer 委托链上的一层, 聚合遍历以层为单位推进
// 每一层暴露自身属性名的枚举/成员测试/带保护的读取, 以及上一层的查找
type Layer interface {
	OwnNames() []string
	HasOwn(name string) bool
	TryGet(name string) (interface{}, bool)
	NextLayer() Layer
	Root() bool
}

// Chain 收集从start出发的委托链, start总是包含在内
// start之上的根哨兵不会被收集
func Chain(start Layer) []Layer {
	if start == nil {
		return nil
	}
	layers := []Layer{start}
	for layer := start.NextLayer(); layer != nil && !layer.Root(); layer = layer.NextLayer() {
		layers = append(layers, layer)
	}
	return layers
}

// ChainBeforeRoots 收集根哨兵之前的所有层, start是根时结果为空
func ChainBeforeRoots(start Layer) []Layer {
	var layers []Layer
	for layer := start; layer != nil && !layer.Root(); layer = layer.NextLayer() {
		layers = append(layers, layer)
	}
	return layers
}

// ChainAll 收集包括根哨兵在内的完整委托链
func ChainAll(start Layer) []Layer {
	var layers []Layer
	for layer := start; layer != nil; layer = layer.NextLayer() {
		layers = append(layers, layer)
	}
	return layers
}

// ChainIterator 按从近到远的顺序迭代layers
func ChainIterator(layers []Layer) *container.Iterator[Layer] {
	return container.NewIterator(len(layers), func(current int) Layer {
		return layers[current]
	}, nil)
}
