// analysis 把一个反射目标的结构快照整理成可读的图
// 用于调试和示例输出, 不属于Reflector的查询契约
package analysis

import (
	"encoding/json"

	reflector "github.com/nyan233/littlereflect"
	"github.com/nyan233/littlereflect/pkg/utils/convert"
)

type Graph struct {
	Kind          string   `json:"kind"`
	Name          string   `json:"name"`
	Parent        string   `json:"parent"`
	Instantiable  bool     `json:"instantiable"`
	OwnProperties []string `json:"own_properties"`
	Properties    []string `json:"properties"`
	OwnMethods    []string `json:"own_methods"`
	Methods       []string `json:"methods"`
}

func (g *Graph) String() string {
	bytes, err := json.Marshal(g)
	if err != nil {
		panic(err)
	}
	return convert.BytesToString(bytes)
}

// Dump 针对目标构造一次性的Reflector并取出完整快照
func Dump(target interface{}) (*Graph, error) {
	r, err := reflector.New(target)
	if err != nil {
		return nil, err
	}
	return DumpReflector(r), nil
}

func DumpReflector(r *reflector.Reflector) *Graph {
	g := &Graph{
		Name:          r.Name(),
		Instantiable:  r.IsInstantiable(),
		OwnProperties: r.OwnProperties(),
		Properties:    r.Properties(),
		OwnMethods:    r.OwnMethods(),
		Methods:       r.Methods(),
	}
	if r.IsClass() {
		g.Kind = "class"
	} else {
		g.Kind = "object"
	}
	if parent, ok := r.ParentClassName(); ok {
		g.Parent = parent
	}
	return g
}
