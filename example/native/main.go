package main

import (
	"flag"
	"fmt"

	reflector "github.com/nyan233/littlereflect"
	"github.com/nyan233/littlereflect/analysis"
	"github.com/nyan233/littlereflect/pkg/common/logger"
)

var quiet = flag.Bool("quiet", false, "丢弃结构转储, 只输出父类名")

type Animal struct {
	Name string
}

func (a *Animal) Eat() string { return a.Name + " is eating" }

type Dog struct {
	Animal
	Breed string
}

func (d *Dog) Bark() string { return "woof" }

// Go原生值也可以作为反射目标, 匿名字段链会被翻译成委托链
func main() {
	flag.Parse()
	if *quiet {
		logger.DefaultLogger = logger.NilLogger{}
	}
	targets := []interface{}{
		&Dog{Animal: Animal{Name: "Buddy"}, Breed: "Lab"},
		map[string]interface{}{"id": 1024, "name": "hello"},
		[]string{"hello", "world"},
		fmt.Sprintf,
	}
	for _, target := range targets {
		g, err := analysis.Dump(target)
		if err != nil {
			panic(err)
		}
		logger.DefaultLogger.Info("%s", g)
	}
	r, err := reflector.New(&Dog{})
	if err != nil {
		panic(err)
	}
	if parent, ok := r.ParentClassName(); ok {
		fmt.Println("parent :", parent)
	}
}
