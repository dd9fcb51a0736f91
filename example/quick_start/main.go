package main

import (
	"fmt"

	reflector "github.com/nyan233/littlereflect"
	"github.com/nyan233/littlereflect/analysis"
	"github.com/nyan233/littlereflect/object"
	"github.com/nyan233/littlereflect/pkg/common/logger"
)

func main() {
	animal := object.NewClass("Animal",
		object.WithArity(1),
		object.WithConstructor(func(self *object.Object, args ...interface{}) error {
			self.Set("name", args[0])
			return nil
		}),
		object.WithMethod("eat", func(self *object.Object, args ...interface{}) (interface{}, error) {
			name, _ := self.TryGet("name")
			return fmt.Sprintf("%v is eating", name), nil
		}),
	)
	dog := object.NewClass("Dog",
		object.WithParent(animal),
		object.WithArity(2),
		object.WithConstructor(func(self *object.Object, args ...interface{}) error {
			self.Set("name", args[0])
			self.Set("breed", args[1])
			return nil
		}),
		object.WithMethod("bark", func(self *object.Object, args ...interface{}) (interface{}, error) {
			return "woof", nil
		}),
	)
	r, err := reflector.New(dog)
	if err != nil {
		panic(err)
	}
	logger.DefaultLogger.Info("%s", r)
	logger.DefaultLogger.Info("%s", analysis.DumpReflector(r))

	instance, err := r.NewInstance("Buddy", "Lab")
	if err != nil {
		panic(err)
	}
	r2, err := reflector.New(instance)
	if err != nil {
		panic(err)
	}
	logger.DefaultLogger.Info("%s", r2)
	logger.DefaultLogger.Info("%s", analysis.DumpReflector(r2))

	rep, err := instance.(*object.Object).Invoke("bark")
	if err != nil {
		panic(err)
	}
	fmt.Println(rep)
}
