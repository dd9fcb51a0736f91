package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nativeAnimal struct {
	Name string
}

func (a *nativeAnimal) Eat() string { return a.Name + " is eating" }

type nativeDog struct {
	nativeAnimal
	Breed string
}

func (d *nativeDog) Bark() string { return "woof" }

func TestBoxStruct(t *testing.T) {
	obj, err := BoxValue(&nativeDog{
		nativeAnimal: nativeAnimal{Name: "Buddy"},
		Breed:        "Lab",
	})
	assert.Nil(t, err)
	assert.Equal(t, "nativeDog", obj.Class().Name())
	// 祖先的字段在前, 自身的字段在后
	assert.Equal(t, []string{"Name", "Breed"}, obj.OwnNames())
	// 匿名字段链被翻译成委托链
	assert.True(t, obj.Proto().HasOwn("Bark"))
	assert.False(t, obj.Proto().HasOwn("Eat"))
	assert.True(t, obj.Proto().Proto().HasOwn("Eat"))
	parent := obj.Proto().Proto().Class()
	assert.Equal(t, "nativeAnimal", parent.Name())
	// 同一类型只合成一次
	obj2, err := BoxValue(nativeDog{})
	assert.Nil(t, err)
	assert.Equal(t, obj.Class(), obj2.Class())
}

func TestBoxMap(t *testing.T) {
	obj, err := BoxValue(map[string]interface{}{
		"name": "Buddy",
		"id":   1024,
		"say":  func() string { return "hello" },
	})
	assert.Nil(t, err)
	// map的键按字面序稳定枚举
	assert.Equal(t, []string{"id", "name", "say"}, obj.OwnNames())
	assert.Equal(t, ObjectProto, obj.Proto())
	value, ok := obj.TryGet("say")
	assert.True(t, ok)
	assert.True(t, IsCallableValue(value))
}

func TestBoxSequence(t *testing.T) {
	obj, err := BoxValue([]string{"hello", "world"})
	assert.Nil(t, err)
	assert.Equal(t, ArrayClass, obj.Class())
	assert.Equal(t, []string{"0", "1", "length"}, obj.OwnNames())
	length, _ := obj.TryGet("length")
	assert.Equal(t, 2, length)
}

func TestBoxInvalid(t *testing.T) {
	_, err := BoxValue(nil)
	assert.NotNil(t, err)
	_, err = BoxValue(1024)
	assert.NotNil(t, err)
	var nilPtr *nativeDog
	_, err = BoxValue(nilPtr)
	assert.NotNil(t, err)
}

func TestFuncOf(t *testing.T) {
	fn := FuncOf(func(a int, b int) int { return a + b })
	assert.Equal(t, 2, fn.Arity())
	rep, err := fn.Call(1, 2)
	assert.Nil(t, err)
	assert.Equal(t, 3, rep)
	// name/length是函数仅有的自身属性
	assert.Equal(t, []string{"name", "length"}, fn.OwnNames())
}
