package reflect

import (
	"reflect"
	"testing"
)

type animalMock struct {
	Name string
	age  int
}

func (a *animalMock) Eat(food string) string { return a.Name + " eat " + food }

type dogMock struct {
	animalMock
	Breed string
}

func (d *dogMock) Bark() string { return "woof" }

func namedFunc(a int, b string) (string, error) { return b, nil }

func TestFuncName(t *testing.T) {
	if name := FuncName(namedFunc); name != "namedFunc" {
		t.Fatal("FuncName not equal :", name)
	}
	if FuncName(1024) != "" {
		t.Fatal("FuncName on non-func must be empty")
	}
}

func TestFuncArity(t *testing.T) {
	if FuncArity(namedFunc) != 2 {
		t.Fatal("FuncArity not equal")
	}
	if FuncArity("hello") != 0 {
		t.Fatal("FuncArity on non-func must be zero")
	}
}

func TestCallFunc(t *testing.T) {
	results, err := CallFunc(namedFunc, 100, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if results[0].(string) != "hello" {
		t.Fatal("CallFunc result not equal")
	}
	// 参数可转换时自动转换
	results, err = CallFunc(namedFunc, int64(100), "world")
	if err != nil {
		t.Fatal(err)
	}
	if results[0].(string) != "world" {
		t.Fatal("CallFunc convert failed")
	}
	// 参数个数不匹配
	if _, err = CallFunc(namedFunc, 100); err == nil {
		t.Fatal("CallFunc must check arity")
	}
	// panic被转为error
	_, err = CallFunc(func() { panic("boom") })
	if err == nil {
		t.Fatal("CallFunc must recover the panic")
	}
}

func TestEmbeddedParent(t *testing.T) {
	parent, ok := EmbeddedParent(reflect.TypeOf(dogMock{}))
	if !ok || parent.Name() != "animalMock" {
		t.Fatal("EmbeddedParent not equal")
	}
	if _, ok = EmbeddedParent(reflect.TypeOf(animalMock{})); ok {
		t.Fatal("EmbeddedParent on chain top must be false")
	}
}

func TestOwnFieldNames(t *testing.T) {
	names := OwnFieldNames(reflect.TypeOf(dogMock{}))
	if len(names) != 1 || names[0] != "Breed" {
		t.Fatal("OwnFieldNames not equal :", names)
	}
	// 未导出字段不枚举
	names = OwnFieldNames(reflect.TypeOf(animalMock{}))
	if len(names) != 1 || names[0] != "Name" {
		t.Fatal("OwnFieldNames must skip unexported :", names)
	}
}

func TestOwnMethodNames(t *testing.T) {
	names := OwnMethodNames(reflect.TypeOf(dogMock{}), reflect.TypeOf(animalMock{}))
	if len(names) != 1 || names[0] != "Bark" {
		t.Fatal("OwnMethodNames not equal :", names)
	}
	names = OwnMethodNames(reflect.TypeOf(animalMock{}), nil)
	if len(names) != 1 || names[0] != "Eat" {
		t.Fatal("OwnMethodNames on chain top not equal :", names)
	}
}
