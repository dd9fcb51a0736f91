package littlereflect

import (
	"errors"
	"testing"

	"github.com/nyan233/littlereflect/object"
	"github.com/nyan233/littlereflect/rerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTarget(t *testing.T) {
	animal := newAnimalClass()
	buddy, _ := animal.New("Buddy")
	cases := []struct {
		name    string
		target  interface{}
		isClass bool
		wantErr bool
	}{
		{"Class", animal, true, false},
		{"Instance", buddy, false, false},
		{"GoFunc", func() {}, true, false},
		{"GoMap", map[string]interface{}{}, false, false},
		{"GoSlice", []int{1, 2}, false, false},
		{"GoStruct", struct{ Id int }{}, false, false},
		{"Nil", nil, false, true},
		{"Number", 1024, false, true},
		{"String", "hello", false, true},
		{"Bool", true, false, true},
		{"NilObject", (*object.Object)(nil), false, true},
		{"NilFunc", (func())(nil), false, true},
		{"NilClass", (*object.Class)(nil), false, true},
		{"NilCallable", (*object.Func)(nil), false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := New(c.target)
			if c.wantErr {
				require.Error(t, err)
				var desc rerror.LErrorDesc
				require.True(t, errors.As(err, &desc))
				assert.Equal(t, rerror.TargetInvalid, desc.Code())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.isClass, r.IsClass())
			assert.Equal(t, !c.isClass, r.IsInstance())
			assert.Equal(t, c.isClass, r.IsInstantiable())
		})
	}
}
