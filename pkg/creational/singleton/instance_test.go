package singleton_test

import (
	"go/token"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/creational/pkg/creational/singleton"
)

func TestGetInstanceIdentity(t *testing.T) {
	s1 := singleton.GetInstance()
	s2 := singleton.GetInstance()

	require.NotNil(t, s1)
	assert.Same(t, s1, s2)
	assert.True(t, s1 == s2)
}

func TestSharedStateVisibility(t *testing.T) {
	s1 := singleton.GetInstance()
	s2 := singleton.GetInstance()

	s1.SetValue(123)
	assert.Equal(t, 123, s2.Value())

	s2.SetValue(456)
	assert.Equal(t, 456, s1.Value())
}

func TestCopiedHandleAliasesInstance(t *testing.T) {
	h := singleton.GetInstance()
	alias := h

	alias.SetValue(789)
	assert.Equal(t, 789, h.Value())
	assert.Equal(t, 789, singleton.GetInstance().Value())
}

func TestInstanceCannotBeConstructedOutsidePackage(t *testing.T) {
	// The zero value of the exported type is an empty handle, not an instance.
	var zero singleton.Instance
	assert.Nil(t, zero)

	// The concrete type and all of its state are unexported.
	typ := reflect.TypeOf(singleton.GetInstance())
	require.Equal(t, reflect.Pointer, typ.Kind())
	elem := typ.Elem()
	assert.False(t, token.IsExported(elem.Name()), "concrete type %s must be unexported", elem.Name())
	for i := 0; i < elem.NumField(); i++ {
		assert.False(t, elem.Field(i).IsExported(), "field %s must be unexported", elem.Field(i).Name)
	}
}

func TestConcurrentGetInstance(t *testing.T) {
	var wg sync.WaitGroup
	handles := make([]singleton.Instance, 100)

	for i := range handles {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			handles[idx] = singleton.GetInstance()
		}(i)
	}
	wg.Wait()

	for _, h := range handles {
		assert.Same(t, handles[0], h)
	}
}

func TestConcurrentSetValue(t *testing.T) {
	inst := singleton.GetInstance()
	var wg sync.WaitGroup

	written := make(map[int]bool)
	for i := range 50 {
		written[i] = true
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			inst.SetValue(v)
		}(i)
		go func() {
			defer wg.Done()
			_ = inst.Value()
		}()
	}
	wg.Wait()

	// Last write under the lock wins; it must be one of the values written.
	assert.True(t, written[inst.Value()])
}
