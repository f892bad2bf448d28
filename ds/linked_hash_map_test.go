package ds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.True(t, len(lhm.Keys()) == 0)

	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("a", 3)

	assert.Equal(t, []string{"a", "b"}, lhm.Keys())
	assert.Equal(t, 2, lhm.Len())
	value, ok := lhm.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, value)
}

func TestLinkedHashMap_MarshalJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("id", "E5 37")
	lhm.Put("dir_entries", 4)
	lhm.Put("blocks", []int{1, 2})

	bs, err := json.Marshal(lhm)
	assert.NoError(t, err)

	assert.Equal(t, `{"id":"E5 37","dir_entries":4,"blocks":[1,2]}`, string(bs))
}

func TestLinkedHashMap_MarshalJSON_Nested(t *testing.T) {
	inner := NewLinkedHashMap[string, any]()
	inner.Put("z", 1)
	inner.Put("a", 2)
	outer := NewLinkedHashMap[string, any]()
	outer.Put("inner", inner)

	bs, err := json.Marshal(outer)
	assert.NoError(t, err)

	assert.Equal(t, `{"inner":{"z":1,"a":2}}`, string(bs))
}
