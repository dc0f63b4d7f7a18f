// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeIter(t *testing.T) {
	db1 := newGoMemDB(t)
	db2 := newGoMemDB(t)
	db1.Set([]byte("1"), []byte("1"))
	db2.Set([]byte("2"), []byte("2"))

	//合并以后:
	db := NewMergedIteratorDB([]IteratorDB{db1, db2})
	it0 := NewListHelper(db)
	list0 := it0.List(nil, nil, 100, ListDESC)
	assert.Equal(t, 2, len(list0))
	assert.Equal(t, "2", string(list0[0]))
	assert.Equal(t, "1", string(list0[1]))

	list0 = it0.List(nil, nil, 100, ListASC)
	assert.Equal(t, 2, len(list0))
	assert.Equal(t, "1", string(list0[0]))
	assert.Equal(t, "2", string(list0[1]))

	//测试修改: db1 在前，覆盖 db2 中相同的 key
	db1.Set([]byte("2"), []byte("12"))
	list0 = it0.List(nil, nil, 100, ListDESC)
	assert.Equal(t, 2, len(list0))
	assert.Equal(t, "12", string(list0[0]))
	assert.Equal(t, "1", string(list0[1]))

	list0 = it0.List(nil, nil, 100, ListASC)
	assert.Equal(t, 2, len(list0))
	assert.Equal(t, "1", string(list0[0]))
	assert.Equal(t, "12", string(list0[1]))

	//测试删除标记: db1 中的空值屏蔽 db2 中的 key
	db1.Set([]byte("2"), []byte{})
	list0 = it0.List(nil, nil, 100, ListDESC)
	assert.Equal(t, 1, len(list0))
	assert.Equal(t, "1", string(list0[0]))
}

func TestMergeIterSeek(t *testing.T) {
	db1 := newGoMemDB(t)
	db2 := newGoMemDB(t)
	db1.Set([]byte("key1"), []byte("value1"))
	db2.Set([]byte("key4"), []byte("value4"))
	db1.Set([]byte("key7"), []byte("value7"))

	db := NewMergedIteratorDB([]IteratorDB{db1, db2})
	helper := NewListHelper(db)

	values := helper.List([]byte("key"), []byte("key4"), 100, ListASC)
	assert.Equal(t, [][]byte{[]byte("value7")}, values)

	values = helper.List([]byte("key"), []byte("key7"), 100, ListDESC)
	assert.Equal(t, [][]byte{[]byte("value4"), []byte("value1")}, values)
}
