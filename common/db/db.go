// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 操作数据库的接口和各种backend的实现
package db

import (
	"bytes"
	"fmt"

	"github.com/33cn/escrow/types"
)

//ErrNotFoundInDb 数据库中没有找到对应的key
var ErrNotFoundInDb = types.ErrNotFound

//KV kv存储
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
	Begin()
	Rollback()
	Commit() error
}

//KVDB kv数据库，支持列表功能
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
	PrefixCount(prefix []byte) int64
}

//IteratorDB 支持迭代
type IteratorDB interface {
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

//Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Seek(key []byte) bool
	Next() bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	ValueLen() int
	Reset()
}

//DB 数据库操作接口
type DB interface {
	KV
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	// For debugging
	Print()
	Stats() map[string]string
}

//BaseDB 交易接口的空实现，具体backend不支持事务时使用
type BaseDB struct {
}

//Begin 空实现
func (*BaseDB) Begin() {}

//Rollback 空实现
func (*BaseDB) Rollback() {}

//Commit 空实现
func (*BaseDB) Commit() error { return nil }

//ItBase 迭代器的公共部分
type ItBase struct {
	Start   []byte
	End     []byte
	Reverse bool
}

//CheckKey key是否在[start, end)范围内
func (it *ItBase) CheckKey(key []byte) bool {
	if key == nil {
		return false
	}
	if it.Start != nil && bytes.Compare(key, it.Start) < 0 {
		return false
	}
	if it.End != nil && bytes.Compare(key, it.End) >= 0 {
		return false
	}
	return true
}

//CloneByte 复制字节
func CloneByte(v []byte) []byte {
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

//BytesPrefix 前缀范围的结束key
func BytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}

//数据库backend
const (
	LevelDBBackendStr   = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr = "goleveldb"
	MemDBBackendStr     = "memdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

//RegisterDBCreator 注册backend
func RegisterDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB new
func NewDB(name string, backend string, dir string, cache int32) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := dbCreator(name, dir, int(cache))
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}
