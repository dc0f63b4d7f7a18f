// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"strconv"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var mlog = log.New("module", "db.memdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	RegisterDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB 基于goleveldb memdb的内存数据库
type GoMemDB struct {
	BaseDB
	db *memdb.DB
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: memdb.New(comparer.DefaultComparer, 0)}, nil
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	v, err := db.db.Get(key)
	if err != nil {
		return nil, ErrNotFoundInDb
	}
	return CloneByte(v), nil
}

//Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	err := db.db.Put(key, value)
	if err != nil {
		mlog.Error("Set", "error", err)
		return err
	}
	return nil
}

//SetSync 同步set
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	err := db.db.Delete(key)
	if err != nil && err != memdb.ErrNotFound {
		mlog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//DeleteSync 同步删除
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close 关闭
func (db *GoMemDB) Close() {
	db.db.Reset()
}

//Print 打印
func (db *GoMemDB) Print() {
	it := db.db.NewIterator(nil)
	defer it.Release()
	for it.Next() {
		mlog.Info("Print", "key", string(it.Key()), "value", string(it.Value()))
	}
}

//Stats 状态
func (db *GoMemDB) Stats() map[string]string {
	return map[string]string{
		"memdb.size": strconv.Itoa(db.db.Size()),
	}
}

//Iterator 生成迭代器
func (db *GoMemDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	if end == nil {
		end = BytesPrefix(start)
	}
	r := &util.Range{Start: start, Limit: end}
	it := db.db.NewIterator(r)
	return &goLevelDBIt{Iterator: it, ItBase: ItBase{Start: start, End: end, Reverse: reverse}}
}

type memBatch struct {
	db   *GoMemDB
	sets []kvpair
	size int
	len  int
}

type kvpair struct {
	key, value []byte
	isdelete   bool
}

//NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	b.sets = append(b.sets, kvpair{CloneByte(key), CloneByte(value), false})
	b.size += len(key)
	b.size += len(value)
	b.len += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.sets = append(b.sets, kvpair{CloneByte(key), nil, true})
	b.size += len(key)
	b.len++
}

func (b *memBatch) Write() error {
	var err error
	for _, kv := range b.sets {
		if kv.isdelete {
			err = b.db.Delete(kv.key)
		} else {
			err = b.db.Set(kv.key, kv.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) ValueLen() int {
	return b.len
}

func (b *memBatch) Reset() {
	b.sets = b.sets[:0]
	b.size = 0
	b.len = 0
}
