// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sync"
)

//LocalDB 在maindb之上叠加两层内存缓存，Begin/Commit把交易内的修改合并到缓存，
//读和列表查询都不会写穿到maindb
type LocalDB struct {
	txcache  DB
	cache    DB
	maindb   DB
	intx     bool
	readOnly bool
	mu       sync.RWMutex
}

func newMemDB() DB {
	memdb, err := NewGoMemDB("", "", 0)
	if err != nil {
		panic(err)
	}
	return memdb
}

//NewLocalDB new
func NewLocalDB(maindb DB, readOnly bool) KVDB {
	if readOnly {
		//只读模式不需要memdb，比如交易检查，减少内存开销
		return &LocalDB{
			maindb:   maindb,
			readOnly: true,
		}
	}
	return &LocalDB{
		cache:   newMemDB(),
		txcache: newMemDB(),
		maindb:  maindb,
	}
}

//Get get
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	value, err := l.get(key)
	if isDeleteMark(value) {
		//空值是删除标记(要删除key就Set一个空值)
		return nil, ErrNotFoundInDb
	}
	return value, err
}

func (l *LocalDB) get(key []byte) ([]byte, error) {
	if l.intx && l.txcache != nil {
		if value, err := l.txcache.Get(key); err == nil {
			return value, nil
		}
	}
	if l.cache != nil {
		if value, err := l.cache.Get(key); err == nil {
			return value, nil
		}
	}
	value, err := l.maindb.Get(key)
	if err != nil {
		return nil, err
	}
	if l.cache != nil {
		err = l.cache.Set(key, value)
		if err != nil {
			panic(err)
		}
	}
	return value, nil
}

//Set set
func (l *LocalDB) Set(key []byte, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.readOnly {
		panic("set local db in read only mode")
	}
	if l.intx {
		if l.txcache == nil {
			l.txcache = newMemDB()
		}
		setdb(l.txcache, key, value)
	} else if l.cache != nil {
		setdb(l.cache, key, value)
	}
	return nil
}

//List 列表查询，交易内的修改也能查到
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	helper := NewListHelper(NewMergedIteratorDB(l.dblist()))
	return helper.List(prefix, key, count, direction), nil
}

//PrefixCount 前缀下的key数量
func (l *LocalDB) PrefixCount(prefix []byte) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	helper := NewListHelper(NewMergedIteratorDB(l.dblist()))
	return helper.PrefixCount(prefix)
}

//叠加顺序txcache->cache->maindb，新的在前
func (l *LocalDB) dblist() []IteratorDB {
	dblist := make([]IteratorDB, 0, 3)
	if l.intx && l.txcache != nil {
		dblist = append(dblist, l.txcache)
	}
	if l.cache != nil {
		dblist = append(dblist, l.cache)
	}
	if l.maindb != nil {
		dblist = append(dblist, l.maindb)
	}
	return dblist
}

//Begin 开启内存事务
func (l *LocalDB) Begin() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intx = true
	l.txcache = nil
}

//Rollback 回滚事务内的修改
func (l *LocalDB) Rollback() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetTx()
}

//Commit 把事务内的修改合并到cache
func (l *LocalDB) Commit() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.txcache == nil {
		l.resetTx()
		return nil
	}
	it := l.txcache.Iterator(nil, nil, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		err := l.cache.Set(it.Key(), it.Value())
		if err != nil {
			panic(err)
		}
	}
	l.resetTx()
	return nil
}

func (l *LocalDB) resetTx() {
	l.intx = false
	l.txcache = nil
}

func setdb(d DB, key []byte, value []byte) {
	err := d.Set(key, value)
	if err != nil {
		panic(err)
	}
}
