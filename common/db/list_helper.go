// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	log "github.com/inconshreveable/log15"
)

var listlog = log.New("module", "db.ListHelper")

//列表查询的方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
	ListSeek = int32(2)
)

//ListHelper 在可迭代数据库之上实现前缀列表查询
type ListHelper struct {
	db IteratorDB
}

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//PrefixScan 返回前缀下的所有value
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("PrefixScan", "error", it.Error())
			return nil
		}
		value := it.ValueCopy()
		if isDeleteMark(value) {
			continue
		}
		values = append(values, value)
	}
	return
}

//List 前缀列表查询，key 为上一页最后一条的主键，为空时从头（尾）开始
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	if len(key) == 0 {
		if direction == ListASC {
			return db.IteratorScanFromFirst(prefix, count)
		}
		return db.IteratorScanFromLast(prefix, count)
	}
	if count == 1 && direction == ListSeek {
		//反向Seek定位到最后一个 <= key 的位置
		it := db.db.Iterator(prefix, nil, true)
		defer it.Close()
		if !it.Seek(key) || !it.Valid() || isDeleteMark(it.Value()) {
			return nil
		}
		return [][]byte{CloneByte(it.Key()), it.ValueCopy()}
	}
	return db.IteratorScan(prefix, key, count, direction)
}

//IteratorScan 从 key 的下一条开始迭代
func (db *ListHelper) IteratorScan(prefix []byte, key []byte, count int32, direction int32) (values [][]byte) {
	reverse := direction == ListDESC
	it := db.db.Iterator(prefix, nil, reverse)
	defer it.Close()

	it.Seek(key)
	if it.Valid() && bytes.Equal(it.Key(), key) {
		it.Next()
	}
	var i int32
	for ; it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("IteratorScan", "error", it.Error())
			return nil
		}
		value := it.ValueCopy()
		if isDeleteMark(value) {
			continue
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return
}

//IteratorScanFromFirst 从头迭代
func (db *ListHelper) IteratorScanFromFirst(prefix []byte, count int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()

	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("IteratorScanFromFirst", "error", it.Error())
			return nil
		}
		value := it.ValueCopy()
		if isDeleteMark(value) {
			continue
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return
}

//IteratorScanFromLast 从尾迭代
func (db *ListHelper) IteratorScanFromLast(prefix []byte, count int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, true)
	defer it.Close()

	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("IteratorScanFromLast", "error", it.Error())
			return nil
		}
		value := it.ValueCopy()
		if isDeleteMark(value) {
			continue
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return
}

//PrefixCount 前缀下的key数量
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, nil, true)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("PrefixCount", "error", it.Error())
			return 0
		}
		if isDeleteMark(it.Value()) {
			continue
		}
		count++
	}
	return
}

//空值是缓存层的删除标记
func isDeleteMark(v []byte) bool {
	return len(v) == 0
}
