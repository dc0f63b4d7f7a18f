// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

//合并多个迭代器成一个迭代器

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb/comparer"
)

type dir int

const (
	dirReleased dir = iota - 1
	dirSOI
	dirEOI
	dirForward
)

//合并错误列表
var (
	ErrIterReleased = errors.New("ErrIterReleased")
)

//mergedIterator 按 key 顺序合并多个迭代器。
//多个迭代器包含同一个 key 时，序号小的迭代器优先，其余的被屏蔽。
type mergedIterator struct {
	ItBase
	cmp    comparer.Comparer
	iters  []Iterator
	strict bool

	keys  [][]byte
	index int
	dir   dir
	err   error
}

func assertKey(key []byte) []byte {
	if key == nil {
		panic("db: merged iterator: nil key")
	}
	return key
}

func (i *mergedIterator) iterErr(iter Iterator) bool {
	if err := iter.Error(); err != nil {
		if i.strict {
			i.err = err
			return true
		}
	}
	return false
}

func (i *mergedIterator) Valid() bool {
	return i.err == nil && i.dir > dirEOI
}

func (i *mergedIterator) Rewind() bool {
	if i.err != nil {
		return false
	} else if i.dir == dirReleased {
		i.err = ErrIterReleased
		return false
	}

	for x, iter := range i.iters {
		switch {
		case iter.Rewind():
			i.keys[x] = assertKey(iter.Key())
		case i.iterErr(iter):
			return false
		default:
			i.keys[x] = nil
		}
	}
	i.dir = dirSOI
	return i.next()
}

func (i *mergedIterator) Seek(key []byte) bool {
	if i.err != nil {
		return false
	} else if i.dir == dirReleased {
		i.err = ErrIterReleased
		return false
	}

	for x, iter := range i.iters {
		switch {
		case iter.Seek(key):
			i.keys[x] = assertKey(iter.Key())
		case i.iterErr(iter):
			return false
		default:
			i.keys[x] = nil
		}
	}
	i.dir = dirSOI
	return i.next()
}

//compare 反向迭代时反转比较方向
func (i *mergedIterator) compare(a, b []byte) int {
	if i.Reverse {
		return i.cmp.Compare(b, a)
	}
	return i.cmp.Compare(a, b)
}

func (i *mergedIterator) next() bool {
	var key []byte
	i.index = -1
	for x, tkey := range i.keys {
		if tkey == nil {
			continue
		}
		if key == nil || i.compare(tkey, key) < 0 {
			key = tkey
			i.index = x
		}
	}
	if key == nil {
		i.dir = dirEOI
		return false
	}
	i.dir = dirForward
	return true
}

func (i *mergedIterator) Next() bool {
	if i.dir == dirEOI || i.err != nil {
		return false
	} else if i.dir == dirReleased {
		i.err = ErrIterReleased
		return false
	}
	if i.dir == dirSOI {
		return i.Rewind()
	}

	//所有停在当前 key 上的迭代器都要前进，低层被屏蔽的同名 key 直接跳过
	key := append([]byte{}, i.keys[i.index]...)
	for x, tkey := range i.keys {
		if tkey == nil || i.cmp.Compare(tkey, key) != 0 {
			continue
		}
		iter := i.iters[x]
		switch {
		case iter.Next():
			i.keys[x] = assertKey(iter.Key())
		case i.iterErr(iter):
			return false
		default:
			i.keys[x] = nil
		}
	}
	return i.next()
}

func (i *mergedIterator) Key() []byte {
	if i.err != nil || i.dir <= dirEOI {
		return nil
	}
	return i.keys[i.index]
}

func (i *mergedIterator) Value() []byte {
	if i.err != nil || i.dir <= dirEOI {
		return nil
	}
	return i.iters[i.index].Value()
}

func (i *mergedIterator) ValueCopy() []byte {
	if i.err != nil || i.dir <= dirEOI {
		return nil
	}
	return CloneByte(i.iters[i.index].Value())
}

func (i *mergedIterator) Close() {
	if i.dir != dirReleased {
		i.dir = dirReleased
		for _, iter := range i.iters {
			iter.Close()
		}
		i.iters = nil
		i.keys = nil
	}
}

func (i *mergedIterator) Error() error {
	return i.err
}

//NewMergedIterator 合并一组迭代器，reverse 需要和子迭代器的方向一致
func NewMergedIterator(iters []Iterator, reverse bool) Iterator {
	return &mergedIterator{
		ItBase: ItBase{Reverse: reverse},
		iters:  iters,
		cmp:    comparer.DefaultComparer,
		strict: true,
		keys:   make([][]byte, len(iters)),
	}
}

type mergedIteratorDB struct {
	iters []IteratorDB
}

//NewMergedIteratorDB 合并多个可迭代数据库，排在前面的数据库优先
func NewMergedIteratorDB(iters []IteratorDB) IteratorDB {
	return &mergedIteratorDB{iters: iters}
}

func (m *mergedIteratorDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	its := make([]Iterator, len(m.iters))
	for x, it := range m.iters {
		its[x] = it.Iterator(start, end, reverse)
	}
	return NewMergedIterator(its, reverse)
}
