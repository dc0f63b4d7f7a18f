// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/33cn/escrow/account"
	dbm "github.com/33cn/escrow/common/db"
	"github.com/33cn/escrow/types"
)

// Driver 执行器驱动接口
type Driver interface {
	SetStateDB(dbm.KV)
	SetLocalDB(dbm.KVDB)
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	//执行器的别名(一个驱动允许创建多个执行器)
	GetName() string
	//设置执行器的真实名称
	SetName(string)
	SetEnv(height, blocktime int64)
	SetConfig(cfg *types.Config)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase 实现Driver接口的公共部分
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	name         string
	child        Driver
	cfg          *types.Config
}

// SetChild 挂载子执行器，实现虚函数调用
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
}

// SetEnv 设置当前区块的高度和时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// SetConfig 设置链配置
func (d *DriverBase) SetConfig(cfg *types.Config) {
	d.cfg = cfg
}

// GetConfig 获取链配置，未设置时返回默认配置
func (d *DriverBase) GetConfig() *types.Config {
	if d.cfg == nil {
		d.cfg = &types.Config{}
	}
	return d.cfg
}

// Exec 基类不执行任何交易
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, nil
}

// ExecLocal 基类生成空的kv列表
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	return &set, nil
}

// ExecDelLocal 基类生成空的kv列表
func (d *DriverBase) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	return &set, nil
}

// Query 基类不支持查询
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	return nil, types.ErrQueryNotSupport
}

// CheckTx 默认情况下，tx.To 地址指向合约地址
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	execer := string(tx.Execer)
	if ExecAddress(execer) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

// SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(d.GetConfig())
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

// GetStateDB get
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB 设置本地索引数据库
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB get
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetHeight 当前区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetName 获取执行器的别名
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

// SetName 设置执行器的别名
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetCoinsAccount 获取主币的账户DB
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(d.GetConfig())
		d.coinsaccount.SetDB(d.statedb)
	}
	return d.coinsaccount
}

// GetDriverName 基类不指定驱动名
func (d *DriverBase) GetDriverName() string {
	return "driver"
}
