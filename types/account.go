// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/golang/protobuf/proto"
)

// Account 账户信息
type Account struct {
	// coins标识，目前只有0 一个值
	Currency int32 `protobuf:"varint,1,opt,name=currency,proto3" json:"currency,omitempty"`
	// 可用金额
	Balance int64 `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	// 冻结金额
	Frozen int64 `protobuf:"varint,3,opt,name=frozen,proto3" json:"frozen,omitempty"`
	// 账户地址
	Addr string `protobuf:"bytes,4,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

// GetCurrency 获取币种
func (m *Account) GetCurrency() int32 {
	if m != nil {
		return m.Currency
	}
	return 0
}

// GetBalance 获取可用金额
func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

// GetFrozen 获取冻结金额
func (m *Account) GetFrozen() int64 {
	if m != nil {
		return m.Frozen
	}
	return 0
}

// GetAddr 获取账户地址
func (m *Account) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReceiptAccountTransfer 转账交易收据
type ReceiptAccountTransfer struct {
	//转移前
	Prev *Account `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	//转移后
	Current *Account `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptAccountTransfer) Reset()         { *m = ReceiptAccountTransfer{} }
func (m *ReceiptAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptAccountTransfer) ProtoMessage()    {}

// GetPrev 获取转移前账户
func (m *ReceiptAccountTransfer) GetPrev() *Account {
	if m != nil {
		return m.Prev
	}
	return nil
}

// GetCurrent 获取转移后账户
func (m *ReceiptAccountTransfer) GetCurrent() *Account {
	if m != nil {
		return m.Current
	}
	return nil
}

// ReceiptExecAccountTransfer 执行器账户变更收据
type ReceiptExecAccountTransfer struct {
	//合约地址
	ExecAddr string `protobuf:"bytes,1,opt,name=execAddr,proto3" json:"execAddr,omitempty"`
	//转移前
	Prev *Account `protobuf:"bytes,2,opt,name=prev,proto3" json:"prev,omitempty"`
	//转移后
	Current *Account `protobuf:"bytes,3,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptExecAccountTransfer) Reset()         { *m = ReceiptExecAccountTransfer{} }
func (m *ReceiptExecAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptExecAccountTransfer) ProtoMessage()    {}

// GetExecAddr 获取合约地址
func (m *ReceiptExecAccountTransfer) GetExecAddr() string {
	if m != nil {
		return m.ExecAddr
	}
	return ""
}

// GetPrev 获取变更前账户
func (m *ReceiptExecAccountTransfer) GetPrev() *Account {
	if m != nil {
		return m.Prev
	}
	return nil
}

// GetCurrent 获取变更后账户
func (m *ReceiptExecAccountTransfer) GetCurrent() *Account {
	if m != nil {
		return m.Current
	}
	return nil
}
