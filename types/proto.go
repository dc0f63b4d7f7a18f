// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/golang/protobuf/proto"
)

// 基础的交易回执和存储结构，手工维护，保持 protobuf 线上兼容

// KeyValue  数据库中的kv数据, Value为nil表示删除该key
type KeyValue struct {
	Key   []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return proto.CompactTextString(m) }
func (*KeyValue) ProtoMessage()    {}

// GetKey 获取key值
func (m *KeyValue) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

// GetValue 获取value值
func (m *KeyValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

// ReceiptLog 执行交易生成的日志
type ReceiptLog struct {
	Ty  int32  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Log []byte `protobuf:"bytes,2,opt,name=log,proto3" json:"log,omitempty"`
}

func (m *ReceiptLog) Reset()         { *m = ReceiptLog{} }
func (m *ReceiptLog) String() string { return proto.CompactTextString(m) }
func (*ReceiptLog) ProtoMessage()    {}

// GetTy 获取日志类型
func (m *ReceiptLog) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetLog 获取日志内容
func (m *ReceiptLog) GetLog() []byte {
	if m != nil {
		return m.Log
	}
	return nil
}

// Receipt 执行交易的结果
type Receipt struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	KV   []*KeyValue   `protobuf:"bytes,2,rep,name=KV,proto3" json:"KV,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *Receipt) Reset()         { *m = Receipt{} }
func (m *Receipt) String() string { return proto.CompactTextString(m) }
func (*Receipt) ProtoMessage()    {}

// GetTy 获取执行结果
func (m *Receipt) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetKV 获取状态变更
func (m *Receipt) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

// GetLogs 获取日志
func (m *Receipt) GetLogs() []*ReceiptLog {
	if m != nil {
		return m.Logs
	}
	return nil
}

// ReceiptData 交易执行结果的日志部分，exec local阶段的输入
type ReceiptData struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,2,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *ReceiptData) Reset()         { *m = ReceiptData{} }
func (m *ReceiptData) String() string { return proto.CompactTextString(m) }
func (*ReceiptData) ProtoMessage()    {}

// GetTy 获取执行结果类别
func (m *ReceiptData) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetLogs 获取执行日志
func (m *ReceiptData) GetLogs() []*ReceiptLog {
	if m != nil {
		return m.Logs
	}
	return nil
}

// LocalDBSet 本地数据库的kv列表
type LocalDBSet struct {
	KV []*KeyValue `protobuf:"bytes,1,rep,name=KV,proto3" json:"KV,omitempty"`
}

func (m *LocalDBSet) Reset()         { *m = LocalDBSet{} }
func (m *LocalDBSet) String() string { return proto.CompactTextString(m) }
func (*LocalDBSet) ProtoMessage()    {}

// GetKV 获取kv列表
func (m *LocalDBSet) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

// ReqNil 空请求
type ReqNil struct {
}

func (m *ReqNil) Reset()         { *m = ReqNil{} }
func (m *ReqNil) String() string { return proto.CompactTextString(m) }
func (*ReqNil) ProtoMessage()    {}

// ReqKey 按key请求
type ReqKey struct {
	Key []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *ReqKey) Reset()         { *m = ReqKey{} }
func (m *ReqKey) String() string { return proto.CompactTextString(m) }
func (*ReqKey) ProtoMessage()    {}

// GetKey 获取key
func (m *ReqKey) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

// Int64 int64数据
type Int64 struct {
	Data int64 `protobuf:"varint,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Int64) Reset()         { *m = Int64{} }
func (m *Int64) String() string { return proto.CompactTextString(m) }
func (*Int64) ProtoMessage()    {}

// GetData 获取数值
func (m *Int64) GetData() int64 {
	if m != nil {
		return m.Data
	}
	return 0
}

// ReplyString 字符串回复
type ReplyString struct {
	Data string `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReplyString) Reset()         { *m = ReplyString{} }
func (m *ReplyString) String() string { return proto.CompactTextString(m) }
func (*ReplyString) ProtoMessage()    {}

// GetData 获取字符串
func (m *ReplyString) GetData() string {
	if m != nil {
		return m.Data
	}
	return ""
}

// ArrayConfig 数组格式的配置项
type ArrayConfig struct {
	Value []string `protobuf:"bytes,1,rep,name=value,proto3" json:"value,omitempty"`
}

func (m *ArrayConfig) Reset()         { *m = ArrayConfig{} }
func (m *ArrayConfig) String() string { return proto.CompactTextString(m) }
func (*ArrayConfig) ProtoMessage()    {}

// GetValue 获取数组值
func (m *ArrayConfig) GetValue() []string {
	if m != nil {
		return m.Value
	}
	return nil
}

// StringConfig 字符串格式的配置项
type StringConfig struct {
	Value string `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *StringConfig) Reset()         { *m = StringConfig{} }
func (m *StringConfig) String() string { return proto.CompactTextString(m) }
func (*StringConfig) ProtoMessage()    {}

// GetValue 获取字符串值
func (m *StringConfig) GetValue() string {
	if m != nil {
		return m.Value
	}
	return ""
}

// Int32Config int32格式的配置项
type Int32Config struct {
	Value int32 `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Int32Config) Reset()         { *m = Int32Config{} }
func (m *Int32Config) String() string { return proto.CompactTextString(m) }
func (*Int32Config) ProtoMessage()    {}

// GetValue 获取int32值
func (m *Int32Config) GetValue() int32 {
	if m != nil {
		return m.Value
	}
	return 0
}

// ConfigItem manage风格的链上配置项
type ConfigItem struct {
	Key  string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Op   string `protobuf:"bytes,2,opt,name=op,proto3" json:"op,omitempty"`
	Addr string `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
	// Types that are valid to be assigned to Value:
	//	*ConfigItem_Arr
	//	*ConfigItem_Str
	//	*ConfigItem_Int
	Value isConfigItem_Value `protobuf_oneof:"value"`
}

func (m *ConfigItem) Reset()         { *m = ConfigItem{} }
func (m *ConfigItem) String() string { return proto.CompactTextString(m) }
func (*ConfigItem) ProtoMessage()    {}

type isConfigItem_Value interface {
	isConfigItem_Value()
}

// ConfigItem_Arr 数组配置
type ConfigItem_Arr struct {
	Arr *ArrayConfig `protobuf:"bytes,4,opt,name=arr,proto3,oneof"`
}

// ConfigItem_Str 字符串配置
type ConfigItem_Str struct {
	Str *StringConfig `protobuf:"bytes,5,opt,name=str,proto3,oneof"`
}

// ConfigItem_Int int32配置
type ConfigItem_Int struct {
	Int *Int32Config `protobuf:"bytes,6,opt,name=int,proto3,oneof"`
}

func (*ConfigItem_Arr) isConfigItem_Value() {}
func (*ConfigItem_Str) isConfigItem_Value() {}
func (*ConfigItem_Int) isConfigItem_Value() {}

// GetValue 获取配置值
func (m *ConfigItem) GetValue() isConfigItem_Value {
	if m != nil {
		return m.Value
	}
	return nil
}

// GetKey 获取配置key
func (m *ConfigItem) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

// GetOp 获取配置操作
func (m *ConfigItem) GetOp() string {
	if m != nil {
		return m.Op
	}
	return ""
}

// GetAddr 获取配置地址
func (m *ConfigItem) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// GetArr 获取数组配置
func (m *ConfigItem) GetArr() *ArrayConfig {
	if x, ok := m.GetValue().(*ConfigItem_Arr); ok {
		return x.Arr
	}
	return nil
}

// GetStr 获取字符串配置
func (m *ConfigItem) GetStr() *StringConfig {
	if x, ok := m.GetValue().(*ConfigItem_Str); ok {
		return x.Str
	}
	return nil
}

// GetInt 获取int配置
func (m *ConfigItem) GetInt() *Int32Config {
	if x, ok := m.GetValue().(*ConfigItem_Int); ok {
		return x.Int
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*ConfigItem) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*ConfigItem_Arr)(nil),
		(*ConfigItem_Str)(nil),
		(*ConfigItem_Int)(nil),
	}
}
