// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/golang/protobuf/proto"
)

// EscrowCreate 创建托管记录
// commit-reveal模式下partyA/partyB都必填，brokered模式下partyB可以后续accept绑定
type EscrowCreate struct {
	StakeAmount int64  `protobuf:"varint,1,opt,name=stakeAmount,proto3" json:"stakeAmount,omitempty"`
	PartyA      string `protobuf:"bytes,2,opt,name=partyA,proto3" json:"partyA,omitempty"`
	PartyB      string `protobuf:"bytes,3,opt,name=partyB,proto3" json:"partyB,omitempty"`
	Arbiter     string `protobuf:"bytes,4,opt,name=arbiter,proto3" json:"arbiter,omitempty"`
	Mode        int32  `protobuf:"varint,5,opt,name=mode,proto3" json:"mode,omitempty"`
	Direction   int32  `protobuf:"varint,6,opt,name=direction,proto3" json:"direction,omitempty"`
}

func (m *EscrowCreate) Reset()         { *m = EscrowCreate{} }
func (m *EscrowCreate) String() string { return proto.CompactTextString(m) }
func (*EscrowCreate) ProtoMessage()    {}

// GetStakeAmount 获取押金
func (m *EscrowCreate) GetStakeAmount() int64 {
	if m != nil {
		return m.StakeAmount
	}
	return 0
}

// GetPartyA 获取甲方地址
func (m *EscrowCreate) GetPartyA() string {
	if m != nil {
		return m.PartyA
	}
	return ""
}

// GetPartyB 获取乙方地址
func (m *EscrowCreate) GetPartyB() string {
	if m != nil {
		return m.PartyB
	}
	return ""
}

// GetArbiter 获取仲裁人地址
func (m *EscrowCreate) GetArbiter() string {
	if m != nil {
		return m.Arbiter
	}
	return ""
}

// GetMode 获取托管模式
func (m *EscrowCreate) GetMode() int32 {
	if m != nil {
		return m.Mode
	}
	return 0
}

// GetDirection 获取交易方向
func (m *EscrowCreate) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

// EscrowAccept 接受brokered模式的挂单，绑定乙方
type EscrowAccept struct {
	RecordId string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
}

func (m *EscrowAccept) Reset()         { *m = EscrowAccept{} }
func (m *EscrowAccept) String() string { return proto.CompactTextString(m) }
func (*EscrowAccept) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *EscrowAccept) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// EscrowCommit 提交选择的承诺哈希和密钥哈希
type EscrowCommit struct {
	RecordId       string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
	CommitmentHash []byte `protobuf:"bytes,2,opt,name=commitmentHash,proto3" json:"commitmentHash,omitempty"`
	SecretHash     []byte `protobuf:"bytes,3,opt,name=secretHash,proto3" json:"secretHash,omitempty"`
}

func (m *EscrowCommit) Reset()         { *m = EscrowCommit{} }
func (m *EscrowCommit) String() string { return proto.CompactTextString(m) }
func (*EscrowCommit) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *EscrowCommit) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// GetCommitmentHash 获取承诺哈希 sha256(choice+secret)
func (m *EscrowCommit) GetCommitmentHash() []byte {
	if m != nil {
		return m.CommitmentHash
	}
	return nil
}

// GetSecretHash 获取密钥哈希 sha256(secret)
func (m *EscrowCommit) GetSecretHash() []byte {
	if m != nil {
		return m.SecretHash
	}
	return nil
}

// EscrowReveal 公开密钥
type EscrowReveal struct {
	RecordId string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
	Secret   []byte `protobuf:"bytes,2,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (m *EscrowReveal) Reset()         { *m = EscrowReveal{} }
func (m *EscrowReveal) String() string { return proto.CompactTextString(m) }
func (*EscrowReveal) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *EscrowReveal) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// GetSecret 获取密钥
func (m *EscrowReveal) GetSecret() []byte {
	if m != nil {
		return m.Secret
	}
	return nil
}

// EscrowMarkComplete brokered模式下单方确认完成
type EscrowMarkComplete struct {
	RecordId string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
}

func (m *EscrowMarkComplete) Reset()         { *m = EscrowMarkComplete{} }
func (m *EscrowMarkComplete) String() string { return proto.CompactTextString(m) }
func (*EscrowMarkComplete) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *EscrowMarkComplete) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// EscrowCancel 创建者撤销未被接受的挂单
type EscrowCancel struct {
	RecordId string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
}

func (m *EscrowCancel) Reset()         { *m = EscrowCancel{} }
func (m *EscrowCancel) String() string { return proto.CompactTextString(m) }
func (*EscrowCancel) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *EscrowCancel) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// EscrowOpenDispute 参与方发起争议，之后只有仲裁人可以结束记录
type EscrowOpenDispute struct {
	RecordId string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
}

func (m *EscrowOpenDispute) Reset()         { *m = EscrowOpenDispute{} }
func (m *EscrowOpenDispute) String() string { return proto.CompactTextString(m) }
func (*EscrowOpenDispute) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *EscrowOpenDispute) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// EscrowResolveDispute 仲裁人裁决
type EscrowResolveDispute struct {
	RecordId    string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
	FavorPartyA bool   `protobuf:"varint,2,opt,name=favorPartyA,proto3" json:"favorPartyA,omitempty"`
}

func (m *EscrowResolveDispute) Reset()         { *m = EscrowResolveDispute{} }
func (m *EscrowResolveDispute) String() string { return proto.CompactTextString(m) }
func (*EscrowResolveDispute) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *EscrowResolveDispute) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// GetFavorPartyA 是否裁决给甲方
func (m *EscrowResolveDispute) GetFavorPartyA() bool {
	if m != nil {
		return m.FavorPartyA
	}
	return false
}

// EscrowForceSettle 超时后任何人可以发起清算
type EscrowForceSettle struct {
	RecordId string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
}

func (m *EscrowForceSettle) Reset()         { *m = EscrowForceSettle{} }
func (m *EscrowForceSettle) String() string { return proto.CompactTextString(m) }
func (*EscrowForceSettle) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *EscrowForceSettle) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// EscrowAction 托管合约的所有操作
type EscrowAction struct {
	// Types that are valid to be assigned to Value:
	//	*EscrowAction_Create
	//	*EscrowAction_Accept
	//	*EscrowAction_Commit
	//	*EscrowAction_Reveal
	//	*EscrowAction_MarkComplete
	//	*EscrowAction_Cancel
	//	*EscrowAction_OpenDispute
	//	*EscrowAction_ResolveDispute
	//	*EscrowAction_ForceSettle
	Value isEscrowAction_Value `protobuf_oneof:"value"`
	Ty    int32                `protobuf:"varint,10,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *EscrowAction) Reset()         { *m = EscrowAction{} }
func (m *EscrowAction) String() string { return proto.CompactTextString(m) }
func (*EscrowAction) ProtoMessage()    {}

type isEscrowAction_Value interface {
	isEscrowAction_Value()
}

type EscrowAction_Create struct {
	Create *EscrowCreate `protobuf:"bytes,1,opt,name=create,proto3,oneof"`
}

type EscrowAction_Accept struct {
	Accept *EscrowAccept `protobuf:"bytes,2,opt,name=accept,proto3,oneof"`
}

type EscrowAction_Commit struct {
	Commit *EscrowCommit `protobuf:"bytes,3,opt,name=commit,proto3,oneof"`
}

type EscrowAction_Reveal struct {
	Reveal *EscrowReveal `protobuf:"bytes,4,opt,name=reveal,proto3,oneof"`
}

type EscrowAction_MarkComplete struct {
	MarkComplete *EscrowMarkComplete `protobuf:"bytes,5,opt,name=markComplete,proto3,oneof"`
}

type EscrowAction_Cancel struct {
	Cancel *EscrowCancel `protobuf:"bytes,6,opt,name=cancel,proto3,oneof"`
}

type EscrowAction_OpenDispute struct {
	OpenDispute *EscrowOpenDispute `protobuf:"bytes,7,opt,name=openDispute,proto3,oneof"`
}

type EscrowAction_ResolveDispute struct {
	ResolveDispute *EscrowResolveDispute `protobuf:"bytes,8,opt,name=resolveDispute,proto3,oneof"`
}

type EscrowAction_ForceSettle struct {
	ForceSettle *EscrowForceSettle `protobuf:"bytes,9,opt,name=forceSettle,proto3,oneof"`
}

func (*EscrowAction_Create) isEscrowAction_Value()         {}
func (*EscrowAction_Accept) isEscrowAction_Value()         {}
func (*EscrowAction_Commit) isEscrowAction_Value()         {}
func (*EscrowAction_Reveal) isEscrowAction_Value()         {}
func (*EscrowAction_MarkComplete) isEscrowAction_Value()   {}
func (*EscrowAction_Cancel) isEscrowAction_Value()         {}
func (*EscrowAction_OpenDispute) isEscrowAction_Value()    {}
func (*EscrowAction_ResolveDispute) isEscrowAction_Value() {}
func (*EscrowAction_ForceSettle) isEscrowAction_Value()    {}

// GetValue 获取oneof值
func (m *EscrowAction) GetValue() isEscrowAction_Value {
	if m != nil {
		return m.Value
	}
	return nil
}

// GetTy 获取action类型
func (m *EscrowAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetCreate ...
func (m *EscrowAction) GetCreate() *EscrowCreate {
	if x, ok := m.GetValue().(*EscrowAction_Create); ok {
		return x.Create
	}
	return nil
}

// GetAccept ...
func (m *EscrowAction) GetAccept() *EscrowAccept {
	if x, ok := m.GetValue().(*EscrowAction_Accept); ok {
		return x.Accept
	}
	return nil
}

// GetCommit ...
func (m *EscrowAction) GetCommit() *EscrowCommit {
	if x, ok := m.GetValue().(*EscrowAction_Commit); ok {
		return x.Commit
	}
	return nil
}

// GetReveal ...
func (m *EscrowAction) GetReveal() *EscrowReveal {
	if x, ok := m.GetValue().(*EscrowAction_Reveal); ok {
		return x.Reveal
	}
	return nil
}

// GetMarkComplete ...
func (m *EscrowAction) GetMarkComplete() *EscrowMarkComplete {
	if x, ok := m.GetValue().(*EscrowAction_MarkComplete); ok {
		return x.MarkComplete
	}
	return nil
}

// GetCancel ...
func (m *EscrowAction) GetCancel() *EscrowCancel {
	if x, ok := m.GetValue().(*EscrowAction_Cancel); ok {
		return x.Cancel
	}
	return nil
}

// GetOpenDispute ...
func (m *EscrowAction) GetOpenDispute() *EscrowOpenDispute {
	if x, ok := m.GetValue().(*EscrowAction_OpenDispute); ok {
		return x.OpenDispute
	}
	return nil
}

// GetResolveDispute ...
func (m *EscrowAction) GetResolveDispute() *EscrowResolveDispute {
	if x, ok := m.GetValue().(*EscrowAction_ResolveDispute); ok {
		return x.ResolveDispute
	}
	return nil
}

// GetForceSettle ...
func (m *EscrowAction) GetForceSettle() *EscrowForceSettle {
	if x, ok := m.GetValue().(*EscrowAction_ForceSettle); ok {
		return x.ForceSettle
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*EscrowAction) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*EscrowAction_Create)(nil),
		(*EscrowAction_Accept)(nil),
		(*EscrowAction_Commit)(nil),
		(*EscrowAction_Reveal)(nil),
		(*EscrowAction_MarkComplete)(nil),
		(*EscrowAction_Cancel)(nil),
		(*EscrowAction_OpenDispute)(nil),
		(*EscrowAction_ResolveDispute)(nil),
		(*EscrowAction_ForceSettle)(nil),
	}
}

// EscrowCommitment 单个参与方的承诺槽位，状态只能从unset到set到revealed
type EscrowCommitment struct {
	State          int32  `protobuf:"varint,1,opt,name=state,proto3" json:"state,omitempty"`
	CommitmentHash []byte `protobuf:"bytes,2,opt,name=commitmentHash,proto3" json:"commitmentHash,omitempty"`
	SecretHash     []byte `protobuf:"bytes,3,opt,name=secretHash,proto3" json:"secretHash,omitempty"`
	Choice         int32  `protobuf:"varint,4,opt,name=choice,proto3" json:"choice,omitempty"`
}

func (m *EscrowCommitment) Reset()         { *m = EscrowCommitment{} }
func (m *EscrowCommitment) String() string { return proto.CompactTextString(m) }
func (*EscrowCommitment) ProtoMessage()    {}

// GetState 获取槽位状态
func (m *EscrowCommitment) GetState() int32 {
	if m != nil {
		return m.State
	}
	return 0
}

// GetCommitmentHash 获取承诺哈希
func (m *EscrowCommitment) GetCommitmentHash() []byte {
	if m != nil {
		return m.CommitmentHash
	}
	return nil
}

// GetSecretHash 获取密钥哈希
func (m *EscrowCommitment) GetSecretHash() []byte {
	if m != nil {
		return m.SecretHash
	}
	return nil
}

// GetChoice 获取reveal解出的选择
func (m *EscrowCommitment) GetChoice() int32 {
	if m != nil {
		return m.Choice
	}
	return 0
}

// EscrowRecord 托管记录，清算时从状态库中删除，只在回执里保留终态快照
type EscrowRecord struct {
	RecordId    string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
	StakeAmount int64  `protobuf:"varint,2,opt,name=stakeAmount,proto3" json:"stakeAmount,omitempty"`
	// 创建者，出资方，也是无人胜出时押金的归属方
	Creator   string            `protobuf:"bytes,3,opt,name=creator,proto3" json:"creator,omitempty"`
	PartyA    string            `protobuf:"bytes,4,opt,name=partyA,proto3" json:"partyA,omitempty"`
	PartyB    string            `protobuf:"bytes,5,opt,name=partyB,proto3" json:"partyB,omitempty"`
	Arbiter   string            `protobuf:"bytes,6,opt,name=arbiter,proto3" json:"arbiter,omitempty"`
	Mode      int32             `protobuf:"varint,7,opt,name=mode,proto3" json:"mode,omitempty"`
	Direction int32             `protobuf:"varint,8,opt,name=direction,proto3" json:"direction,omitempty"`
	CommitA   *EscrowCommitment `protobuf:"bytes,9,opt,name=commitA,proto3" json:"commitA,omitempty"`
	CommitB   *EscrowCommitment `protobuf:"bytes,10,opt,name=commitB,proto3" json:"commitB,omitempty"`
	CompleteA bool              `protobuf:"varint,11,opt,name=completeA,proto3" json:"completeA,omitempty"`
	CompleteB bool              `protobuf:"varint,12,opt,name=completeB,proto3" json:"completeB,omitempty"`
	// 争议开关，一旦打开只有仲裁人可以结束记录
	DisputeOpened bool  `protobuf:"varint,13,opt,name=disputeOpened,proto3" json:"disputeOpened,omitempty"`
	Expiration    int64 `protobuf:"varint,14,opt,name=expiration,proto3" json:"expiration,omitempty"`
	Status        int32 `protobuf:"varint,15,opt,name=status,proto3" json:"status,omitempty"`
	PrevStatus    int32 `protobuf:"varint,16,opt,name=prevStatus,proto3" json:"prevStatus,omitempty"`
	// 本地索引的当前位置和前一个位置，exec local维护索引时使用
	Index      int64 `protobuf:"varint,17,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex  int64 `protobuf:"varint,18,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
	CreateTime int64 `protobuf:"varint,19,opt,name=createTime,proto3" json:"createTime,omitempty"`
	Height     int64 `protobuf:"varint,20,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *EscrowRecord) Reset()         { *m = EscrowRecord{} }
func (m *EscrowRecord) String() string { return proto.CompactTextString(m) }
func (*EscrowRecord) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *EscrowRecord) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// GetStakeAmount 获取押金
func (m *EscrowRecord) GetStakeAmount() int64 {
	if m != nil {
		return m.StakeAmount
	}
	return 0
}

// GetCreator 获取创建者地址
func (m *EscrowRecord) GetCreator() string {
	if m != nil {
		return m.Creator
	}
	return ""
}

// GetPartyA 获取甲方地址
func (m *EscrowRecord) GetPartyA() string {
	if m != nil {
		return m.PartyA
	}
	return ""
}

// GetPartyB 获取乙方地址
func (m *EscrowRecord) GetPartyB() string {
	if m != nil {
		return m.PartyB
	}
	return ""
}

// GetArbiter 获取仲裁人地址
func (m *EscrowRecord) GetArbiter() string {
	if m != nil {
		return m.Arbiter
	}
	return ""
}

// GetMode 获取托管模式
func (m *EscrowRecord) GetMode() int32 {
	if m != nil {
		return m.Mode
	}
	return 0
}

// GetDirection 获取交易方向
func (m *EscrowRecord) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

// GetCommitA 获取甲方承诺槽位
func (m *EscrowRecord) GetCommitA() *EscrowCommitment {
	if m != nil {
		return m.CommitA
	}
	return nil
}

// GetCommitB 获取乙方承诺槽位
func (m *EscrowRecord) GetCommitB() *EscrowCommitment {
	if m != nil {
		return m.CommitB
	}
	return nil
}

// GetCompleteA 甲方是否已确认完成
func (m *EscrowRecord) GetCompleteA() bool {
	if m != nil {
		return m.CompleteA
	}
	return false
}

// GetCompleteB 乙方是否已确认完成
func (m *EscrowRecord) GetCompleteB() bool {
	if m != nil {
		return m.CompleteB
	}
	return false
}

// GetDisputeOpened 是否已发起争议
func (m *EscrowRecord) GetDisputeOpened() bool {
	if m != nil {
		return m.DisputeOpened
	}
	return false
}

// GetExpiration 获取超时时间
func (m *EscrowRecord) GetExpiration() int64 {
	if m != nil {
		return m.Expiration
	}
	return 0
}

// GetStatus 获取记录状态
func (m *EscrowRecord) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

// GetPrevStatus 获取前一个状态
func (m *EscrowRecord) GetPrevStatus() int32 {
	if m != nil {
		return m.PrevStatus
	}
	return 0
}

// GetIndex 获取本地索引位置
func (m *EscrowRecord) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// GetPrevIndex 获取前一个本地索引位置
func (m *EscrowRecord) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

// GetCreateTime 获取创建时间
func (m *EscrowRecord) GetCreateTime() int64 {
	if m != nil {
		return m.CreateTime
	}
	return 0
}

// GetHeight 获取创建高度
func (m *EscrowRecord) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

// RecordCount 单调递增的128位记录计数器，id用完即弃不会复用
type RecordCount struct {
	Hi uint64 `protobuf:"varint,1,opt,name=hi,proto3" json:"hi,omitempty"`
	Lo uint64 `protobuf:"varint,2,opt,name=lo,proto3" json:"lo,omitempty"`
}

func (m *RecordCount) Reset()         { *m = RecordCount{} }
func (m *RecordCount) String() string { return proto.CompactTextString(m) }
func (*RecordCount) ProtoMessage()    {}

// GetHi 获取高64位
func (m *RecordCount) GetHi() uint64 {
	if m != nil {
		return m.Hi
	}
	return 0
}

// GetLo 获取低64位
func (m *RecordCount) GetLo() uint64 {
	if m != nil {
		return m.Lo
	}
	return 0
}

// ReceiptEscrow 托管操作的日志，记录操作后的完整快照
type ReceiptEscrow struct {
	Record *EscrowRecord `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
}

func (m *ReceiptEscrow) Reset()         { *m = ReceiptEscrow{} }
func (m *ReceiptEscrow) String() string { return proto.CompactTextString(m) }
func (*ReceiptEscrow) ProtoMessage()    {}

// GetRecord 获取记录快照
func (m *ReceiptEscrow) GetRecord() *EscrowRecord {
	if m != nil {
		return m.Record
	}
	return nil
}

// EscrowRecordRef 本地索引的值，只存id和索引位置
type EscrowRecordRef struct {
	RecordId string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
	Index    int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *EscrowRecordRef) Reset()         { *m = EscrowRecordRef{} }
func (m *EscrowRecordRef) String() string { return proto.CompactTextString(m) }
func (*EscrowRecordRef) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *EscrowRecordRef) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// GetIndex 获取索引位置
func (m *EscrowRecordRef) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// ReqEscrowId 按id查询
type ReqEscrowId struct {
	RecordId string `protobuf:"bytes,1,opt,name=recordId,proto3" json:"recordId,omitempty"`
}

func (m *ReqEscrowId) Reset()         { *m = ReqEscrowId{} }
func (m *ReqEscrowId) String() string { return proto.CompactTextString(m) }
func (*ReqEscrowId) ProtoMessage()    {}

// GetRecordId 获取记录id
func (m *ReqEscrowId) GetRecordId() string {
	if m != nil {
		return m.RecordId
	}
	return ""
}

// ReqEscrowList 翻页查询，index为上一页最后一条的索引位置，0表示从头开始
type ReqEscrowList struct {
	Status    int32  `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Addr      string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Count     int32  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,4,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,5,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqEscrowList) Reset()         { *m = ReqEscrowList{} }
func (m *ReqEscrowList) String() string { return proto.CompactTextString(m) }
func (*ReqEscrowList) ProtoMessage()    {}

// GetStatus 获取查询状态
func (m *ReqEscrowList) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

// GetAddr 获取查询地址
func (m *ReqEscrowList) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// GetCount 获取查询条数
func (m *ReqEscrowList) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

// GetDirection 获取查询方向
func (m *ReqEscrowList) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

// GetIndex 获取翻页起点
func (m *ReqEscrowList) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// ReplyEscrowRecord 单条记录查询结果
type ReplyEscrowRecord struct {
	Record *EscrowRecord `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
}

func (m *ReplyEscrowRecord) Reset()         { *m = ReplyEscrowRecord{} }
func (m *ReplyEscrowRecord) String() string { return proto.CompactTextString(m) }
func (*ReplyEscrowRecord) ProtoMessage()    {}

// GetRecord 获取记录
func (m *ReplyEscrowRecord) GetRecord() *EscrowRecord {
	if m != nil {
		return m.Record
	}
	return nil
}

// ReplyEscrowList 列表查询结果
type ReplyEscrowList struct {
	Records []*EscrowRecord `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
}

func (m *ReplyEscrowList) Reset()         { *m = ReplyEscrowList{} }
func (m *ReplyEscrowList) String() string { return proto.CompactTextString(m) }
func (*ReplyEscrowList) ProtoMessage()    {}

// GetRecords 获取记录列表
func (m *ReplyEscrowList) GetRecords() []*EscrowRecord {
	if m != nil {
		return m.Records
	}
	return nil
}
