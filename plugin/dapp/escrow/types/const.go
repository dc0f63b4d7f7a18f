// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//escrow action ty
const (
	EscrowActionCreate = iota + 1
	EscrowActionAccept
	EscrowActionCommit
	EscrowActionReveal
	EscrowActionMarkComplete
	EscrowActionCancel
	EscrowActionOpenDispute
	EscrowActionResolveDispute
	EscrowActionForceSettle
)

//记录状态，settled之后的状态只出现在回执里，状态库中的记录已删除
const (
	EscrowStatusOpen = iota + 1
	EscrowStatusAccepted
	EscrowStatusDisputed
	EscrowStatusSettled
	EscrowStatusCancelled
	EscrowStatusTimedOut
	EscrowStatusResolved
)

//托管模式
const (
	EscrowModeCommitReveal = 1
	EscrowModeBrokered     = 2
)

//brokered模式的交易方向，决定完成后押金的归属方
const (
	OfferDirectionBuy  = 1
	OfferDirectionSell = 2
)

//commitment槽位状态，只能向前推进
const (
	CommitUnset = iota
	CommitSet
	CommitRevealed
)

//reveal解出的选择
const (
	ChoiceNone = iota
	ChoiceCooperate
	ChoiceDefect
)

//log ty
const (
	TyLogEscrowCreate   = 801
	TyLogEscrowAccept   = 802
	TyLogEscrowCommit   = 803
	TyLogEscrowReveal   = 804
	TyLogEscrowComplete = 805
	TyLogEscrowCancel   = 806
	TyLogEscrowDispute  = 807
	TyLogEscrowResolve  = 808
	TyLogEscrowTimeout  = 809
)

//通过manage合约可配置的项
const (
	//ConfNameOperator 允许创建commit-reveal记录的操作员地址
	ConfNameOperator = "escrow-operator"
	//ConfNameExpireWindow 记录的超时窗口，单位秒
	ConfNameExpireWindow = "escrow-expire-window"
)

//action名称
const (
	Action_CreateEscrow   = "createEscrow"
	Action_AcceptEscrow   = "acceptEscrow"
	Action_CommitEscrow   = "commitEscrow"
	Action_RevealEscrow   = "revealEscrow"
	Action_CompleteEscrow = "completeEscrow"
	Action_CancelEscrow   = "cancelEscrow"
	Action_DisputeEscrow  = "disputeEscrow"
	Action_ResolveEscrow  = "resolveEscrow"
	Action_ForceSettle    = "forceSettleEscrow"
)

const (
	//EscrowX 执行器名称
	EscrowX = "escrow"
)

var (
	//ExecerEscrow 执行器名称的字节表示
	ExecerEscrow = []byte(EscrowX)
)
