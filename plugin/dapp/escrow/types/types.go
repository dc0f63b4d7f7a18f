// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/escrow/common/address"
	"github.com/33cn/escrow/types"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", EscrowX)

// CreateTx 根据action名称和json参数构造托管交易
func CreateTx(action string, message json.RawMessage) (*types.Transaction, error) {
	tlog.Debug("escrow.CreateTx", "action", action)
	if action == Action_CreateEscrow {
		var param EscrowCreate
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawEscrowCreateTx(&param)
	} else if action == Action_AcceptEscrow {
		var param EscrowAccept
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawEscrowAcceptTx(&param)
	} else if action == Action_CommitEscrow {
		var param EscrowCommit
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawEscrowCommitTx(&param)
	} else if action == Action_RevealEscrow {
		var param EscrowReveal
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawEscrowRevealTx(&param)
	} else if action == Action_CompleteEscrow {
		var param EscrowMarkComplete
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawEscrowMarkCompleteTx(&param)
	} else if action == Action_CancelEscrow {
		var param EscrowCancel
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawEscrowCancelTx(&param)
	} else if action == Action_DisputeEscrow {
		var param EscrowOpenDispute
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawEscrowOpenDisputeTx(&param)
	} else if action == Action_ResolveEscrow {
		var param EscrowResolveDispute
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawEscrowResolveDisputeTx(&param)
	} else if action == Action_ForceSettle {
		var param EscrowForceSettle
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawEscrowForceSettleTx(&param)
	}
	return nil, types.ErrActionNotSupport
}

// CreateRawEscrowCreateTx 构造创建托管记录的交易
func CreateRawEscrowCreateTx(parm *EscrowCreate) (*types.Transaction, error) {
	if parm == nil {
		tlog.Error("CreateRawEscrowCreateTx", "parm", parm)
		return nil, types.ErrInvalidParam
	}
	action := &EscrowAction{
		Ty:    EscrowActionCreate,
		Value: &EscrowAction_Create{parm},
	}
	tx := &types.Transaction{
		Execer:  ExecerEscrow,
		Payload: types.Encode(action),
		To:      address.ExecAddress(EscrowX),
	}
	return tx, nil
}

// CreateRawEscrowAcceptTx 构造接受挂单的交易
func CreateRawEscrowAcceptTx(parm *EscrowAccept) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	action := &EscrowAction{
		Ty:    EscrowActionAccept,
		Value: &EscrowAction_Accept{parm},
	}
	tx := &types.Transaction{
		Execer:  ExecerEscrow,
		Payload: types.Encode(action),
		To:      address.ExecAddress(EscrowX),
	}
	return tx, nil
}

// CreateRawEscrowCommitTx 构造提交承诺的交易
func CreateRawEscrowCommitTx(parm *EscrowCommit) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	action := &EscrowAction{
		Ty:    EscrowActionCommit,
		Value: &EscrowAction_Commit{parm},
	}
	tx := &types.Transaction{
		Execer:  ExecerEscrow,
		Payload: types.Encode(action),
		To:      address.ExecAddress(EscrowX),
	}
	return tx, nil
}

// CreateRawEscrowRevealTx 构造公开密钥的交易
func CreateRawEscrowRevealTx(parm *EscrowReveal) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	action := &EscrowAction{
		Ty:    EscrowActionReveal,
		Value: &EscrowAction_Reveal{parm},
	}
	tx := &types.Transaction{
		Execer:  ExecerEscrow,
		Payload: types.Encode(action),
		To:      address.ExecAddress(EscrowX),
	}
	return tx, nil
}

// CreateRawEscrowMarkCompleteTx 构造确认完成的交易
func CreateRawEscrowMarkCompleteTx(parm *EscrowMarkComplete) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	action := &EscrowAction{
		Ty:    EscrowActionMarkComplete,
		Value: &EscrowAction_MarkComplete{parm},
	}
	tx := &types.Transaction{
		Execer:  ExecerEscrow,
		Payload: types.Encode(action),
		To:      address.ExecAddress(EscrowX),
	}
	return tx, nil
}

// CreateRawEscrowCancelTx 构造撤销挂单的交易
func CreateRawEscrowCancelTx(parm *EscrowCancel) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	action := &EscrowAction{
		Ty:    EscrowActionCancel,
		Value: &EscrowAction_Cancel{parm},
	}
	tx := &types.Transaction{
		Execer:  ExecerEscrow,
		Payload: types.Encode(action),
		To:      address.ExecAddress(EscrowX),
	}
	return tx, nil
}

// CreateRawEscrowOpenDisputeTx 构造发起争议的交易
func CreateRawEscrowOpenDisputeTx(parm *EscrowOpenDispute) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	action := &EscrowAction{
		Ty:    EscrowActionOpenDispute,
		Value: &EscrowAction_OpenDispute{parm},
	}
	tx := &types.Transaction{
		Execer:  ExecerEscrow,
		Payload: types.Encode(action),
		To:      address.ExecAddress(EscrowX),
	}
	return tx, nil
}

// CreateRawEscrowResolveDisputeTx 构造仲裁裁决的交易
func CreateRawEscrowResolveDisputeTx(parm *EscrowResolveDispute) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	action := &EscrowAction{
		Ty:    EscrowActionResolveDispute,
		Value: &EscrowAction_ResolveDispute{parm},
	}
	tx := &types.Transaction{
		Execer:  ExecerEscrow,
		Payload: types.Encode(action),
		To:      address.ExecAddress(EscrowX),
	}
	return tx, nil
}

// CreateRawEscrowForceSettleTx 构造超时清算的交易
func CreateRawEscrowForceSettleTx(parm *EscrowForceSettle) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	action := &EscrowAction{
		Ty:    EscrowActionForceSettle,
		Value: &EscrowAction_ForceSettle{parm},
	}
	tx := &types.Transaction{
		Execer:  ExecerEscrow,
		Payload: types.Encode(action),
		To:      address.ExecAddress(EscrowX),
	}
	return tx, nil
}
