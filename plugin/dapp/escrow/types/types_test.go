// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/33cn/escrow/common/address"
	"github.com/33cn/escrow/types"
)

func TestCreateTx(t *testing.T) {
	message := json.RawMessage(`{"stakeAmount":100000000,"partyA":"addr-a","partyB":"addr-b","mode":1}`)
	tx, err := CreateTx(Action_CreateEscrow, message)
	require.Nil(t, err)
	require.Equal(t, ExecerEscrow, tx.Execer)
	require.Equal(t, address.ExecAddress(EscrowX), tx.To)

	var action EscrowAction
	require.Nil(t, types.Decode(tx.Payload, &action))
	require.Equal(t, int32(EscrowActionCreate), action.GetTy())
	require.Equal(t, int64(100000000), action.GetCreate().GetStakeAmount())
	require.Equal(t, "addr-a", action.GetCreate().GetPartyA())
	require.Equal(t, int32(EscrowModeCommitReveal), action.GetCreate().GetMode())

	tx, err = CreateTx(Action_RevealEscrow, json.RawMessage(`{"recordId":"0001","secret":"c2VjcmV0"}`))
	require.Nil(t, err)
	require.Nil(t, types.Decode(tx.Payload, &action))
	require.Equal(t, int32(EscrowActionReveal), action.GetTy())
	require.Equal(t, "0001", action.GetReveal().GetRecordId())
	require.Equal(t, []byte("secret"), action.GetReveal().GetSecret())

	_, err = CreateTx("transferEscrow", message)
	assert.Equal(t, types.ErrActionNotSupport, err)

	_, err = CreateTx(Action_CreateEscrow, json.RawMessage(`{bad json`))
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestCreateRawNilParam(t *testing.T) {
	_, err := CreateRawEscrowCreateTx(nil)
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = CreateRawEscrowAcceptTx(nil)
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = CreateRawEscrowRevealTx(nil)
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = CreateRawEscrowResolveDisputeTx(nil)
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestEscrowActionOneof(t *testing.T) {
	action := &EscrowAction{
		Ty:    EscrowActionCommit,
		Value: &EscrowAction_Commit{Commit: &EscrowCommit{RecordId: "0002"}},
	}
	data := types.Encode(action)

	var decoded EscrowAction
	require.Nil(t, types.Decode(data, &decoded))
	require.Equal(t, int32(EscrowActionCommit), decoded.GetTy())
	require.NotNil(t, decoded.GetCommit())
	require.Equal(t, "0002", decoded.GetCommit().GetRecordId())
	require.Nil(t, decoded.GetCreate())
	require.Nil(t, decoded.GetReveal())
}
