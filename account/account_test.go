// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/escrow/common/address"
	"github.com/33cn/escrow/common/db"
	"github.com/33cn/escrow/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "16html1zkiWUcHcgqeUe3vGmDysdEfdso5"
	addr3 = "16ZCadAy8fVp4df9FCdMWfQyoZQdbVQV8V"
	addr4 = "1PUiGcbsccfxW3zuvHXZBJfznziph5miAo"
)

func GenerAccDb() (*DB, db.DB) {
	//构造账户数据库
	accCoin := NewCoinsAccount(&types.Config{})
	stateDB, err := db.NewGoMemDB("state", "", 128)
	if err != nil {
		panic(err)
	}
	accCoin.SetDB(stateDB)
	return accCoin, stateDB
}

func (acc *DB) GenerAccData() {
	// 加入账户
	account := &types.Account{
		Balance: 1000 * types.Coin,
		Addr:    addr1,
	}
	acc.SaveAccount(account)

	account.Balance = 900 * types.Coin
	account.Addr = addr2
	acc.SaveAccount(account)

	account.Balance = 800 * types.Coin
	account.Addr = addr3
	acc.SaveAccount(account)

	account.Balance = 700 * types.Coin
	account.Addr = addr4
	acc.SaveAccount(account)
}

func TestCheckTransfer(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	err := accCoin.CheckTransfer(addr1, addr2, 10*types.Coin)
	require.NoError(t, err)

	err = accCoin.CheckTransfer(addr1, addr2, 10000*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)

	err = accCoin.CheckTransfer(addr1, addr2, -1)
	require.Equal(t, types.ErrAmount, err)
}

func TestTransfer(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	receipt, err := accCoin.Transfer(addr1, addr2, 10*types.Coin)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	require.Len(t, receipt.Logs, 2)
	require.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)
	require.Equal(t, int32(types.TyLogTransfer), receipt.Logs[1].Ty)

	t.Logf("Transfer from:%v to:%v", accCoin.LoadAccount(addr1), accCoin.LoadAccount(addr2))
	require.Equal(t, accCoin.LoadAccount(addr1).Balance, 990*types.Coin)
	require.Equal(t, accCoin.LoadAccount(addr2).Balance, 910*types.Coin)

	//自己转给自己
	_, err = accCoin.Transfer(addr1, addr1, 10*types.Coin)
	require.Equal(t, types.ErrSendSameToRecv, err)

	//余额不足
	_, err = accCoin.Transfer(addr1, addr2, 1000*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestLoadAccounts(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	accs, err := accCoin.LoadAccounts([]string{addr1, addr2, "1LQunqPkguFBkkvLjcNbTSEgrn5HBLAHYY"})
	require.NoError(t, err)
	require.Len(t, accs, 3)
	assert.Equal(t, 1000*types.Coin, accs[0].Balance)
	assert.Equal(t, 900*types.Coin, accs[1].Balance)
	//不存在的账户返回零值
	assert.Equal(t, int64(0), accs[2].Balance)
}

func TestGetKVSet(t *testing.T) {
	accCoin, _ := GenerAccDb()
	account := &types.Account{
		Balance: 1000 * types.Coin,
		Addr:    addr1,
	}
	set := accCoin.GetKVSet(account)
	require.Len(t, set, 1)
	assert.Equal(t, string(accCoin.AccountKey(addr1)), string(set[0].Key))
}

func TestNewAccountDB(t *testing.T) {
	_, stateDB := GenerAccDb()
	accDB, err := NewAccountDB("token", "TEST", stateDB)
	require.NoError(t, err)
	assert.Equal(t, "mavl-token-TEST-", string(accDB.accountKeyPerfix))

	_, err = NewAccountDB("to-ken", "TEST", stateDB)
	assert.Equal(t, types.ErrExecNameNotAllow, err)

	_, err = NewAccountDB("token", "TE-ST", stateDB)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
}

func TestExecFrozen(t *testing.T) {
	accCoin, _ := GenerAccDb()
	execaddr := address.ExecAddress("escrow")

	_, err := accCoin.ExecDeposit(addr1, execaddr, 100*types.Coin)
	require.NoError(t, err)

	receipt, err := accCoin.ExecFrozen(addr1, execaddr, 40*types.Coin)
	require.NoError(t, err)
	require.Equal(t, int32(types.TyLogExecFrozen), receipt.Logs[0].Ty)

	acc1 := accCoin.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, 60*types.Coin, acc1.Balance)
	assert.Equal(t, 40*types.Coin, acc1.Frozen)

	//余额不足
	_, err = accCoin.ExecFrozen(addr1, execaddr, 100*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestExecActive(t *testing.T) {
	accCoin, _ := GenerAccDb()
	execaddr := address.ExecAddress("escrow")

	_, err := accCoin.ExecDeposit(addr1, execaddr, 100*types.Coin)
	require.NoError(t, err)
	_, err = accCoin.ExecFrozen(addr1, execaddr, 40*types.Coin)
	require.NoError(t, err)

	receipt, err := accCoin.ExecActive(addr1, execaddr, 30*types.Coin)
	require.NoError(t, err)
	require.Equal(t, int32(types.TyLogExecActive), receipt.Logs[0].Ty)

	acc1 := accCoin.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, 90*types.Coin, acc1.Balance)
	assert.Equal(t, 10*types.Coin, acc1.Frozen)

	//冻结余额不足
	_, err = accCoin.ExecActive(addr1, execaddr, 30*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestExecTransfer(t *testing.T) {
	accCoin, _ := GenerAccDb()
	execaddr := address.ExecAddress("escrow")

	_, err := accCoin.ExecDeposit(addr1, execaddr, 100*types.Coin)
	require.NoError(t, err)

	receipt, err := accCoin.ExecTransfer(addr1, addr2, execaddr, 25*types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 2)
	require.Equal(t, int32(types.TyLogExecTransfer), receipt.Logs[0].Ty)

	assert.Equal(t, 75*types.Coin, accCoin.LoadExecAccount(addr1, execaddr).Balance)
	assert.Equal(t, 25*types.Coin, accCoin.LoadExecAccount(addr2, execaddr).Balance)

	_, err = accCoin.ExecTransfer(addr1, addr2, execaddr, 100*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestExecTransferFrozen(t *testing.T) {
	accCoin, _ := GenerAccDb()
	execaddr := address.ExecAddress("escrow")

	_, err := accCoin.ExecDeposit(addr1, execaddr, 100*types.Coin)
	require.NoError(t, err)
	_, err = accCoin.ExecFrozen(addr1, execaddr, 60*types.Coin)
	require.NoError(t, err)

	receipt, err := accCoin.ExecTransferFrozen(addr1, addr2, execaddr, 60*types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 2)

	acc1 := accCoin.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, 40*types.Coin, acc1.Balance)
	assert.Equal(t, int64(0), acc1.Frozen)
	assert.Equal(t, 60*types.Coin, accCoin.LoadExecAccount(addr2, execaddr).Balance)

	//冻结的资金已经转走
	_, err = accCoin.ExecTransferFrozen(addr1, addr2, execaddr, 1*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestTransferToExec(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()
	execaddr := address.ExecAddress("escrow")

	receipt, err := accCoin.TransferToExec(addr1, execaddr, 100*types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 3)

	assert.Equal(t, 900*types.Coin, accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, 100*types.Coin, accCoin.LoadAccount(execaddr).Balance)
	assert.Equal(t, 100*types.Coin, accCoin.LoadExecAccount(addr1, execaddr).Balance)
}

func TestTransferWithdraw(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()
	execaddr := address.ExecAddress("escrow")

	_, err := accCoin.TransferToExec(addr1, execaddr, 100*types.Coin)
	require.NoError(t, err)

	receipt, err := accCoin.TransferWithdraw(addr1, execaddr, 40*types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 3)

	assert.Equal(t, 940*types.Coin, accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, 60*types.Coin, accCoin.LoadAccount(execaddr).Balance)
	assert.Equal(t, 60*types.Coin, accCoin.LoadExecAccount(addr1, execaddr).Balance)

	//子账户余额不足
	_, err = accCoin.TransferWithdraw(addr1, execaddr, 100*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)
}
