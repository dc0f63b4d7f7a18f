package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/33cn/escrow/common"
	"github.com/33cn/escrow/common/address"
	dbm "github.com/33cn/escrow/common/db"
	clog "github.com/33cn/escrow/common/log"
	et "github.com/33cn/escrow/plugin/dapp/escrow/types"
	"github.com/33cn/escrow/types"
)

func init() {
	clog.SetLogLevel("error")
}

var (
	pubOperator = []byte("pubkey:test:operator")
	pubPartyA   = []byte("pubkey:test:party:a")
	pubPartyB   = []byte("pubkey:test:party:b")
	pubArbiter  = []byte("pubkey:test:arbiter")
	pubStranger = []byte("pubkey:test:stranger")

	addrOperator = address.PubKeyToAddress(pubOperator).String()
	addrPartyA   = address.PubKeyToAddress(pubPartyA).String()
	addrPartyB   = address.PubKeyToAddress(pubPartyB).String()
	addrArbiter  = address.PubKeyToAddress(pubArbiter).String()
	addrStranger = address.PubKeyToAddress(pubStranger).String()
)

type execEnv struct {
	t         *testing.T
	e         *Escrow
	statedb   dbm.DB
	localdb   dbm.KVDB
	execaddr  string
	height    int64
	blocktime int64
	index     int
	nonce     int64
}

func newExecEnv(t *testing.T) *execEnv {
	statedb, err := dbm.NewGoMemDB("state", "", 128)
	require.Nil(t, err)
	memdb, err := dbm.NewGoMemDB("local", "", 128)
	require.Nil(t, err)

	e := newEscrow().(*Escrow)
	e.SetConfig(&types.Config{})
	e.SetStateDB(statedb)
	e.SetLocalDB(dbm.NewLocalDB(memdb, false))

	return &execEnv{
		t:         t,
		e:         e,
		statedb:   statedb,
		localdb:   e.GetLocalDB(),
		execaddr:  address.ExecAddress(et.EscrowX),
		height:    1,
		blocktime: 1539918074,
	}
}

//fund 先给地址充值，再全部转入合约账户
func (env *execEnv) fund(addr string, amount int64) {
	acc := env.e.GetCoinsAccount()
	acc.SaveAccount(&types.Account{Balance: amount, Addr: addr})
	_, err := acc.TransferToExec(addr, env.execaddr, amount)
	require.Nil(env.t, err)
}

func (env *execEnv) setManageConf(key string, values ...string) {
	item := &types.ConfigItem{
		Key:   types.ManageKey(key),
		Value: &types.ConfigItem_Arr{Arr: &types.ArrayConfig{Value: values}},
	}
	err := env.statedb.Set([]byte(types.ManageKey(key)), types.Encode(item))
	require.Nil(env.t, err)
}

//makeTx 直接套用构造函数的输出，补上nonce和签名公钥
func (env *execEnv) makeTx(pub []byte, tx *types.Transaction, err error) *types.Transaction {
	require.Nil(env.t, err)
	env.nonce++
	tx.Nonce = env.nonce
	tx.Signature = &types.Signature{Ty: types.SECP256K1, Pubkey: pub}
	return tx
}

func (env *execEnv) exec(tx *types.Transaction) (*types.Receipt, error) {
	env.e.SetEnv(env.height, env.blocktime)
	receipt, err := env.e.Exec(tx, env.index)
	env.index++
	return receipt, err
}

func (env *execEnv) execOK(tx *types.Transaction) *types.Receipt {
	receipt, err := env.exec(tx)
	require.Nil(env.t, err)
	require.NotNil(env.t, receipt)
	require.Equal(env.t, int32(types.ExecOk), receipt.Ty)
	return receipt
}

func (env *execEnv) execLocal(tx *types.Transaction, receipt *types.Receipt) {
	set, err := env.e.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
	require.Nil(env.t, err)
	for _, kv := range set.KV {
		require.Nil(env.t, env.localdb.Set(kv.Key, kv.Value))
	}
}

func (env *execEnv) execDelLocal(tx *types.Transaction, receipt *types.Receipt) {
	set, err := env.e.ExecDelLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
	require.Nil(env.t, err)
	for _, kv := range set.KV {
		require.Nil(env.t, env.localdb.Set(kv.Key, kv.Value))
	}
}

func (env *execEnv) execAccount(addr string) *types.Account {
	return env.e.GetCoinsAccount().LoadExecAccount(addr, env.execaddr)
}

func recordFrom(t *testing.T, receipt *types.Receipt, ty int32) *et.EscrowRecord {
	for _, item := range receipt.Logs {
		if item.Ty == ty {
			var rlog et.ReceiptEscrow
			require.Nil(t, types.Decode(item.Log, &rlog))
			return rlog.GetRecord()
		}
	}
	require.FailNow(t, "receipt has no escrow log")
	return nil
}

func makeCommitment(choice int32, secret []byte) ([]byte, []byte) {
	preimage := append([]byte{byte(choice)}, secret...)
	return common.Sha256(preimage), common.Sha256(secret)
}

//createCommitReveal 运营方创建一个承诺揭示托管单
func (env *execEnv) createCommitReveal(stake int64) string {
	rawTx, rawErr := et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: stake,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx := env.makeTx(pubOperator, rawTx, rawErr)
	receipt := env.execOK(tx)
	record := recordFrom(env.t, receipt, et.TyLogEscrowCreate)
	return record.GetRecordId()
}

func (env *execEnv) commit(pub []byte, recordID string, choice int32, secret []byte) (*types.Receipt, error) {
	commitHash, secretHash := makeCommitment(choice, secret)
	rawTx, rawErr := et.CreateRawEscrowCommitTx(&et.EscrowCommit{
		RecordId:       recordID,
		CommitmentHash: commitHash,
		SecretHash:     secretHash,
	})
	tx := env.makeTx(pub, rawTx, rawErr)
	return env.exec(tx)
}

func (env *execEnv) reveal(pub []byte, recordID string, secret []byte) (*types.Receipt, error) {
	rawTx, rawErr := et.CreateRawEscrowRevealTx(&et.EscrowReveal{
		RecordId: recordID,
		Secret:   secret,
	})
	tx := env.makeTx(pub, rawTx, rawErr)
	return env.exec(tx)
}

func TestCommitRevealBothCooperate(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.fund(addrOperator, 100*types.Coin)

	rawTx, rawErr := et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: 100 * types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx := env.makeTx(pubOperator, rawTx, rawErr)
	receipt := env.execOK(tx)
	record := recordFrom(t, receipt, et.TyLogEscrowCreate)
	require.Equal(t, int32(et.EscrowStatusAccepted), record.GetStatus())
	require.Equal(t, env.blocktime+DefaultExpireWindow, record.GetExpiration())
	require.Equal(t, addrOperator, record.GetCreator())
	recordID := record.GetRecordId()

	acc := env.execAccount(addrOperator)
	assert.Zero(t, acc.Balance)
	assert.Equal(t, 100*types.Coin, acc.Frozen)

	secretA := []byte("secret of party a, keep it safe")
	secretB := []byte("secret of party b, keep it safe")
	_, err := env.commit(pubPartyA, recordID, et.ChoiceCooperate, secretA)
	require.Nil(t, err)
	_, err = env.commit(pubPartyB, recordID, et.ChoiceCooperate, secretB)
	require.Nil(t, err)

	receipt, err = env.reveal(pubPartyA, recordID, secretA)
	require.Nil(t, err)
	record = recordFrom(t, receipt, et.TyLogEscrowReveal)
	require.Equal(t, int32(et.EscrowStatusAccepted), record.GetStatus())
	require.Equal(t, int32(et.CommitRevealed), record.GetCommitA().GetState())
	require.Equal(t, int32(et.ChoiceCooperate), record.GetCommitA().GetChoice())

	receipt, err = env.reveal(pubPartyB, recordID, secretB)
	require.Nil(t, err)
	record = recordFrom(t, receipt, et.TyLogEscrowReveal)
	require.Equal(t, int32(et.EscrowStatusSettled), record.GetStatus())

	assert.Equal(t, 50*types.Coin, env.execAccount(addrPartyA).Balance)
	assert.Equal(t, 50*types.Coin, env.execAccount(addrPartyB).Balance)
	acc = env.execAccount(addrOperator)
	assert.Zero(t, acc.Balance)
	assert.Zero(t, acc.Frozen)

	//终态记录已经从statedb删除
	_, err = env.reveal(pubPartyA, recordID, secretA)
	require.Equal(t, et.ErrRecordNotFound, err)
}

func TestCommitRevealDefectTakesAll(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.fund(addrOperator, 100*types.Coin)
	recordID := env.createCommitReveal(100 * types.Coin)

	secretA := []byte("secret a")
	secretB := []byte("secret b")
	_, err := env.commit(pubPartyA, recordID, et.ChoiceDefect, secretA)
	require.Nil(t, err)
	_, err = env.commit(pubPartyB, recordID, et.ChoiceCooperate, secretB)
	require.Nil(t, err)
	_, err = env.reveal(pubPartyA, recordID, secretA)
	require.Nil(t, err)
	_, err = env.reveal(pubPartyB, recordID, secretB)
	require.Nil(t, err)

	assert.Equal(t, 100*types.Coin, env.execAccount(addrPartyA).Balance)
	assert.Zero(t, env.execAccount(addrPartyB).Balance)
	assert.Zero(t, env.execAccount(addrOperator).Frozen)
}

func TestCommitRevealBothDefect(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.fund(addrOperator, 100*types.Coin)
	recordID := env.createCommitReveal(100 * types.Coin)

	secretA := []byte("secret a")
	secretB := []byte("secret b")
	_, err := env.commit(pubPartyA, recordID, et.ChoiceDefect, secretA)
	require.Nil(t, err)
	_, err = env.commit(pubPartyB, recordID, et.ChoiceDefect, secretB)
	require.Nil(t, err)
	_, err = env.reveal(pubPartyA, recordID, secretA)
	require.Nil(t, err)
	_, err = env.reveal(pubPartyB, recordID, secretB)
	require.Nil(t, err)

	//双方背叛，押金退回创建者
	acc := env.execAccount(addrOperator)
	assert.Equal(t, 100*types.Coin, acc.Balance)
	assert.Zero(t, acc.Frozen)
	assert.Zero(t, env.execAccount(addrPartyA).Balance)
	assert.Zero(t, env.execAccount(addrPartyB).Balance)
}

func TestCommitRevealInvalidCommitment(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.fund(addrOperator, 100*types.Coin)
	recordID := env.createCommitReveal(100 * types.Coin)

	//甲方的承诺哈希不是任何合法choice算出来的
	secretA := []byte("secret a")
	rawTx, rawErr := et.CreateRawEscrowCommitTx(&et.EscrowCommit{
		RecordId:       recordID,
		CommitmentHash: common.Sha256([]byte("not a valid commitment")),
		SecretHash:     common.Sha256(secretA),
	})
	tx := env.makeTx(pubPartyA, rawTx, rawErr)
	env.execOK(tx)

	secretB := []byte("secret b")
	_, err := env.commit(pubPartyB, recordID, et.ChoiceCooperate, secretB)
	require.Nil(t, err)

	receipt, err := env.reveal(pubPartyA, recordID, secretA)
	require.Nil(t, err)
	record := recordFrom(t, receipt, et.TyLogEscrowReveal)
	require.Equal(t, int32(et.ChoiceNone), record.GetCommitA().GetChoice())

	_, err = env.reveal(pubPartyB, recordID, secretB)
	require.Nil(t, err)

	//无效揭示按弃权处理，有效的一方独得
	assert.Zero(t, env.execAccount(addrPartyA).Balance)
	assert.Equal(t, 100*types.Coin, env.execAccount(addrPartyB).Balance)
}

func TestCommitErrors(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.fund(addrOperator, 100*types.Coin)
	recordID := env.createCommitReveal(100 * types.Coin)

	secretA := []byte("secret a")
	_, err := env.commit(pubStranger, recordID, et.ChoiceCooperate, secretA)
	require.Equal(t, et.ErrNotAParticipant, err)

	//哈希长度不合法
	rawTx, rawErr := et.CreateRawEscrowCommitTx(&et.EscrowCommit{
		RecordId:       recordID,
		CommitmentHash: []byte("short"),
		SecretHash:     common.Sha256(secretA),
	})
	tx := env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, types.ErrInvalidParam, err)

	_, err = env.commit(pubPartyA, recordID, et.ChoiceCooperate, secretA)
	require.Nil(t, err)
	_, err = env.commit(pubPartyA, recordID, et.ChoiceDefect, secretA)
	require.Equal(t, et.ErrAlreadyCommitted, err)

	_, err = env.commit(pubPartyA, "ffffffffffffffffffffffffffffffff", et.ChoiceCooperate, secretA)
	require.Equal(t, et.ErrRecordNotFound, err)
}

func TestRevealErrors(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.fund(addrOperator, 100*types.Coin)
	recordID := env.createCommitReveal(100 * types.Coin)

	secretA := []byte("secret a")
	secretB := []byte("secret b")
	_, err := env.commit(pubPartyA, recordID, et.ChoiceCooperate, secretA)
	require.Nil(t, err)

	//乙方还没有提交承诺
	_, err = env.reveal(pubPartyA, recordID, secretA)
	require.Equal(t, et.ErrCommitmentsIncomplete, err)

	_, err = env.commit(pubPartyB, recordID, et.ChoiceCooperate, secretB)
	require.Nil(t, err)

	_, err = env.reveal(pubStranger, recordID, secretA)
	require.Equal(t, et.ErrNotAParticipant, err)

	//秘密对不上secretHash，且不会弄脏记录
	_, err = env.reveal(pubPartyA, recordID, []byte("wrong secret"))
	require.Equal(t, et.ErrHashMismatch, err)
	_, err = env.reveal(pubPartyA, recordID, secretA)
	require.Nil(t, err)

	//重复揭示
	_, err = env.reveal(pubPartyA, recordID, secretA)
	require.Equal(t, et.ErrInvalidState, err)
}

func TestCreateErrors(t *testing.T) {
	env := newExecEnv(t)

	//还没有配置运营方
	rawTx, rawErr := et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx := env.makeTx(pubOperator, rawTx, rawErr)
	_, err := env.exec(tx)
	require.Equal(t, et.ErrNotInitialized, err)

	env.setManageConf(et.ConfNameOperator, addrOperator)

	//非运营方创建承诺揭示托管单
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrNotAuthorized, err)

	//金额不合法
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: 0,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx = env.makeTx(pubOperator, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, types.ErrAmount, err)

	//双方地址相同
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyA,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx = env.makeTx(pubOperator, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, types.ErrInvalidParam, err)

	//承诺揭示模式不允许设置仲裁人
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Arbiter:     addrArbiter,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx = env.makeTx(pubOperator, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, types.ErrInvalidParam, err)

	//承诺揭示模式乙方必须确定
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx = env.makeTx(pubOperator, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, types.ErrInvalidParam, err)

	//未知模式
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
	})
	tx = env.makeTx(pubOperator, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, types.ErrInvalidParam, err)

	//合约账户余额不足
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx = env.makeTx(pubOperator, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, types.ErrNoBalance, err)

	//中介模式必须有方向和仲裁人
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		Mode:        et.EscrowModeBrokered,
	})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, types.ErrInvalidParam, err)

	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		Direction:   et.OfferDirectionSell,
		Mode:        et.EscrowModeBrokered,
	})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, types.ErrInvalidParam, err)

	//仲裁人不能同时是参与方
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		Arbiter:     addrPartyA,
		Direction:   et.OfferDirectionSell,
		Mode:        et.EscrowModeBrokered,
	})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, types.ErrInvalidParam, err)

	//参数合法后创建成功
	env.fund(addrOperator, types.Coin)
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx = env.makeTx(pubOperator, rawTx, rawErr)
	env.execOK(tx)
}

func TestForceSettleOneReveal(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.fund(addrOperator, 100*types.Coin)
	recordID := env.createCommitReveal(100 * types.Coin)

	secretA := []byte("secret a")
	secretB := []byte("secret b")
	_, err := env.commit(pubPartyA, recordID, et.ChoiceCooperate, secretA)
	require.Nil(t, err)
	_, err = env.commit(pubPartyB, recordID, et.ChoiceCooperate, secretB)
	require.Nil(t, err)
	_, err = env.reveal(pubPartyA, recordID, secretA)
	require.Nil(t, err)

	//还没有到期
	rawTx, rawErr := et.CreateRawEscrowForceSettleTx(&et.EscrowForceSettle{RecordId: recordID})
	tx := env.makeTx(pubStranger, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrNotYetExpired, err)

	env.blocktime += DefaultExpireWindow

	//过期后任何人都可以强制结算，已有效揭示的一方独得
	rawTx, rawErr = et.CreateRawEscrowForceSettleTx(&et.EscrowForceSettle{RecordId: recordID})
	tx = env.makeTx(pubStranger, rawTx, rawErr)
	receipt := env.execOK(tx)
	record := recordFrom(t, receipt, et.TyLogEscrowTimeout)
	require.Equal(t, int32(et.EscrowStatusTimedOut), record.GetStatus())

	assert.Equal(t, 100*types.Coin, env.execAccount(addrPartyA).Balance)
	assert.Zero(t, env.execAccount(addrPartyB).Balance)
	assert.Zero(t, env.execAccount(addrOperator).Frozen)
}

func TestForceSettleNoReveal(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.fund(addrOperator, 100*types.Coin)
	recordID := env.createCommitReveal(100 * types.Coin)

	env.blocktime += DefaultExpireWindow
	rawTx, rawErr := et.CreateRawEscrowForceSettleTx(&et.EscrowForceSettle{RecordId: recordID})
	tx := env.makeTx(pubStranger, rawTx, rawErr)
	env.execOK(tx)

	//谁都没有揭示，押金退回创建者
	acc := env.execAccount(addrOperator)
	assert.Equal(t, 100*types.Coin, acc.Balance)
	assert.Zero(t, acc.Frozen)
}

func TestBrokeredLifecycleSell(t *testing.T) {
	env := newExecEnv(t)
	env.fund(addrPartyA, 60*types.Coin)

	rawTx, rawErr := et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: 60 * types.Coin,
		PartyA:      addrPartyA,
		Arbiter:     addrArbiter,
		Direction:   et.OfferDirectionSell,
		Mode:        et.EscrowModeBrokered,
	})
	tx := env.makeTx(pubPartyA, rawTx, rawErr)
	receipt := env.execOK(tx)
	record := recordFrom(t, receipt, et.TyLogEscrowCreate)
	require.Equal(t, int32(et.EscrowStatusOpen), record.GetStatus())
	recordID := record.GetRecordId()

	rawTx, rawErr = et.CreateRawEscrowAcceptTx(&et.EscrowAccept{RecordId: recordID})
	tx = env.makeTx(pubPartyB, rawTx, rawErr)
	receipt = env.execOK(tx)
	record = recordFrom(t, receipt, et.TyLogEscrowAccept)
	require.Equal(t, int32(et.EscrowStatusAccepted), record.GetStatus())
	require.Equal(t, addrPartyB, record.GetPartyB())

	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	receipt = env.execOK(tx)
	record = recordFrom(t, receipt, et.TyLogEscrowComplete)
	require.Equal(t, int32(et.EscrowStatusAccepted), record.GetStatus())
	require.True(t, record.GetCompleteA())
	require.False(t, record.GetCompleteB())

	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubPartyB, rawTx, rawErr)
	receipt = env.execOK(tx)
	record = recordFrom(t, receipt, et.TyLogEscrowComplete)
	require.Equal(t, int32(et.EscrowStatusSettled), record.GetStatus())

	//卖单付给甲方，甲方就是创建者，押金解冻
	acc := env.execAccount(addrPartyA)
	assert.Equal(t, 60*types.Coin, acc.Balance)
	assert.Zero(t, acc.Frozen)
	assert.Zero(t, env.execAccount(addrPartyB).Balance)
}

func TestBrokeredLifecycleBuy(t *testing.T) {
	env := newExecEnv(t)
	env.fund(addrPartyA, 60*types.Coin)

	//创建时直接指定乙方，跳过接单
	rawTx, rawErr := et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: 60 * types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Arbiter:     addrArbiter,
		Direction:   et.OfferDirectionBuy,
		Mode:        et.EscrowModeBrokered,
	})
	tx := env.makeTx(pubPartyA, rawTx, rawErr)
	receipt := env.execOK(tx)
	record := recordFrom(t, receipt, et.TyLogEscrowCreate)
	require.Equal(t, int32(et.EscrowStatusAccepted), record.GetStatus())
	recordID := record.GetRecordId()

	//已经有乙方的记录不能再接单
	rawTx, rawErr = et.CreateRawEscrowAcceptTx(&et.EscrowAccept{RecordId: recordID})
	tx = env.makeTx(pubStranger, rawTx, rawErr)
	_, err := env.exec(tx)
	require.Equal(t, et.ErrInvalidState, err)

	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubPartyB, rawTx, rawErr)
	env.execOK(tx)
	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	env.execOK(tx)

	//买单付给乙方
	assert.Equal(t, 60*types.Coin, env.execAccount(addrPartyB).Balance)
	acc := env.execAccount(addrPartyA)
	assert.Zero(t, acc.Balance)
	assert.Zero(t, acc.Frozen)
}

func TestBrokeredAcceptErrors(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.fund(addrOperator, types.Coin)
	env.fund(addrPartyA, types.Coin)

	crID := env.createCommitReveal(types.Coin)
	rawTx, rawErr := et.CreateRawEscrowAcceptTx(&et.EscrowAccept{RecordId: crID})
	tx := env.makeTx(pubStranger, rawTx, rawErr)
	_, err := env.exec(tx)
	require.Equal(t, et.ErrInvalidState, err)

	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		Arbiter:     addrArbiter,
		Direction:   et.OfferDirectionSell,
		Mode:        et.EscrowModeBrokered,
	})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	receipt := env.execOK(tx)
	recordID := recordFrom(t, receipt, et.TyLogEscrowCreate).GetRecordId()

	//创建者、甲方、仲裁人都不能接自己的单
	rawTx, rawErr = et.CreateRawEscrowAcceptTx(&et.EscrowAccept{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrNotAuthorized, err)
	rawTx, rawErr = et.CreateRawEscrowAcceptTx(&et.EscrowAccept{RecordId: recordID})
	tx = env.makeTx(pubArbiter, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrNotAuthorized, err)

	rawTx, rawErr = et.CreateRawEscrowAcceptTx(&et.EscrowAccept{RecordId: "not exist"})
	tx = env.makeTx(pubStranger, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrRecordNotFound, err)
}

func TestCancel(t *testing.T) {
	env := newExecEnv(t)
	env.fund(addrPartyA, 2*types.Coin)

	rawTx, rawErr := et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		Arbiter:     addrArbiter,
		Direction:   et.OfferDirectionSell,
		Mode:        et.EscrowModeBrokered,
	})
	tx := env.makeTx(pubPartyA, rawTx, rawErr)
	receipt := env.execOK(tx)
	recordID := recordFrom(t, receipt, et.TyLogEscrowCreate).GetRecordId()

	rawTx, rawErr = et.CreateRawEscrowCancelTx(&et.EscrowCancel{RecordId: recordID})
	tx = env.makeTx(pubStranger, rawTx, rawErr)
	_, err := env.exec(tx)
	require.Equal(t, et.ErrNotAuthorized, err)

	rawTx, rawErr = et.CreateRawEscrowCancelTx(&et.EscrowCancel{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	receipt = env.execOK(tx)
	record := recordFrom(t, receipt, et.TyLogEscrowCancel)
	require.Equal(t, int32(et.EscrowStatusCancelled), record.GetStatus())

	acc := env.execAccount(addrPartyA)
	assert.Equal(t, 2*types.Coin, acc.Balance)
	assert.Zero(t, acc.Frozen)

	rawTx, rawErr = et.CreateRawEscrowCancelTx(&et.EscrowCancel{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrRecordNotFound, err)

	//接单后不能再撤销
	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		Arbiter:     addrArbiter,
		Direction:   et.OfferDirectionSell,
		Mode:        et.EscrowModeBrokered,
	})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	receipt = env.execOK(tx)
	recordID = recordFrom(t, receipt, et.TyLogEscrowCreate).GetRecordId()
	rawTx, rawErr = et.CreateRawEscrowAcceptTx(&et.EscrowAccept{RecordId: recordID})
	tx = env.makeTx(pubPartyB, rawTx, rawErr)
	env.execOK(tx)
	rawTx, rawErr = et.CreateRawEscrowCancelTx(&et.EscrowCancel{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrInvalidState, err)
}

func TestDispute(t *testing.T) {
	env := newExecEnv(t)
	env.fund(addrPartyA, 90*types.Coin)

	rawTx, rawErr := et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: 90 * types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Arbiter:     addrArbiter,
		Direction:   et.OfferDirectionBuy,
		Mode:        et.EscrowModeBrokered,
	})
	tx := env.makeTx(pubPartyA, rawTx, rawErr)
	receipt := env.execOK(tx)
	recordID := recordFrom(t, receipt, et.TyLogEscrowCreate).GetRecordId()

	rawTx, rawErr = et.CreateRawEscrowOpenDisputeTx(&et.EscrowOpenDispute{RecordId: recordID})
	tx = env.makeTx(pubStranger, rawTx, rawErr)
	_, err := env.exec(tx)
	require.Equal(t, et.ErrNotAParticipant, err)

	rawTx, rawErr = et.CreateRawEscrowOpenDisputeTx(&et.EscrowOpenDispute{RecordId: recordID})
	tx = env.makeTx(pubPartyB, rawTx, rawErr)
	receipt = env.execOK(tx)
	record := recordFrom(t, receipt, et.TyLogEscrowDispute)
	require.Equal(t, int32(et.EscrowStatusDisputed), record.GetStatus())
	require.True(t, record.GetDisputeOpened())

	//争议只能挂起一次
	rawTx, rawErr = et.CreateRawEscrowOpenDisputeTx(&et.EscrowOpenDispute{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrInvalidState, err)

	//争议期间确认完成和强制结算都被挡住
	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrInvalidState, err)
	env.blocktime += DefaultExpireWindow
	rawTx, rawErr = et.CreateRawEscrowForceSettleTx(&et.EscrowForceSettle{RecordId: recordID})
	tx = env.makeTx(pubStranger, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrInvalidState, err)

	//只有仲裁人可以裁决
	rawTx, rawErr = et.CreateRawEscrowResolveDisputeTx(&et.EscrowResolveDispute{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrNotAuthorized, err)

	rawTx, rawErr = et.CreateRawEscrowResolveDisputeTx(&et.EscrowResolveDispute{RecordId: recordID})
	tx = env.makeTx(pubArbiter, rawTx, rawErr)
	receipt = env.execOK(tx)
	record = recordFrom(t, receipt, et.TyLogEscrowResolve)
	require.Equal(t, int32(et.EscrowStatusResolved), record.GetStatus())

	//favorPartyA为false，押金付给乙方
	assert.Equal(t, 90*types.Coin, env.execAccount(addrPartyB).Balance)
	assert.Zero(t, env.execAccount(addrPartyA).Frozen)

	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrRecordNotFound, err)
}

func TestDisputeBeforeAccept(t *testing.T) {
	env := newExecEnv(t)
	env.fund(addrPartyA, 30*types.Coin)

	rawTx, rawErr := et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: 30 * types.Coin,
		PartyA:      addrPartyA,
		Arbiter:     addrArbiter,
		Direction:   et.OfferDirectionSell,
		Mode:        et.EscrowModeBrokered,
	})
	tx := env.makeTx(pubPartyA, rawTx, rawErr)
	receipt := env.execOK(tx)
	recordID := recordFrom(t, receipt, et.TyLogEscrowCreate).GetRecordId()

	//未接单的记录也可以挂起争议
	rawTx, rawErr = et.CreateRawEscrowOpenDisputeTx(&et.EscrowOpenDispute{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	env.execOK(tx)

	rawTx, rawErr = et.CreateRawEscrowAcceptTx(&et.EscrowAccept{RecordId: recordID})
	tx = env.makeTx(pubPartyB, rawTx, rawErr)
	_, err := env.exec(tx)
	require.Equal(t, et.ErrInvalidState, err)

	//乙方未绑定时裁决结果只能给甲方
	rawTx, rawErr = et.CreateRawEscrowResolveDisputeTx(&et.EscrowResolveDispute{RecordId: recordID})
	tx = env.makeTx(pubArbiter, rawTx, rawErr)
	env.execOK(tx)
	acc := env.execAccount(addrPartyA)
	assert.Equal(t, 30*types.Coin, acc.Balance)
	assert.Zero(t, acc.Frozen)
}

func TestMarkCompleteErrors(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.fund(addrOperator, types.Coin)
	env.fund(addrPartyA, types.Coin)

	//承诺揭示模式没有确认完成
	crID := env.createCommitReveal(types.Coin)
	rawTx, rawErr := et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: crID})
	tx := env.makeTx(pubPartyA, rawTx, rawErr)
	_, err := env.exec(tx)
	require.Equal(t, et.ErrInvalidState, err)

	rawTx, rawErr = et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		Arbiter:     addrArbiter,
		Direction:   et.OfferDirectionSell,
		Mode:        et.EscrowModeBrokered,
	})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	receipt := env.execOK(tx)
	recordID := recordFrom(t, receipt, et.TyLogEscrowCreate).GetRecordId()

	//未接单的记录不能确认完成
	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrInvalidState, err)

	rawTx, rawErr = et.CreateRawEscrowAcceptTx(&et.EscrowAccept{RecordId: recordID})
	tx = env.makeTx(pubPartyB, rawTx, rawErr)
	env.execOK(tx)

	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubStranger, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrNotAParticipant, err)
	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubArbiter, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrNotAParticipant, err)

	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	env.execOK(tx)
	rawTx, rawErr = et.CreateRawEscrowMarkCompleteTx(&et.EscrowMarkComplete{RecordId: recordID})
	tx = env.makeTx(pubPartyA, rawTx, rawErr)
	_, err = env.exec(tx)
	require.Equal(t, et.ErrInvalidState, err)
}

func TestExpireWindowConf(t *testing.T) {
	env := newExecEnv(t)
	env.setManageConf(et.ConfNameOperator, addrOperator)
	env.setManageConf(et.ConfNameExpireWindow, "600")
	env.fund(addrOperator, types.Coin)

	rawTx, rawErr := et.CreateRawEscrowCreateTx(&et.EscrowCreate{
		StakeAmount: types.Coin,
		PartyA:      addrPartyA,
		PartyB:      addrPartyB,
		Mode:        et.EscrowModeCommitReveal,
	})
	tx := env.makeTx(pubOperator, rawTx, rawErr)
	receipt := env.execOK(tx)
	record := recordFrom(t, receipt, et.TyLogEscrowCreate)
	require.Equal(t, env.blocktime+600, record.GetExpiration())
}

func TestSettleAmounts(t *testing.T) {
	cr := func(stateA, choiceA, stateB, choiceB int32) *et.EscrowRecord {
		return &et.EscrowRecord{
			StakeAmount: 101,
			CommitA:     &et.EscrowCommitment{State: stateA, Choice: choiceA},
			CommitB:     &et.EscrowCommitment{State: stateB, Choice: choiceB},
		}
	}
	revealed := int32(et.CommitRevealed)
	set := int32(et.CommitSet)

	//双方合作平分，零头给乙方
	a, b := settleAmounts(cr(revealed, et.ChoiceCooperate, revealed, et.ChoiceCooperate))
	assert.Equal(t, int64(50), a)
	assert.Equal(t, int64(51), b)

	//一方背叛独得
	a, b = settleAmounts(cr(revealed, et.ChoiceDefect, revealed, et.ChoiceCooperate))
	assert.Equal(t, int64(101), a)
	assert.Zero(t, b)
	a, b = settleAmounts(cr(revealed, et.ChoiceCooperate, revealed, et.ChoiceDefect))
	assert.Zero(t, a)
	assert.Equal(t, int64(101), b)

	//双方背叛归创建者
	a, b = settleAmounts(cr(revealed, et.ChoiceDefect, revealed, et.ChoiceDefect))
	assert.Zero(t, a)
	assert.Zero(t, b)

	//只有一方有效揭示时独得
	a, b = settleAmounts(cr(revealed, et.ChoiceCooperate, set, et.ChoiceNone))
	assert.Equal(t, int64(101), a)
	assert.Zero(t, b)
	a, b = settleAmounts(cr(set, et.ChoiceNone, revealed, et.ChoiceDefect))
	assert.Zero(t, a)
	assert.Equal(t, int64(101), b)

	//都没有有效揭示归创建者
	a, b = settleAmounts(cr(revealed, et.ChoiceNone, revealed, et.ChoiceNone))
	assert.Zero(t, a)
	assert.Zero(t, b)
	a, b = settleAmounts(cr(set, et.ChoiceNone, set, et.ChoiceNone))
	assert.Zero(t, a)
	assert.Zero(t, b)
}

func TestDecodeChoice(t *testing.T) {
	secret := []byte("the secret")
	commitHash, _ := makeCommitment(et.ChoiceCooperate, secret)
	assert.Equal(t, int32(et.ChoiceCooperate), decodeChoice(commitHash, secret))

	commitHash, _ = makeCommitment(et.ChoiceDefect, secret)
	assert.Equal(t, int32(et.ChoiceDefect), decodeChoice(commitHash, secret))

	assert.Equal(t, int32(et.ChoiceNone), decodeChoice(common.Sha256([]byte("junk")), secret))
}
