package executor

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/33cn/escrow/account"
	"github.com/33cn/escrow/common"
	"github.com/33cn/escrow/common/address"
	dbm "github.com/33cn/escrow/common/db"
	et "github.com/33cn/escrow/plugin/dapp/escrow/types"
	dapp "github.com/33cn/escrow/system/dapp"
	"github.com/33cn/escrow/types"
)

//承诺哈希和秘密哈希都必须是sha256摘要
const hashLen = 32

type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	localDB      dbm.KVDB
	index        int
}

func NewAction(e *Escrow, tx *types.Transaction, index int) *Action {
	hash := tx.Hash()
	fromaddr := tx.From()
	return &Action{e.GetCoinsAccount(), e.GetStateDB(), hash, fromaddr,
		e.GetBlockTime(), e.GetHeight(), dapp.ExecAddress(string(tx.Execer)), e.GetLocalDB(), index}
}

//CheckExecAccountBalance 检查创建者在合约账户下的余额和冻结资金
func (action *Action) CheckExecAccountBalance(fromAddr string, ToFrozen, ToActive int64) bool {
	acc := action.coinsAccount.LoadExecAccount(fromAddr, action.execaddr)
	if acc.GetBalance() >= ToFrozen && acc.GetFrozen() >= ToActive {
		return true
	}
	return false
}

//Key 托管记录在statedb中的key
func Key(id string) (key []byte) {
	key = append(key, []byte("mavl-"+et.EscrowX+"-record-")...)
	key = append(key, []byte(id)...)
	return key
}

//CountKey 记录计数器在statedb中的key
func CountKey() (key []byte) {
	key = append(key, []byte("mavl-"+et.EscrowX+"-count")...)
	return key
}

//GetIndex 当前交易的全局index，作为localdb索引的排序依据
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func (action *Action) GetReceiptLog(record *et.EscrowRecord, ty int32) *types.ReceiptLog {
	log := &types.ReceiptLog{}
	log.Ty = ty
	r := &et.ReceiptEscrow{}
	r.Record = record
	log.Log = types.Encode(r)
	return log
}

func (action *Action) GetKVSet(record *et.EscrowRecord) (kvset []*types.KeyValue) {
	value := types.Encode(record)
	kvset = append(kvset, &types.KeyValue{Key: Key(record.GetRecordId()), Value: value})
	return kvset
}

func (action *Action) saveStateDB(record *et.EscrowRecord) {
	action.db.Set(Key(record.GetRecordId()), types.Encode(record))
}

//getNextRecordID 分配本次创建的记录id，128位计数器避免回绕
func (action *Action) getNextRecordID() (string, *types.KeyValue, error) {
	count := &et.RecordCount{}
	data, err := action.db.Get(CountKey())
	if err != nil && err != types.ErrNotFound {
		return "", nil, err
	}
	if len(data) != 0 {
		err = types.Decode(data, count)
		if err != nil {
			return "", nil, err
		}
	}
	id := fmt.Sprintf("%016x%016x", count.GetHi(), count.GetLo())
	count.Lo++
	if count.Lo == 0 {
		count.Hi++
	}
	kv := &types.KeyValue{Key: CountKey(), Value: types.Encode(count)}
	action.db.Set(kv.Key, kv.Value)
	return id, kv, nil
}

func readRecord(db dbm.KV, id string) (*et.EscrowRecord, error) {
	data, err := db.Get(Key(id))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, et.ErrRecordNotFound
		}
		return nil, err
	}
	//终态记录的key置nil删除，有些db实现会留下空值
	if len(data) == 0 {
		return nil, et.ErrRecordNotFound
	}
	var record et.EscrowRecord
	err = types.Decode(data, &record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (action *Action) readRecord(id string) (*et.EscrowRecord, error) {
	return readRecord(action.db, id)
}

//checkCreate 创建参数检查，两种模式各有约束
func (action *Action) checkCreate(create *et.EscrowCreate) error {
	if create.GetPartyA() == "" {
		return types.ErrInvalidParam
	}
	if err := address.CheckAddress(create.GetPartyA()); err != nil {
		return err
	}
	if create.GetPartyB() != "" {
		if create.GetPartyB() == create.GetPartyA() {
			return types.ErrInvalidParam
		}
		if err := address.CheckAddress(create.GetPartyB()); err != nil {
			return err
		}
	}
	if create.GetMode() == et.EscrowModeCommitReveal {
		//承诺揭示模式双方必须确定，不设仲裁人，只有运营方能创建
		if create.GetPartyB() == "" || create.GetArbiter() != "" {
			return types.ErrInvalidParam
		}
		operator, err := GetConfOperator(action.db)
		if err != nil {
			return err
		}
		if action.fromaddr != operator {
			return et.ErrNotAuthorized
		}
		return nil
	}
	if create.GetMode() == et.EscrowModeBrokered {
		if create.GetDirection() != et.OfferDirectionBuy && create.GetDirection() != et.OfferDirectionSell {
			return types.ErrInvalidParam
		}
		if create.GetArbiter() == "" {
			return types.ErrInvalidParam
		}
		if err := address.CheckAddress(create.GetArbiter()); err != nil {
			return err
		}
		if create.GetArbiter() == create.GetPartyA() || create.GetArbiter() == create.GetPartyB() {
			return types.ErrInvalidParam
		}
		return nil
	}
	return types.ErrInvalidParam
}

func (action *Action) EscrowCreate(create *et.EscrowCreate) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	if !types.CheckAmount(create.GetStakeAmount()) {
		elog.Error("EscrowCreate", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", create.GetStakeAmount(), "err", types.ErrAmount)
		return nil, types.ErrAmount
	}
	if err := action.checkCreate(create); err != nil {
		elog.Error("EscrowCreate", "addr", action.fromaddr, "execaddr", action.execaddr, "err", err)
		return nil, err
	}
	if !action.CheckExecAccountBalance(action.fromaddr, create.GetStakeAmount(), 0) {
		elog.Error("EscrowCreate", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", create.GetStakeAmount(), "err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}
	recordID, countKV, err := action.getNextRecordID()
	if err != nil {
		elog.Error("EscrowCreate", "addr", action.fromaddr, "execaddr", action.execaddr, "err", err)
		return nil, err
	}
	receipt, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, create.GetStakeAmount())
	if err != nil {
		elog.Error("EscrowCreate.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", create.GetStakeAmount(), "err", err.Error())
		return nil, err
	}
	window := GetConfValue(action.db, et.ConfNameExpireWindow, DefaultExpireWindow)
	record := &et.EscrowRecord{
		RecordId:    recordID,
		StakeAmount: create.GetStakeAmount(),
		Creator:     action.fromaddr,
		PartyA:      create.GetPartyA(),
		PartyB:      create.GetPartyB(),
		Arbiter:     create.GetArbiter(),
		Mode:        create.GetMode(),
		Direction:   create.GetDirection(),
		CommitA:     &et.EscrowCommitment{},
		CommitB:     &et.EscrowCommitment{},
		Expiration:  action.blocktime + window,
		Status:      et.EscrowStatusOpen,
		Index:       action.GetIndex(),
		CreateTime:  action.blocktime,
		Height:      action.height,
	}
	if record.GetMode() == et.EscrowModeCommitReveal || record.GetPartyB() != "" {
		//对手方已经确定，直接进入Accepted
		record.Status = et.EscrowStatusAccepted
	}
	action.saveStateDB(record)

	receiptLog := action.GetReceiptLog(record, et.TyLogEscrowCreate)
	logs = append(logs, receiptLog)
	kv = append(kv, action.GetKVSet(record)...)
	kv = append(kv, countKV)
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) EscrowAccept(accept *et.EscrowAccept) (*types.Receipt, error) {
	record, err := action.readRecord(accept.GetRecordId())
	if err != nil {
		elog.Error("EscrowAccept", "addr", action.fromaddr, "execaddr", action.execaddr,
			"id", accept.GetRecordId(), "err", err)
		return nil, err
	}
	if record.GetMode() != et.EscrowModeBrokered || record.GetStatus() != et.EscrowStatusOpen {
		elog.Error("EscrowAccept", "addr", action.fromaddr, "id", accept.GetRecordId(),
			"status", record.GetStatus(), "err", et.ErrInvalidState)
		return nil, et.ErrInvalidState
	}
	if action.fromaddr == record.GetCreator() || action.fromaddr == record.GetPartyA() ||
		action.fromaddr == record.GetArbiter() {
		return nil, et.ErrNotAuthorized
	}
	record.PartyB = action.fromaddr
	record.PrevStatus = record.GetStatus()
	record.Status = et.EscrowStatusAccepted
	record.PrevIndex = record.GetIndex()
	record.Index = action.GetIndex()
	action.saveStateDB(record)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receiptLog := action.GetReceiptLog(record, et.TyLogEscrowAccept)
	logs = append(logs, receiptLog)
	kv = append(kv, action.GetKVSet(record)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//commitSlot 按交易发起方定位承诺槽位，非参与方返回nil
func (action *Action) commitSlot(record *et.EscrowRecord) *et.EscrowCommitment {
	if action.fromaddr == record.GetPartyA() {
		if record.CommitA == nil {
			record.CommitA = &et.EscrowCommitment{}
		}
		return record.CommitA
	}
	if action.fromaddr == record.GetPartyB() {
		if record.CommitB == nil {
			record.CommitB = &et.EscrowCommitment{}
		}
		return record.CommitB
	}
	return nil
}

func (action *Action) EscrowCommit(commit *et.EscrowCommit) (*types.Receipt, error) {
	record, err := action.readRecord(commit.GetRecordId())
	if err != nil {
		elog.Error("EscrowCommit", "addr", action.fromaddr, "execaddr", action.execaddr,
			"id", commit.GetRecordId(), "err", err)
		return nil, err
	}
	if record.GetMode() != et.EscrowModeCommitReveal || record.GetStatus() != et.EscrowStatusAccepted {
		return nil, et.ErrInvalidState
	}
	if len(commit.GetCommitmentHash()) != hashLen || len(commit.GetSecretHash()) != hashLen {
		return nil, types.ErrInvalidParam
	}
	slot := action.commitSlot(record)
	if slot == nil {
		return nil, et.ErrNotAParticipant
	}
	if slot.GetState() != et.CommitUnset {
		elog.Error("EscrowCommit", "addr", action.fromaddr, "id", commit.GetRecordId(),
			"err", et.ErrAlreadyCommitted)
		return nil, et.ErrAlreadyCommitted
	}
	slot.State = et.CommitSet
	slot.CommitmentHash = commit.GetCommitmentHash()
	slot.SecretHash = commit.GetSecretHash()
	record.PrevStatus = record.GetStatus()
	record.PrevIndex = record.GetIndex()
	record.Index = action.GetIndex()
	action.saveStateDB(record)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receiptLog := action.GetReceiptLog(record, et.TyLogEscrowCommit)
	logs = append(logs, receiptLog)
	kv = append(kv, action.GetKVSet(record)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//decodeChoice 用两种选择逐一重算承诺哈希，都对不上则视为无效
func decodeChoice(commitmentHash []byte, secret []byte) int32 {
	for _, choice := range []int32{et.ChoiceCooperate, et.ChoiceDefect} {
		data := append([]byte{byte(choice)}, secret...)
		if bytes.Equal(common.Sha256(data), commitmentHash) {
			return choice
		}
	}
	return et.ChoiceNone
}

func revealedChoice(c *et.EscrowCommitment) int32 {
	if c.GetState() != et.CommitRevealed {
		return et.ChoiceNone
	}
	return c.GetChoice()
}

//settleAmounts 押金分配矩阵，返回甲乙双方应得份额，余下归创建者
//双方合作平分；一方背叛独得；只有一方有效揭示时独得；其余情况归创建者
func settleAmounts(record *et.EscrowRecord) (int64, int64) {
	stake := record.GetStakeAmount()
	choiceA := revealedChoice(record.GetCommitA())
	choiceB := revealedChoice(record.GetCommitB())
	if choiceA == et.ChoiceCooperate && choiceB == et.ChoiceCooperate {
		half := stake / 2
		return half, stake - half
	}
	if choiceA == et.ChoiceDefect && choiceB == et.ChoiceDefect {
		return 0, 0
	}
	if choiceA == et.ChoiceDefect {
		return stake, 0
	}
	if choiceB == et.ChoiceDefect {
		return 0, stake
	}
	if choiceA != et.ChoiceNone && choiceB == et.ChoiceNone {
		return stake, 0
	}
	if choiceB != et.ChoiceNone && choiceA == et.ChoiceNone {
		return 0, stake
	}
	return 0, 0
}

func (action *Action) EscrowReveal(reveal *et.EscrowReveal) (*types.Receipt, error) {
	record, err := action.readRecord(reveal.GetRecordId())
	if err != nil {
		elog.Error("EscrowReveal", "addr", action.fromaddr, "execaddr", action.execaddr,
			"id", reveal.GetRecordId(), "err", err)
		return nil, err
	}
	if record.GetMode() != et.EscrowModeCommitReveal || record.GetStatus() != et.EscrowStatusAccepted {
		return nil, et.ErrInvalidState
	}
	slot := action.commitSlot(record)
	if slot == nil {
		return nil, et.ErrNotAParticipant
	}
	if record.GetCommitA().GetState() == et.CommitUnset || record.GetCommitB().GetState() == et.CommitUnset {
		return nil, et.ErrCommitmentsIncomplete
	}
	if slot.GetState() != et.CommitSet {
		//自己已经揭示过了
		return nil, et.ErrInvalidState
	}
	if !bytes.Equal(common.Sha256(reveal.GetSecret()), slot.GetSecretHash()) {
		elog.Error("EscrowReveal", "addr", action.fromaddr, "id", reveal.GetRecordId(),
			"err", et.ErrHashMismatch)
		return nil, et.ErrHashMismatch
	}
	slot.Choice = decodeChoice(slot.GetCommitmentHash(), reveal.GetSecret())
	slot.State = et.CommitRevealed

	if record.GetCommitA().GetState() == et.CommitRevealed && record.GetCommitB().GetState() == et.CommitRevealed {
		//双方都已揭示，结算并删除记录
		if !action.CheckExecAccountBalance(record.GetCreator(), 0, record.GetStakeAmount()) {
			elog.Error("EscrowReveal", "creator", record.GetCreator(), "execaddr", action.execaddr,
				"id", reveal.GetRecordId(), "err", types.ErrNoBalance)
			return nil, types.ErrNoBalance
		}
		amountA, amountB := settleAmounts(record)
		logs, kv, err := action.payoutStake(record, amountA, amountB)
		if err != nil {
			return nil, err
		}
		record.PrevStatus = record.GetStatus()
		record.Status = et.EscrowStatusSettled
		record.PrevIndex = record.GetIndex()
		record.Index = action.GetIndex()
		action.db.Set(Key(record.GetRecordId()), nil)
		kv = append(kv, &types.KeyValue{Key: Key(record.GetRecordId()), Value: nil})
		receiptLog := action.GetReceiptLog(record, et.TyLogEscrowReveal)
		logs = append(logs, receiptLog)
		return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
	}

	record.PrevStatus = record.GetStatus()
	record.PrevIndex = record.GetIndex()
	record.Index = action.GetIndex()
	action.saveStateDB(record)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receiptLog := action.GetReceiptLog(record, et.TyLogEscrowReveal)
	logs = append(logs, receiptLog)
	kv = append(kv, action.GetKVSet(record)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) EscrowMarkComplete(complete *et.EscrowMarkComplete) (*types.Receipt, error) {
	record, err := action.readRecord(complete.GetRecordId())
	if err != nil {
		elog.Error("EscrowMarkComplete", "addr", action.fromaddr, "execaddr", action.execaddr,
			"id", complete.GetRecordId(), "err", err)
		return nil, err
	}
	if record.GetMode() != et.EscrowModeBrokered || record.GetStatus() != et.EscrowStatusAccepted {
		return nil, et.ErrInvalidState
	}
	if action.fromaddr == record.GetPartyA() {
		if record.GetCompleteA() {
			return nil, et.ErrInvalidState
		}
		record.CompleteA = true
	} else if action.fromaddr == record.GetPartyB() {
		if record.GetCompleteB() {
			return nil, et.ErrInvalidState
		}
		record.CompleteB = true
	} else {
		return nil, et.ErrNotAParticipant
	}

	if record.GetCompleteA() && record.GetCompleteB() {
		//双方都确认完成，按方向结算：买单付乙方，卖单付甲方
		receiver := record.GetPartyA()
		if record.GetDirection() == et.OfferDirectionBuy {
			receiver = record.GetPartyB()
		}
		if !action.CheckExecAccountBalance(record.GetCreator(), 0, record.GetStakeAmount()) {
			elog.Error("EscrowMarkComplete", "creator", record.GetCreator(), "execaddr", action.execaddr,
				"id", complete.GetRecordId(), "err", types.ErrNoBalance)
			return nil, types.ErrNoBalance
		}
		receipt, err := action.payoutTo(record, receiver, record.GetStakeAmount())
		if err != nil {
			elog.Error("EscrowMarkComplete", "receiver", receiver, "execaddr", action.execaddr,
				"amount", record.GetStakeAmount(), "err", err)
			return nil, err
		}
		record.PrevStatus = record.GetStatus()
		record.Status = et.EscrowStatusSettled
		record.PrevIndex = record.GetIndex()
		record.Index = action.GetIndex()
		action.db.Set(Key(record.GetRecordId()), nil)

		var logs []*types.ReceiptLog
		var kv []*types.KeyValue
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
		kv = append(kv, &types.KeyValue{Key: Key(record.GetRecordId()), Value: nil})
		receiptLog := action.GetReceiptLog(record, et.TyLogEscrowComplete)
		logs = append(logs, receiptLog)
		return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
	}

	record.PrevStatus = record.GetStatus()
	record.PrevIndex = record.GetIndex()
	record.Index = action.GetIndex()
	action.saveStateDB(record)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receiptLog := action.GetReceiptLog(record, et.TyLogEscrowComplete)
	logs = append(logs, receiptLog)
	kv = append(kv, action.GetKVSet(record)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) EscrowCancel(cancel *et.EscrowCancel) (*types.Receipt, error) {
	record, err := action.readRecord(cancel.GetRecordId())
	if err != nil {
		elog.Error("EscrowCancel", "addr", action.fromaddr, "execaddr", action.execaddr,
			"id", cancel.GetRecordId(), "err", err)
		return nil, err
	}
	//只有还没有对手方接单的记录可以撤销
	if record.GetStatus() != et.EscrowStatusOpen {
		return nil, et.ErrInvalidState
	}
	if action.fromaddr != record.GetCreator() {
		return nil, et.ErrNotAuthorized
	}
	if !action.CheckExecAccountBalance(record.GetCreator(), 0, record.GetStakeAmount()) {
		elog.Error("EscrowCancel", "creator", record.GetCreator(), "execaddr", action.execaddr,
			"id", cancel.GetRecordId(), "err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}
	receipt, err := action.coinsAccount.ExecActive(record.GetCreator(), action.execaddr, record.GetStakeAmount())
	if err != nil {
		elog.Error("EscrowCancel.ExecActive", "addr", record.GetCreator(), "execaddr", action.execaddr,
			"amount", record.GetStakeAmount(), "err", err)
		return nil, err
	}
	record.PrevStatus = record.GetStatus()
	record.Status = et.EscrowStatusCancelled
	record.PrevIndex = record.GetIndex()
	record.Index = action.GetIndex()
	action.db.Set(Key(record.GetRecordId()), nil)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	kv = append(kv, &types.KeyValue{Key: Key(record.GetRecordId()), Value: nil})
	receiptLog := action.GetReceiptLog(record, et.TyLogEscrowCancel)
	logs = append(logs, receiptLog)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) EscrowOpenDispute(dispute *et.EscrowOpenDispute) (*types.Receipt, error) {
	record, err := action.readRecord(dispute.GetRecordId())
	if err != nil {
		elog.Error("EscrowOpenDispute", "addr", action.fromaddr, "execaddr", action.execaddr,
			"id", dispute.GetRecordId(), "err", err)
		return nil, err
	}
	if record.GetMode() != et.EscrowModeBrokered {
		return nil, et.ErrInvalidState
	}
	if action.fromaddr != record.GetPartyA() && action.fromaddr != record.GetPartyB() {
		return nil, et.ErrNotAParticipant
	}
	if record.GetDisputeOpened() {
		return nil, et.ErrInvalidState
	}
	record.DisputeOpened = true
	record.PrevStatus = record.GetStatus()
	record.Status = et.EscrowStatusDisputed
	record.PrevIndex = record.GetIndex()
	record.Index = action.GetIndex()
	action.saveStateDB(record)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receiptLog := action.GetReceiptLog(record, et.TyLogEscrowDispute)
	logs = append(logs, receiptLog)
	kv = append(kv, action.GetKVSet(record)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) EscrowResolveDispute(resolve *et.EscrowResolveDispute) (*types.Receipt, error) {
	record, err := action.readRecord(resolve.GetRecordId())
	if err != nil {
		elog.Error("EscrowResolveDispute", "addr", action.fromaddr, "execaddr", action.execaddr,
			"id", resolve.GetRecordId(), "err", err)
		return nil, err
	}
	if record.GetStatus() != et.EscrowStatusDisputed {
		return nil, et.ErrInvalidState
	}
	if action.fromaddr != record.GetArbiter() {
		return nil, et.ErrNotAuthorized
	}
	receiver := record.GetPartyB()
	if resolve.GetFavorPartyA() || record.GetPartyB() == "" {
		receiver = record.GetPartyA()
	}
	if !action.CheckExecAccountBalance(record.GetCreator(), 0, record.GetStakeAmount()) {
		elog.Error("EscrowResolveDispute", "creator", record.GetCreator(), "execaddr", action.execaddr,
			"id", resolve.GetRecordId(), "err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}
	receipt, err := action.payoutTo(record, receiver, record.GetStakeAmount())
	if err != nil {
		elog.Error("EscrowResolveDispute", "receiver", receiver, "execaddr", action.execaddr,
			"amount", record.GetStakeAmount(), "err", err)
		return nil, err
	}
	record.PrevStatus = record.GetStatus()
	record.Status = et.EscrowStatusResolved
	record.PrevIndex = record.GetIndex()
	record.Index = action.GetIndex()
	action.db.Set(Key(record.GetRecordId()), nil)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	kv = append(kv, &types.KeyValue{Key: Key(record.GetRecordId()), Value: nil})
	receiptLog := action.GetReceiptLog(record, et.TyLogEscrowResolve)
	logs = append(logs, receiptLog)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) EscrowForceSettle(settle *et.EscrowForceSettle) (*types.Receipt, error) {
	record, err := action.readRecord(settle.GetRecordId())
	if err != nil {
		elog.Error("EscrowForceSettle", "addr", action.fromaddr, "execaddr", action.execaddr,
			"id", settle.GetRecordId(), "err", err)
		return nil, err
	}
	//争议中的记录只能由仲裁人裁决
	if record.GetStatus() == et.EscrowStatusDisputed {
		return nil, et.ErrInvalidState
	}
	if action.blocktime < record.GetExpiration() {
		return nil, et.ErrNotYetExpired
	}
	if !action.CheckExecAccountBalance(record.GetCreator(), 0, record.GetStakeAmount()) {
		elog.Error("EscrowForceSettle", "creator", record.GetCreator(), "execaddr", action.execaddr,
			"id", settle.GetRecordId(), "err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}
	amountA, amountB := settleAmounts(record)
	logs, kv, err := action.payoutStake(record, amountA, amountB)
	if err != nil {
		return nil, err
	}
	record.PrevStatus = record.GetStatus()
	record.Status = et.EscrowStatusTimedOut
	record.PrevIndex = record.GetIndex()
	record.Index = action.GetIndex()
	action.db.Set(Key(record.GetRecordId()), nil)
	kv = append(kv, &types.KeyValue{Key: Key(record.GetRecordId()), Value: nil})
	receiptLog := action.GetReceiptLog(record, et.TyLogEscrowTimeout)
	logs = append(logs, receiptLog)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//payoutTo 发放给创建者本人时解冻，否则从冻结资金直接划转
func (action *Action) payoutTo(record *et.EscrowRecord, receiver string, amount int64) (*types.Receipt, error) {
	if receiver == record.GetCreator() {
		return action.coinsAccount.ExecActive(record.GetCreator(), action.execaddr, amount)
	}
	return action.coinsAccount.ExecTransferFrozen(record.GetCreator(), receiver, action.execaddr, amount)
}

//payoutStake 按甲乙双方应得份额发放冻结押金，余下部分解冻退回创建者
func (action *Action) payoutStake(record *et.EscrowRecord, amountA, amountB int64) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	creatorAmount := record.GetStakeAmount() - amountA - amountB
	if creatorAmount > 0 {
		receipt, err := action.coinsAccount.ExecActive(record.GetCreator(), action.execaddr, creatorAmount)
		if err != nil {
			elog.Error("payoutStake.ExecActive", "addr", record.GetCreator(), "execaddr", action.execaddr,
				"amount", creatorAmount, "err", err)
			return nil, nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}
	if amountA > 0 {
		receipt, err := action.payoutTo(record, record.GetPartyA(), amountA)
		if err != nil {
			if creatorAmount > 0 {
				action.coinsAccount.ExecFrozen(record.GetCreator(), action.execaddr, creatorAmount) // rollback
			}
			elog.Error("payoutStake", "addr", record.GetPartyA(), "execaddr", action.execaddr,
				"amount", amountA, "err", err)
			return nil, nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}
	if amountB > 0 {
		receipt, err := action.payoutTo(record, record.GetPartyB(), amountB)
		if err != nil {
			if creatorAmount > 0 {
				action.coinsAccount.ExecFrozen(record.GetCreator(), action.execaddr, creatorAmount) // rollback
			}
			if amountA > 0 && record.GetPartyA() == record.GetCreator() {
				action.coinsAccount.ExecFrozen(record.GetCreator(), action.execaddr, amountA) // rollback
			}
			elog.Error("payoutStake", "addr", record.GetPartyB(), "execaddr", action.execaddr,
				"amount", amountB, "err", err)
			return nil, nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}
	return logs, kv, nil
}

//QueryRecordByID 按id查询托管记录，终态记录已经从statedb删除
func QueryRecordByID(stateDB dbm.KV, param *et.ReqEscrowId) (types.Message, error) {
	record, err := readRecord(stateDB, param.GetRecordId())
	if err != nil {
		elog.Error("QueryRecordByID", "id", param.GetRecordId(), "err", err)
		return nil, err
	}
	return &et.ReplyEscrowRecord{Record: record}, nil
}

//QueryRecordListByPage 分页查询，addr优先于status
func QueryRecordListByPage(localDB dbm.KVDB, stateDB dbm.KV, param *et.ReqEscrowList) (types.Message, error) {
	direction := dbm.ListDESC
	if param.GetDirection() == dbm.ListASC {
		direction = dbm.ListASC
	}
	count := DefaultCount
	if 0 < param.GetCount() && param.GetCount() <= MaxCount {
		count = param.GetCount()
	}
	var prefix, key []byte
	if param.GetAddr() != "" {
		prefix = calcEscrowAddrIndexPrefix(param.GetAddr())
		key = calcEscrowAddrIndexKey(param.GetAddr(), param.GetIndex())
	} else {
		if param.GetStatus() < et.EscrowStatusOpen || param.GetStatus() > et.EscrowStatusDisputed {
			return nil, types.ErrInvalidParam
		}
		prefix = calcEscrowStatusIndexPrefix(param.GetStatus())
		key = calcEscrowStatusIndexKey(param.GetStatus(), param.GetIndex())
	}
	var values [][]byte
	var err error
	if param.GetIndex() == 0 { //第一次查询
		values, err = localDB.List(prefix, nil, count, direction)
	} else {
		values, err = localDB.List(prefix, key, count, direction)
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, value := range values {
		var ref et.EscrowRecordRef
		err := types.Decode(value, &ref)
		if err != nil {
			continue
		}
		ids = append(ids, ref.GetRecordId())
	}
	return &et.ReplyEscrowList{Records: getRecordList(stateDB, ids)}, nil
}

//getRecordList 按id批量读取状态库，读不到的跳过
func getRecordList(db dbm.KV, ids []string) []*et.EscrowRecord {
	var records []*et.EscrowRecord
	for _, id := range ids {
		record, err := readRecord(db, id)
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	return records
}

//GetConfValue 读取manage合约的数值配置，没有配置时返回默认值
func GetConfValue(db dbm.KV, key string, defaultValue int64) int64 {
	var item types.ConfigItem
	value, err := getManageKey(key, db)
	if err != nil {
		return defaultValue
	}
	if value != nil {
		err = types.Decode(value, &item)
		if err != nil {
			return defaultValue
		}
	}
	values := item.GetArr().GetValue()
	if len(values) == 0 {
		return defaultValue
	}
	//取数组最后一位，作为最新配置项的值
	v, err := strconv.ParseInt(values[len(values)-1], 10, 64)
	if err != nil {
		return defaultValue
	}
	return v
}

//GetConfOperator 从manage合约配置中读取托管运营方地址
func GetConfOperator(db dbm.KV) (string, error) {
	var item types.ConfigItem
	value, err := getManageKey(et.ConfNameOperator, db)
	if err != nil {
		return "", et.ErrNotInitialized
	}
	if value != nil {
		err = types.Decode(value, &item)
		if err != nil {
			elog.Error("GetConfOperator", "decode config err", err)
			return "", et.ErrNotInitialized
		}
	}
	values := item.GetArr().GetValue()
	if len(values) == 0 {
		return "", et.ErrNotInitialized
	}
	//取数组最后一位，作为最新配置项的值
	return values[len(values)-1], nil
}

func getManageKey(key string, db dbm.KV) ([]byte, error) {
	manageKey := types.ManageKey(key)
	value, err := db.Get([]byte(manageKey))
	if err != nil {
		return getConfigKey(key, db)
	}
	return value, nil
}

func getConfigKey(key string, db dbm.KV) ([]byte, error) {
	configKey := types.ConfigKey(key)
	value, err := db.Get([]byte(configKey))
	if err != nil {
		return nil, err
	}
	return value, nil
}
