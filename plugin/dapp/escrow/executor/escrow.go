package executor

import (
	"fmt"

	"github.com/pkg/errors"

	log "github.com/inconshreveable/log15"

	et "github.com/33cn/escrow/plugin/dapp/escrow/types"
	drivers "github.com/33cn/escrow/system/dapp"
	"github.com/33cn/escrow/types"
)

var elog = log.New("module", "execs.escrow")

func Init(name string) {
	drivers.Register(GetName(), newEscrow, 0)
}

type Escrow struct {
	drivers.DriverBase
}

func newEscrow() drivers.Driver {
	e := &Escrow{}
	e.SetChild(e)
	return e
}

func GetName() string {
	return newEscrow().GetName()
}

func (e *Escrow) GetDriverName() string {
	return et.EscrowX
}

func (e *Escrow) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action et.EscrowAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	elog.Debug("escrow.Exec", "ty", action.GetTy())
	actiondb := NewAction(e, tx, index)
	if action.Ty == et.EscrowActionCreate && action.GetCreate() != nil {
		return actiondb.EscrowCreate(action.GetCreate())
	} else if action.Ty == et.EscrowActionAccept && action.GetAccept() != nil {
		return actiondb.EscrowAccept(action.GetAccept())
	} else if action.Ty == et.EscrowActionCommit && action.GetCommit() != nil {
		return actiondb.EscrowCommit(action.GetCommit())
	} else if action.Ty == et.EscrowActionReveal && action.GetReveal() != nil {
		return actiondb.EscrowReveal(action.GetReveal())
	} else if action.Ty == et.EscrowActionMarkComplete && action.GetMarkComplete() != nil {
		return actiondb.EscrowMarkComplete(action.GetMarkComplete())
	} else if action.Ty == et.EscrowActionCancel && action.GetCancel() != nil {
		return actiondb.EscrowCancel(action.GetCancel())
	} else if action.Ty == et.EscrowActionOpenDispute && action.GetOpenDispute() != nil {
		return actiondb.EscrowOpenDispute(action.GetOpenDispute())
	} else if action.Ty == et.EscrowActionResolveDispute && action.GetResolveDispute() != nil {
		return actiondb.EscrowResolveDispute(action.GetResolveDispute())
	} else if action.Ty == et.EscrowActionForceSettle && action.GetForceSettle() != nil {
		return actiondb.EscrowForceSettle(action.GetForceSettle())
	}
	return nil, types.ErrActionNotSupport
}

func (e *Escrow) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := e.DriverBase.ExecLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for i := 0; i < len(receipt.Logs); i++ {
		item := receipt.Logs[i]
		if item.Ty >= et.TyLogEscrowCreate && item.Ty <= et.TyLogEscrowTimeout {
			var escrowlog et.ReceiptEscrow
			err := types.Decode(item.Log, &escrowlog)
			if err != nil {
				panic(err) //数据错误了，已经被修改了
			}
			kv := e.updateIndex(&escrowlog)
			set.KV = append(set.KV, kv...)
		}
	}
	return set, nil
}

func (e *Escrow) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := e.DriverBase.ExecDelLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for i := 0; i < len(receipt.Logs); i++ {
		item := receipt.Logs[i]
		if item.Ty >= et.TyLogEscrowCreate && item.Ty <= et.TyLogEscrowTimeout {
			var escrowlog et.ReceiptEscrow
			err := types.Decode(item.Log, &escrowlog)
			if err != nil {
				panic(err) //数据错误了，已经被修改了
			}
			kv := e.rollbackIndex(&escrowlog)
			set.KV = append(set.KV, kv...)
		}
	}
	return set, nil
}

func (e *Escrow) Query(funcName string, params []byte) (types.Message, error) {
	if funcName == FuncName_QueryRecordById {
		var in et.ReqEscrowId
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		return QueryRecordByID(e.GetStateDB(), &in)
	} else if funcName == FuncName_QueryRecordListByStatus {
		var in et.ReqEscrowList
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		in.Addr = ""
		return QueryRecordListByPage(e.GetLocalDB(), e.GetStateDB(), &in)
	} else if funcName == FuncName_QueryRecordListByAddr {
		var in et.ReqEscrowList
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		if in.GetAddr() == "" {
			return nil, errors.Wrapf(types.ErrInvalidParam, "funcName:%s addr is required", funcName)
		}
		return QueryRecordListByPage(e.GetLocalDB(), e.GetStateDB(), &in)
	} else if funcName == FuncName_QueryOpenRecords {
		var in et.ReqEscrowList
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		in.Status = et.EscrowStatusOpen
		in.Addr = ""
		return QueryRecordListByPage(e.GetLocalDB(), e.GetStateDB(), &in)
	} else if funcName == FuncName_QueryDisputedRecords {
		var in et.ReqEscrowList
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		in.Status = et.EscrowStatusDisputed
		in.Addr = ""
		return QueryRecordListByPage(e.GetLocalDB(), e.GetStateDB(), &in)
	}
	return nil, types.ErrQueryNotSupport
}

//updateIndex 先移除记录上一个位置的索引，存续状态的记录再写入新位置
func (e *Escrow) updateIndex(log *et.ReceiptEscrow) (kvs []*types.KeyValue) {
	record := log.GetRecord()
	if record.GetPrevStatus() > 0 {
		kvs = append(kvs, delEscrowStatusIndex(record.GetPrevStatus(), record.GetPrevIndex()))
		for _, addr := range prevRecordAddrs(record) {
			kvs = append(kvs, delEscrowAddrIndex(addr, record.GetPrevIndex()))
		}
	}
	if !isFinalStatus(record.GetStatus()) {
		kvs = append(kvs, addEscrowStatusIndex(record.GetStatus(), record.GetRecordId(), record.GetIndex()))
		for _, addr := range recordAddrs(record) {
			kvs = append(kvs, addEscrowAddrIndex(record.GetRecordId(), addr, record.GetIndex()))
		}
	}
	return kvs
}

//rollbackIndex 回滚索引，和updateIndex严格互逆
func (e *Escrow) rollbackIndex(log *et.ReceiptEscrow) (kvs []*types.KeyValue) {
	record := log.GetRecord()
	if !isFinalStatus(record.GetStatus()) {
		kvs = append(kvs, delEscrowStatusIndex(record.GetStatus(), record.GetIndex()))
		for _, addr := range recordAddrs(record) {
			kvs = append(kvs, delEscrowAddrIndex(addr, record.GetIndex()))
		}
	}
	if record.GetPrevStatus() > 0 {
		kvs = append(kvs, addEscrowStatusIndex(record.GetPrevStatus(), record.GetRecordId(), record.GetPrevIndex()))
		for _, addr := range prevRecordAddrs(record) {
			kvs = append(kvs, addEscrowAddrIndex(record.GetRecordId(), addr, record.GetPrevIndex()))
		}
	}
	return kvs
}

//recordAddrs 参与地址索引的地址集合，仲裁人不计入
func recordAddrs(record *et.EscrowRecord) []string {
	addrs := []string{record.GetCreator()}
	if record.GetPartyA() != "" && record.GetPartyA() != record.GetCreator() {
		addrs = append(addrs, record.GetPartyA())
	}
	if record.GetPartyB() != "" && record.GetPartyB() != record.GetCreator() && record.GetPartyB() != record.GetPartyA() {
		addrs = append(addrs, record.GetPartyB())
	}
	return addrs
}

//prevRecordAddrs 记录在上一个状态时的地址集合，Open状态下partyB必然未绑定
func prevRecordAddrs(record *et.EscrowRecord) []string {
	if record.GetPrevStatus() == et.EscrowStatusOpen {
		addrs := []string{record.GetCreator()}
		if record.GetPartyA() != "" && record.GetPartyA() != record.GetCreator() {
			addrs = append(addrs, record.GetPartyA())
		}
		return addrs
	}
	return recordAddrs(record)
}

func isFinalStatus(status int32) bool {
	return status >= et.EscrowStatusSettled
}

func calcEscrowStatusIndexKey(status int32, index int64) []byte {
	key := fmt.Sprintf("LODB-escrow-status:%d:%018d", status, index)
	return []byte(key)
}

func calcEscrowStatusIndexPrefix(status int32) []byte {
	key := fmt.Sprintf("LODB-escrow-status:%d:", status)
	return []byte(key)
}

func calcEscrowAddrIndexKey(addr string, index int64) []byte {
	key := fmt.Sprintf("LODB-escrow-addr:%s:%018d", addr, index)
	return []byte(key)
}

func calcEscrowAddrIndexPrefix(addr string) []byte {
	key := fmt.Sprintf("LODB-escrow-addr:%s:", addr)
	return []byte(key)
}

func addEscrowStatusIndex(status int32, recordID string, index int64) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = calcEscrowStatusIndexKey(status, index)
	record := &et.EscrowRecordRef{
		RecordId: recordID,
		Index:    index,
	}
	kv.Value = types.Encode(record)
	return kv
}

func delEscrowStatusIndex(status int32, index int64) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = calcEscrowStatusIndexKey(status, index)
	//value置nil,提交时，会自动执行删除操作
	kv.Value = nil
	return kv
}

func addEscrowAddrIndex(recordID string, addr string, index int64) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = calcEscrowAddrIndexKey(addr, index)
	record := &et.EscrowRecordRef{
		RecordId: recordID,
		Index:    index,
	}
	kv.Value = types.Encode(record)
	return kv
}

func delEscrowAddrIndex(addr string, index int64) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = calcEscrowAddrIndexKey(addr, index)
	//value置nil,提交时，会自动执行删除操作
	kv.Value = nil
	return kv
}
