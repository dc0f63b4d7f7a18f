package executor

const (
	FuncName_QueryRecordById         = "QueryRecordById"
	FuncName_QueryRecordListByStatus = "QueryRecordListByStatus"
	FuncName_QueryRecordListByAddr   = "QueryRecordListByAddr"
	FuncName_QueryOpenRecords        = "QueryOpenRecords"
	FuncName_QueryDisputedRecords    = "QueryDisputedRecords"
)

const (
	//单页返回的最大记录条数
	MaxCount = int32(100)
	//默认一页返回的记录条数
	DefaultCount = int32(20)
	//默认的超时窗口，单位秒
	DefaultExpireWindow = int64(86400)
)
