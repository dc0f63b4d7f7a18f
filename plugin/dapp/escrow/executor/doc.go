package executor

/*
escrow 执行器：链上押金托管

两种玩法，共用同一份押金冻结和结算逻辑：

一、承诺揭示（commit-reveal）
1. 运营方(manage合约中配置的escrow-operator)替甲乙双方创建托管单并冻结押金 (create)
2. 双方各自提交承诺: commitmentHash = hash(choice+secret), secretHash = hash(secret) (commit)
3. 双方提交完毕后各自揭示secret，链上重算choice (reveal)
4. 双方都揭示后自动结算：
   都选合作 -> 平分押金
   一方背叛 -> 背叛方独得
   都背叛或揭示无效 -> 押金退回创建者
5. 超时后任何人可以强制结算，已有效揭示的一方独得 (forceSettle)

二、中介托管（brokered）
1. 买方或卖方创建托管单并冻结押金，指定仲裁人 (create)
2. 对手方接单 (accept)
3. 双方先后确认完成，买单付给乙方，卖单付给甲方 (markComplete)
4. 有争议时任一方挂起争议，只有仲裁人可以裁决 (dispute/resolve)
5. 未接单前创建者可以撤单退回押金 (cancel)

status: Open 1 -> Accepted 2 -> Disputed 3 -> Settled 4 / Cancelled 5 / TimedOut 6 / Resolved 7
终态记录从statedb删除，只能通过回执和localdb索引追溯

//对外查询接口
//1. 按id查询单条记录
//2. 按状态分页查询 (Open/Accepted/Disputed)
//3. 按地址查询某个账户参与的所有记录
*/
