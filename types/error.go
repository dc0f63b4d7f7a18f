// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 定义系统的错误
var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrEmptyKey                = errors.New("ErrEmptyKey")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrAmount                  = errors.New("ErrAmount")
	ErrExecNameNotAllow        = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow      = errors.New("ErrSymbolNameNotAllow")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrInvalidAddress          = errors.New("ErrInvalidAddress")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrAccountNotExist         = errors.New("ErrAccountNotExist")
	ErrUnknownDriver           = errors.New("ErrUnknownDriver")
	ErrTypeAsset               = errors.New("ErrTypeAsset")
	ErrDecode                  = errors.New("ErrDecode")
)
