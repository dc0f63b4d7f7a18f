// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrRecordNotFound        = errors.New("the escrow record does not exist or has been settled.")
	ErrNotAuthorized         = errors.New("You don't have permission to operate this escrow record.")
	ErrNotInitialized        = errors.New("the escrow operator has not been configured yet.")
	ErrInvalidState          = errors.New("the escrow record is not in the right state for this action.")
	ErrAlreadyCommitted      = errors.New("You have already committed, the commitment can not be replaced.")
	ErrNotAParticipant       = errors.New("only the two parties of the record can call this action.")
	ErrCommitmentsIncomplete = errors.New("can't reveal until both parties have committed.")
	ErrHashMismatch          = errors.New("the secret does not match the registered secret hash.")
	ErrNotYetExpired         = errors.New("the escrow record has not expired yet.")
)
