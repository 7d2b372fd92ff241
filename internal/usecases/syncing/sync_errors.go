package syncing

import "errors"

var (
	// ErrSyncInProgress indica que a conta já tem sincronização RUNNING
	ErrSyncInProgress = errors.New("sync already in progress for account")
	// ErrAccountNotSyncable indica conta sem token ou fora do status ACTIVE
	ErrAccountNotSyncable = errors.New("account is not syncable")
)
