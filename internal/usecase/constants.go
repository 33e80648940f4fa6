package usecase

// Operation names reported to the OperationRecorder.
const (
	OperationDeposit  = "deposit"
	OperationWithdraw = "withdraw"
)
