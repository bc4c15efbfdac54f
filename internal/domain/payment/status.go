package payment

// ===============================
// Payment Method
// ===============================

type Method string

const (
	MethodCash       Method = "cash"
	MethodDebitCard  Method = "debit_card"
	MethodCreditCard Method = "credit_card"
	MethodPix        Method = "pix"
	MethodTransfer   Method = "transfer"
)

// ParseMethod falls back to cash on unrecognized stored values.
func ParseMethod(s string) Method {
	switch Method(s) {
	case MethodCash, MethodDebitCard, MethodCreditCard, MethodPix, MethodTransfer:
		return Method(s)
	default:
		return MethodCash
	}
}

// ===============================
// Payment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

// ParseStatus falls back to pending on unrecognized stored values.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusPending, StatusPaid, StatusCancelled, StatusRefunded:
		return Status(s)
	default:
		return StatusPending
	}
}

func InitialStatus() Status {
	return StatusPending
}
