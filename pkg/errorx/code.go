package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest      Code = 100001
	BadResponse     Code = 100002
	NotFound        Code = 100003
	Unauthenticated Code = 100004
	Internal        Code = 100005
	Unavailable     Code = 100006

	// Purchase codes
	InvalidQuantity     Code = 200001
	InsufficientBalance Code = 200002
	AllowanceFailed     Code = 200003
	OperationFailed     Code = 200004
)
