package cart

// FailureKind classifies why a cart operation did not succeed.
type FailureKind string

const (
	FailNone         FailureKind = ""
	FailBusy         FailureKind = "busy"
	FailNotFound     FailureKind = "not_found"
	FailBusinessRule FailureKind = "business_rule"
	FailTransport    FailureKind = "transport"
	FailValidation   FailureKind = "validation"
	FailEmptyCart    FailureKind = "cart_empty"
	FailIntegrity    FailureKind = "integrity"
)

// Result is the structured outcome of a cart or checkout operation.
// Failures are values, not errors: they carry a human-readable message
// and never cross the component boundary as a panic.
type Result struct {
	OK      bool
	Kind    FailureKind
	Message string
}

func success(message string) Result {
	return Result{OK: true, Message: message}
}

func failure(kind FailureKind, message string) Result {
	return Result{Kind: kind, Message: message}
}
