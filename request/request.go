package request

// Request is the in-flight operation a view or property set is validated
// against. Implementations live in the operation package; validation code
// only ever needs the protocol version the request will be sent with.
type Request interface {
	Version() Version
}
