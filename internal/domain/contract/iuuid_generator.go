package contract

type IUUIDGenerator interface {
	NewUUID() string
}
