package storage

// Store is the persistent record adapter. Records are serialized as JSON text
// under string keys in one of two scopes: the durable scope survives process
// restarts, the session scope survives application re-initialization but not
// process exit.
//
// Reads never fail: an absent or malformed record yields false and leaves out
// untouched, so callers keep whatever default they initialized. The same
// logical record must not live in both scopes at once; callers flip a record
// between scopes with a paired write and delete.
type Store interface {
	ReadDurable(key string, out interface{}) bool
	WriteDurable(key string, value interface{}) error
	DeleteDurable(key string) error
	ReadSession(key string, out interface{}) bool
	WriteSession(key string, value interface{}) error
	DeleteSession(key string)
}
