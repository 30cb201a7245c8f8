package ownref

// Destroyer is optionally implemented by values that need cleanup when
// their owning handle releases them. Destroy runs exactly once, at the
// moment the last owner relinquishes the value.
type Destroyer interface {
	Destroy()
}
