// Package scoped provides a file resource whose release is tied to its
// owning scope.
//
// A File moves through three states:
//
//	Unopened -> Open -> Closed
//
// Open acquires the underlying OS file and propagates any acquisition
// failure to the caller. Pairing Open with a deferred Close guarantees
// release on every exit path, whether the scope completes normally,
// returns early, or propagates an error:
//
//	f, err := scoped.Open("example.txt")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	f.Write("Hello, RAII!\n")
//	content, err := f.ReadAll()
//
// Close releases the OS file exactly once; closing again is a safe
// no-op. Write is a no-op unless the file is Open.
package scoped
