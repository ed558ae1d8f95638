// Package regview opens registry sub-keys on a local or remote host, in the
// machine-wide or per-user store, in an explicit 32-bit or 64-bit view.
//
// An Accessor is bound to one host and one store. Every Open or Create call
// returns a fresh Key that the caller closes before returning; handles are
// never cached between calls:
//
//	k, err := acc.Open(`SOFTWARE\Microsoft\Windows\CurrentVersion\Run`, types.View64)
//	if errors.Is(err, types.ErrNotFound) {
//	    return nil // nothing in this view
//	}
//	if err != nil {
//	    return err
//	}
//	defer k.Close()
//
// For remote hosts the Accessor can start the "Remote Registry" service first
// (Options.AutoStartService). When the service is unreachable the error
// matches types.ErrAccess and names the host and the service.
//
// Two backends are provided: Native (golang.org/x/sys/windows/registry, only
// functional on Windows) and Memory, an in-process registry for tests and
// dry runs.
package regview
