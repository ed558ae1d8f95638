/*
Package startup reads and edits Windows startup ("Run key") entries.

Entries live under SOFTWARE\Microsoft\Windows\CurrentVersion\Run in either
HKEY_LOCAL_MACHINE or HKEY_CURRENT_USER, on the local machine or on a remote
one. On 64-bit hosts the key exists separately in the 32-bit and the 64-bit
registry views.

# Quick Start

	acc, err := regview.New(regview.Options{
	    Host:      "",                 // local machine
	    LocalName: id.MachineName,
	    Store:     types.StoreMachine,
	    Backend:   regview.Native(),
	})
	if err != nil {
	    return err
	}
	repo := startup.New(acc, nil)

	entries, err := repo.ReadAll(types.SkipDefault)

# Reads

ReadAll merges both views. The 32-bit view wins when both hold the same
name. The skip source then removes excluded names, compared
case-insensitively:

  - SkipNone: nothing is removed
  - SkipDefault: the built-in list (igfxtray, hotkeyscmds, ...)
  - SkipFile: the names from Options.SkipEntries
  - SkipDefaultWithFile: both

# Writes

Set writes a REG_SZ value in the 32-bit view. RemoveByKey deletes from the
32-bit view and, when the value is not there, from the 64-bit view. Both
are idempotent.

# Remote hosts

Remote access needs the "Remote Registry" service. With
regview.Options.AutoStartService the service is started when stopped;
otherwise every operation fails with an error matching types.ErrAccess.
*/
package startup
