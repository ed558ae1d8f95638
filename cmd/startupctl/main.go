// Command startupctl lists and edits the Windows Run-key startup entries of
// the local machine or a remote host.
package main

func main() {
	execute()
}
