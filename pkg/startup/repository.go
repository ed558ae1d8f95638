package startup

import (
	"io"
	"log/slog"

	"github.com/joshuapare/startupkit/internal/regview"
	"github.com/joshuapare/startupkit/internal/skiplist"
	"github.com/joshuapare/startupkit/pkg/types"
)

// RunKeyPath is the sub-key holding per-logon startup entries.
const RunKeyPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Run`

// Opener opens the Run key in one view. *regview.Accessor implements it.
type Opener interface {
	Open(path string, view types.View) (regview.Key, error)
	Create(path string, view types.View) (regview.Key, error)
	Host() string
}

// Options configures a Repository.
type Options struct {
	// SkipEntries supplies the external skip list for SkipFile and
	// SkipDefaultWithFile reads. It is consulted only for those sources.
	SkipEntries skiplist.EntrySource

	// Logger receives operation events. Nil discards.
	Logger *slog.Logger
}

// Repository reads and edits the startup entries of one host and store.
// It keeps no registry handles between calls.
type Repository struct {
	acc  Opener
	skip skiplist.EntrySource
	log  *slog.Logger
}

// New returns a Repository over acc.
func New(acc Opener, opts *Options) *Repository {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{acc: acc, skip: opts.SkipEntries, log: log}
}

// Host returns the machine the repository operates on.
func (r *Repository) Host() string { return r.acc.Host() }
