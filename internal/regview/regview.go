package regview

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joshuapare/startupkit/pkg/types"
)

const (
	// RemoteRegistryService is the service key name of the remote registry service.
	RemoteRegistryService = "RemoteRegistry"

	// RemoteRegistryDisplayName is the name used in error messages.
	RemoteRegistryDisplayName = "Remote Registry"
)

// Value is a registry value rendered as text.
type Value struct {
	Data string
	Type types.RegType
}

// Key is an open handle to one sub-key on one host, in one store and view.
// Handles are owned by a single operation and must be closed by it.
type Key interface {
	// ValueNames lists the value names in storage order.
	ValueNames() ([]string, error)

	// Value returns the named value. Missing values match types.ErrNotFound.
	Value(name string) (Value, error)

	// SetStringValue writes name as REG_SZ, replacing any existing value.
	SetStringValue(name, value string) error

	// DeleteValue removes name and reports whether it existed.
	DeleteValue(name string) (existed bool, err error)

	Close() error
}

// Request identifies the sub-key a backend should open.
type Request struct {
	Host  string // empty for the local machine
	Store types.Store
	View  types.View
	Path  string
}

// Backend opens registry keys. Implementations return ErrKeyNotFound,
// ErrServiceUnavailable or ErrAccessDenied (possibly wrapped) for the
// corresponding failures.
type Backend interface {
	OpenKey(req Request) (Key, error)
	CreateKey(req Request) (Key, error)
}

// Services ensures a named OS service is running on a host.
type Services interface {
	EnsureRunning(host, service string) error
}

// Options configures an Accessor.
type Options struct {
	// Host is the target machine. Empty means the local machine.
	Host string

	// LocalName is the name of the machine this process runs on. A Host equal
	// to it (case-insensitive) is treated as local.
	LocalName string

	// Store selects HKEY_LOCAL_MACHINE or HKEY_CURRENT_USER.
	Store types.Store

	// AutoStartService starts the remote registry service before remote
	// opens when it is not running.
	AutoStartService bool

	Backend  Backend
	Services Services

	// Logger receives debug events. Nil discards.
	Logger *slog.Logger
}

// Accessor opens sub-keys on a fixed host and store.
type Accessor struct {
	host      string
	remote    bool
	store     types.Store
	autoStart bool
	backend   Backend
	services  Services
	log       *slog.Logger
}

// New resolves the host identity once and returns an Accessor.
func New(opts Options) (*Accessor, error) {
	if opts.Backend == nil {
		return nil, &types.Error{Kind: types.ErrKindArgument, Msg: "regview: backend is required"}
	}
	host := strings.TrimSpace(opts.Host)
	remote := !isLocalName(host, opts.LocalName)
	if !remote {
		host = opts.LocalName
	}
	if remote && opts.AutoStartService && opts.Services == nil {
		return nil, &types.Error{Kind: types.ErrKindArgument, Msg: "regview: service activator is required to auto-start the remote registry service"}
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Accessor{
		host:      host,
		remote:    remote,
		store:     opts.Store,
		autoStart: opts.AutoStartService,
		backend:   opts.Backend,
		services:  opts.Services,
		log:       log,
	}, nil
}

func isLocalName(host, local string) bool {
	switch {
	case host == "", host == ".", strings.EqualFold(host, "localhost"):
		return true
	case local != "" && strings.EqualFold(host, local):
		return true
	}
	return false
}

// Host returns the resolved machine name.
func (a *Accessor) Host() string { return a.host }

// Remote reports whether opens go over the network.
func (a *Accessor) Remote() bool { return a.remote }

// Store returns the configured store root.
func (a *Accessor) Store() types.Store { return a.store }

// Open opens an existing sub-key with read/write rights in the given view.
// A missing sub-key is reported as an error matching types.ErrNotFound.
func (a *Accessor) Open(path string, view types.View) (Key, error) {
	return a.open(path, view, false)
}

// Create opens path in the given view, creating it when absent.
func (a *Accessor) Create(path string, view types.View) (Key, error) {
	return a.open(path, view, true)
}

func (a *Accessor) open(path string, view types.View, create bool) (Key, error) {
	if err := a.ensureService(); err != nil {
		return nil, err
	}

	req := Request{Store: a.store, View: view, Path: path}
	if a.remote {
		req.Host = a.host
	}

	var (
		k   Key
		err error
	)
	if create {
		k, err = a.backend.CreateKey(req)
	} else {
		k, err = a.backend.OpenKey(req)
	}
	if err != nil {
		return nil, a.classify(path, view, err)
	}

	a.log.Debug("opened key", "host", a.host, "store", a.store.String(), "view", view.String(), "path", path, "create", create)
	return &handle{key: k, a: a, path: path, view: view}, nil
}

// ensureService issues at most one start request; it does not wait for
// the service to report ready.
func (a *Accessor) ensureService() error {
	if !a.remote || !a.autoStart {
		return nil
	}
	if err := a.services.EnsureRunning(a.host, RemoteRegistryService); err != nil {
		a.log.Warn("remote registry service start failed", "host", a.host, "error", err)
		return types.NewAccessError(a.host, RemoteRegistryDisplayName, err)
	}
	return nil
}

func (a *Accessor) classify(path string, view types.View, err error) error {
	full := a.store.String() + `\` + path
	switch {
	case errors.Is(err, types.ErrNotFound):
		return &types.Error{
			Kind: types.ErrKindNotFound,
			Msg:  fmt.Sprintf("%s (%s view) not found on <%s>", full, view, a.host),
			Err:  err,
		}
	case errors.Is(err, ErrServiceUnavailable):
		return types.NewAccessError(a.host, RemoteRegistryDisplayName, err)
	case errors.Is(err, ErrAccessDenied):
		return types.NewPermissionError(a.host, full, err)
	case errors.Is(err, types.ErrUnsupported):
		return err
	default:
		return fmt.Errorf("open %s (%s view) on <%s>: %w", full, view, a.host, err)
	}
}

// handle decorates a backend Key so that errors from value operations carry
// the same typed context as errors from Open.
type handle struct {
	key  Key
	a    *Accessor
	path string
	view types.View
}

func (h *handle) ValueNames() ([]string, error) {
	names, err := h.key.ValueNames()
	if err != nil {
		return nil, h.a.classify(h.path, h.view, err)
	}
	return names, nil
}

func (h *handle) Value(name string) (Value, error) {
	v, err := h.key.Value(name)
	if err != nil {
		return Value{}, h.a.classify(h.path+`\`+name, h.view, err)
	}
	return v, nil
}

func (h *handle) SetStringValue(name, value string) error {
	if err := h.key.SetStringValue(name, value); err != nil {
		return h.a.classify(h.path, h.view, err)
	}
	return nil
}

func (h *handle) DeleteValue(name string) (bool, error) {
	existed, err := h.key.DeleteValue(name)
	if err != nil {
		return false, h.a.classify(h.path, h.view, err)
	}
	return existed, nil
}

func (h *handle) Close() error { return h.key.Close() }
