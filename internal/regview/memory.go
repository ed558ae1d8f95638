package regview

import (
	"fmt"
	"strings"

	"github.com/joshuapare/startupkit/pkg/types"
)

// ServiceState is the state of the remote registry service on a Memory host.
type ServiceState int

const (
	ServiceStopped  ServiceState = iota
	ServiceRunning
	ServiceDisabled // start requests fail
)

// Memory is an in-process registry with any number of hosts, two stores and
// two views per host. It implements Backend and Services and is used by
// tests and dry runs.
type Memory struct {
	local string
	hosts map[string]*memHost
	open  int
}

type memHost struct {
	service ServiceState
	starts  int
	denied  map[types.Store]bool
	trees   map[memTree]map[string]*memKey
}

type memTree struct {
	store types.Store
	view  types.View
}

// memKey stores values by lower-cased name; registry value names are
// case-insensitive but keep the case they were written with.
type memKey struct {
	order  []string
	values map[string]memValue
}

type memValue struct {
	name string
	val  Value
}

// NewMemory returns an empty registry whose local machine is named local.
func NewMemory(local string) *Memory {
	m := &Memory{local: local, hosts: make(map[string]*memHost)}
	m.host("", true).service = ServiceRunning
	return m
}

// AddHost registers a remote machine with the given service state.
func (m *Memory) AddHost(name string, state ServiceState) {
	m.host(name, true).service = state
}

// ServiceState returns the service state of host.
func (m *Memory) ServiceState(host string) ServiceState {
	if h := m.host(host, false); h != nil {
		return h.service
	}
	return ServiceStopped
}

// Starts returns how many start requests host received.
func (m *Memory) Starts(host string) int {
	if h := m.host(host, false); h != nil {
		return h.starts
	}
	return 0
}

// Deny makes every open of store on host fail with ErrAccessDenied.
func (m *Memory) Deny(host string, store types.Store) {
	m.host(host, true).denied[store] = true
}

// Put seeds a REG_SZ value, creating the key if needed. An empty host is
// the local machine.
func (m *Memory) Put(host string, store types.Store, view types.View, path, name, data string) {
	m.PutValue(host, store, view, path, name, Value{Data: data, Type: types.REG_SZ})
}

// PutValue seeds a value of any type.
func (m *Memory) PutValue(host string, store types.Store, view types.View, path, name string, v Value) {
	k := m.key(m.host(host, true), store, view, path, true)
	k.set(name, v)
}

// Lookup reads a value directly, bypassing services and permissions.
func (m *Memory) Lookup(host string, store types.Store, view types.View, path, name string) (string, bool) {
	h := m.host(host, false)
	if h == nil {
		return "", false
	}
	k := m.key(h, store, view, path, false)
	if k == nil {
		return "", false
	}
	v, ok := k.values[strings.ToLower(name)]
	return v.val.Data, ok
}

// OpenHandles returns the number of handles not yet closed.
func (m *Memory) OpenHandles() int { return m.open }

// OpenKey implements Backend.
func (m *Memory) OpenKey(req Request) (Key, error) {
	return m.openKey(req, false)
}

// CreateKey implements Backend.
func (m *Memory) CreateKey(req Request) (Key, error) {
	return m.openKey(req, true)
}

func (m *Memory) openKey(req Request, create bool) (Key, error) {
	h, err := m.reach(req.Host)
	if err != nil {
		return nil, err
	}
	if h.denied[req.Store] {
		return nil, fmt.Errorf("%w: %s", ErrAccessDenied, req.Store)
	}
	k := m.key(h, req.Store, req.View, req.Path, create)
	if k == nil {
		return nil, ErrKeyNotFound
	}
	m.open++
	return &memHandle{m: m, k: k}, nil
}

// EnsureRunning implements Services. It issues one start request when the
// service is stopped.
func (m *Memory) EnsureRunning(host, service string) error {
	h := m.host(host, false)
	if h == nil {
		return fmt.Errorf("connect to service manager on %s: host unreachable", host)
	}
	switch h.service {
	case ServiceRunning:
		return nil
	case ServiceDisabled:
		h.starts++
		return fmt.Errorf("start %s on %s: service is disabled", service, host)
	default:
		h.starts++
		h.service = ServiceRunning
		return nil
	}
}

func (m *Memory) reach(host string) (*memHost, error) {
	if host == "" || strings.EqualFold(host, m.local) {
		return m.host("", false), nil
	}
	h := m.host(host, false)
	if h == nil || h.service != ServiceRunning {
		return nil, fmt.Errorf("%w: %s", ErrServiceUnavailable, host)
	}
	return h, nil
}

func (m *Memory) host(name string, create bool) *memHost {
	if strings.EqualFold(name, m.local) {
		name = ""
	}
	id := strings.ToLower(name)
	h := m.hosts[id]
	if h == nil && create {
		h = &memHost{
			denied: make(map[types.Store]bool),
			trees:  make(map[memTree]map[string]*memKey),
		}
		m.hosts[id] = h
	}
	return h
}

func (m *Memory) key(h *memHost, store types.Store, view types.View, path string, create bool) *memKey {
	tree := memTree{store: store, view: view}
	keys := h.trees[tree]
	if keys == nil {
		if !create {
			return nil
		}
		keys = make(map[string]*memKey)
		h.trees[tree] = keys
	}
	id := strings.ToLower(strings.Trim(path, `\`))
	k := keys[id]
	if k == nil && create {
		k = &memKey{values: make(map[string]memValue)}
		keys[id] = k
	}
	return k
}

func (k *memKey) set(name string, v Value) {
	id := strings.ToLower(name)
	if existing, ok := k.values[id]; ok {
		k.values[id] = memValue{name: existing.name, val: v}
		return
	}
	k.order = append(k.order, id)
	k.values[id] = memValue{name: name, val: v}
}

func (k *memKey) remove(name string) bool {
	id := strings.ToLower(name)
	if _, ok := k.values[id]; !ok {
		return false
	}
	delete(k.values, id)
	for i, o := range k.order {
		if o == id {
			k.order = append(k.order[:i], k.order[i+1:]...)
			break
		}
	}
	return true
}

type memHandle struct {
	m      *Memory
	k      *memKey
	closed bool
}

func (h *memHandle) ValueNames() ([]string, error) {
	if h.closed {
		return nil, ErrClosed
	}
	names := make([]string, 0, len(h.k.order))
	for _, id := range h.k.order {
		names = append(names, h.k.values[id].name)
	}
	return names, nil
}

func (h *memHandle) Value(name string) (Value, error) {
	if h.closed {
		return Value{}, ErrClosed
	}
	v, ok := h.k.values[strings.ToLower(name)]
	if !ok {
		return Value{}, ErrValueNotFound
	}
	return v.val, nil
}

func (h *memHandle) SetStringValue(name, value string) error {
	if h.closed {
		return ErrClosed
	}
	h.k.set(name, Value{Data: value, Type: types.REG_SZ})
	return nil
}

func (h *memHandle) DeleteValue(name string) (bool, error) {
	if h.closed {
		return false, ErrClosed
	}
	return h.k.remove(name), nil
}

func (h *memHandle) Close() error {
	if h.closed {
		return ErrClosed
	}
	h.closed = true
	h.m.open--
	return nil
}
