//go:build windows

package regview

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/joshuapare/startupkit/pkg/types"
)

// Win32 errors returned by RegConnectRegistry when the remote registry
// service cannot be reached.
const (
	errBadNetPath           = syscall.Errno(53)
	errNetworkUnreachable   = syscall.Errno(1231)
	errRPCServerUnavailable = syscall.Errno(1722)
)

type nativeBackend struct{}

// Native returns the backend for the live Windows registry.
func Native() Backend { return nativeBackend{} }

func rootKey(s types.Store) registry.Key {
	if s == types.StoreUser {
		return registry.CURRENT_USER
	}
	return registry.LOCAL_MACHINE
}

// viewAccess selects the WOW64 view explicitly for local and remote opens.
func viewAccess(v types.View) uint32 {
	if v == types.View64 {
		return registry.WOW64_64KEY
	}
	return registry.WOW64_32KEY
}

func (nativeBackend) root(req Request) (registry.Key, func(), error) {
	base := rootKey(req.Store)
	if req.Host == "" {
		return base, func() {}, nil
	}
	k, err := registry.OpenRemoteKey(req.Host, base)
	if err != nil {
		return 0, nil, mapErr(err)
	}
	return k, func() { k.Close() }, nil
}

func (b nativeBackend) OpenKey(req Request) (Key, error) {
	root, release, err := b.root(req)
	if err != nil {
		return nil, err
	}
	defer release()

	k, err := registry.OpenKey(root, req.Path, registry.ALL_ACCESS|viewAccess(req.View))
	if err != nil {
		return nil, mapErr(err)
	}
	return nativeKey{k: k}, nil
}

func (b nativeBackend) CreateKey(req Request) (Key, error) {
	root, release, err := b.root(req)
	if err != nil {
		return nil, err
	}
	defer release()

	k, _, err := registry.CreateKey(root, req.Path, registry.ALL_ACCESS|viewAccess(req.View))
	if err != nil {
		return nil, mapErr(err)
	}
	return nativeKey{k: k}, nil
}

func mapErr(err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return err
	}
	switch errno {
	case syscall.ERROR_FILE_NOT_FOUND, syscall.ERROR_PATH_NOT_FOUND:
		return fmt.Errorf("%w: %w", ErrKeyNotFound, err)
	case windows.ERROR_ACCESS_DENIED:
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errBadNetPath, errNetworkUnreachable, errRPCServerUnavailable:
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return err
}

type nativeKey struct {
	k registry.Key
}

func (n nativeKey) ValueNames() ([]string, error) {
	names, err := n.k.ReadValueNames(-1)
	if err != nil {
		return nil, mapErr(err)
	}
	return names, nil
}

func (n nativeKey) Value(name string) (Value, error) {
	size, typ, err := n.k.GetValue(name, nil)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return Value{}, fmt.Errorf("%w: %s", ErrValueNotFound, name)
		}
		return Value{}, mapErr(err)
	}

	v := Value{Type: types.RegType(typ)}
	switch typ {
	case registry.SZ, registry.EXPAND_SZ:
		v.Data, _, err = n.k.GetStringValue(name)
	case registry.MULTI_SZ:
		var parts []string
		parts, _, err = n.k.GetStringsValue(name)
		v.Data = strings.Join(parts, " ")
	case registry.DWORD, registry.QWORD:
		var u uint64
		u, _, err = n.k.GetIntegerValue(name)
		v.Data = strconv.FormatUint(u, 10)
	default:
		buf := make([]byte, size)
		var read int
		read, _, err = n.k.GetValue(name, buf)
		v.Data = hex.EncodeToString(buf[:read])
	}
	if err != nil {
		return Value{}, mapErr(err)
	}
	return v, nil
}

func (n nativeKey) SetStringValue(name, value string) error {
	return mapErr(n.k.SetStringValue(name, value))
}

func (n nativeKey) DeleteValue(name string) (bool, error) {
	err := n.k.DeleteValue(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, registry.ErrNotExist):
		return false, nil
	default:
		return false, mapErr(err)
	}
}

func (n nativeKey) Close() error { return n.k.Close() }
