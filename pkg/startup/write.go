package startup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/startupkit/pkg/types"
)

// Set writes name as a REG_SZ value in the default view, creating the Run
// key if needed and replacing any existing value.
func (r *Repository) Set(name, command string) error {
	if err := validName(name); err != nil {
		return err
	}

	k, err := r.acc.Create(RunKeyPath, types.DefaultView)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.SetStringValue(name, command); err != nil {
		return err
	}
	r.log.Info("startup entry set", "host", r.acc.Host(), "name", name, "view", types.DefaultView.String())
	return nil
}

// RemoveByKey deletes name from the default view. When the default view
// does not hold it, the alternate view is tried once. Removing an entry that
// exists in neither view is a no-op.
func (r *Repository) RemoveByKey(name string) error {
	if err := validName(name); err != nil {
		return err
	}

	existed, err := r.deleteIn(types.DefaultView, name)
	if err != nil {
		return err
	}
	if existed {
		r.log.Info("startup entry removed", "host", r.acc.Host(), "name", name, "view", types.DefaultView.String())
		return nil
	}

	alt := types.DefaultView.Other()
	existed, err = r.deleteIn(alt, name)
	if err != nil {
		return &types.Error{
			Kind: types.ErrKindArgumentMismatch,
			Msg:  fmt.Sprintf("remove %q: not in %s view and %s view failed", name, types.DefaultView, alt),
			Err:  err,
		}
	}
	if existed {
		r.log.Info("startup entry removed", "host", r.acc.Host(), "name", name, "view", alt.String())
	} else {
		r.log.Debug("startup entry already absent", "host", r.acc.Host(), "name", name)
	}
	return nil
}

func (r *Repository) deleteIn(view types.View, name string) (bool, error) {
	k, err := r.acc.Open(RunKeyPath, view)
	if errors.Is(err, types.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer k.Close()

	return k.DeleteValue(name)
}

// Apply runs edits in order and stops at the first failure. It returns the
// number of edits applied.
func (r *Repository) Apply(edits []types.Edit) (int, error) {
	for i, e := range edits {
		var err error
		if e.Delete {
			err = r.RemoveByKey(e.Name)
		} else {
			err = r.Set(e.Name, e.Value)
		}
		if err != nil {
			return i, fmt.Errorf("edit %d (%s): %w", i+1, e.Name, err)
		}
	}
	return len(edits), nil
}

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &types.Error{Kind: types.ErrKindArgument, Msg: "startup entry name must not be empty"}
	}
	return nil
}
