package startup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/startupkit/internal/skiplist"
	"github.com/joshuapare/startupkit/pkg/types"
)

// ReadAll returns the startup entries of both views minus the exclusions
// selected by skip. The 32-bit view is read first; a 64-bit entry is added
// only when no entry with the same name (case-insensitive) came from the
// 32-bit view. A view without the Run key contributes nothing.
func (r *Repository) ReadAll(skip types.SkipSource) (map[string]string, error) {
	set, err := r.skipSet(skip)
	if err != nil {
		return nil, err
	}
	merged, err := r.merged()
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(merged))
	for _, e := range merged {
		result[e.Name] = e.Command
	}
	filtered := skiplist.Filter(result, set)
	r.log.Debug("read startup entries",
		"host", r.acc.Host(),
		"skip", skip.String(),
		"merged", len(result),
		"returned", len(filtered))
	return filtered, nil
}

// List is ReadAll keeping the value type and source view of each entry.
// Entries come in storage order, 32-bit view first.
func (r *Repository) List(skip types.SkipSource) ([]types.Entry, error) {
	set, err := r.skipSet(skip)
	if err != nil {
		return nil, err
	}
	merged, err := r.merged()
	if err != nil {
		return nil, err
	}

	out := merged[:0]
	for _, e := range merged {
		if set.Contains(e.Name) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// merged reads both views, 32-bit first, dropping 64-bit entries whose name
// the 32-bit view already holds.
func (r *Repository) merged() ([]types.Entry, error) {
	merged, err := r.entries(types.View32)
	if err != nil {
		return nil, err
	}
	entries64, err := r.entries(types.View64)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(merged))
	for _, e := range merged {
		seen[strings.ToLower(e.Name)] = struct{}{}
	}
	for _, e := range entries64 {
		if _, ok := seen[strings.ToLower(e.Name)]; ok {
			continue
		}
		merged = append(merged, e)
	}
	return merged, nil
}

// ReadView returns the startup entries of a single view.
func (r *Repository) ReadView(view types.View) (map[string]string, error) {
	entries, err := r.entries(view)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Name] = e.Command
	}
	return out, nil
}

// Get returns the named entry, looking in the 32-bit view first. It fails
// with an error matching types.ErrNotFound when neither view has it.
func (r *Repository) Get(name string) (types.Entry, error) {
	for _, view := range []types.View{types.View32, types.View64} {
		entries, err := r.entries(view)
		if err != nil {
			return types.Entry{}, err
		}
		for _, e := range entries {
			if strings.EqualFold(e.Name, name) {
				return e, nil
			}
		}
	}
	return types.Entry{}, &types.Error{
		Kind: types.ErrKindNotFound,
		Msg:  fmt.Sprintf("startup entry %q not found on <%s>", name, r.acc.Host()),
	}
}

// entries lists one view in storage order. The handle is released before
// returning.
func (r *Repository) entries(view types.View) ([]types.Entry, error) {
	k, err := r.acc.Open(RunKeyPath, view)
	if errors.Is(err, types.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer k.Close()

	names, err := k.ValueNames()
	if err != nil {
		return nil, err
	}

	entries := make([]types.Entry, 0, len(names))
	for _, name := range names {
		v, err := k.Value(name)
		if errors.Is(err, types.ErrNotFound) {
			// removed between enumeration and read
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, types.Entry{Name: name, Command: v.Data, Type: v.Type, View: view})
	}
	return entries, nil
}

func (r *Repository) skipSet(skip types.SkipSource) (skiplist.Set, error) {
	if !skip.NeedsFile() {
		return skiplist.Resolve(skip, nil), nil
	}
	if r.skip == nil {
		return nil, &types.Error{
			Kind: types.ErrKindArgument,
			Msg:  fmt.Sprintf("skip source %q needs a skip list but none is configured", skip),
		}
	}
	names, err := r.skip.Entries()
	if err != nil {
		return nil, fmt.Errorf("load skip list: %w", err)
	}
	return skiplist.Resolve(skip, names), nil
}
