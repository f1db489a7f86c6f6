package engine

import (
	"fmt"
	"log"

	"go.starlark.net/starlark"
)

const (
	// TitleFunc is the name of the function a title script must define.
	TitleFunc = "title"

	// MaxSteps bounds one script evaluation. A call that runs out falls
	// back to the static list.
	MaxSteps = 1_000_000
)

// Titles resolves a display title for a content index. A starlark script
// defining title(index, titles) takes precedence over the static list.
type Titles struct {
	list  []string
	fn    starlark.Callable
	cache map[int]string
}

// NewTitles compiles script, when non-empty, and returns a resolver.
func NewTitles(list []string, script string) (*Titles, error) {
	t := &Titles{list: list, cache: make(map[int]string)}
	if script == "" {
		return t, nil
	}

	globals, err := starlark.ExecFile(newThread(), "titles.star", script, nil)
	if err != nil {
		return nil, fmt.Errorf("title script: %w", err)
	}
	fn, ok := globals[TitleFunc].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("title script: no %s(index, titles) function", TitleFunc)
	}
	t.fn = fn
	return t, nil
}

// Title returns the title for index, evaluating the script at most once per
// index. Script errors fall back to the static list.
func (t *Titles) Title(index int) string {
	if s, ok := t.cache[index]; ok {
		return s
	}
	s := t.static(index)
	if t.fn != nil {
		if v, err := t.call(index); err != nil {
			log.Println("titles: index", index, "error:", err)
		} else {
			s = v
		}
	}
	t.cache[index] = s
	return s
}

func (t *Titles) static(index int) string {
	if len(t.list) == 0 {
		return fmt.Sprintf("Poster %d", index+1)
	}
	if index < 0 {
		index = -index
	}
	return t.list[index%len(t.list)]
}

func (t *Titles) call(index int) (string, error) {
	items := make([]starlark.Value, len(t.list))
	for i, s := range t.list {
		items[i] = starlark.String(s)
	}
	args := starlark.Tuple{starlark.MakeInt(index), starlark.NewList(items)}

	v, err := starlark.Call(newThread(), t.fn, args, nil)
	if err != nil {
		return "", err
	}
	s, ok := v.(starlark.String)
	if !ok {
		return "", fmt.Errorf("title(%d) returned %s, want string", index, v.Type())
	}
	return string(s), nil
}

// newThread returns a thread with a fresh step budget. Steps accumulate
// per thread, so each evaluation gets its own.
func newThread() *starlark.Thread {
	th := &starlark.Thread{Name: "titles", Print: func(_ *starlark.Thread, msg string) { log.Println("titles:", msg) }}
	th.SetMaxExecutionSteps(MaxSteps)
	return th
}
