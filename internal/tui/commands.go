package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gallery/internal/domain"
	"github.com/mmcdole/gallery/internal/pager"
)

// NavKind identifies a pagination intent
type NavKind int

const (
	NavGoto NavKind = iota
	NavNext
	NavPrev
	NavLast
	NavReload
)

// Command factories for async operations

// LoadPageCmd runs a pagination intent against the coordinator
func LoadPageCmd(coord *pager.Coordinator, kind NavKind, page int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		var (
			loaded domain.Page
			err    error
		)
		switch kind {
		case NavNext:
			loaded, err = coord.Next(ctx)
		case NavPrev:
			loaded, err = coord.Prev(ctx)
		case NavLast:
			loaded, err = coord.Last(ctx)
		case NavReload:
			loaded, err = coord.Reload(ctx)
		default:
			loaded, err = coord.GoToPage(ctx, page)
		}

		if err != nil {
			return ErrMsg{Err: err, Context: "loading page"}
		}
		return PageLoadedMsg{Page: loaded}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
