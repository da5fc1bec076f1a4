package tui

// Windowed pagination control for paged API collections

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// windowThreshold is the largest page count rendered without ellipses.
const windowThreshold = 7

// PageItem is one entry of a pagination window: either a numbered page
// button or an ellipsis gap.
type PageItem struct {
	Page     int
	Active   bool
	Ellipsis bool
}

// PageWindow returns the window of page buttons to render for the given
// position. With totalPages at most 7 every page appears. Beyond that the
// window always starts at page 1 and ends at totalPages, keeps the active
// page visible, and collapses the gaps into at most one ellipsis per side.
func PageWindow(currentPage, totalPages int) []PageItem {
	if totalPages < 1 {
		return nil
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	page := func(p int) PageItem { return PageItem{Page: p, Active: p == currentPage} }
	gap := PageItem{Ellipsis: true}

	if totalPages <= windowThreshold {
		items := make([]PageItem, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			items = append(items, page(p))
		}
		return items
	}

	switch {
	case currentPage <= 4:
		items := []PageItem{}
		for p := 1; p <= 5; p++ {
			items = append(items, page(p))
		}
		return append(items, gap, page(totalPages))
	case currentPage >= totalPages-3:
		items := []PageItem{page(1), gap}
		for p := totalPages - 4; p <= totalPages; p++ {
			items = append(items, page(p))
		}
		return items
	default:
		return []PageItem{
			page(1), gap,
			page(currentPage - 1), page(currentPage), page(currentPage + 1),
			gap, page(totalPages),
		}
	}
}

var (
	pageStyle       = lipgloss.NewStyle().Padding(0, 1)
	activePageStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	ellipsisStyle   = lipgloss.NewStyle().Faint(true)
)

// Paginator tracks the current position within a paged collection and
// renders the window of page buttons. Pages are 1-based for display; the
// zero-based API page is Current-1.
type Paginator struct {
	ID      string
	Current int
	Total   int
}

// NewPaginator creates a paginator positioned on page 1.
func NewPaginator(id string, totalPages int) Paginator {
	if totalPages < 1 {
		totalPages = 1
	}
	return Paginator{ID: id, Current: 1, Total: totalPages}
}

// SetTotal updates the page count, clamping the current page into range.
func (p *Paginator) SetTotal(totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	p.Total = totalPages
	if p.Current > p.Total {
		p.Current = p.Total
	}
	if p.Current < 1 {
		p.Current = 1
	}
}

// Next advances one page, staying on the last page at the end.
// Returns true if the page changed.
func (p *Paginator) Next() bool {
	if p.Current >= p.Total {
		return false
	}
	p.Current++
	return true
}

// Prev moves back one page, staying on page 1 at the start.
// Returns true if the page changed.
func (p *Paginator) Prev() bool {
	if p.Current <= 1 {
		return false
	}
	p.Current--
	return true
}

// Goto jumps to a specific page, clamped into range.
func (p *Paginator) Goto(page int) {
	if page < 1 {
		page = 1
	}
	if page > p.Total {
		page = p.Total
	}
	p.Current = page
}

// APIPage returns the zero-based page index for server requests.
func (p Paginator) APIPage() int {
	return p.Current - 1
}

// Window returns the page items to render for the current position.
func (p Paginator) Window() []PageItem {
	return PageWindow(p.Current, p.Total)
}

// ItemID returns the stable identifier for one page button, e.g.
// "OurPagination-3".
func (p Paginator) ItemID(page int) string {
	return fmt.Sprintf("%s-%d", p.ID, page)
}

// View renders the pagination row.
func (p Paginator) View() string {
	var b strings.Builder
	b.WriteString(pageStyle.Render("<"))
	for _, item := range p.Window() {
		if item.Ellipsis {
			b.WriteString(ellipsisStyle.Render(" ... "))
			continue
		}
		if item.Active {
			b.WriteString(activePageStyle.Render(fmt.Sprintf("%d", item.Page)))
		} else {
			b.WriteString(pageStyle.Render(fmt.Sprintf("%d", item.Page)))
		}
	}
	b.WriteString(pageStyle.Render(">"))
	return b.String()
}
