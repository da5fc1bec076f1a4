package tui

// Generic data table with stable cell identifiers, sorting, and filtering

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Row is one table row keyed by column accessor.
type Row map[string]any

// CellContext is passed to cell renderers and button callbacks. RowIndex is
// the row's position in the original row set, unaffected by sorting or
// filtering.
type CellContext struct {
	RowIndex int
	ColumnID string
	Row      Row
}

// Column defines one table column. Exactly one of AccessorKey or AccessorFn
// supplies the raw value; a Cell renderer, if present, takes precedence over
// the raw value for display.
type Column struct {
	ID          string
	Header      string
	AccessorKey string
	AccessorFn  func(Row) any
	Cell        func(CellContext) string
	Sortable    bool
	Filterable  bool
	Button      bool
	OnClick     func(CellContext)
	Width       int
}

// LegacyColumn is the old column-definition style with a capitalized Header
// and an accessor that is either a fixed key (string) or a function.
type LegacyColumn struct {
	Header   string
	Accessor any
}

// NormalizeColumns converts old-style definitions into Columns. A string
// accessor becomes the column id and accessor key; a function accessor gets
// an id derived from the header.
func NormalizeColumns(legacy []LegacyColumn) []Column {
	out := make([]Column, 0, len(legacy))
	for _, lc := range legacy {
		col := Column{Header: lc.Header}
		switch acc := lc.Accessor.(type) {
		case string:
			col.ID = acc
			col.AccessorKey = acc
		case func(Row) any:
			col.ID = strings.ToLower(strings.ReplaceAll(lc.Header, " ", ""))
			col.AccessorFn = acc
		default:
			col.ID = strings.ToLower(strings.ReplaceAll(lc.Header, " ", ""))
		}
		out = append(out, col)
	}
	return out
}

// ButtonColumn builds a display-only action column whose cell renders a
// button labeled with the column header. Clicking it invokes onClick with
// the clicked cell's context. Used for Edit/Delete/Join/Restore/Remove
// actions on every page.
func ButtonColumn(id, label string, onClick func(CellContext)) Column {
	return Column{
		ID:      id,
		Header:  label,
		Button:  true,
		OnClick: onClick,
		Cell: func(cc CellContext) string {
			return "[" + label + "]"
		},
	}
}

type sortDirection int

const (
	sortNone sortDirection = iota
	sortAsc
	sortDesc
)

// DataTable renders rows against column definitions with deterministic
// identifiers, tri-state column sorting, and per-column substring filters.
// No network calls originate here; remote effects happen in callbacks
// supplied by the owning page.
type DataTable struct {
	TestID  string
	columns []Column
	rows    []Row

	sortColumn string
	sortDir    sortDirection

	filters      map[string]textinput.Model
	filterActive string

	focusedCol int
	visible    []int
	tbl        table.Model
}

// NewDataTable creates a table over the given columns and rows. testID
// prefixes every identifier the table emits.
func NewDataTable(testID string, columns []Column, rows []Row) *DataTable {
	dt := &DataTable{
		TestID:  testID,
		columns: columns,
		rows:    rows,
		filters: make(map[string]textinput.Model),
	}
	for _, col := range columns {
		if col.Filterable {
			ti := textinput.New()
			ti.Placeholder = "filter"
			ti.CharLimit = 64
			dt.filters[col.ID] = ti
		}
	}
	dt.tbl = table.New(
		table.WithColumns(dt.tableColumns()),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	dt.tbl.SetStyles(s)
	dt.refresh()
	return dt
}

// SetRows replaces the row set, preserving sort and filter state.
func (dt *DataTable) SetRows(rows []Row) {
	dt.rows = rows
	dt.refresh()
}

// Columns returns the column definitions in render order.
func (dt *DataTable) Columns() []Column {
	return dt.columns
}

// rawValue resolves the accessor for one cell. A missing key renders as
// empty content rather than failing.
func (dt *DataTable) rawValue(rowIdx int, col Column) any {
	row := dt.rows[rowIdx]
	if col.AccessorFn != nil {
		return col.AccessorFn(row)
	}
	if col.AccessorKey != "" {
		if v, ok := row[col.AccessorKey]; ok {
			return v
		}
	}
	return nil
}

// CellText returns the rendered content of one cell by original row index.
func (dt *DataTable) CellText(rowIdx int, col Column) string {
	if col.Cell != nil {
		return col.Cell(CellContext{RowIndex: rowIdx, ColumnID: col.ID, Row: dt.rows[rowIdx]})
	}
	return formatValue(dt.rawValue(rowIdx, col))
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		// JSON numbers decode as float64; render integral values without a decimal point
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToggleSort cycles the named column ascending, descending, then unsorted.
// Columns not marked sortable are left alone.
func (dt *DataTable) ToggleSort(columnID string) {
	col, ok := dt.columnByID(columnID)
	if !ok || !col.Sortable {
		return
	}
	if dt.sortColumn != columnID {
		dt.sortColumn = columnID
		dt.sortDir = sortAsc
	} else {
		switch dt.sortDir {
		case sortAsc:
			dt.sortDir = sortDesc
		case sortDesc:
			dt.sortColumn = ""
			dt.sortDir = sortNone
		default:
			dt.sortDir = sortAsc
		}
	}
	dt.refresh()
}

// SetFilter sets the substring filter for one column. Matching is
// case-insensitive substring containment.
func (dt *DataTable) SetFilter(columnID, value string) {
	ti, ok := dt.filters[columnID]
	if !ok {
		return
	}
	ti.SetValue(value)
	dt.filters[columnID] = ti
	dt.refresh()
}

// Visible returns the original row indices currently shown, in display order.
func (dt *DataTable) Visible() []int {
	return dt.visible
}

// refresh recomputes the visible permutation and rebuilds the inner table.
func (dt *DataTable) refresh() {
	visible := make([]int, 0, len(dt.rows))
	for i := range dt.rows {
		if dt.rowMatchesFilters(i) {
			visible = append(visible, i)
		}
	}

	if dt.sortDir != sortNone && dt.sortColumn != "" {
		if col, ok := dt.columnByID(dt.sortColumn); ok {
			sort.SliceStable(visible, func(a, b int) bool {
				va := dt.CellText(visible[a], col)
				vb := dt.CellText(visible[b], col)
				less := compareCells(va, vb)
				if dt.sortDir == sortDesc {
					return !less && va != vb
				}
				return less
			})
		}
	}

	dt.visible = visible

	rows := make([]table.Row, len(visible))
	for i, orig := range visible {
		cells := make(table.Row, len(dt.columns))
		for j, col := range dt.columns {
			cells[j] = dt.CellText(orig, col)
		}
		rows[i] = cells
	}
	dt.tbl.SetColumns(dt.tableColumns())
	dt.tbl.SetRows(rows)
}

// compareCells orders numerically when both sides parse as numbers,
// lexically otherwise.
func compareCells(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}

func (dt *DataTable) rowMatchesFilters(rowIdx int) bool {
	for _, col := range dt.columns {
		if !col.Filterable {
			continue
		}
		ti, ok := dt.filters[col.ID]
		if !ok {
			continue
		}
		want := strings.TrimSpace(ti.Value())
		if want == "" {
			continue
		}
		have := dt.CellText(rowIdx, col)
		if !strings.Contains(strings.ToLower(have), strings.ToLower(want)) {
			return false
		}
	}
	return true
}

func (dt *DataTable) columnByID(id string) (Column, bool) {
	for _, col := range dt.columns {
		if col.ID == id {
			return col, true
		}
	}
	return Column{}, false
}

// Identifier scheme. Row identifiers address original row indices and stay
// stable across sorting and filtering.

func (dt *DataTable) HeaderGroupID(groupIndex int) string {
	return fmt.Sprintf("%s-header-group-%d", dt.TestID, groupIndex)
}

func (dt *DataTable) HeaderID(columnID string) string {
	return fmt.Sprintf("%s-header-%s", dt.TestID, columnID)
}

func (dt *DataTable) SortHeaderID(columnID string) string {
	return fmt.Sprintf("%s-header-%s-sort-header", dt.TestID, columnID)
}

func (dt *DataTable) FilterID(columnID string) string {
	return fmt.Sprintf("%s-header-%s-filter", dt.TestID, columnID)
}

func (dt *DataTable) RowID(rowIndex int) string {
	return fmt.Sprintf("%s-row-%d", dt.TestID, rowIndex)
}

func (dt *DataTable) CellID(rowIndex int, columnID string) string {
	return fmt.Sprintf("%s-cell-row-%d-col-%s", dt.TestID, rowIndex, columnID)
}

func (dt *DataTable) ButtonID(rowIndex int, columnID string) string {
	return fmt.Sprintf("%s-cell-row-%d-col-%s-button", dt.TestID, rowIndex, columnID)
}

// CellByID returns the rendered text of the cell with the given identifier.
func (dt *DataTable) CellByID(id string) (string, bool) {
	prefix := dt.TestID + "-cell-row-"
	if !strings.HasPrefix(id, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(id, prefix)
	sep := strings.Index(rest, "-col-")
	if sep < 0 {
		return "", false
	}
	rowIdx, err := strconv.Atoi(rest[:sep])
	if err != nil || rowIdx < 0 || rowIdx >= len(dt.rows) {
		return "", false
	}
	col, ok := dt.columnByID(rest[sep+len("-col-"):])
	if !ok {
		return "", false
	}
	return dt.CellText(rowIdx, col), true
}

// SelectedRow returns the original index of the highlighted row, or -1 when
// the table is empty.
func (dt *DataTable) SelectedRow() int {
	if len(dt.visible) == 0 {
		return -1
	}
	cursor := dt.tbl.Cursor()
	if cursor < 0 || cursor >= len(dt.visible) {
		return -1
	}
	return dt.visible[cursor]
}

// FocusedColumn returns the column the header cursor is on.
func (dt *DataTable) FocusedColumn() Column {
	if len(dt.columns) == 0 {
		return Column{}
	}
	return dt.columns[dt.focusedCol]
}

// PressButton invokes the focused button column's callback for the
// highlighted row. Returns true if a callback fired.
func (dt *DataTable) PressButton() bool {
	col := dt.FocusedColumn()
	if !col.Button || col.OnClick == nil {
		return false
	}
	rowIdx := dt.SelectedRow()
	if rowIdx < 0 {
		return false
	}
	col.OnClick(CellContext{RowIndex: rowIdx, ColumnID: col.ID, Row: dt.rows[rowIdx]})
	return true
}

// filterFocused reports whether a filter input currently has focus.
func (dt *DataTable) filterFocused() bool {
	return dt.filterActive != ""
}

// Update handles navigation, sort toggling, and filter editing.
func (dt *DataTable) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if dt.filterFocused() {
		ti := dt.filters[dt.filterActive]
		if isKey && (keyMsg.String() == "esc" || keyMsg.String() == "enter") {
			ti.Blur()
			dt.filters[dt.filterActive] = ti
			dt.filterActive = ""
			return nil
		}
		var cmd tea.Cmd
		ti, cmd = ti.Update(msg)
		dt.filters[dt.filterActive] = ti
		dt.refresh()
		return cmd
	}

	if isKey {
		switch keyMsg.String() {
		case "left", "h":
			if dt.focusedCol > 0 {
				dt.focusedCol--
			}
			return nil
		case "right", "l":
			if dt.focusedCol < len(dt.columns)-1 {
				dt.focusedCol++
			}
			return nil
		case "s":
			dt.ToggleSort(dt.FocusedColumn().ID)
			return nil
		case "f":
			col := dt.FocusedColumn()
			if ti, ok := dt.filters[col.ID]; ok {
				dt.filterActive = col.ID
				ti.Focus()
				dt.filters[col.ID] = ti
			}
			return nil
		case "enter":
			if dt.PressButton() {
				return nil
			}
		}
	}

	var cmd tea.Cmd
	dt.tbl, cmd = dt.tbl.Update(msg)
	return cmd
}

func (dt *DataTable) tableColumns() []table.Column {
	cols := make([]table.Column, len(dt.columns))
	for i, col := range dt.columns {
		width := col.Width
		if width == 0 {
			width = 16
		}
		title := col.Header
		if col.Sortable && dt.sortColumn == col.ID {
			switch dt.sortDir {
			case sortAsc:
				title += " ^"
			case sortDesc:
				title += " v"
			}
		}
		cols[i] = table.Column{Title: title, Width: width}
	}
	return cols
}

// SetHeight adjusts the visible body height.
func (dt *DataTable) SetHeight(h int) {
	dt.tbl.SetHeight(h)
}

// View renders the filter row (when any filter is set or focused) above the
// table body.
func (dt *DataTable) View() string {
	var b strings.Builder

	var filterParts []string
	for _, col := range dt.columns {
		ti, ok := dt.filters[col.ID]
		if !ok {
			continue
		}
		if dt.filterActive == col.ID || ti.Value() != "" {
			filterParts = append(filterParts, col.Header+": "+ti.View())
		}
	}
	if len(filterParts) > 0 {
		b.WriteString(strings.Join(filterParts, "  "))
		b.WriteString("\n")
	}

	b.WriteString(dt.tbl.View())
	return b.String()
}
