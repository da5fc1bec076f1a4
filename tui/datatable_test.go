package tui

import (
	"testing"
)

func courseColumns() []Column {
	return []Column{
		{ID: "id", Header: "id", AccessorKey: "id", Sortable: true},
		{ID: "courseName", Header: "Course Name", AccessorKey: "courseName", Sortable: true, Filterable: true},
		{ID: "term", Header: "Term", AccessorKey: "term"},
	}
}

func courseRows() []Row {
	return []Row{
		{"id": float64(1), "courseName": "CMPSC 156", "term": "F25"},
		{"id": float64(2), "courseName": "CMPSC 148", "term": "F25"},
		{"id": float64(3), "courseName": "CMPSC 64", "term": "W26"},
	}
}

func TestDataTableCellIdentifiers(t *testing.T) {
	dt := NewDataTable("CoursesTable", courseColumns(), courseRows())

	cases := []struct {
		id   string
		want string
	}{
		{"CoursesTable-cell-row-0-col-id", "1"},
		{"CoursesTable-cell-row-1-col-id", "2"},
		{"CoursesTable-cell-row-2-col-id", "3"},
		{"CoursesTable-cell-row-0-col-courseName", "CMPSC 156"},
	}
	for _, tc := range cases {
		got, ok := dt.CellByID(tc.id)
		if !ok {
			t.Fatalf("Expected cell %q to resolve", tc.id)
		}
		if got != tc.want {
			t.Errorf("Cell %q: expected %q, got %q", tc.id, tc.want, got)
		}
	}
}

func TestDataTableIdentifierScheme(t *testing.T) {
	dt := NewDataTable("T", courseColumns(), nil)

	if dt.HeaderGroupID(0) != "T-header-group-0" {
		t.Errorf("Unexpected header group id: %q", dt.HeaderGroupID(0))
	}
	if dt.HeaderID("email") != "T-header-email" {
		t.Errorf("Unexpected header id: %q", dt.HeaderID("email"))
	}
	if dt.SortHeaderID("email") != "T-header-email-sort-header" {
		t.Errorf("Unexpected sort header id: %q", dt.SortHeaderID("email"))
	}
	if dt.FilterID("email") != "T-header-email-filter" {
		t.Errorf("Unexpected filter id: %q", dt.FilterID("email"))
	}
	if dt.RowID(3) != "T-row-3" {
		t.Errorf("Unexpected row id: %q", dt.RowID(3))
	}
	if dt.CellID(2, "email") != "T-cell-row-2-col-email" {
		t.Errorf("Unexpected cell id: %q", dt.CellID(2, "email"))
	}
	if dt.ButtonID(2, "delete") != "T-cell-row-2-col-delete-button" {
		t.Errorf("Unexpected button id: %q", dt.ButtonID(2, "delete"))
	}
}

func TestDataTableIdentifiersStableAcrossSortAndFilter(t *testing.T) {
	dt := NewDataTable("T", courseColumns(), courseRows())

	before, _ := dt.CellByID("T-cell-row-2-col-courseName")

	dt.ToggleSort("courseName")
	after, ok := dt.CellByID("T-cell-row-2-col-courseName")
	if !ok || after != before {
		t.Errorf("Expected cell content stable across sort, got %q then %q", before, after)
	}

	dt.SetFilter("courseName", "148")
	after, ok = dt.CellByID("T-cell-row-2-col-courseName")
	if !ok || after != before {
		t.Errorf("Expected cell content stable across filter, got %q then %q", before, after)
	}
}

func TestDataTableSortTriState(t *testing.T) {
	dt := NewDataTable("T", courseColumns(), courseRows())
	original := []int{0, 1, 2}

	check := func(want []int, stage string) {
		t.Helper()
		got := dt.Visible()
		if len(got) != len(want) {
			t.Fatalf("%s: expected %v, got %v", stage, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: expected %v, got %v", stage, want, got)
			}
		}
	}

	check(original, "unsorted")

	// courseName ascending: CMPSC 148, CMPSC 156, CMPSC 64
	dt.ToggleSort("courseName")
	check([]int{1, 0, 2}, "ascending")

	dt.ToggleSort("courseName")
	check([]int{2, 0, 1}, "descending")

	dt.ToggleSort("courseName")
	check(original, "back to unsorted")
}

func TestDataTableNumericSort(t *testing.T) {
	rows := []Row{
		{"id": float64(10)},
		{"id": float64(2)},
		{"id": float64(1)},
	}
	dt := NewDataTable("T", []Column{{ID: "id", Header: "id", AccessorKey: "id", Sortable: true}}, rows)

	dt.ToggleSort("id")
	got := dt.Visible()
	want := []int{2, 1, 0} // values 1, 2, 10
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected numeric order %v, got %v", want, got)
		}
	}
}

func TestDataTableSortIgnoresUnsortableColumn(t *testing.T) {
	dt := NewDataTable("T", courseColumns(), courseRows())
	dt.ToggleSort("term")
	got := dt.Visible()
	for i, orig := range []int{0, 1, 2} {
		if got[i] != orig {
			t.Fatalf("Expected order unchanged for unsortable column, got %v", got)
		}
	}
}

func TestDataTableFilterNarrowsRows(t *testing.T) {
	dt := NewDataTable("T", courseColumns(), courseRows())

	dt.SetFilter("courseName", "cmpsc 1")
	got := dt.Visible()
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Expected case-insensitive substring match rows [0 1], got %v", got)
	}

	dt.SetFilter("courseName", "")
	if len(dt.Visible()) != 3 {
		t.Errorf("Expected all rows after clearing filter, got %v", dt.Visible())
	}
}

func TestDataTableEmptyRows(t *testing.T) {
	dt := NewDataTable("T", courseColumns(), nil)

	if len(dt.Visible()) != 0 {
		t.Errorf("Expected zero visible rows, got %v", dt.Visible())
	}
	if dt.SelectedRow() != -1 {
		t.Errorf("Expected no selected row, got %d", dt.SelectedRow())
	}
	if dt.PressButton() {
		t.Error("Expected no button press on empty table")
	}
	// Headers still render
	if len(dt.Columns()) != 3 {
		t.Errorf("Expected 3 columns, got %d", len(dt.Columns()))
	}
	_ = dt.View()
}

func TestDataTableMissingKeyRendersEmpty(t *testing.T) {
	rows := []Row{{"id": float64(1)}}
	dt := NewDataTable("T", courseColumns(), rows)

	got, ok := dt.CellByID("T-cell-row-0-col-courseName")
	if !ok {
		t.Fatal("Expected cell to resolve")
	}
	if got != "" {
		t.Errorf("Expected empty content for missing key, got %q", got)
	}
}

func TestDataTableAccessorFnAndCellRenderer(t *testing.T) {
	cols := []Column{
		{
			ID:         "fullName",
			Header:     "Name",
			AccessorFn: func(r Row) any { return r["firstName"].(string) + " " + r["lastName"].(string) },
		},
		{
			ID:          "status",
			Header:      "Status",
			AccessorKey: "status",
			Cell: func(cc CellContext) string {
				return "<" + cc.Row["status"].(string) + ">"
			},
		},
	}
	rows := []Row{{"firstName": "Chris", "lastName": "Gaucho", "status": "MEMBER"}}
	dt := NewDataTable("T", cols, rows)

	if got, _ := dt.CellByID("T-cell-row-0-col-fullName"); got != "Chris Gaucho" {
		t.Errorf("Expected accessor function value, got %q", got)
	}
	// Cell renderer takes precedence over the raw value
	if got, _ := dt.CellByID("T-cell-row-0-col-status"); got != "<MEMBER>" {
		t.Errorf("Expected custom cell renderer output, got %q", got)
	}
}

func TestNormalizeColumns(t *testing.T) {
	legacy := []LegacyColumn{
		{Header: "Email", Accessor: "email"},
		{Header: "Full Name", Accessor: func(r Row) any { return r["name"] }},
	}

	cols := NormalizeColumns(legacy)

	if cols[0].ID != "email" || cols[0].AccessorKey != "email" || cols[0].Header != "Email" {
		t.Errorf("Unexpected normalization of string accessor: %+v", cols[0])
	}
	if cols[1].ID != "fullname" || cols[1].AccessorFn == nil {
		t.Errorf("Unexpected normalization of function accessor: %+v", cols[1])
	}

	dt := NewDataTable("T", cols, []Row{{"email": "a@b.c", "name": "A B"}})
	if got, _ := dt.CellByID("T-cell-row-0-col-fullname"); got != "A B" {
		t.Errorf("Expected normalized function accessor to resolve, got %q", got)
	}
}

func TestButtonColumn(t *testing.T) {
	var clicked *CellContext
	col := ButtonColumn("delete", "Delete", func(cc CellContext) {
		clicked = &cc
	})
	cols := append(courseColumns(), col)
	dt := NewDataTable("T", cols, courseRows())

	// Focus the button column and press on the first row
	dt.focusedCol = len(cols) - 1
	if !dt.PressButton() {
		t.Fatal("Expected button press to fire callback")
	}
	if clicked == nil {
		t.Fatal("Expected callback invoked")
	}
	if clicked.RowIndex != 0 || clicked.ColumnID != "delete" {
		t.Errorf("Unexpected context: %+v", clicked)
	}
	if clicked.Row["courseName"] != "CMPSC 156" {
		t.Errorf("Expected row data in context, got %+v", clicked.Row)
	}

	if got, _ := dt.CellByID("T-cell-row-0-col-delete"); got != "[Delete]" {
		t.Errorf("Expected button label cell, got %q", got)
	}
}
