package pager

import (
	"errors"
	"reflect"
	"testing"
)

func TestNavigatorLoadEmpty(t *testing.T) {
	n := NewNavigator(5)
	if n.Load(NewBook(nil, 5)) {
		t.Fatal("Load(empty) = true, want false")
	}
	if n.Loaded() {
		t.Error("empty book should leave no book loaded")
	}
	if _, ok := n.Current(); ok {
		t.Error("Current() should report no page without a book")
	}
	if m := n.Next(); m != NoBook {
		t.Errorf("Next() = %v, want NoBook", m)
	}
	if m := n.Previous(); m != NoBook {
		t.Errorf("Previous() = %v, want NoBook", m)
	}
	if err := n.Repaginate(3); !errors.Is(err, ErrNoBook) {
		t.Errorf("Repaginate() error = %v, want ErrNoBook", err)
	}
}

func TestNavigatorBoundaries(t *testing.T) {
	n := NewNavigator(2)
	if !n.Open([]string{"a", "b", "c", "d", "e"}) {
		t.Fatal("Open() = false")
	}

	if m := n.Previous(); m != AtFirstPage {
		t.Errorf("Previous() at page 0 = %v, want AtFirstPage", m)
	}
	if idx, _ := n.Position(); idx != 0 {
		t.Errorf("index = %d, want 0", idx)
	}

	moves := []Move{n.Next(), n.Next(), n.Next()}
	want := []Move{Advanced, Advanced, AtLastPage}
	if !reflect.DeepEqual(moves, want) {
		t.Errorf("moves = %v, want %v", moves, want)
	}
	idx, total := n.Position()
	if idx != 2 || total != 3 {
		t.Errorf("Position() = %d/%d, want 2/3", idx, total)
	}
	page, ok := n.Current()
	if !ok || page.Text() != "e" {
		t.Errorf("Current() = %v, %v", page, ok)
	}

	if m := n.Previous(); m != Retreated {
		t.Errorf("Previous() = %v, want Retreated", m)
	}
	if !n.Previous().Moved() {
		t.Error("second Previous() should move")
	}
}

func TestNavigatorSinglePage(t *testing.T) {
	n := NewNavigator(20)
	n.Open(makeWords(20))

	_, total := n.Position()
	if total != 1 {
		t.Fatalf("total pages = %d, want 1", total)
	}
	page, _ := n.Current()
	if len(page) != 20 {
		t.Errorf("page holds %d words, want 20", len(page))
	}
	if mv := n.Next(); mv != AtLastPage {
		t.Errorf("Next() = %v, want AtLastPage", mv)
	}
}

func TestNavigatorRepaginate(t *testing.T) {
	words := makeWords(24)
	n := NewNavigator(10)
	n.Open(words)
	n.Next()
	n.Next()

	if got := pageLens(n.Book().Pages); !reflect.DeepEqual(got, []int{10, 10, 4}) {
		t.Fatalf("page sizes = %v", got)
	}

	if err := n.Repaginate(8); err != nil {
		t.Fatalf("Repaginate: %v", err)
	}
	if got := pageLens(n.Book().Pages); !reflect.DeepEqual(got, []int{8, 8, 8}) {
		t.Errorf("page sizes = %v, want [8 8 8]", got)
	}
	if idx, _ := n.Position(); idx != 0 {
		t.Errorf("index after repaginate = %d, want 0", idx)
	}
	if n.PageSize() != 8 {
		t.Errorf("PageSize() = %d, want 8", n.PageSize())
	}
	if got := n.Book().Words(); !reflect.DeepEqual(got, words) {
		t.Errorf("words changed after repaginate: %v", got)
	}

	for _, size := range []int{3, 1, 9999, 7, 24} {
		if err := n.Repaginate(size); err != nil {
			t.Fatalf("Repaginate(%d): %v", size, err)
		}
	}
	if got := n.Book().Words(); !reflect.DeepEqual(got, words) {
		t.Errorf("repeated repagination lost words: %v", got)
	}
}

func TestNavigatorRepaginateInvalid(t *testing.T) {
	n := NewNavigator(10)
	n.Open(makeWords(24))
	n.Next()

	for _, size := range []int{0, -3, 10000} {
		if err := n.Repaginate(size); !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("Repaginate(%d) error = %v, want ErrInvalidPageSize", size, err)
		}
	}
	if idx, _ := n.Position(); idx != 1 {
		t.Errorf("rejected repaginate moved index to %d", idx)
	}
	if n.PageSize() != 10 {
		t.Errorf("rejected repaginate changed page size to %d", n.PageSize())
	}
}

func TestNavigatorGoto(t *testing.T) {
	n := NewNavigator(3)
	if n.First() || n.Last() {
		t.Error("First/Last should fail without a book")
	}

	n.Open(makeWords(10))
	if !n.Last() {
		t.Fatal("Last() = false")
	}
	if idx, total := n.Position(); idx != total-1 {
		t.Errorf("Last() index = %d, want %d", idx, total-1)
	}
	if n.Goto(4) {
		t.Error("Goto(4) should be out of range for 4 pages")
	}
	if !n.First() {
		t.Fatal("First() = false")
	}
	if idx, _ := n.Position(); idx != 0 {
		t.Errorf("First() index = %d", idx)
	}
}

func TestNavigatorLoadReplacesBook(t *testing.T) {
	n := NewNavigator(2)
	n.Open(makeWords(6))
	n.Next()

	if !n.Load(NewBook([]string{"x", "y", "z"}, 1)) {
		t.Fatal("Load() = false")
	}
	idx, total := n.Position()
	if idx != 0 || total != 3 {
		t.Errorf("Position() = %d/%d, want 0/3", idx, total)
	}
	if n.PageSize() != 1 {
		t.Errorf("PageSize() = %d, want book's page size 1", n.PageSize())
	}

	n.Load(nil)
	if n.Loaded() {
		t.Error("Load(nil) should unload")
	}
}

func TestNewNavigatorDefaultsPageSize(t *testing.T) {
	for _, size := range []int{0, -1, 10000} {
		if got := NewNavigator(size).PageSize(); got != DefaultPageSize {
			t.Errorf("NewNavigator(%d).PageSize() = %d, want %d", size, got, DefaultPageSize)
		}
	}
}
