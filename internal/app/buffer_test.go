package app

import "testing"

func TestBufferEditing(t *testing.T) {
	var b Buffer
	b.Backspace()
	if b.String() != "" || b.Cursor() != 0 {
		t.Fatalf("backspace on empty buffer: %q@%d", b.String(), b.Cursor())
	}

	for _, r := range "héllo" {
		b.Insert(r)
	}
	if b.String() != "héllo" || b.Cursor() != 5 {
		t.Fatalf("after typing: %q@%d", b.String(), b.Cursor())
	}

	b.Backspace()
	b.Backspace()
	if b.String() != "hél" || b.Cursor() != 3 {
		t.Fatalf("after backspace: %q@%d", b.String(), b.Cursor())
	}

	b.Set("日本")
	if b.Cursor() != 2 {
		t.Fatalf("Set cursor = %d, want 2", b.Cursor())
	}
	b.Backspace()
	if b.String() != "日" {
		t.Fatalf("multi-byte backspace: %q", b.String())
	}

	b.Reset()
	if !b.Empty() || b.Cursor() != 0 {
		t.Fatalf("reset left %q@%d", b.String(), b.Cursor())
	}
}

func TestBufferInsertMidText(t *testing.T) {
	var b Buffer
	b.Set("ac")
	b.cursor = 1
	b.Insert('b')
	if b.String() != "abc" || b.Cursor() != 2 {
		t.Fatalf("mid insert: %q@%d", b.String(), b.Cursor())
	}
	b.Backspace()
	if b.String() != "ac" || b.Cursor() != 1 {
		t.Fatalf("mid backspace: %q@%d", b.String(), b.Cursor())
	}
}
