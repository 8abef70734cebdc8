package column

import (
	"testing"

	"github.com/wilhasse/go-mdf/page"
)

func TestValueStringNull(t *testing.T) {
	v := Value{Null: true}
	if v.String() != "NULL" {
		t.Fatalf("got %q", v.String())
	}
}

func TestValueStringLobRef(t *testing.T) {
	v := Value{Lob: &page.LobPointer{Record: page.RecordPointer{Page: page.Pointer{FileID: 1, PageID: 2}, Slot: 3}}}
	got := v.String()
	if got == "" || got == "NULL" {
		t.Fatalf("unexpected lob string: %q", got)
	}
}

func TestValueStringTypes(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Value{Type: Simple(Int), Int: 42}, "42"},
		{Value{Type: Simple(Bit), Bit: true}, "true"},
		{Value{Type: NewVarChar(-1), Str: "hi"}, "hi"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}
