package record

import "testing"

func TestTagAFlags(t *testing.T) {
	tag := HasNullBitmap | HasValidTagB
	if !tag.Has(HasNullBitmap) {
		t.Fatal("expected HasNullBitmap set")
	}
	if !tag.Has(HasValidTagB) {
		t.Fatal("expected HasValidTagB set")
	}
	if tag.Has(HasVarLengthCols) {
		t.Fatal("HasVarLengthCols should not be set")
	}
}

func TestTypeDecodable(t *testing.T) {
	decodable := []Type{Primary, Index, Blob}
	for _, ty := range decodable {
		if !ty.Decodable() {
			t.Fatalf("%v should be decodable", ty)
		}
	}
	notDecodable := []Type{Forwarded, Forwarding, GhostIndex, GhostData, GhostVersion}
	for _, ty := range notDecodable {
		if ty.Decodable() {
			t.Fatalf("%v should not be decodable", ty)
		}
	}
}

func TestTypeString(t *testing.T) {
	if Primary.String() != "Primary" {
		t.Fatalf("got %q", Primary.String())
	}
	if Type(99).String() != "Unknown" {
		t.Fatalf("got %q", Type(99).String())
	}
}
