package ast

import "testing"

func strNode(s string) Node { return Str([]byte(s)) }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		n       Node
		wantErr bool
	}{
		{"literal", strNode("abc"), false},
		{"sequence", Seq(strNode("a"), strNode("b")), false},
		{"or", Or(strNode("a"), strNode("b")), false},
		{"valid range", ByteRange(strNode("a"), strNode("z")), false},
		{"reversed range", ByteRange(strNode("z"), strNode("a")), true},
		{"multi-byte range endpoint", ByteRange(strNode("ab"), strNode("z")), true},
		{"empty string node", Str(nil), true},
		{"empty sequence", Seq(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTooManyChildren(t *testing.T) {
	kids := make([]Node, MaxChildren+1)
	for i := range kids {
		kids[i] = strNode("a")
	}
	if err := Validate(Seq(kids...)); err == nil {
		t.Fatal("expected error for too many children")
	}
}

func TestKindString(t *testing.T) {
	if got := KindSeq.String(); got != "Sequence" {
		t.Errorf("KindSeq.String() = %q", got)
	}
	if got := Kind(255).String(); got != "Unknown" {
		t.Errorf("unknown kind String() = %q", got)
	}
}
