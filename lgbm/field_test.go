package lgbm

import "testing"

func TestFieldWireNames(t *testing.T) {
	tests := []struct {
		name string
		wire []byte
		want string
	}{
		{"label", Label.WireName(), "label"},
		{"weight", Weight.WireName(), "weight"},
		{"init_score", InitScore.WireName(), "init_score"},
		{"group", Group.WireName(), "group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.wire) == 0 {
				t.Fatal("wire name must not be empty")
			}
			if tt.wire[len(tt.wire)-1] != 0 {
				t.Errorf("wire name %q must end in a NUL byte", tt.wire)
			}
			if got := string(tt.wire[:len(tt.wire)-1]); got != tt.want {
				t.Errorf("wire name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldName(t *testing.T) {
	if got := Label.Name(); got != "label" {
		t.Errorf("Name() = %q, want %q", got, "label")
	}
	if got := InitScore.Name(); got != "init_score" {
		t.Errorf("Name() = %q, want %q", got, "init_score")
	}
}

func TestNewFieldRejectsUnterminatedName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for wire name without NUL terminator")
		}
	}()
	newField[float32]("label")
}

func TestNewFieldRejectsInteriorNUL(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for wire name with interior NUL")
		}
	}()
	newField[float32]("la\x00bel\x00")
}
