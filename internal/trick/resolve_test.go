package trick

import "testing"

func TestResolveExit(t *testing.T) {
	entry := State{Direction: DirectionFront, Edge: EdgeInside, Stance: StanceOpen, Point: PointHeel}

	tests := []struct {
		name string
		spec ExitSpec
		want State
	}{
		{
			name: "same copies every attribute",
			spec: ExitSpec{Direction: SpecSame, Edge: SpecSame, Stance: SpecSame, Point: PointHeel},
			want: State{Direction: DirectionFront, Edge: EdgeInside, Stance: StanceOpen, Point: PointHeel},
		},
		{
			name: "opposite flips every pairing",
			spec: ExitSpec{Direction: SpecOpposite, Edge: SpecOpposite, Stance: SpecOpposite, Point: PointHeel},
			want: State{Direction: DirectionBack, Edge: EdgeOutside, Stance: StanceClosed, Point: PointHeel},
		},
		{
			name: "absolute values pass through",
			spec: ExitSpec{Direction: SpecValue(DirectionBack), Edge: SpecValue(EdgeInside), Stance: SpecValue(StanceClosed), Point: PointToe},
			want: State{Direction: DirectionBack, Edge: EdgeInside, Stance: StanceClosed, Point: PointToe},
		},
		{
			name: "mixed spec resolves per attribute",
			spec: ExitSpec{Direction: SpecOpposite, Edge: SpecSame, Stance: SpecOpposite, Point: PointToe},
			want: State{Direction: DirectionBack, Edge: EdgeInside, Stance: StanceClosed, Point: PointToe},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveExit(entry, tt.spec); got != tt.want {
				t.Fatalf("ResolveExit() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveExitFromBackEntry(t *testing.T) {
	entry := State{Direction: DirectionBack, Edge: EdgeOutside, Stance: StanceClosed, Point: PointToe}
	spec := ExitSpec{Direction: SpecOpposite, Edge: SpecOpposite, Stance: SpecOpposite, Point: PointHeel}
	want := State{Direction: DirectionFront, Edge: EdgeInside, Stance: StanceOpen, Point: PointHeel}
	if got := ResolveExit(entry, spec); got != want {
		t.Fatalf("ResolveExit() = %+v, want %+v", got, want)
	}
}

func TestMaterialize(t *testing.T) {
	m := Move{
		ID:       "gazelle",
		Name:     "gazelle",
		Category: CategoryTransition,
		Stage:    2,
		UseFakie: false,
		NoStance: false,
		Entry:    State{Direction: DirectionFront, Edge: EdgeInside, Stance: StanceOpen, Point: PointHeel},
		Exit:     ExitSpec{Direction: SpecOpposite, Edge: SpecOpposite, Stance: SpecSame, Point: PointHeel},
	}
	ins := Materialize(m)
	if ins.MoveID != "gazelle" || ins.Name != "gazelle" || ins.Category != CategoryTransition || ins.Stage != 2 {
		t.Fatalf("metadata not carried over: %+v", ins)
	}
	if ins.Entry != m.Entry {
		t.Fatalf("entry should copy verbatim; got %+v", ins.Entry)
	}
	wantExit := State{Direction: DirectionBack, Edge: EdgeOutside, Stance: StanceOpen, Point: PointHeel}
	if ins.Exit != wantExit {
		t.Fatalf("exit = %+v, want %+v", ins.Exit, wantExit)
	}
}
