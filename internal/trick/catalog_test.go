package trick

import "testing"

func TestNewCatalogRejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalog(1, []Move{
		chainMove("dup", 1, DirectionFront, PointHeel, SpecSame, PointHeel),
		chainMove("dup", 2, DirectionBack, PointHeel, SpecSame, PointHeel),
	}, Rules{})
	if err == nil {
		t.Fatal("duplicate ids must fail construction")
	}
}

func TestNewCatalogRejectsEmptyID(t *testing.T) {
	if _, err := NewCatalog(1, []Move{chainMove("", 1, DirectionFront, PointHeel, SpecSame, PointHeel)}, Rules{}); err == nil {
		t.Fatal("empty id must fail construction")
	}
}

func TestByStage(t *testing.T) {
	cat := mustCatalog(t, Rules{},
		chainMove("a", 1, DirectionFront, PointHeel, SpecSame, PointHeel),
		chainMove("b", 3, DirectionFront, PointHeel, SpecSame, PointHeel),
		chainMove("c", 5, DirectionFront, PointHeel, SpecSame, PointHeel),
	)
	if got := cat.ByStage(3); len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("ByStage(3) = %v", got)
	}
	if got := cat.ByStage(StageMax); len(got) != 3 {
		t.Fatalf("ByStage(max) should return everything, got %d", len(got))
	}
	// a ceiling below every stage is allowed and simply empty
	if got := cat.ByStage(0); len(got) != 0 {
		t.Fatalf("ByStage(0) should be empty, got %d", len(got))
	}
}

func TestByIDCopiesAreIsolated(t *testing.T) {
	m := chainMove("al", 1, DirectionFront, PointHeel, SpecSame, PointHeel)
	m.Aliases = []string{"alias"}
	cat := mustCatalog(t, Rules{}, m)

	got, ok := cat.ByID("al")
	if !ok {
		t.Fatal("ByID missed an existing move")
	}
	got.Aliases[0] = "mutated"

	again, _ := cat.ByID("al")
	if again.Aliases[0] != "alias" {
		t.Fatal("mutating a returned move leaked into catalog storage")
	}
}

func TestRulesCopiesAreIsolated(t *testing.T) {
	rules := Rules{OnlyFirst: map[string]bool{"a": true}}
	cat := mustCatalog(t, rules, chainMove("a", 1, DirectionFront, PointHeel, SpecSame, PointHeel))

	r := cat.Rules()
	r.OnlyFirst["b"] = true

	if cat.Rules().OnlyFirst["b"] {
		t.Fatal("mutating returned rules leaked into catalog storage")
	}
}
