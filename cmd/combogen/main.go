package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/nazroll/wzrdbrain/internal/catalog"
	"github.com/nazroll/wzrdbrain/internal/trick"
)

func main() {
	var (
		catalogPath = flag.String("catalog", "", "catalog YAML path (default: embedded catalog)")
		n           = flag.Int("n", 1, "number of combos to generate")
		length      = flag.Int("length", 0, "combo length (0 = random 2..5)")
		maxStage    = flag.Int("max-stage", trick.StageMax, "difficulty ceiling")
		seed        = flag.Uint64("seed", 0, "RNG seed (0 = non-deterministic)")
		opening     = flag.String("opening", "", "move id to open every combo with")
		include     = flag.String("include", "", "move id every combo must contain")
		detailed    = flag.Bool("detailed", false, "show exit/entry links between tricks")
		asJSON      = flag.Bool("json", false, "emit combos as JSON")
		stats       = flag.Int("stats", 0, "run N sampling trials and print a report instead")
	)
	flag.Parse()

	if *opening != "" && *include != "" {
		fmt.Fprintln(os.Stderr, "-opening and -include are mutually exclusive")
		os.Exit(1)
	}

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var rng trick.RandomSource
	if *seed != 0 {
		rng = trick.NewSeededRNG(*seed)
	}
	g := trick.NewGenerator(cat, cat.Rules(), rng)

	p := trick.Params{MaxStage: *maxStage}
	if *length != 0 {
		p.Length = length
	}

	if *stats > 0 {
		rep := trick.Sample(g, p, *stats)
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	combos := make([]trick.Combo, 0, *n)
	for i := 0; i < *n; i++ {
		var combo trick.Combo
		switch {
		case *opening != "":
			combo, err = g.GenerateFrom(*opening, p)
		case *include != "":
			combo, err = g.GenerateIncluding(*include, p)
		default:
			combo = g.Generate(p)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		combos = append(combos, combo)
	}

	if *asJSON {
		out, err := json.MarshalIndent(combos, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	for i, combo := range combos {
		if i > 0 {
			fmt.Println()
		}
		if *detailed {
			fmt.Println(trick.FormatComboDetailed(combo))
		} else {
			fmt.Println(trick.FormatCombo(combo))
		}
	}
}

func loadCatalog(path string) (*trick.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
