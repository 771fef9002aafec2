package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"

	"github.com/nazroll/wzrdbrain/internal/catalog"
	"github.com/nazroll/wzrdbrain/internal/progression"
	"github.com/nazroll/wzrdbrain/internal/trick"
)

type config struct {
	Addr        string `env:"WZRD_ADDR" envDefault:":8080"`
	CatalogPath string `env:"WZRD_CATALOG"` // empty -> embedded catalog
	// 0s disables hot reload; only meaningful with WZRD_CATALOG set.
	WatchInterval time.Duration `env:"WZRD_WATCH_INTERVAL" envDefault:"0s"`
}

// holder guards the active catalog. Reloads swap the pointer whole, so a
// request either sees the old catalog or the new one, never a mix.
type holder struct {
	mu  sync.RWMutex
	cat *trick.Catalog
}

func (h *holder) get() *trick.Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cat
}

func (h *holder) set(c *trick.Catalog) {
	h.mu.Lock()
	h.cat = c
	h.mu.Unlock()
}

var active holder

type trickResp struct {
	MoveID   string         `json:"move_id"`
	Name     string         `json:"name"`
	Display  string         `json:"display"`
	Category trick.Category `json:"category"`
	Stage    int            `json:"stage"`
	Entry    trick.State    `json:"entry"`
	Exit     trick.State    `json:"exit"`
}

type comboResp struct {
	ID       string      `json:"id"`
	Tricks   []trickResp `json:"tricks"`
	Text     string      `json:"text"`
	Detailed string      `json:"detailed,omitempty"`
}

type combosResp struct {
	Combos []comboResp `json:"combos"`
}

type validateReq struct {
	Moves    []string `json:"moves"`
	MaxStage int      `json:"max_stage"`
}

type validateResp struct {
	Valid      bool              `json:"valid"`
	Violations []trick.Violation `json:"violations"`
}

type movesResp struct {
	Version int          `json:"version"`
	Moves   []trick.Move `json:"moves"`
}

type tierResp struct {
	progression.Tier
	Moves []string `json:"moves,omitempty"`
}

type progressionResp struct {
	Tiers []tierResp `json:"tiers"`
	Tips  []string   `json:"tips,omitempty"`
}

type stageResp struct {
	Tier tierResp  `json:"tier"`
	Next *tierResp `json:"next,omitempty"`
}

// parseInt reads an optional integer query param. present is true whenever
// the key was supplied, even if it failed to parse; msg carries the error.
func parseInt(r *http.Request, key string) (int, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, "invalid " + key
	}
	return v, true, ""
}

func parseUint(r *http.Request, key string) (uint64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, true, "invalid " + key
	}
	return v, true, ""
}

// genParams assembles generation params and the random source from query
// params shared by /combo and /combos. seed=0 (or absent) keeps the
// crypto-backed default; any other seed makes the response deterministic.
func genParams(r *http.Request) (trick.Params, trick.RandomSource, string) {
	p := trick.Params{MaxStage: trick.StageMax}

	length, present, msg := parseInt(r, "length")
	if msg != "" {
		return p, nil, msg
	}
	if present {
		p.Length = &length
	}

	maxStage, present, msg := parseInt(r, "max_stage")
	if msg != "" {
		return p, nil, msg
	}
	if present {
		p.MaxStage = maxStage
	}

	seed, _, msg := parseUint(r, "seed")
	if msg != "" {
		return p, nil, msg
	}
	var rng trick.RandomSource
	if seed != 0 {
		rng = trick.NewSeededRNG(seed)
	}
	return p, rng, ""
}

func comboPayload(combo trick.Combo, detailed bool) comboResp {
	tricks := make([]trickResp, len(combo))
	for i, t := range combo {
		tricks[i] = trickResp{
			MoveID:   t.MoveID,
			Name:     t.Name,
			Display:  t.DisplayName(),
			Category: t.Category,
			Stage:    t.Stage,
			Entry:    t.Entry,
			Exit:     t.Exit,
		}
	}
	resp := comboResp{ID: uuid.NewString(), Tricks: tricks, Text: trick.FormatCombo(combo)}
	if detailed {
		resp.Detailed = trick.FormatComboDetailed(combo)
	}
	return resp
}

// one combo
func handleCombo(w http.ResponseWriter, r *http.Request) {
	p, rng, msg := genParams(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	detailed := r.URL.Query().Get("detailed") == "1" || r.URL.Query().Get("detailed") == "true"
	opening := r.URL.Query().Get("opening")
	include := r.URL.Query().Get("include")
	if opening != "" && include != "" {
		http.Error(w, "opening and include are mutually exclusive", http.StatusBadRequest)
		return
	}

	cat := active.get()
	g := trick.NewGenerator(cat, cat.Rules(), rng)

	var (
		combo trick.Combo
		err   error
	)
	switch {
	case opening != "":
		combo, err = g.GenerateFrom(opening, p)
	case include != "":
		combo, err = g.GenerateIncluding(include, p)
	default:
		combo = g.Generate(p)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(comboPayload(combo, detailed))
}

// batch of combos from one generator, so a seed fixes the whole batch
func handleCombos(w http.ResponseWriter, r *http.Request) {
	p, rng, msg := genParams(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	count, present, msg := parseInt(r, "count")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !present {
		count = 1
	}
	if count < 1 || count > 100 {
		http.Error(w, "count must be 1..100", http.StatusBadRequest)
		return
	}

	cat := active.get()
	g := trick.NewGenerator(cat, cat.Rules(), rng)

	resp := combosResp{Combos: make([]comboResp, count)}
	for i := 0; i < count; i++ {
		resp.Combos[i] = comboPayload(g.Generate(p), false)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// one random trick under optional constraints
func handleTrick(w http.ResponseWriter, r *http.Request) {
	spec := trick.TrickSpec{
		MoveID:    r.URL.Query().Get("id"),
		Direction: trick.Direction(r.URL.Query().Get("direction")),
		Edge:      trick.Edge(r.URL.Query().Get("edge")),
		Stance:    trick.Stance(r.URL.Query().Get("stance")),
		Point:     trick.Point(r.URL.Query().Get("point")),
		MaxStage:  trick.StageMax,
	}
	maxStage, present, msg := parseInt(r, "max_stage")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if present {
		spec.MaxStage = maxStage
	}
	seed, _, msg := parseUint(r, "seed")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	var rng trick.RandomSource
	if seed != 0 {
		rng = trick.NewSeededRNG(seed)
	}

	cat := active.get()
	g := trick.NewGenerator(cat, cat.Rules(), rng)
	ins, err := g.RandomTrick(spec)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, trick.ErrNoMatch) || errors.Is(err, trick.ErrUnknownMove) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(trickResp{
		MoveID:   ins.MoveID,
		Name:     ins.Name,
		Display:  ins.DisplayName(),
		Category: ins.Category,
		Stage:    ins.Stage,
		Entry:    ins.Entry,
		Exit:     ins.Exit,
	})
}

func handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	cat := active.get()
	violations := trick.Check(cat, cat.Rules(), req.MaxStage, req.Moves)
	if violations == nil {
		violations = []trick.Violation{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(validateResp{Valid: len(violations) == 0, Violations: violations})
}

func handleMoves(w http.ResponseWriter, r *http.Request) {
	cat := active.get()

	if id := r.URL.Query().Get("id"); id != "" {
		m, ok := cat.ByID(id)
		if !ok {
			http.Error(w, "unknown move id", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(m)
		return
	}

	maxStage, present, msg := parseInt(r, "max_stage")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !present {
		maxStage = trick.StageMax
	}
	moves := cat.ByStage(maxStage)
	if moves == nil {
		moves = []trick.Move{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(movesResp{Version: cat.Version(), Moves: moves})
}

func handleProgression(w http.ResponseWriter, r *http.Request) {
	cat := active.get()
	tiers := progression.Default()

	stage, present, msg := parseInt(r, "stage")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if present {
		tier, ok := progression.ForStage(tiers, stage)
		if !ok {
			http.Error(w, "no tier for stage", http.StatusNotFound)
			return
		}
		resp := stageResp{Tier: tierPayload(cat, tier)}
		if next, ok := progression.Next(tiers, stage); ok {
			nt := tierPayload(cat, next)
			resp.Next = &nt
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	resp := progressionResp{Tips: progression.Tips()}
	for _, t := range tiers {
		resp.Tiers = append(resp.Tiers, tierPayload(cat, t))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func tierPayload(cat *trick.Catalog, t progression.Tier) tierResp {
	out := tierResp{Tier: t}
	for _, m := range progression.MovesAt(cat, t.Level) {
		out.Moves = append(out.Moves, m.ID)
	}
	return out
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	var (
		cat *trick.Catalog
		err error
	)
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		log.Fatal(err)
	}
	active.set(cat)
	log.Printf("catalog ready: %d moves (version %d)", cat.Len(), cat.Version())

	if cfg.CatalogPath != "" && cfg.WatchInterval > 0 {
		watcher := catalog.NewWatcher(cfg.CatalogPath, cfg.WatchInterval, func(path string) {
			next, err := catalog.Load(path)
			if err != nil {
				// keep serving the previous catalog
				log.Printf("catalog reload failed: %v", err)
				return
			}
			active.set(next)
			log.Printf("catalog reloaded from %s (%d moves)", path, next.Len())
		})
		watcher.Start()
	}

	http.HandleFunc("/combo", handleCombo)
	http.HandleFunc("/combos", handleCombos)
	http.HandleFunc("/trick", handleTrick)
	http.HandleFunc("/validate", handleValidate)
	http.HandleFunc("/moves", handleMoves)
	http.HandleFunc("/progression", handleProgression)

	log.Printf("listening on %s ...", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
