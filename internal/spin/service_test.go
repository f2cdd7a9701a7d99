package spin

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"mealslot/internal/catalog"
	"mealslot/internal/history"
)

// ----- mocks -----

type mockCatalog struct {
	dishes []catalog.Dish
	err    error
}

func (m *mockCatalog) GetByCategory(ctx context.Context, category string) ([]catalog.Dish, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []catalog.Dish
	for _, d := range m.dishes {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockCatalog) GetByID(ctx context.Context, id string) (*catalog.Dish, error) {
	for i, d := range m.dishes {
		if d.ID == id || d.Name == id {
			return &m.dishes[i], nil
		}
	}
	return nil, nil
}

func (m *mockCatalog) Categories(ctx context.Context) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, d := range m.dishes {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	return out, nil
}

func (m *mockCatalog) ListFilters(ctx context.Context) (*catalog.Filters, error) {
	return &catalog.Filters{}, nil
}

type mockHistory struct {
	saved   []*history.Record
	saveErr error
}

func (m *mockHistory) Save(ctx context.Context, rec *history.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, rec)
	return nil
}

func (m *mockHistory) ListRecent(ctx context.Context, limit int) ([]*history.Record, error) {
	if limit > len(m.saved) {
		limit = len(m.saved)
	}
	out := make([]*history.Record, limit)
	for i := 0; i < limit; i++ {
		out[i] = m.saved[len(m.saved)-1-i]
	}
	return out, nil
}

// ----- tests -----

func newTestService(hist history.Repository) *Service {
	return NewService(&mockCatalog{dishes: catalog.SeedDishes()}, hist)
}

func TestServiceSpinBasic(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.Spin(context.Background(), Request{
		Categories: []string{"meat", "veg", "staple", "soup"},
		Seed:       "test-seed",
	})
	if err != nil {
		t.Fatalf("spin failed: %v", err)
	}
	if len(res.Result) != 4 {
		t.Fatalf("want 4 picks, got %d", len(res.Result))
	}
	if res.Debug.Seed != "test-seed" {
		t.Fatalf("trace must echo the seed, got %q", res.Debug.Seed)
	}
	if len(res.Debug.Candidates) != 4 || len(res.Debug.Scores) != 4 {
		t.Fatal("trace must carry candidates and scores per reel")
	}
}

func TestServiceSpinReproducible(t *testing.T) {
	svc := newTestService(nil)
	req := Request{
		Categories: []string{"meat", "veg"},
		PowerUps:   &PowerUps{Healthy: 0.8},
		Seed:       "repro",
	}

	a, err := svc.Spin(context.Background(), req)
	if err != nil {
		t.Fatalf("spin failed: %v", err)
	}
	b, err := svc.Spin(context.Background(), req)
	if err != nil {
		t.Fatalf("spin failed: %v", err)
	}
	if !reflect.DeepEqual(a.Result, b.Result) {
		t.Fatalf("pinned seed must reproduce picks: %v vs %v", a.Result, b.Result)
	}
}

func TestServiceSpinGeneratesSeed(t *testing.T) {
	svc := newTestService(nil)
	res, err := svc.Spin(context.Background(), Request{Categories: []string{"veg"}})
	if err != nil {
		t.Fatalf("spin failed: %v", err)
	}
	if res.Debug.Seed == "" {
		t.Fatal("a fresh seed must be generated and reported when none is given")
	}
}

func TestServiceSpinValidation(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Spin(context.Background(), Request{})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("empty categories: want ErrValidation, got %v", err)
	}

	_, err = svc.Spin(context.Background(), Request{
		Categories: []string{"a", "b", "c", "d", "e", "f", "g"},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("too many categories: want ErrValidation, got %v", err)
	}
}

func TestServiceSpinNoCandidates(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.Spin(context.Background(), Request{Categories: []string{"dessert"}, Seed: "s"})
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("unknown category: want ErrNoCandidates, got %v", err)
	}
}

func TestServiceSpinDropsOutOfRangeLocks(t *testing.T) {
	svc := newTestService(nil)
	res, err := svc.Spin(context.Background(), Request{
		Categories: []string{"veg"},
		Locked:     []Lock{{Index: 5, ItemID: "whatever"}, {Index: -1, ItemID: "nope"}},
		Seed:       "s",
	})
	if err != nil {
		t.Fatalf("spin failed: %v", err)
	}
	if res.Result[0] == "whatever" || res.Result[0] == "nope" {
		t.Fatal("out-of-range locks must be ignored")
	}
}

func TestServiceSpinRecordsHistory(t *testing.T) {
	hist := &mockHistory{}
	svc := newTestService(hist)

	_, err := svc.SpinForRoom(context.Background(), "ABC234", Request{
		Categories: []string{"meat", "veg"},
		Seed:       "audit-seed",
	})
	if err != nil {
		t.Fatalf("spin failed: %v", err)
	}

	if len(hist.saved) != 1 {
		t.Fatalf("want 1 audit record, got %d", len(hist.saved))
	}
	rec := hist.saved[0]
	if rec.RoomCode != "ABC234" || rec.Seed != "audit-seed" {
		t.Fatalf("record fields wrong: %+v", rec)
	}
	if rec.ID == "" {
		t.Fatal("record must carry a generated id")
	}
	if len(rec.Result) != 2 {
		t.Fatalf("record should hold the picks, got %v", rec.Result)
	}
}

func TestServiceSpinHistoryFailureIsNonFatal(t *testing.T) {
	hist := &mockHistory{saveErr: errors.New("disk full")}
	svc := newTestService(hist)

	res, err := svc.Spin(context.Background(), Request{Categories: []string{"veg"}, Seed: "s"})
	if err != nil {
		t.Fatalf("history failure must not fail the spin: %v", err)
	}
	if len(res.Result) != 1 {
		t.Fatal("result must still be returned")
	}
}

func TestServiceSpinCatalogError(t *testing.T) {
	svc := NewService(&mockCatalog{err: errors.New("db down")}, nil)
	_, err := svc.Spin(context.Background(), Request{Categories: []string{"veg"}})
	if err == nil {
		t.Fatal("catalog failure must propagate")
	}
}

func TestServiceRecent(t *testing.T) {
	hist := &mockHistory{}
	svc := newTestService(hist)

	for i := 0; i < 3; i++ {
		if _, err := svc.Spin(context.Background(), Request{Categories: []string{"veg"}}); err != nil {
			t.Fatalf("spin failed: %v", err)
		}
	}

	recs, err := svc.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
}
