package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != len(migrations) {
		t.Errorf("expected schema version %d, got %d", len(migrations), v)
	}
	if db.Path() != path {
		t.Errorf("unexpected path %s", db.Path())
	}
	db.Close()

	// Reopening must not re-run the migrations.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()
	if v, _ := db.CurrentVersion(); v != len(migrations) {
		t.Errorf("expected schema version %d after reopen, got %d", len(migrations), v)
	}
}

func TestSessionRecorderRoundTrip(t *testing.T) {
	db := openTestDB(t)

	rec, err := StartSession(db, 10, "net", "test")
	if err != nil {
		t.Fatal(err)
	}
	clock := rec.start
	rec.now = func() time.Time {
		clock = clock.Add(250 * time.Millisecond)
		return clock
	}

	seq, _ := cube.ParseSequence("R U R' U'")
	c := cube.New()
	for _, m := range seq {
		c.Apply(m)
		if err := rec.Record(m, "key", c.Mismatched()); err != nil {
			t.Fatal(err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	s, err := NewSessionRepository(db).Get(rec.ID())
	if err != nil {
		t.Fatal(err)
	}
	if s.Frames != 10 || s.FrontEnd != "net" || s.AppVersion != "test" {
		t.Errorf("unexpected session %+v", s)
	}
	if s.MoveCount != 4 {
		t.Errorf("expected 4 moves, got %d", s.MoveCount)
	}
	if s.EndedAt == nil || s.Duration() != 1250*time.Millisecond {
		t.Errorf("unexpected duration %v", s.Duration())
	}

	records, err := NewMoveRepository(db).GetBySession(rec.ID())
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range records {
		if r.Seq != i {
			t.Errorf("record %d has seq %d", i, r.Seq)
		}
		if r.TsMs != int64(250*(i+1)) {
			t.Errorf("record %d has ts %d", i, r.TsMs)
		}
	}
	if records[len(records)-1].Mismatched != c.Mismatched() {
		t.Errorf("last mismatch %d, want %d", records[len(records)-1].Mismatched, c.Mismatched())
	}

	moves, err := ToMoves(records)
	if err != nil {
		t.Fatal(err)
	}
	if cube.FormatSequence(moves) != "R U R' U'" {
		t.Errorf("unexpected moves %s", cube.FormatSequence(moves))
	}
}

func TestResetMarkerRoundTrip(t *testing.T) {
	db := openTestDB(t)

	rec, err := StartSession(db, 10, "window", "test")
	if err != nil {
		t.Fatal(err)
	}

	// R', reset, U: the live cube only holds U.
	live := cube.New()
	rPrime := cube.Move{Target: cube.TargetR, Dir: cube.CounterClockwise}
	live.Apply(rPrime)
	if err := rec.Record(rPrime, "key", live.Mismatched()); err != nil {
		t.Fatal(err)
	}
	live.Reset()
	if err := rec.Reset(); err != nil {
		t.Fatal(err)
	}
	u := cube.Move{Target: cube.TargetU, Dir: cube.Clockwise}
	live.Apply(u)
	if err := rec.Record(u, "key", live.Mismatched()); err != nil {
		t.Fatal(err)
	}

	records, err := NewMoveRepository(db).GetBySession(rec.ID())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(records))
	}
	if r := records[1]; r.Seq != 1 || r.Source != SourceReset || r.Notation != ResetNotation || r.Mismatched != 0 {
		t.Errorf("unexpected reset row %+v", r)
	}

	moves, err := ToMoves(records)
	if err != nil {
		t.Fatal(err)
	}
	replayed := cube.New()
	replayed.ApplyMoves(moves)
	if *replayed != *live {
		t.Errorf("replay has %d mismatched stickers, live cube %d", replayed.Mismatched(), live.Mismatched())
	}
	if cube.FormatSequence(moves) != "U" {
		t.Errorf("expected only the moves after the reset, got %s", cube.FormatSequence(moves))
	}
}

func TestCreateBatchAndCount(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(time.Now(), 10, "scramble", "")
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := moves.Count(id); n != 0 {
		t.Errorf("expected no moves, got %d", n)
	}

	batch := []MoveRecord{
		{Seq: 0, Notation: "F", Source: "scramble", Mismatched: 12},
		{Seq: 1, Notation: "B'", Source: "scramble", Mismatched: 24},
	}
	if err := moves.CreateBatch(id, batch); err != nil {
		t.Fatal(err)
	}
	if n, _ := moves.Count(id); n != 2 {
		t.Errorf("expected 2 moves, got %d", n)
	}

	// A duplicate seq fails and rolls back the whole batch.
	dup := []MoveRecord{
		{Seq: 2, Notation: "U", Source: "key"},
		{Seq: 0, Notation: "U", Source: "key"},
	}
	if err := moves.CreateBatch(id, dup); err == nil {
		t.Fatal("expected duplicate seq to fail")
	}
	if n, _ := moves.Count(id); n != 2 {
		t.Errorf("failed batch should roll back, got %d moves", n)
	}
}

func TestFindAndList(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := sessions.Create(start.Add(time.Duration(i)*time.Minute), 10, "window", "")
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	list, err := sessions.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].SessionID != ids[2] || list[1].SessionID != ids[1] {
		t.Errorf("expected newest two sessions first, got %+v", list)
	}
	if !list[0].StartedAt.Equal(start.Add(2 * time.Minute)) {
		t.Errorf("unexpected start time %v", list[0].StartedAt)
	}

	s, err := sessions.Find(ids[0][:13])
	if err != nil {
		t.Fatal(err)
	}
	if s.SessionID != ids[0] {
		t.Errorf("prefix resolved to %s", s.SessionID)
	}

	if _, err := sessions.Find("zzzz"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := sessions.Find(""); !errors.Is(err, ErrAmbiguousSession) {
		t.Errorf("expected ErrAmbiguousSession, got %v", err)
	}
	if err := sessions.End("missing", time.Now()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	rec, err := StartSession(db, 10, "term", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Record(cube.Move{Target: cube.TargetU, Dir: cube.Clockwise}, "key", 12); err != nil {
		t.Fatal(err)
	}

	if err := NewSessionRepository(db).Delete(rec.ID()); err != nil {
		t.Fatal(err)
	}
	if n, _ := NewMoveRepository(db).Count(rec.ID()); n != 0 {
		t.Errorf("moves should be deleted with their session, %d left", n)
	}
	if _, err := NewSessionRepository(db).Get(rec.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestToMovesRejectsBadNotation(t *testing.T) {
	_, err := ToMoves([]MoveRecord{{Seq: 3, SessionID: "s", Notation: "Q"}})
	if !errors.Is(err, cube.ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
}
