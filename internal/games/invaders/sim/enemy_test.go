package sim

import "testing"

func TestEnemySpawnsOnGate(t *testing.T) {
	w := New(DefaultConfig(), DefaultHost(), 7)

	for i := 0; i < 59; i++ {
		w.Step(Input{})
	}
	if w.Store().Count(KindEnemy) != 0 {
		t.Fatalf("enemy spawned before the first spawn gate")
	}

	ev := w.Step(Input{})
	if ev.EnemiesSpawned != 1 {
		t.Errorf("EnemiesSpawned = %d, expected 1", ev.EnemiesSpawned)
	}
	if w.Store().Count(KindEnemy) != 1 || w.Enemies().Value() != 1 {
		t.Errorf("enemies = %d (counter %d), expected 1", w.Store().Count(KindEnemy), w.Enemies().Value())
	}

	// Population cap holds on later gates
	for i := 0; i < 60; i++ {
		w.Step(Input{})
	}
	if w.Enemies().Value() > 1 {
		t.Errorf("counter = %d, cap is 1", w.Enemies().Value())
	}
}

func TestTrySpawnEnemyRespectsCap(t *testing.T) {
	w := newQuietWorld()
	w.cfg.EnemyCap = 1

	if !TrySpawnEnemy(w) {
		t.Fatal("first spawn should succeed")
	}
	if TrySpawnEnemy(w) {
		t.Error("second spawn should be refused at cap 1")
	}
	w.store.Flush()
	if w.Store().Count(KindEnemy) != 1 {
		t.Errorf("Count(enemy) = %d, expected 1", w.Store().Count(KindEnemy))
	}
}

func TestEnemySpawnInsideInsetRectangle(t *testing.T) {
	w := newQuietWorld()
	w.cfg.EnemyCap = 1000

	for i := 0; i < 500; i++ {
		TrySpawnEnemy(w)
	}
	w.store.Flush()

	maxX, maxY := 598.0/2-100, 676.0/2-100
	w.Store().Each(KindEnemy, func(e *Entity) {
		if e.Transform.X < -maxX || e.Transform.X >= maxX {
			t.Errorf("enemy X = %f outside [%f, %f)", e.Transform.X, -maxX, maxX)
		}
		if e.Transform.Y < -maxY || e.Transform.Y >= maxY {
			t.Errorf("enemy Y = %f outside [%f, %f)", e.Transform.Y, -maxY, maxY)
		}
		if e.Transform.ScaleX != 0.5 || e.Transform.ScaleY != 0.5 {
			t.Errorf("enemy scale = (%f, %f), expected 0.5", e.Transform.ScaleX, e.Transform.ScaleY)
		}
	})
	if w.Enemies().Value() != 500 {
		t.Errorf("counter = %d, expected 500", w.Enemies().Value())
	}
}

func TestEnemySpawnIsSeeded(t *testing.T) {
	positions := func(seed int64) []float64 {
		w := New(quietConfig(), DefaultHost(), seed)
		w.cfg.EnemyCap = 10
		for i := 0; i < 10; i++ {
			TrySpawnEnemy(w)
		}
		w.store.Flush()
		var out []float64
		w.Store().Each(KindEnemy, func(e *Entity) {
			out = append(out, e.Transform.X, e.Transform.Y)
		})
		return out
	}

	a, b := positions(42), positions(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different spawns: %v vs %v", a, b)
		}
	}

	c := positions(43)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical spawns")
	}
}

func TestSpawnMarginLargerThanViewport(t *testing.T) {
	host := StaticHost{View: Size{W: 100, H: 100}, Sprites: DefaultHost().Sprites}
	w := New(quietConfig(), host, 1)
	w.cfg.EnemyCap = 1

	TrySpawnEnemy(w)
	w.store.Flush()

	e, ok := w.Store().First(KindEnemy)
	if !ok {
		t.Fatal("enemy should still spawn")
	}
	if e.Transform.X != 0 || e.Transform.Y != 0 {
		t.Errorf("enemy at (%f, %f), expected centre", e.Transform.X, e.Transform.Y)
	}
}

func TestFireEnemies(t *testing.T) {
	w := newQuietWorld()
	spawnEnemyAt(w, 10, 50)
	spawnEnemyAt(w, -40, 100)
	w.store.Flush()

	if n := FireEnemies(w); n != 2 {
		t.Fatalf("FireEnemies() = %d, expected 2", n)
	}
	w.store.Flush()

	var got [][2]float64
	w.Store().Lasers(OriginEnemy, func(l *Entity) {
		got = append(got, [2]float64{l.Transform.X, l.Transform.Y})
		if l.Transform.ScaleY >= 0 {
			t.Errorf("enemy laser ScaleY = %f, expected a flipped sprite", l.Transform.ScaleY)
		}
	})

	expected := [][2]float64{{10, 35}, {-40, 85}}
	if len(got) != len(expected) {
		t.Fatalf("enemy lasers = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("enemy lasers = %v, expected %v", got, expected)
		}
	}
}

func TestEnemyFireCadence(t *testing.T) {
	w := newQuietWorld()
	spawnEnemyAt(w, 200, 0)
	w.store.Flush()

	// 0.9s gate at 60 ticks/s: volleys on ticks 54, 108, 162
	var volleys []int
	for tick := 1; tick <= 180; tick++ {
		if w.Step(Input{}).LasersFired > 0 {
			volleys = append(volleys, tick)
		}
	}

	expected := []int{54, 108, 162}
	if len(volleys) != len(expected) {
		t.Fatalf("volleys on ticks %v, expected %v", volleys, expected)
	}
	for i := range expected {
		if volleys[i] != expected[i] {
			t.Errorf("volleys on ticks %v, expected %v", volleys, expected)
		}
	}
}

func TestActiveEnemiesUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Dec() below zero should panic")
		}
	}()

	var a ActiveEnemies
	a.Inc()
	a.Dec()
	a.Dec()
}
