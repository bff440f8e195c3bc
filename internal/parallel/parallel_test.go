package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Sequential()

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForErr(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	err := ForErr(n, func(_ int) error {
		atomic.AddInt64(&counter, 1)
		return nil
	}, cfg)
	if err != nil {
		t.Fatalf("ForErr failed: %v", err)
	}
	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForErr_Propagates(t *testing.T) {
	boom := errors.New("work item failed")

	for _, cfg := range []Config{
		DefaultConfig(),
		Sequential(),
		{Enabled: true, NumWorkers: 4, MinChunkSize: 8},
	} {
		err := ForErr(1000, func(i int) error {
			if i == 500 {
				return boom
			}
			return nil
		}, cfg)
		if !errors.Is(err, boom) {
			t.Errorf("cfg %+v: ForErr = %v, want %v", cfg, err, boom)
		}
	}
}

func TestForErr_SequentialStopsEarly(t *testing.T) {
	boom := errors.New("stop")

	var calls int64
	err := ForErr(100, func(i int) error {
		atomic.AddInt64(&calls, 1)
		if i == 10 {
			return boom
		}
		return nil
	}, Sequential())

	if !errors.Is(err, boom) {
		t.Fatalf("ForErr = %v, want %v", err, boom)
	}
	if calls != 11 {
		t.Errorf("ran %d items, want 11", calls)
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}

func BenchmarkForErr(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	for i := 0; i < b.N; i++ {
		var sum int64
		_ = ForErr(n, func(i int) error {
			atomic.AddInt64(&sum, int64(i))
			return nil
		}, cfg)
	}
}
