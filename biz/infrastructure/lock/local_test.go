package lock

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLocalLockerMutualExclusion(t *testing.T) {
	l := NewLocalLocker()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "R1:U1:3")
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()
	if maxSeen != 1 {
		t.Fatalf("%d holders at once", maxSeen)
	}
	if len(l.locks) != 0 {
		t.Fatalf("%d keys leaked", len(l.locks))
	}
}

func TestLocalLockerIndependentKeys(t *testing.T) {
	l := NewLocalLocker()
	unlockA, err := l.Lock(context.Background(), "a")
	if err != nil {
		t.Fatal(err)
	}
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	unlockB, err := l.Lock(ctx, "b")
	if err != nil {
		t.Fatalf("different key blocked: %v", err)
	}
	unlockB()
}

func TestLocalLockerContextCancel(t *testing.T) {
	l := NewLocalLocker()
	unlock, err := l.Lock(context.Background(), "k")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err = l.Lock(ctx, "k"); err == nil {
		t.Fatal("want error when ctx expires while waiting")
	}
	unlock()
	// 重复释放无副作用
	unlock()

	unlock, err = l.Lock(context.Background(), "k")
	if err != nil {
		t.Fatal(err)
	}
	unlock()
}
