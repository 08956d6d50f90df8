//go:build !windows

package player

import (
	"sync"
	"syscall"
	"testing"
	"time"
)

func TestConcurrentStartsKeepSingleProcess(t *testing.T) {
	m := New(Config{Spec: Spec{BinPath: fakePlayer(t, "sleep 60")}, StopGrace: time.Second})
	video := fakeVideo(t)

	const workers = 4
	pids := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st, err := m.Start(video, true, true)
			if err != nil {
				t.Errorf("start %d: %v", i, err)
				return
			}
			pids[i] = st.PID
		}(i)
	}
	wg.Wait()

	st := m.Snapshot()
	if st.State != StatePlaying || st.PID <= 0 {
		t.Fatalf("unexpected status after racing starts: %+v", st)
	}

	// Every replaced process must be gone; only the recorded pid survives.
	waitFor(t, 3*time.Second, func() bool {
		for _, pid := range pids {
			if pid == 0 || pid == st.PID {
				continue
			}
			if syscall.Kill(pid, 0) == nil {
				return false
			}
		}
		return true
	})

	if !m.Stop() {
		t.Fatalf("stop should succeed")
	}
}
