package syncs

import "sync"

type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(chan struct{}, max(n, 1))
}

func (s Semaphore) Acquire() {
	s <- struct{}{}
}

func (s Semaphore) Release() {
	<-s
}

// Go runs fn in a new goroutine once a slot is free.
func (s Semaphore) Go(wg *sync.WaitGroup, fn func()) {
	s.Acquire()
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer s.Release()
		fn()
	}()
}
