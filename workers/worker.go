package workers

import (
	"sync"
	"time"
)

type JobsRunner struct {
	WorkerCount int
	Task        func(no int)
	Seeder      func()
}

// Run starts the seeder and WorkerCount task goroutines and blocks
// until every task returns. The seeder is responsible for closing the
// channel the tasks consume.
func (jr *JobsRunner) Run() time.Duration {
	start := time.Now()
	wg := new(sync.WaitGroup)
	if jr.Seeder != nil {
		go jr.Seeder()
	}
	wg.Add(jr.WorkerCount)
	for no := 0; no < jr.WorkerCount; no++ {
		go func(no int) {
			defer wg.Done()
			jr.Task(no)
		}(no)
	}
	wg.Wait()
	return time.Since(start)
}

func RunJobs(workerCount int, task func(no int), seeder func()) time.Duration {
	jr := JobsRunner{WorkerCount: workerCount, Task: task, Seeder: seeder}
	return jr.Run()
}
