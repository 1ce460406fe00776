package verify

import (
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gorcv/internal/model"
)

// Job pairs one element with its factored demands.
type Job struct {
	Element *model.Element
	Demands []model.ForceDemand
}

// ElementOutcome is the batch record for one element. A failed element
// carries its error; it never aborts the batch.
type ElementOutcome struct {
	Element  string
	Result   *model.VerificationResult
	Proposal *model.DesignProposal
	Err      error
}

// BatchResult is the collected outcome of a verification run.
type BatchResult struct {
	RunID    string
	Outcomes []ElementOutcome
}

// VerifyBatch fans the jobs out over a worker pool. Elements are
// independent; the orchestrator is read-only, so no synchronization
// beyond collecting results is needed. When propose is set, failing
// elements also get a proposal search.
func (o *Orchestrator) VerifyBatch(jobs []Job, propose bool) BatchResult {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	in := make(chan int)
	outcomes := make([]ElementOutcome, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range in {
				outcomes[i] = o.runJob(jobs[i], propose)
			}
		}()
	}
	for i := range jobs {
		in <- i
	}
	close(in)
	wg.Wait()

	return BatchResult{
		RunID:    uuid.NewString(),
		Outcomes: outcomes,
	}
}

func (o *Orchestrator) runJob(j Job, propose bool) ElementOutcome {
	out := ElementOutcome{Element: j.Element.Name}
	res, err := o.VerifyElement(j.Element, j.Demands)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result = res
	if propose && !res.Pass {
		p, err := o.Propose(j.Element, j.Demands)
		if err != nil {
			out.Err = err
			return out
		}
		out.Proposal = p // nil means no automatic proposal found
	}
	return out
}
