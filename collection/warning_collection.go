package collection

import (
	"fmt"
	"strings"
	"sync"
)

// Warning collects non-fatal failures encountered during a deployment, such as
// a rejected termination request. It never fails the run.
type Warning struct {
	sync.Mutex
	warnMsgs []string
}

func (w *Warning) Add(err error) {
	w.Lock()
	defer w.Unlock()

	w.warnMsgs = append(w.warnMsgs, err.Error())
}

func (w *Warning) Error() error {
	w.Lock()
	defer w.Unlock()

	if len(w.warnMsgs) == 0 {
		return nil
	}

	return fmt.Errorf("encountered warnings: \n %s", strings.Join(w.warnMsgs, "\n"))
}
