package paginate

import "fmt"

// ContractError reports a page that violates the PageSource contract:
// records out of ascending open-time order or outside the requested window.
type ContractError struct {
	Reason   string
	Index    int
	OpenTime int64
	StartMS  int64
	EndMS    int64
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("page contract violation: %s (record %d, open_time %d, window [%d, %d])",
		e.Reason, e.Index, e.OpenTime, e.StartMS, e.EndMS)
}
