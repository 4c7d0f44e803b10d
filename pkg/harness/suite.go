package harness

// RunAll executes the scenarios in order and returns one result per
// scenario, in input order. No outcome is fatal to the suite: an operator
// interrupt stops only the scenario it arrived during, and a launch
// failure is logged and skipped.
func (r *Runner) RunAll(scenarios []Scenario) []RunResult {
	results := make([]RunResult, 0, len(scenarios))
	for _, sc := range scenarios {
		res := r.Run(sc)
		switch res.Outcome {
		case OutcomeInterrupted:
			r.sink.Notice("skipping to next scenario...")
		case OutcomeLaunchFailed:
			r.log.Warnw("scenario launch failed, continuing", "scenario", sc.Name, "error", res.Err)
		}
		results = append(results, res)
	}
	return results
}
