package household

// sagaStep is one unit of the registration pipeline. Every step that
// writes must declare how to undo that write.
type sagaStep struct {
	name       string
	run        func() error
	compensate func() error
}

// runSaga executes the steps in order. On the first failure it runs the
// compensations of every already completed step in newest-first order,
// then returns the failing step's error. Compensation errors do not
// stop the unwind; they are reported through onCompensateErr.
func runSaga(steps []sagaStep, onCompensateErr func(step string, err error)) error {
	for i, step := range steps {
		if err := step.run(); err != nil {
			for j := i - 1; j >= 0; j-- {
				if steps[j].compensate == nil {
					continue
				}
				if cerr := steps[j].compensate(); cerr != nil && onCompensateErr != nil {
					onCompensateErr(steps[j].name, cerr)
				}
			}
			return err
		}
	}
	return nil
}
