package framework

// TestLogger observes test execution as it happens. Each result is delivered
// immediately when it is produced, in addition to being appended to the
// returned Results; a live renderer can therefore stream progress without
// waiting for the run to finish.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(result TestResult)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)         {}
func (n nullTestLogger) TestError(TestID, error)    {}
func (n nullTestLogger) TestFinished(TestResult)    {}
func (n nullTestLogger) TestSkipped(TestID, string) {}
