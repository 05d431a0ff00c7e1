package app

import (
	"context"
	"strings"
)

const testChain = `coverage run -m pytest -s && coverage report --omit="tests/*" -m`

// Test runs the pytest suite under coverage. When coverage is not
// directly callable the whole chain goes through `poetry run`.
func (s Service) Test(ctx context.Context, req TestRequest) (TestResult, error) {
	command := testChain
	if !s.ProjectInfo.InVirtualEnv() || !s.Runner.Check(ctx, "coverage --version") {
		steps := strings.Split(command, " && ")
		for i, step := range steps {
			steps[i] = "poetry run " + step
		}
		command = strings.Join(steps, " && ")
	}
	if err := s.Runner.Run(ctx, command, req.Dry); err != nil {
		return TestResult{}, err
	}
	return TestResult{Command: command}, nil
}
