package cmd_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/katalvlaran/cpop/cmd/cpop/cmd"
)

// cliScenario holds the state of one scenario: a scratch directory and the
// outcome of the last command.
type cliScenario struct {
	dir    string
	stdout string
	stderr string
	err    error
}

func (s *cliScenario) aPointsFileWith(name string, body *godog.DocString) error {
	return os.WriteFile(filepath.Join(s.dir, name), []byte(body.Content), 0o600)
}

func (s *cliScenario) iRun(line string) error {
	args := strings.Fields(strings.ReplaceAll(line, "{dir}", s.dir))

	var out, errOut bytes.Buffer
	root := cmd.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	s.err = root.ExecuteContext(context.Background())
	s.stdout, s.stderr = out.String(), errOut.String()

	return nil
}

func (s *cliScenario) theCommandSucceeds() error {
	if s.err != nil {
		return fmt.Errorf("command failed: %v\nstderr:\n%s", s.err, s.stderr)
	}
	return nil
}

func (s *cliScenario) theCommandFails() error {
	if s.err == nil {
		return fmt.Errorf("command succeeded unexpectedly; stdout:\n%s", s.stdout)
	}
	return nil
}

func (s *cliScenario) theOutputContains(want string) error {
	if !strings.Contains(s.stdout, want) {
		return fmt.Errorf("output does not contain %q:\n%s", want, s.stdout)
	}
	return nil
}

func (s *cliScenario) theErrorMentions(want string) error {
	if s.err == nil || !strings.Contains(s.err.Error(), want) {
		return fmt.Errorf("error %v does not mention %q", s.err, want)
	}
	return nil
}

func (s *cliScenario) theFileExists(name string) error {
	info, err := os.Stat(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s is empty", name)
	}
	return nil
}

// InitializeScenario registers the step definitions with a fresh state.
func InitializeScenario(sc *godog.ScenarioContext) {
	s := &cliScenario{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "cpop-feature-")
		if err != nil {
			return ctx, err
		}
		s.dir = dir
		return ctx, nil
	})
	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if s.dir != "" {
			_ = os.RemoveAll(s.dir)
		}
		return ctx, nil
	})

	sc.Step(`^a points file "([^"]*)" with:$`, s.aPointsFileWith)
	sc.Step(`^I run "([^"]*)"$`, s.iRun)
	sc.Step(`^the command succeeds$`, s.theCommandSucceeds)
	sc.Step(`^the command fails$`, s.theCommandFails)
	sc.Step(`^the output contains "([^"]*)"$`, s.theOutputContains)
	sc.Step(`^the error mentions "([^"]*)"$`, s.theErrorMentions)
	sc.Step(`^the file "([^"]*)" exists$`, s.theFileExists)
}

// TestFeatures runs the Godog suites under features/.
func TestFeatures(t *testing.T) {
	format := os.Getenv("GODOG_FORMAT")
	if format == "" {
		format = "progress"
	}

	suite := godog.TestSuite{
		Name:                "cpop",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   format,
			Paths:    []string{"features"},
			Tags:     os.Getenv("GODOG_TAGS"),
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
