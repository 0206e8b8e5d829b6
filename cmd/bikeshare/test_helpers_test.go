package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// executeCommand executes a cobra command and returns its output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)
	// Mock exit
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				// This is an expected exit, don't re-panic
				return
			}
			panic(r) // Re-panic actual panics
		}
	}()
	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err := root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupWorkspace isolates a test in an empty working directory with a fresh
// viper instance and default flags, and returns a data directory.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	chdir(t, t.TempDir())
	resetFlags(rootCmd)
	viper.Reset()
	t.Cleanup(func() {
		resetFlags(rootCmd)
		viper.Reset()
	})
	return t.TempDir()
}

// writeChicago writes a small Chicago dataset into dir.
func writeChicago(t *testing.T, dir string) {
	t.Helper()
	rows := []string{
		",Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year",
		"0,2017-06-05 08:00:00,2017-06-05 08:10:00,600,Streeter Dr & Grand Ave,Lake Shore Dr & Monroe St,Subscriber,Male,1985.0",
		"1,2017-06-06 08:20:00,2017-06-06 08:30:00,600,Streeter Dr & Grand Ave,Lake Shore Dr & Monroe St,Subscriber,Female,1990.0",
		"2,2017-06-07 17:00:00,2017-06-07 17:30:00,1800,Clinton St & Washington Blvd,Canal St & Adams St,Customer,,",
		"3,2017-02-06 09:00:00,2017-02-06 09:05:00,300,Canal St & Adams St,Clinton St & Washington Blvd,Subscriber,Male,1970.0",
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(strings.Join(rows, "\n")+"\n"), 0644))
}

// scriptAnswers replaces askOneFunc with a queue of answers for the test.
func scriptAnswers(t *testing.T, answers ...string) {
	t.Helper()
	original := askOneFunc
	t.Cleanup(func() { askOneFunc = original })

	askOneFunc = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		input, ok := p.(*survey.Input)
		if !ok {
			return fmt.Errorf("unexpected prompt type: %T", p)
		}
		if len(answers) == 0 {
			return fmt.Errorf("unexpected prompt: %s", input.Message)
		}
		*(response.(*string)) = answers[0]
		answers = answers[1:]
		return nil
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
