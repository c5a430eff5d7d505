package commands

import (
	"errors"
	"testing"
)

func TestParseAddWithModifiers(t *testing.T) {
	cmd, err := Parse("/add buy oat milk pri:high cat:personal")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil {
		t.Fatalf("unexpected command: %#v", cmd)
	}
	if cmd.Add.Title != "buy oat milk" {
		t.Fatalf("unexpected title: %q", cmd.Add.Title)
	}
	if cmd.Add.Priority != "high" || cmd.Add.Category != "personal" {
		t.Fatalf("unexpected modifiers: %#v", cmd.Add)
	}
}

func TestParseAddRequiresTitle(t *testing.T) {
	for _, input := range []string{"add", "add pri:high"} {
		_, err := Parse(input)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid_argument, got %v", input, err)
		}
	}
}

func TestParseTargetsAndFilter(t *testing.T) {
	cmd, err := Parse("done task-3")
	if err != nil || cmd.Done == nil || cmd.Done.Target != "task-3" {
		t.Fatalf("unexpected done parse: %#v (%v)", cmd, err)
	}

	cmd, err = Parse("delete task-3")
	if err != nil || cmd.Delete == nil || cmd.Delete.Target != "task-3" {
		t.Fatalf("unexpected delete parse: %#v (%v)", cmd, err)
	}

	cmd, err = Parse("filter PENDING")
	if err != nil || cmd.Filter == nil || cmd.Filter.Mode != "pending" {
		t.Fatalf("unexpected filter parse: %#v (%v)", cmd, err)
	}
}

func TestParseSessionCommands(t *testing.T) {
	cmd, err := Parse("login ada@example.com hunter22")
	if err != nil || cmd.Login == nil || cmd.Login.Email != "ada@example.com" {
		t.Fatalf("unexpected login parse: %#v (%v)", cmd, err)
	}

	cmd, err = Parse("register ada ada@example.com hunter22 hunter22")
	if err != nil || cmd.Register == nil || cmd.Register.Confirm != "hunter22" {
		t.Fatalf("unexpected register parse: %#v (%v)", cmd, err)
	}

	if _, err := Parse("login ada@example.com"); err == nil {
		t.Fatal("expected error for login without password")
	}

	for _, input := range []string{"logout", "export", "clear"} {
		cmd, err := Parse(input)
		if err != nil || string(cmd.Type) != input {
			t.Fatalf("parse %q: %#v (%v)", input, cmd, err)
		}
	}
}

func TestParseRejectsEmptyAndUnknown(t *testing.T) {
	for _, input := range []string{"", "   ", "/"} {
		_, err := Parse(input)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty_input, got %v", input, err)
		}
	}

	_, err := Parse("teleport home")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown_command, got %v", err)
	}
}

func TestExecuteDispatchAndMissingHandler(t *testing.T) {
	cmd, _ := Parse("add write report")
	called := false
	result, err := Execute(cmd, Handlers{
		Add: func(args AddArgs) (Result, error) {
			called = true
			return Result{Message: "added " + args.Title}, nil
		},
	})
	if err != nil || !called {
		t.Fatalf("expected add handler call, got %v", err)
	}
	if result.Message != "added write report" {
		t.Fatalf("unexpected result: %#v", result)
	}

	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}
