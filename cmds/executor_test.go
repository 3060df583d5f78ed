package cmds

import (
	"fmt"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var level string
	executor.Define("-level", Func(func(s string) {
		level = s
	}))
	var count int
	executor.Define("-count", Func(func(n int) {
		count = n
	}))

	if err := executor.Execute([]string{
		"-level", "debug",
		"-count", "3",
	}); err != nil {
		t.Fatal(err)
	}
	if level != "debug" {
		t.Fatalf("got %q", level)
	}
	if count != 3 {
		t.Fatalf("got %d", count)
	}

	// surrounding spaces do not change the name
	if err := executor.Execute([]string{" -count ", "5"}); err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Fatalf("got %d", count)
	}

	err := executor.Execute([]string{"-nope"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -nope") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-count", "x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-count"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()

	executor.Define("-ok", Func(func() error {
		return nil
	}))
	executor.Define("-fail", Func(func() error {
		return fmt.Errorf("boom")
	}))

	if err := executor.Execute([]string{"-ok"}); err != nil {
		t.Fatal(err)
	}

	err := executor.Execute([]string{"-fail", "-ok"})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()

	var pretty bool
	var depth int
	executor.Define("show", Sub(map[string]*Command{
		"pretty": Func(func() {
			pretty = true
		}),
		"depth": Func(func(n int) {
			depth = n
		}),
	}))

	// sub command names are not known before the parent
	err := executor.Execute([]string{"pretty"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("got %v", err)
	}

	if err := executor.Execute([]string{
		"show",
		"pretty",
		"depth", "2",
	}); err != nil {
		t.Fatal(err)
	}
	if !pretty {
		t.Fatal("pretty not set")
	}
	if depth != 2 {
		t.Fatalf("got %d", depth)
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()

	executor.Define("a", Sub(map[string]*Command{
		"common": nil,
	}))
	executor.Define("b", Sub(map[string]*Command{
		"common": nil,
	}))

	err := executor.Execute([]string{"a", "b"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: b common") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()

	var n int
	var s string
	executor.Define("-opt", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"-opt", "42", "x"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("got %d", n)
	}
	if s != "x" {
		t.Fatalf("got %q", s)
	}

	// missing trailing arguments convert to zero values
	if err := executor.Execute([]string{"-opt", "7"}); err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Fatalf("got %d", n)
	}
	if s != "" {
		t.Fatalf("got %q", s)
	}

	if err := executor.Execute([]string{"-opt"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("got %d", n)
	}
}

func TestDuplicatedDefine(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor := NewExecutor()
	executor.Define("-x", Func(func() {}))
	executor.Define("-x", Func(func() {}))
}
