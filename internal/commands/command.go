package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeDone     Type = "done"
	TypeDelete   Type = "delete"
	TypeFilter   Type = "filter"
	TypeLogin    Type = "login"
	TypeRegister Type = "register"
	TypeLogout   Type = "logout"
	TypeExport   Type = "export"
	TypeClear    Type = "clear"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title    string
	Priority string
	Category string
}

type DoneArgs struct {
	Target string
}

type DeleteArgs struct {
	Target string
}

type FilterArgs struct {
	Mode string
}

type LoginArgs struct {
	Email    string
	Password string
}

type RegisterArgs struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Done     *DoneArgs
	Delete   *DeleteArgs
	Filter   *FilterArgs
	Login    *LoginArgs
	Register *RegisterArgs
}

// Parse turns a palette line into a typed command. Title words and the
// pri:/cat: modifiers may be mixed freely after "add".
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseTarget(input, args, TypeDone)
	case TypeDelete:
		return parseTarget(input, args, TypeDelete)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeLogin:
		return parseLogin(input, args)
	case TypeRegister:
		return parseRegister(input, args)
	case TypeLogout:
		return Command{Type: TypeLogout, Raw: input}, nil
	case TypeExport:
		return Command{Type: TypeExport, Raw: input}, nil
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	out := AddArgs{}
	words := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "pri:"):
			out.Priority = strings.TrimSpace(strings.TrimPrefix(lower, "pri:"))
		case strings.HasPrefix(lower, "cat:"):
			out.Category = strings.TrimSpace(strings.TrimPrefix(lower, "cat:"))
		default:
			words = append(words, arg)
		}
	}
	out.Title = strings.TrimSpace(strings.Join(words, " "))
	if out.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseTarget(raw string, args []string, typ Type) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task id", typ)}
	}
	target := strings.TrimSpace(args[0])
	switch typ {
	case TypeDone:
		return Command{Type: typ, Raw: raw, Done: &DoneArgs{Target: target}}, nil
	default:
		return Command{Type: typ, Raw: raw, Delete: &DeleteArgs{Target: target}}, nil
	}
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires a mode"}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Mode: strings.ToLower(args[0])}}, nil
}

func parseLogin(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "login requires email and password"}
	}
	return Command{Type: TypeLogin, Raw: raw, Login: &LoginArgs{Email: args[0], Password: args[1]}}, nil
}

func parseRegister(raw string, args []string) (Command, error) {
	if len(args) < 4 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "register requires name, email, password and confirmation"}
	}
	return Command{Type: TypeRegister, Raw: raw, Register: &RegisterArgs{
		Name:     args[0],
		Email:    args[1],
		Password: args[2],
		Confirm:  args[3],
	}}, nil
}
